package view

import "slices"

// Compare orders a and b like a.Compare(b). It fits slices.SortFunc.
func Compare[T Char](a, b View[T]) int { return a.Compare(b) }

// Compare returns -1, 0 or +1 as v sorts before, equal to or after other.
//
// Characters are compared element-wise over the shorter length; a tie there is
// broken by length, so a proper prefix sorts first.
func (v View[T]) Compare(other View[T]) int {
	return slices.Compare(v.s, other.s)
}

// CompareSub compares Substr(pos, count) with other.
func (v View[T]) CompareSub(pos, count int, other View[T]) (int, error) {
	sv, err := v.Substr(pos, count)
	if err != nil {
		return 0, err
	}
	return sv.Compare(other), nil
}

// CompareSubs compares Substr(pos, count) with other.Substr(pos2, count2).
func (v View[T]) CompareSubs(pos, count int, other View[T], pos2, count2 int) (int, error) {
	sv, err := v.Substr(pos, count)
	if err != nil {
		return 0, err
	}
	so, err := other.Substr(pos2, count2)
	if err != nil {
		return 0, err
	}
	return sv.Compare(so), nil
}

// The relational helpers below are all defined through Compare.

func (v View[T]) Equal(other View[T]) bool { return v.Compare(other) == 0 }

func (v View[T]) NotEqual(other View[T]) bool { return v.Compare(other) != 0 }

func (v View[T]) Less(other View[T]) bool { return v.Compare(other) < 0 }

func (v View[T]) Greater(other View[T]) bool { return other.Less(v) }

func (v View[T]) LessEqual(other View[T]) bool { return !v.Greater(other) }

func (v View[T]) GreaterEqual(other View[T]) bool { return !v.Less(other) }

package view

// Everything in this file returns views that share v's storage.

func (v View[T]) HasPrefix(prefix View[T]) bool {
	return len(prefix.s) <= len(v.s) && v.sub(0, len(prefix.s)).Equal(prefix)
}

func (v View[T]) HasSuffix(suffix View[T]) bool {
	return len(suffix.s) <= len(v.s) && v.sub(len(v.s)-len(suffix.s), NPos).Equal(suffix)
}

// Contains reports whether needle occurs in v. The empty needle is contained
// in every view.
func (v View[T]) Contains(needle View[T]) bool {
	return needle.Empty() || v.Find(needle, 0) != NPos
}

func (v View[T]) TrimPrefix(prefix View[T]) View[T] {
	if !v.HasPrefix(prefix) {
		return v
	}
	return v.sub(len(prefix.s), NPos)
}

func (v View[T]) TrimSuffix(suffix View[T]) View[T] {
	if !v.HasSuffix(suffix) {
		return v
	}
	return v.sub(0, len(v.s)-len(suffix.s))
}

// TrimLeft drops leading characters that appear in set.
func (v View[T]) TrimLeft(set View[T]) View[T] {
	i := v.FindFirstNotOf(set, 0)
	if i == NPos {
		return v.sub(len(v.s), 0)
	}
	return v.sub(i, NPos)
}

// TrimRight drops trailing characters that appear in set.
func (v View[T]) TrimRight(set View[T]) View[T] {
	i := v.FindLastNotOf(set, NPos)
	if i == NPos {
		return v.sub(0, 0)
	}
	return v.sub(0, i+1)
}

func (v View[T]) Trim(set View[T]) View[T] {
	return v.TrimLeft(set).TrimRight(set)
}

// Cut splits v around the first occurrence of sep. If sep does not occur,
// Cut returns v, an empty view and false.
func (v View[T]) Cut(sep View[T]) (before, after View[T], found bool) {
	i := v.Find(sep, 0)
	if i == NPos {
		return v, View[T]{}, false
	}
	return v.sub(0, i), v.sub(i+len(sep.s), NPos), true
}

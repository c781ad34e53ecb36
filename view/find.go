package view

import "slices"

// Find returns the lowest index i >= pos where needle starts, or NPos.
//
// pos outside [0, Len) always yields NPos, the empty needle included.
func (v View[T]) Find(needle View[T], pos int) int {
	n, m := len(v.s), len(needle.s)
	if pos < 0 || pos >= n {
		return NPos
	}
	for i := pos; i <= n-m; i++ {
		if slices.Equal(v.s[i:i+m], needle.s) {
			return i
		}
	}
	return NPos
}

func (v View[T]) FindChar(c T, pos int) int {
	return v.Find(FromPointer(&c, 1), pos)
}

func (v View[T]) FindSlice(s []T, pos int) int {
	return v.Find(New(s), pos)
}

// RFind returns the highest index i <= pos where needle starts, or NPos.
//
// pos > Len is clamped to Len; a negative pos yields NPos. Pass NPos to
// search the whole view.
func (v View[T]) RFind(needle View[T], pos int) int {
	n, m := len(v.s), len(needle.s)
	if pos < 0 || m > n {
		return NPos
	}
	if pos > n {
		pos = n
	}
	// Walk candidate match ends right to left; the start is end-m.
	for end := min(pos+m, n); end >= m; end-- {
		if slices.Equal(v.s[end-m:end], needle.s) {
			return end - m
		}
	}
	return NPos
}

func (v View[T]) RFindChar(c T, pos int) int {
	return v.RFind(FromPointer(&c, 1), pos)
}

func (v View[T]) RFindSlice(s []T, pos int) int {
	return v.RFind(New(s), pos)
}

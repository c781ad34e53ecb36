package view

import "slices"

// Byte sets longer than this are indexed into a 256-bit table before scanning.
const smallSet = 8

// membership returns the "is in set" test used by the FindFirstOf family.
func membership[T Char](set View[T]) func(T) bool {
	if b, ok := any(set.s).([]byte); ok && len(b) > smallSet {
		var bits [4]uint64
		for _, c := range b {
			bits[c>>6] |= 1 << (c & 63)
		}
		return func(c T) bool {
			x := byte(c)
			return bits[x>>6]&(1<<(x&63)) != 0
		}
	}
	return func(c T) bool { return slices.Contains(set.s, c) }
}

func (v View[T]) scanForward(pos int, match func(T) bool) int {
	if pos < 0 || pos >= len(v.s) {
		return NPos
	}
	for i := pos; i < len(v.s); i++ {
		if match(v.s[i]) {
			return i
		}
	}
	return NPos
}

func (v View[T]) scanBackward(pos int, match func(T) bool) int {
	if pos < 0 || len(v.s) == 0 {
		return NPos
	}
	if pos >= len(v.s) {
		pos = len(v.s) - 1
	}
	for i := pos; i >= 0; i-- {
		if match(v.s[i]) {
			return i
		}
	}
	return NPos
}

// FindFirstOf returns the lowest index i >= pos whose character appears in
// set, or NPos. pos outside [0, Len) yields NPos.
func (v View[T]) FindFirstOf(set View[T], pos int) int {
	return v.scanForward(pos, membership(set))
}

func (v View[T]) FindFirstOfChar(c T, pos int) int {
	return v.FindFirstOf(FromPointer(&c, 1), pos)
}

func (v View[T]) FindFirstOfSlice(s []T, pos int) int {
	return v.FindFirstOf(New(s), pos)
}

// FindLastOf returns the highest index i <= pos whose character appears in
// set, or NPos. pos >= Len is clamped to Len-1; a negative pos yields NPos.
func (v View[T]) FindLastOf(set View[T], pos int) int {
	return v.scanBackward(pos, membership(set))
}

func (v View[T]) FindLastOfChar(c T, pos int) int {
	return v.FindLastOf(FromPointer(&c, 1), pos)
}

func (v View[T]) FindLastOfSlice(s []T, pos int) int {
	return v.FindLastOf(New(s), pos)
}

// FindFirstNotOf is FindFirstOf with the membership test inverted.
func (v View[T]) FindFirstNotOf(set View[T], pos int) int {
	in := membership(set)
	return v.scanForward(pos, func(c T) bool { return !in(c) })
}

func (v View[T]) FindFirstNotOfChar(c T, pos int) int {
	return v.FindFirstNotOf(FromPointer(&c, 1), pos)
}

func (v View[T]) FindFirstNotOfSlice(s []T, pos int) int {
	return v.FindFirstNotOf(New(s), pos)
}

// FindLastNotOf is FindLastOf with the membership test inverted.
func (v View[T]) FindLastNotOf(set View[T], pos int) int {
	in := membership(set)
	return v.scanBackward(pos, func(c T) bool { return !in(c) })
}

func (v View[T]) FindLastNotOfChar(c T, pos int) int {
	return v.FindLastNotOf(FromPointer(&c, 1), pos)
}

func (v View[T]) FindLastNotOfSlice(s []T, pos int) int {
	return v.FindLastNotOf(New(s), pos)
}

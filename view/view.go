package view

import (
	"iter"
	"math"
	"slices"
	"unsafe"
)

// Char is the set of element types a View can range over: narrow characters,
// code points and UTF-16 code units.
type Char interface {
	byte | rune | uint16
}

// NPos is the not-found result of every search, and the "to the end" count
// accepted by Substr.
const NPos = math.MaxInt

// View is a half-open range [start, end) over caller-owned characters.
//
// The zero View is empty. Views are values: copying one is O(1) and yields an
// independent handle to the same storage.
type View[T Char] struct {
	// s is always clipped (len == cap) so no View can be used to append into
	// the caller's storage.
	s []T
}

type (
	Bytes = View[byte]
	Runes = View[rune]
	UTF16 = View[uint16]
)

// New returns a view over all of s.
func New[T Char](s []T) View[T] {
	return View[T]{s: s[:len(s):len(s)]}
}

// FromString returns a byte view over s without copying it.
func FromString(s string) Bytes {
	if s == "" {
		return Bytes{}
	}
	return Bytes{s: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// FromPointer returns a view over the n characters starting at p.
//
// Nothing is checked: p must address at least n readable characters.
func FromPointer[T Char](p *T, n int) View[T] {
	if p == nil || n <= 0 {
		return View[T]{}
	}
	return View[T]{s: unsafe.Slice(p, n)}
}

// Terminated returns a view over s up to, not including, its first zero
// character. Without a terminator the view covers all of s.
func Terminated[T Char](s []T) View[T] {
	for i, c := range s {
		if c == 0 {
			return New(s[:i])
		}
	}
	return New(s)
}

func (v View[T]) Len() int { return len(v.s) }

func (v View[T]) Empty() bool { return len(v.s) == 0 }

// At returns the character at pos, or a *RangeError when pos is outside [0, Len).
func (v View[T]) At(pos int) (T, error) {
	if pos < 0 || pos >= len(v.s) {
		var zero T
		return zero, rangeError("At", pos, len(v.s))
	}
	return v.s[pos], nil
}

// Index returns the character at pos without a check of its own.
//
// It is the fast path for callers that already validated pos. An invalid pos
// panics through the runtime bounds check.
func (v View[T]) Index(pos int) T { return v.s[pos] }

// Front returns the first character. The view must not be empty.
func (v View[T]) Front() T { return v.s[0] }

// Back returns the last character. The view must not be empty.
func (v View[T]) Back() T { return v.s[len(v.s)-1] }

// RemovePrefix advances the start of v by n characters.
// It panics unless 0 <= n <= Len.
func (v *View[T]) RemovePrefix(n int) {
	if n < 0 || n > len(v.s) {
		panic(rangeError("RemovePrefix", n, len(v.s)))
	}
	v.s = v.s[n:]
}

// RemoveSuffix moves the end of v back by n characters.
// It panics unless 0 <= n <= Len.
func (v *View[T]) RemoveSuffix(n int) {
	if n < 0 || n > len(v.s) {
		panic(rangeError("RemoveSuffix", n, len(v.s)))
	}
	end := len(v.s) - n
	v.s = v.s[:end:end]
}

// Swap exchanges the ranges of v and o.
func (v *View[T]) Swap(o *View[T]) {
	v.s, o.s = o.s, v.s
}

// All iterates positions and characters front to back.
func (v View[T]) All() iter.Seq2[int, T] { return slices.All(v.s) }

// Backward iterates positions and characters back to front.
func (v View[T]) Backward() iter.Seq2[int, T] { return slices.Backward(v.s) }

// Substr returns the view of count characters starting at pos, sharing v's
// storage. count is clamped to Len-pos, so NPos means "to the end".
//
// pos == Len is valid and yields an empty view. pos outside [0, Len] or a
// negative count yields a *RangeError.
func (v View[T]) Substr(pos, count int) (View[T], error) {
	if pos < 0 || pos > len(v.s) {
		return View[T]{}, rangeError("Substr", pos, len(v.s))
	}
	if count < 0 {
		return View[T]{}, rangeError("Substr count", count, len(v.s))
	}
	return v.sub(pos, count), nil
}

// sub is Substr for a pos already known to be within [0, Len].
func (v View[T]) sub(pos, count int) View[T] {
	if rest := len(v.s) - pos; count > rest {
		count = rest
	}
	end := pos + count
	return View[T]{s: v.s[pos:end:end]}
}

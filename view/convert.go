package view

import (
	"io"
	"slices"
	"unicode/utf16"
	"unsafe"
)

// Clone returns a newly allocated copy of the characters in v.
func (v View[T]) Clone() []T {
	if len(v.s) == 0 {
		return nil
	}
	return slices.Clone(v.s)
}

// Data returns the viewed characters without copying. The result aliases the
// caller's storage and must not be written to.
func (v View[T]) Data() []T { return v.s }

// Pointer returns the address of the first character and the length.
// The pointer is nil for an empty view built without storage.
func (v View[T]) Pointer() (*T, int) {
	return unsafe.SliceData(v.s), len(v.s)
}

// CopyTo copies characters starting at pos into dst and returns how many were
// copied: min(len(dst), Len-pos). pos outside [0, Len] yields a *RangeError.
func (v View[T]) CopyTo(dst []T, pos int) (int, error) {
	if pos < 0 || pos > len(v.s) {
		return 0, rangeError("CopyTo", pos, len(v.s))
	}
	return copy(dst, v.s[pos:]), nil
}

// String returns the characters as a newly allocated string. Byte views are
// copied verbatim; rune and UTF-16 views are encoded as UTF-8.
func (v View[T]) String() string {
	switch s := any(v.s).(type) {
	case []byte:
		return string(s)
	case []rune:
		return string(s)
	case []uint16:
		return string(utf16.Decode(s))
	}
	return ""
}

// WriteTo writes exactly the characters of v to w, with no delimiters.
func (v View[T]) WriteTo(w io.Writer) (int64, error) {
	if b, ok := any(v.s).([]byte); ok {
		n, err := w.Write(b)
		return int64(n), err
	}
	n, err := io.WriteString(w, v.String())
	return int64(n), err
}

// bytesString aliases b as a string. b must not change while the result is used.
func bytesString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

package view

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched (errors.Is) by every *RangeError.
var ErrOutOfRange = errors.New("view: out of range")

// RangeError reports a position argument outside the range an operation accepts.
type RangeError struct {
	Op  string
	Pos int
	Len int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("view: %s: position %d out of range for length %d", e.Op, e.Pos, e.Len)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

func rangeError(op string, pos, n int) *RangeError {
	return &RangeError{Op: op, Pos: pos, Len: n}
}

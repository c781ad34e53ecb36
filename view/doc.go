// Package view implements a non-owning, immutable view over a contiguous run
// of characters.
//
// A View borrows the storage it was built from. It never allocates, copies or
// frees that storage, except in the explicit conversions Clone, String, CopyTo
// and WriteTo.
//
// The owner of the storage must keep it alive and unmodified for as long as
// any View into it is in use. The View cannot detect a dangling or mutated
// buffer. Views built with FromString are the exception, as Go strings are
// immutable. Package guard wraps storage in generation-checked handles for
// catching violations in tests.
//
// Positions are 0-based character indices. Ranges are half-open: [pos, pos+count).
// Searches report NPos when nothing matches.
package view

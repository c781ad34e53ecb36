package view

import (
	"unsafe"

	"github.com/spaolacci/murmur3"
)

// Hash returns a 64-bit MurmurHash3 of the characters in v. Views that compare
// equal hash equally, so Hash can key maps by content.
func (v View[T]) Hash() uint64 {
	if len(v.s) == 0 {
		return murmur3.Sum64(nil)
	}
	var zero T
	raw := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(v.s))), len(v.s)*int(unsafe.Sizeof(zero)))
	return murmur3.Sum64(raw)
}

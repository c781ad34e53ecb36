package guard

import "github.com/iw2rmb/textview/view"

// Handle is a view bound to the generation of the Source it came from.
// The zero Handle is an always-valid empty view.
type Handle[T view.Char] struct {
	src *Source[T]
	v   view.View[T]
	gen uint64
}

func (h Handle[T]) Generation() uint64 { return h.gen }

// Valid reports whether the source has not been invalidated since h was taken.
func (h Handle[T]) Valid() bool {
	return h.src == nil || h.src.gen.Load() == h.gen
}

// View returns the guarded view, or ErrDangling once the source moved on.
func (h Handle[T]) View() (view.View[T], error) {
	if h.Valid() {
		return h.v, nil
	}
	return view.View[T]{}, h.src.dangling(h)
}

func (h Handle[T]) MustView() view.View[T] {
	v, err := h.View()
	if err != nil {
		panic(err)
	}
	return v
}

// Substr derives a handle of the same generation over v.Substr(pos, count).
func (h Handle[T]) Substr(pos, count int) (Handle[T], error) {
	v, err := h.View()
	if err != nil {
		return Handle[T]{}, err
	}
	sub, err := v.Substr(pos, count)
	if err != nil {
		return Handle[T]{}, err
	}
	return Handle[T]{src: h.src, v: sub, gen: h.gen}, nil
}

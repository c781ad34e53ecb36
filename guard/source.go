package guard

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/iw2rmb/textview/view"
)

// ErrDangling is returned when a handle is used after its source was invalidated.
var ErrDangling = errors.New("guard: view outlived its storage")

type Mode uint8

const (
	// ModeReport logs a stale access and returns ErrDangling.
	ModeReport Mode = iota
	// ModePanic logs a stale access and panics with ErrDangling.
	ModePanic
)

type Options struct {
	Mode Mode

	// Logger receives stale-access reports. Default: logrus.StandardLogger().
	Logger logrus.FieldLogger

	// Name identifies the source in log entries.
	Name string
}

// Source owns nothing but a generation counter for caller storage.
type Source[T view.Char] struct {
	data  []T
	gen   atomic.Uint64
	stale atomic.Uint64

	mode Mode
	log  logrus.FieldLogger
}

func NewSource[T view.Char](data []T, opt Options) *Source[T] {
	if opt.Logger == nil {
		opt.Logger = logrus.StandardLogger()
	}
	return &Source[T]{
		data: data,
		mode: opt.Mode,
		log:  opt.Logger.WithField("source", opt.Name),
	}
}

func (s *Source[T]) Generation() uint64 { return s.gen.Load() }

// Stale returns how many stale accesses have been reported so far.
func (s *Source[T]) Stale() uint64 { return s.stale.Load() }

// Invalidate marks every outstanding handle as dangling.
func (s *Source[T]) Invalidate() {
	g := s.gen.Add(1)
	s.log.WithField("generation", g).Debug("source invalidated")
}

// Reset points the source at new storage and invalidates outstanding handles.
// It must not run concurrently with View or Slice on the same source.
func (s *Source[T]) Reset(data []T) {
	s.data = data
	s.Invalidate()
}

// View returns a handle over the whole storage at the current generation.
func (s *Source[T]) View() Handle[T] {
	return Handle[T]{src: s, v: view.New(s.data), gen: s.gen.Load()}
}

// Slice is View().Substr(pos, count).
func (s *Source[T]) Slice(pos, count int) (Handle[T], error) {
	return s.View().Substr(pos, count)
}

func (s *Source[T]) dangling(h Handle[T]) error {
	cur := s.gen.Load()
	s.stale.Add(1)
	err := fmt.Errorf("%w: taken at generation %d, source at %d", ErrDangling, h.gen, cur)
	entry := s.log.WithFields(logrus.Fields{
		"handle_generation": h.gen,
		"generation":        cur,
		"view_len":          h.v.Len(),
	})
	if s.mode == ModePanic {
		entry.Error("dangling view access")
		panic(err)
	}
	entry.Warn("dangling view access")
	return err
}

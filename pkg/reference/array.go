package reference

import (
	"github.com/brickingsoft/owner/pkg/deleter"
	"github.com/brickingsoft/owner/pkg/unique"
)

// MakeArray allocates n zero elements under shared ownership.
func MakeArray[T any](n int, options ...ArrayOption[T]) *Array[T] {
	return NewArray(make([]T, n), options...)
}

// NewArray takes shared ownership of s, which may be nil.
func NewArray[T any](s []T, options ...ArrayOption[T]) *Array[T] {
	opts := ArrayOptions[T]{
		Deleter: deleter.DefaultSlice[T](),
	}
	for _, option := range options {
		option(&opts)
	}
	d := opts.Deleter
	return &Array[T]{
		s: s,
		ctl: newControl(func() error {
			if s == nil {
				return nil
			}
			return d(s)
		}),
	}
}

// FromUniqueArray moves the array and deletion strategy out of u.
func FromUniqueArray[T any](u *unique.Array[T]) *Array[T] {
	d := u.Deleter()
	return NewArray(u.Release(), WithArrayDeleter(d))
}

// Array shares a contiguous sequence of elements between handles.
type Array[T any] struct {
	noCopy noCopy
	s      []T
	ctl    *control
}

func (a *Array[T]) Get() []T {
	return a.s
}

func (a *Array[T]) Len() int {
	return len(a.s)
}

func (a *Array[T]) IsEmpty() bool {
	return a.s == nil
}

// Index returns the i-th element. It panics when i is out of [0, Len()).
func (a *Array[T]) Index(i int) *T {
	if i < 0 || i >= len(a.s) {
		panic(outOfRange(i, len(a.s)))
	}
	return &a.s[i]
}

func (a *Array[T]) UseCount() int64 {
	if a.ctl == nil {
		return 0
	}
	return a.ctl.load()
}

func (a *Array[T]) Clone() *Array[T] {
	if a.ctl == nil {
		panic(ErrClosed)
	}
	a.ctl.acquire()
	return &Array[T]{
		s:   a.s,
		ctl: a.ctl,
	}
}

// Assign drops the reference a holds, then shares the array of other. A nil
// other closes a.
func (a *Array[T]) Assign(other *Array[T]) (err error) {
	if a == other {
		return
	}
	if other == nil {
		return a.Close()
	}
	if other.ctl == nil {
		panic(ErrClosed)
	}
	if a.ctl != nil {
		err = a.ctl.drop(errMetaOpAssign)
	}
	other.ctl.acquire()
	a.s = other.s
	a.ctl = other.ctl
	return
}

func (a *Array[T]) Close() (err error) {
	ctl := a.ctl
	if ctl == nil {
		return
	}
	a.s = nil
	a.ctl = nil
	err = ctl.drop(errMetaOpClose)
	return
}

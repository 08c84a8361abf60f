// Package reference provides reference-counted handles. Every handle cloned
// from another shares one count; the managed value is released when the last
// of them is closed.
//
// The count is atomic, so clones may be closed from different goroutines.
// A single handle is not safe for concurrent use.
package reference

import (
	"github.com/brickingsoft/owner/pkg/deleter"
	"github.com/brickingsoft/owner/pkg/unique"
)

// Make takes shared ownership of p, which may be nil. The count starts at 1.
func Make[T any](p *T, options ...Option[T]) *Pointer[T] {
	opts := Options[T]{
		Deleter: deleter.Default[T](),
	}
	for _, option := range options {
		option(&opts)
	}
	d := opts.Deleter
	return &Pointer[T]{
		ptr: p,
		ctl: newControl(func() error {
			if p == nil {
				return nil
			}
			return d(p)
		}),
	}
}

// FromUnique moves the value and deletion strategy out of u into a new
// shared handle.
func FromUnique[T any](u *unique.Pointer[T]) *Pointer[T] {
	d := u.Deleter()
	return Make(u.Release(), WithDeleter(d))
}

type Pointer[T any] struct {
	noCopy noCopy
	ptr    *T
	ctl    *control
}

func (pointer *Pointer[T]) Get() *T {
	return pointer.ptr
}

func (pointer *Pointer[T]) IsEmpty() bool {
	return pointer.ptr == nil
}

// Value dereferences the handle. It panics with ErrEmpty when nothing is managed.
func (pointer *Pointer[T]) Value() T {
	if pointer.ptr == nil {
		panic(ErrEmpty)
	}
	return *pointer.ptr
}

// UseCount returns how many live handles share the value; 0 once closed.
func (pointer *Pointer[T]) UseCount() int64 {
	if pointer.ctl == nil {
		return 0
	}
	return pointer.ctl.load()
}

func (pointer *Pointer[T]) Unique() bool {
	return pointer.UseCount() == 1
}

// Clone returns a new handle sharing the value and the count.
func (pointer *Pointer[T]) Clone() *Pointer[T] {
	if pointer.ctl == nil {
		panic(ErrClosed)
	}
	pointer.ctl.acquire()
	return &Pointer[T]{
		ptr: pointer.ptr,
		ctl: pointer.ctl,
	}
}

// Assign drops the reference pointer holds, releasing the value if it was the
// last one, then shares the value of other. Assigning a handle to itself does
// nothing. A closed pointer becomes live again; a nil other closes pointer.
func (pointer *Pointer[T]) Assign(other *Pointer[T]) (err error) {
	if pointer == other {
		return
	}
	if other == nil {
		return pointer.Close()
	}
	if other.ctl == nil {
		panic(ErrClosed)
	}
	if pointer.ctl != nil {
		err = pointer.ctl.drop(errMetaOpAssign)
	}
	other.ctl.acquire()
	pointer.ptr = other.ptr
	pointer.ctl = other.ctl
	return
}

// Close drops this handle's reference and releases the value when it was
// the last one. Further calls on the same handle do nothing.
func (pointer *Pointer[T]) Close() (err error) {
	ctl := pointer.ctl
	if ctl == nil {
		return
	}
	pointer.ptr = nil
	pointer.ctl = nil
	err = ctl.drop(errMetaOpClose)
	return
}

// Package unique provides handles with exclusive ownership of a value or an
// array. A handle releases what it owns exactly once, through its deletion
// strategy, when it is closed, reset or assigned over.
//
// Handles must not be copied by value; ownership moves with Move or Assign.
package unique

import (
	"github.com/brickingsoft/owner/pkg/deleter"
)

// New takes ownership of p, which may be nil.
func New[T any](p *T, options ...Option[T]) *Pointer[T] {
	opts := Options[T]{
		Deleter: deleter.Default[T](),
	}
	for _, option := range options {
		option(&opts)
	}
	return &Pointer[T]{
		ptr:     p,
		deleter: opts.Deleter,
	}
}

// Empty returns a handle that owns nothing.
func Empty[T any](options ...Option[T]) *Pointer[T] {
	return New[T](nil, options...)
}

type Pointer[T any] struct {
	noCopy  noCopy
	ptr     *T
	deleter deleter.Deleter[T]
}

// Get returns the owned value without giving up ownership.
func (u *Pointer[T]) Get() *T {
	return u.ptr
}

func (u *Pointer[T]) IsEmpty() bool {
	return u.ptr == nil
}

// Value dereferences the handle. It panics with ErrEmpty when the handle owns nothing.
func (u *Pointer[T]) Value() T {
	if u.ptr == nil {
		panic(ErrEmpty)
	}
	return *u.ptr
}

// Deleter returns the deletion strategy in use.
func (u *Pointer[T]) Deleter() deleter.Deleter[T] {
	return u.deleter
}

// Release gives up ownership and returns the value. The caller becomes
// responsible for it.
func (u *Pointer[T]) Release() (p *T) {
	p = u.ptr
	u.ptr = nil
	return
}

// Reset makes p the owned value. The previous value is released unless it is p itself.
func (u *Pointer[T]) Reset(p *T) (err error) {
	old := u.ptr
	u.ptr = p
	if old != nil && old != p {
		err = u.free(errMetaOpReset, u.deleter, old)
	}
	return
}

// Move transfers ownership and the deletion strategy into a new handle,
// leaving u empty.
func (u *Pointer[T]) Move() *Pointer[T] {
	return &Pointer[T]{
		ptr:     u.Release(),
		deleter: u.deleter,
	}
}

// Assign releases what u owns, then takes the value and deletion strategy
// of other, leaving other empty. Assigning a handle to itself does nothing;
// a nil other empties u.
func (u *Pointer[T]) Assign(other *Pointer[T]) (err error) {
	if u == other {
		return
	}
	if old := u.Release(); old != nil {
		err = u.free(errMetaOpAssign, u.deleter, old)
	}
	if other == nil {
		return
	}
	u.ptr = other.Release()
	u.deleter = other.deleter
	return
}

// Swap exchanges the owned values and deletion strategies of u and other.
// A nil other does nothing.
func (u *Pointer[T]) Swap(other *Pointer[T]) {
	if other == nil {
		return
	}
	u.ptr, other.ptr = other.ptr, u.ptr
	u.deleter, other.deleter = other.deleter, u.deleter
}

// Close releases the owned value, if any. Further calls do nothing.
func (u *Pointer[T]) Close() (err error) {
	if p := u.Release(); p != nil {
		err = u.free(errMetaOpClose, u.deleter, p)
	}
	return
}

func (u *Pointer[T]) free(op string, d deleter.Deleter[T], p *T) error {
	if err := d(p); err != nil {
		return releaseFailed(op, err)
	}
	return nil
}

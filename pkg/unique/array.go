package unique

import (
	"unsafe"

	"github.com/brickingsoft/owner/pkg/deleter"
)

// NewArray takes ownership of s, which may be nil.
func NewArray[T any](s []T, options ...ArrayOption[T]) *Array[T] {
	opts := ArrayOptions[T]{
		Deleter: deleter.DefaultSlice[T](),
	}
	for _, option := range options {
		option(&opts)
	}
	return &Array[T]{
		s:       s,
		deleter: opts.Deleter,
	}
}

// MakeArray allocates n zero elements and owns them.
func MakeArray[T any](n int, options ...ArrayOption[T]) *Array[T] {
	return NewArray(make([]T, n), options...)
}

// Array owns a contiguous sequence of elements exclusively.
type Array[T any] struct {
	noCopy  noCopy
	s       []T
	deleter deleter.SliceDeleter[T]
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

func (a *Array[T]) Deleter() deleter.SliceDeleter[T] {
	return a.deleter
}

func (a *Array[T]) Release() (s []T) {
	s = a.s
	a.s = nil
	return
}

// Reset makes s the owned array. The previous array is released unless s
// views the same backing array, such as a shorter slice of it.
func (a *Array[T]) Reset(s []T) (err error) {
	old := a.s
	a.s = s
	if old != nil && !sameArray(old, s) {
		err = a.free(errMetaOpReset, a.deleter, old)
	}
	return
}

func (a *Array[T]) Move() *Array[T] {
	return &Array[T]{
		s:       a.Release(),
		deleter: a.deleter,
	}
}

func (a *Array[T]) Assign(other *Array[T]) (err error) {
	if a == other {
		return
	}
	if old := a.Release(); old != nil {
		err = a.free(errMetaOpAssign, a.deleter, old)
	}
	if other == nil {
		return
	}
	a.s = other.Release()
	a.deleter = other.deleter
	return
}

// Swap exchanges the arrays and deletion strategies. A nil other does nothing.
func (a *Array[T]) Swap(other *Array[T]) {
	if other == nil {
		return
	}
	a.s, other.s = other.s, a.s
	a.deleter, other.deleter = other.deleter, a.deleter
}

func (a *Array[T]) Close() (err error) {
	if s := a.Release(); s != nil {
		err = a.free(errMetaOpClose, a.deleter, s)
	}
	return
}

func (a *Array[T]) free(op string, d deleter.SliceDeleter[T], s []T) error {
	if err := d(s); err != nil {
		return releaseFailed(op, err)
	}
	return nil
}

func sameArray[T any](a, b []T) bool {
	return unsafe.SliceData(a) == unsafe.SliceData(b)
}

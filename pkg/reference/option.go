package reference

import (
	"github.com/brickingsoft/owner/pkg/deleter"
)

type Options[T any] struct {
	Deleter deleter.Deleter[T]
}

type Option[T any] func(options *Options[T])

// WithDeleter sets the strategy run when the last handle is closed.
// Default is deleter.Default; nil panics with ErrNilDeleter.
func WithDeleter[T any](d deleter.Deleter[T]) Option[T] {
	return func(options *Options[T]) {
		if d == nil {
			panic(ErrNilDeleter)
		}
		options.Deleter = d
	}
}

// WithDeleterFunc uses fn, a release step that cannot fail.
func WithDeleterFunc[T any](fn func(p *T)) Option[T] {
	if fn == nil {
		panic(ErrNilDeleter)
	}
	return WithDeleter(deleter.Func(fn))
}

type ArrayOptions[T any] struct {
	Deleter deleter.SliceDeleter[T]
}

type ArrayOption[T any] func(options *ArrayOptions[T])

// WithArrayDeleter sets the array strategy run when the last handle is closed.
// Default is deleter.DefaultSlice; nil panics with ErrNilDeleter.
func WithArrayDeleter[T any](d deleter.SliceDeleter[T]) ArrayOption[T] {
	return func(options *ArrayOptions[T]) {
		if d == nil {
			panic(ErrNilDeleter)
		}
		options.Deleter = d
	}
}

// WithArrayDeleterFunc uses fn, a release step that cannot fail.
func WithArrayDeleterFunc[T any](fn func(s []T)) ArrayOption[T] {
	if fn == nil {
		panic(ErrNilDeleter)
	}
	return WithArrayDeleter(deleter.SliceFunc(fn))
}

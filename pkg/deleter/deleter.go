// Package deleter holds the release strategies used by owning handles.
//
// A strategy is a plain function value. Handles call it exactly once for
// every allocation they give up, either on Close, Reset or Assign.
package deleter

import (
	"io"
	"reflect"
)

// Deleter releases a single allocation.
type Deleter[T any] func(p *T) error

// SliceDeleter releases an array allocation.
type SliceDeleter[T any] func(s []T) error

// Default
// 默认释放策略
//
// If p or *p is an io.Closer it is closed, then *p is zeroed so the value no
// longer pins anything it referenced. A nil p is ignored.
func Default[T any]() Deleter[T] {
	return release[T]
}

// DefaultSlice
// 默认数组释放策略
//
// Elements are released from the last index down to the first, each one the
// way Default releases a single value. Every element is released even when
// one of them fails; the first failure is returned.
func DefaultSlice[T any]() SliceDeleter[T] {
	return releaseSlice[T]
}

// Func adapts a function that cannot fail.
func Func[T any](fn func(p *T)) Deleter[T] {
	if fn == nil {
		return Default[T]()
	}
	return func(p *T) error {
		fn(p)
		return nil
	}
}

// SliceFunc adapts a function that cannot fail.
func SliceFunc[T any](fn func(s []T)) SliceDeleter[T] {
	if fn == nil {
		return DefaultSlice[T]()
	}
	return func(s []T) error {
		fn(s)
		return nil
	}
}

// Chain runs every deleter in order and returns the first failure.
func Chain[T any](deleters ...Deleter[T]) Deleter[T] {
	return func(p *T) (err error) {
		for _, d := range deleters {
			if d == nil {
				continue
			}
			if dErr := d(p); dErr != nil && err == nil {
				err = dErr
			}
		}
		return
	}
}

func release[T any](p *T) (err error) {
	if p == nil {
		return
	}
	if closer, ok := any(p).(io.Closer); ok {
		err = closer.Close()
	} else if closer, ok = any(*p).(io.Closer); ok && !isNil(closer) {
		err = closer.Close()
	}
	var zero T
	*p = zero
	return
}

func releaseSlice[T any](s []T) (err error) {
	for i := len(s) - 1; i >= 0; i-- {
		if rErr := release(&s[i]); rErr != nil && err == nil {
			err = rErr
		}
	}
	return
}

func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// Package owner runs work on shared values from other goroutines.
//
// The handles themselves live in pkg/unique (exclusive ownership) and
// pkg/reference (shared ownership). Go and GoArray hand a task its own clone
// of a shared handle and close that clone when the task returns, so the
// value outlives every task that uses it.
package owner

import (
	"context"

	"github.com/brickingsoft/errors"
	"github.com/brickingsoft/owner/pkg/reference"
)

var (
	ErrExecute = errors.Define("execute failed")
)

func IsErrExecute(err error) bool {
	return errors.Is(err, ErrExecute)
}

const (
	errMetaPkgKey = "pkg"
	errMetaPkgVal = "owner"
)

// Go runs fn on the executors with a clone of p. The clone is closed after
// fn returns; if the task cannot be scheduled it is closed right away.
func Go[T any](ctx context.Context, p *reference.Pointer[T], fn func(p *reference.Pointer[T])) (err error) {
	clone := p.Clone()
	err = Executors().Execute(ctx, func() {
		defer func() {
			_ = clone.Close()
		}()
		fn(clone)
	})
	if err != nil {
		_ = clone.Close()
		err = executeFailed(err)
	}
	return
}

// GoArray is Go for shared arrays.
func GoArray[T any](ctx context.Context, a *reference.Array[T], fn func(a *reference.Array[T])) (err error) {
	clone := a.Clone()
	err = Executors().Execute(ctx, func() {
		defer func() {
			_ = clone.Close()
		}()
		fn(clone)
	})
	if err != nil {
		_ = clone.Close()
		err = executeFailed(err)
	}
	return
}

func executeFailed(err error) error {
	return errors.From(
		ErrExecute,
		errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
		errors.WithWrap(err),
	)
}

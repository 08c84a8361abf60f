// Package mmap allocates byte arrays outside the Go heap and hands them out
// under owning handles whose deletion strategy unmaps them.
//
// The deletion strategy only accepts memory returned by this package, so
// Reset on such a handle must not be given ordinary slices.
package mmap

import (
	"github.com/brickingsoft/errors"
	"github.com/brickingsoft/owner/pkg/reference"
	"github.com/brickingsoft/owner/pkg/unique"
)

var (
	ErrInvalidSize = errors.Define("size must be greater than 0")
)

const (
	errMetaPkgKey = "pkg"
	errMetaPkgVal = "mmap"
)

const (
	errMetaOpKey   = "op"
	errMetaOpAlloc = "alloc"
	errMetaOpFree  = "free"
)

// Alloc maps size zeroed bytes owned by a single handle.
func Alloc(size int) (a *unique.Array[byte], err error) {
	if size < 1 {
		err = errors.New(
			"allocate failed",
			errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
			errors.WithMeta(errMetaOpKey, errMetaOpAlloc),
			errors.WithWrap(ErrInvalidSize),
		)
		return
	}
	b, allocErr := allocate(size)
	if allocErr != nil {
		err = errors.New(
			"allocate failed",
			errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
			errors.WithMeta(errMetaOpKey, errMetaOpAlloc),
			errors.WithWrap(allocErr),
		)
		return
	}
	a = unique.NewArray(b, unique.WithArrayDeleter(release))
	return
}

// Share maps size zeroed bytes under shared ownership.
func Share(size int) (a *reference.Array[byte], err error) {
	u, allocErr := Alloc(size)
	if allocErr != nil {
		err = allocErr
		return
	}
	a = reference.FromUniqueArray(u)
	return
}

func release(b []byte) (err error) {
	clear(b)
	if freeErr := free(b); freeErr != nil {
		err = errors.New(
			"free failed",
			errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
			errors.WithMeta(errMetaOpKey, errMetaOpFree),
			errors.WithWrap(freeErr),
		)
	}
	return
}

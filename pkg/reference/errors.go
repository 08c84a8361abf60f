package reference

import (
	"strconv"

	"github.com/brickingsoft/errors"
)

var (
	ErrEmpty      = errors.Define("dereference of empty pointer")
	ErrClosed     = errors.Define("use of closed pointer")
	ErrOutOfRange = errors.Define("index out of range")
	ErrNilDeleter = errors.Define("deleter is nil")
)

func IsErrEmpty(err error) bool {
	return errors.Is(err, ErrEmpty)
}

func IsErrClosed(err error) bool {
	return errors.Is(err, ErrClosed)
}

func IsErrOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}

const (
	errMetaPkgKey = "pkg"
	errMetaPkgVal = "reference"
)

const (
	errMetaOpKey    = "op"
	errMetaOpAssign = "assign"
	errMetaOpClose  = "close"
)

const errMetaIndexKey = "index"

func releaseFailed(op string, err error) error {
	return errors.New(
		"release failed",
		errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
		errors.WithMeta(errMetaOpKey, op),
		errors.WithWrap(err),
	)
}

func outOfRange(i int, n int) error {
	return errors.New(
		"index "+strconv.Itoa(i)+" out of range [0:"+strconv.Itoa(n)+")",
		errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
		errors.WithMeta(errMetaIndexKey, strconv.Itoa(i)),
		errors.WithWrap(ErrOutOfRange),
	)
}

package mmap_test

import (
	"os"
	"testing"

	"github.com/brickingsoft/errors"
	"github.com/brickingsoft/owner/pkg/mmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlloc(t *testing.T) {
	size := os.Getpagesize()
	a, err := mmap.Alloc(size)
	require.NoError(t, err)
	assert.Equal(t, size, a.Len())
	assert.Zero(t, *a.Index(size - 1))

	copy(a.Get(), "hello")
	assert.Equal(t, "hello", string(a.Get()[:5]))

	moved := a.Move()
	assert.True(t, a.IsEmpty())
	require.NoError(t, moved.Close())
	require.NoError(t, moved.Close())
}

func TestAllocResetToView(t *testing.T) {
	a, err := mmap.Alloc(os.Getpagesize())
	require.NoError(t, err)
	require.NoError(t, a.Reset(a.Get()[:16]))
	assert.Equal(t, 16, a.Len())
	*a.Index(0) = 1
	assert.Equal(t, byte(1), a.Get()[0])
	require.NoError(t, a.Reset(a.Get()[:cap(a.Get())]))
	assert.Equal(t, os.Getpagesize(), a.Len())
	require.NoError(t, a.Close())
}

func TestAllocInvalidSize(t *testing.T) {
	_, err := mmap.Alloc(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, mmap.ErrInvalidSize))

	_, err = mmap.Share(-1)
	assert.True(t, errors.Is(err, mmap.ErrInvalidSize))
}

func TestShare(t *testing.T) {
	a, err := mmap.Share(128)
	require.NoError(t, err)
	b := a.Clone()
	*b.Index(0) = 'x'
	assert.Equal(t, byte('x'), *a.Index(0))
	assert.Equal(t, int64(2), a.UseCount())
	require.NoError(t, b.Close())
	require.NoError(t, a.Close())
	assert.Equal(t, int64(0), a.UseCount())
}

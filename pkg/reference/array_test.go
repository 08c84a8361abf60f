package reference_test

import (
	"testing"

	"github.com/brickingsoft/owner/internal/probe"
	"github.com/brickingsoft/owner/pkg/reference"
	"github.com/brickingsoft/owner/pkg/unique"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArray(t *testing.T) {
	r := probe.NewRecorder(nil)
	a := reference.NewArray(r.NewArray(3))
	for i := 0; i < a.Len(); i++ {
		assert.Equal(t, i+1, a.Index(i).ID)
	}
	b := a.Clone()
	assert.Equal(t, int64(2), a.UseCount())
	assert.Equal(t, a.Get(), b.Get())

	require.NoError(t, a.Close())
	assert.Equal(t, 0, r.Destroyed())
	assert.Equal(t, int64(1), b.UseCount())
	require.NoError(t, b.Close())
	assert.Equal(t, []int{3, 2, 1}, r.DestroyOrder())
	require.NoError(t, b.Close())
	assert.Equal(t, 3, r.Destroyed())
}

func TestArrayIndexOutOfRange(t *testing.T) {
	a := reference.MakeArray[int](1)
	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		assert.True(t, reference.IsErrOutOfRange(err))
	}()
	a.Index(1)
}

func TestArrayAssign(t *testing.T) {
	calls := 0
	a := reference.MakeArray[int](2, reference.WithArrayDeleter(func(s []int) error {
		calls++
		return nil
	}))
	b := reference.NewArray([]int{1, 2, 3})
	require.NoError(t, a.Assign(b))
	assert.Equal(t, 1, calls)
	assert.Equal(t, int64(2), b.UseCount())
	assert.Equal(t, 3, a.Len())
	require.NoError(t, a.Assign(a))
	assert.Equal(t, int64(2), a.UseCount())
	require.NoError(t, a.Close())
	require.NoError(t, b.Close())
	assert.Equal(t, int64(0), b.UseCount())
	assert.PanicsWithValue(t, reference.ErrClosed, func() {
		b.Clone()
	})
}

func TestFromUniqueArray(t *testing.T) {
	r := probe.NewRecorder(nil)
	u := unique.NewArray(r.NewArray(2))
	s := reference.FromUniqueArray(u)
	assert.True(t, u.IsEmpty())
	assert.Equal(t, 2, s.Len())
	require.NoError(t, s.Close())
	assert.Equal(t, []int{2, 1}, r.DestroyOrder())
}

func TestArrayAssignNil(t *testing.T) {
	calls := 0
	a := reference.NewArray([]int{1, 2}, reference.WithArrayDeleterFunc(func(s []int) { calls += len(s) }))
	b := a.Clone()
	require.NoError(t, a.Assign(nil))
	assert.True(t, a.IsEmpty())
	assert.Equal(t, 0, calls)
	require.NoError(t, b.Assign(nil))
	assert.Equal(t, 2, calls)

	assert.PanicsWithValue(t, reference.ErrNilDeleter, func() {
		reference.WithArrayDeleterFunc[int](nil)
	})
}

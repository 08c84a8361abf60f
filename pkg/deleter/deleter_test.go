package deleter_test

import (
	"errors"
	"testing"

	"github.com/brickingsoft/owner/internal/probe"
	"github.com/brickingsoft/owner/pkg/deleter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failing struct {
	calls *int
}

func (f *failing) Close() error {
	*f.calls++
	return errors.New("close failed")
}

func TestDefault(t *testing.T) {
	r := probe.NewRecorder(nil)
	p := r.New()
	id := p.ID
	require.NoError(t, deleter.Default[probe.Probe]()(p))
	assert.Equal(t, 1, r.Destructions(id))
	assert.Zero(t, p.ID)

	require.NoError(t, deleter.Default[probe.Probe]()(p))
	assert.Equal(t, 2, r.Destructions(id))

	assert.NoError(t, deleter.Default[probe.Probe]()(nil))

	n := 42
	assert.NoError(t, deleter.Default[int]()(&n))
	assert.Zero(t, n)
}

func TestDefaultClosesPointee(t *testing.T) {
	r := probe.NewRecorder(nil)
	inner := r.New()
	holder := inner
	require.NoError(t, deleter.Default[*probe.Probe]()(&holder))
	assert.Nil(t, holder)
	assert.Equal(t, 1, r.Destroyed())

	var empty *probe.Probe
	assert.NoError(t, deleter.Default[*probe.Probe]()(&empty))
}

func TestDefaultSliceReverseOrder(t *testing.T) {
	r := probe.NewRecorder(nil)
	arr := r.NewArray(3)
	require.NoError(t, deleter.DefaultSlice[probe.Probe]()(arr))
	assert.Equal(t, []int{3, 2, 1}, r.DestroyOrder())
}

func TestDefaultSliceReleasesAll(t *testing.T) {
	calls := 0
	arr := []failing{{&calls}, {&calls}, {&calls}}
	err := deleter.DefaultSlice[failing]()(arr)
	assert.EqualError(t, err, "close failed")
	assert.Equal(t, 3, calls)
	for _, f := range arr {
		assert.Nil(t, f.calls)
	}
}

func TestFunc(t *testing.T) {
	calls := 0
	d := deleter.Func(func(p *int) { calls++ })
	n := 1
	assert.NoError(t, d(&n))
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, n)

	sd := deleter.SliceFunc(func(s []int) { calls += len(s) })
	assert.NoError(t, sd([]int{1, 2}))
	assert.Equal(t, 3, calls)
}

func TestChain(t *testing.T) {
	order := make([]string, 0, 2)
	d := deleter.Chain(
		func(p *failing) error {
			order = append(order, "first")
			return p.Close()
		},
		nil,
		deleter.Func(func(p *failing) { order = append(order, "second") }),
	)
	calls := 0
	assert.EqualError(t, d(&failing{&calls}), "close failed")
	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, 1, calls)
}

func TestPool(t *testing.T) {
	built := 0
	resets := 0
	pool := deleter.NewPool(func() *[]byte {
		built++
		b := make([]byte, 0, 64)
		return &b
	}, func(p *[]byte) {
		resets++
		*p = (*p)[:0]
	})
	b := pool.Get()
	assert.Equal(t, 1, built)
	*b = append(*b, "payload"...)
	require.NoError(t, pool.Deleter()(b))
	assert.Equal(t, 1, resets)
	assert.Empty(t, *b)

	pool.Put(nil)
	assert.Equal(t, 1, resets)
}

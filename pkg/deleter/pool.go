package deleter

import "sync"

// Pool is a typed sync.Pool whose deleter recycles values instead of
// dropping them.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(p *T)
}

// NewPool creates a pool. reset prepares a value for reuse before it goes
// back into the pool; nil means zeroing it.
func NewPool[T any](constructor func() *T, reset func(p *T)) *Pool[T] {
	if constructor == nil {
		constructor = func() *T { return new(T) }
	}
	if reset == nil {
		reset = func(p *T) {
			var zero T
			*p = zero
		}
	}
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any { return constructor() },
		},
		reset: reset,
	}
}

// Get retrieves a value from the pool.
func (p *Pool[T]) Get() *T {
	return p.pool.Get().(*T)
}

// Put resets v and returns it to the pool.
func (p *Pool[T]) Put(v *T) {
	if v == nil {
		return
	}
	p.reset(v)
	p.pool.Put(v)
}

// Deleter returns a strategy that hands released values back to the pool.
func (p *Pool[T]) Deleter() Deleter[T] {
	return func(v *T) error {
		p.Put(v)
		return nil
	}
}

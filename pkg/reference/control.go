package reference

import (
	"sync/atomic"
)

// control is allocated once per managed allocation and shared by every
// handle derived from the first one.
type control struct {
	count   atomic.Int64
	release func() error
}

func newControl(release func() error) *control {
	c := &control{release: release}
	c.count.Store(1)
	return c
}

func (c *control) acquire() {
	c.count.Add(1)
}

// drop gives up one reference and runs release when it was the last one.
func (c *control) drop(op string) (err error) {
	if n := c.count.Add(-1); n == 0 {
		if rErr := c.release(); rErr != nil {
			err = releaseFailed(op, rErr)
		}
	}
	return
}

func (c *control) load() int64 {
	return c.count.Load()
}

// Package probe provides an instrumented value that records its own
// construction and destruction, for tests and the classwork demo.
package probe

import (
	"fmt"
	"sync"
)

type Kind int

const (
	Created Kind = iota
	Destroyed
)

func (k Kind) String() string {
	switch k {
	case Created:
		return "created"
	case Destroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

type Event struct {
	Kind Kind
	ID   int
}

// owners maps every constructed probe, by address, to its recorder and id.
// Release strategies may zero a probe after closing it; the entry survives
// so a second close is still recorded.
var owners sync.Map

type identity struct {
	recorder *Recorder
	id       int
}

// Recorder collects lifecycle events of the probes it created.
type Recorder struct {
	mu     sync.Mutex
	nextID int
	events []Event
	hook   func(Event)
}

// NewRecorder creates a recorder. hook, when not nil, sees every event as it
// happens.
func NewRecorder(hook func(Event)) *Recorder {
	return &Recorder{hook: hook}
}

// New constructs one probe.
func (r *Recorder) New() *Probe {
	p := &Probe{}
	r.construct(p)
	return p
}

// NewArray constructs n probes in one contiguous allocation, first to last.
func (r *Recorder) NewArray(n int) []Probe {
	s := make([]Probe, n)
	for i := range s {
		r.construct(&s[i])
	}
	return s
}

func (r *Recorder) construct(p *Probe) {
	r.mu.Lock()
	r.nextID++
	p.ID = r.nextID
	r.mu.Unlock()
	owners.Store(p, identity{recorder: r, id: p.ID})
	r.record(Event{Kind: Created, ID: p.ID})
}

func (r *Recorder) record(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	hook := r.hook
	r.mu.Unlock()
	if hook != nil {
		hook(e)
	}
}

func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

func (r *Recorder) count(kind Kind) (n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return
}

func (r *Recorder) Created() int { return r.count(Created) }

func (r *Recorder) Destroyed() int { return r.count(Destroyed) }

func (r *Recorder) Alive() int { return r.Created() - r.Destroyed() }

// Destructions returns how many times the probe with the given id was destroyed.
func (r *Recorder) Destructions(id int) (n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e.Kind == Destroyed && e.ID == id {
			n++
		}
	}
	return
}

// DestroyOrder lists destroyed ids in the order they were destroyed.
func (r *Recorder) DestroyOrder() (ids []int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e.Kind == Destroyed {
			ids = append(ids, e.ID)
		}
	}
	return
}

// Probe is the instrumented value. Closing it records its destruction, every
// time it is closed.
type Probe struct {
	ID int
}

func (p *Probe) Hello() string {
	return fmt.Sprintf("hello from probe %d", p.ID)
}

func (p *Probe) Close() error {
	v, ok := owners.Load(p)
	if !ok {
		return nil
	}
	who := v.(identity)
	who.recorder.record(Event{Kind: Destroyed, ID: who.id})
	return nil
}

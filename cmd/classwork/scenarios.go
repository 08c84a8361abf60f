package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/brickingsoft/owner"
	"github.com/brickingsoft/owner/internal/probe"
	"github.com/brickingsoft/owner/pkg/deleter"
	"github.com/brickingsoft/owner/pkg/mmap"
	"github.com/brickingsoft/owner/pkg/reference"
	"github.com/brickingsoft/owner/pkg/unique"
	"go.uber.org/zap"
)

type scenario func(ctx context.Context, log *zap.Logger, r *probe.Recorder) error

var scenarios = map[string]scenario{
	"unique":       uniqueScenario,
	"unique-array": uniqueArrayScenario,
	"shared":       sharedScenario,
	"shared-array": sharedArrayScenario,
	"concurrent":   concurrentScenario,
	"mmap":         mmapScenario,
}

func names() string {
	list := make([]string, 0, len(scenarios)+1)
	for name := range scenarios {
		list = append(list, name)
	}
	sort.Strings(list)
	return strings.Join(append(list, "all"), ", ")
}

func run(ctx context.Context, log *zap.Logger, name string) error {
	if name == "all" {
		list := strings.Split(names(), ", ")
		for _, n := range list[:len(list)-1] {
			if err := run(ctx, log, n); err != nil {
				return err
			}
		}
		return nil
	}
	fn, ok := scenarios[name]
	if !ok {
		return fmt.Errorf("unknown scenario %q", name)
	}
	log = log.With(zap.String("scenario", name))
	r := probe.NewRecorder(func(e probe.Event) {
		log.Info("probe "+e.Kind.String(), zap.Int("id", e.ID))
	})
	log.Info("start")
	if err := fn(ctx, log, r); err != nil {
		return err
	}
	if alive := r.Alive(); alive != 0 {
		return fmt.Errorf("%s: %d probes leaked", name, alive)
	}
	log.Info("done", zap.Int("created", r.Created()), zap.Int("destroyed", r.Destroyed()))
	return nil
}

func uniqueScenario(_ context.Context, log *zap.Logger, r *probe.Recorder) (err error) {
	p1 := unique.New(r.New())
	log.Info(p1.Get().Hello())

	log.Info("resetting the pointer")
	if err = p1.Reset(r.New()); err != nil {
		return
	}

	log.Info("moving the pointer")
	p2 := p1.Move()
	log.Info("after move", zap.Bool("p1_empty", p1.IsEmpty()), zap.Int("p2_id", p2.Get().ID))

	log.Info("releasing ownership of the pointer")
	raw := p2.Release()
	if !p2.IsEmpty() {
		return fmt.Errorf("p2 not empty after release")
	}
	return deleter.Default[probe.Probe]()(raw)
}

func uniqueArrayScenario(_ context.Context, log *zap.Logger, r *probe.Recorder) (err error) {
	arr := unique.NewArray(r.NewArray(3))
	defer func() {
		if closeErr := arr.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	for i := 0; i < arr.Len(); i++ {
		log.Info(arr.Index(i).Hello())
	}

	log.Info("resetting array pointer")
	if err = arr.Reset(r.NewArray(2)); err != nil {
		return
	}
	for i := 0; i < arr.Len(); i++ {
		log.Info(arr.Index(i).Hello())
	}

	log.Info("releasing ownership of the array")
	raw := arr.Release()
	if !arr.IsEmpty() {
		return fmt.Errorf("array not empty after release")
	}
	return deleter.DefaultSlice[probe.Probe]()(raw)
}

func sharedScenario(_ context.Context, log *zap.Logger, r *probe.Recorder) (err error) {
	s1 := reference.Make(r.New())
	log.Info("s1 created", zap.Int64("use_count", s1.UseCount()))

	s2 := s1.Clone()
	log.Info("s2 cloned", zap.Int64("s1_use_count", s1.UseCount()), zap.Int64("s2_use_count", s2.UseCount()))
	log.Info(s2.Get().Hello())

	s3 := reference.Make(r.New())
	if err = s3.Assign(s2); err != nil {
		return
	}
	log.Info("s3 assigned from s2", zap.Int64("use_count", s1.UseCount()))

	for _, s := range []*reference.Pointer[probe.Probe]{s3, s2} {
		if err = s.Close(); err != nil {
			return
		}
		log.Info("handle closed", zap.Int64("use_count", s1.UseCount()), zap.Int("alive", r.Alive()))
	}
	return s1.Close()
}

func sharedArrayScenario(_ context.Context, log *zap.Logger, r *probe.Recorder) (err error) {
	a := reference.NewArray(r.NewArray(3))
	b := a.Clone()
	for i := 0; i < b.Len(); i++ {
		log.Info(b.Index(i).Hello())
	}
	log.Info("array shared", zap.Int64("use_count", a.UseCount()))
	if err = a.Close(); err != nil {
		return
	}
	log.Info("first handle closed", zap.Int64("use_count", b.UseCount()), zap.Int("alive", r.Alive()))
	return b.Close()
}

func concurrentScenario(ctx context.Context, log *zap.Logger, r *probe.Recorder) (err error) {
	released := make(chan struct{})
	root := reference.Make(r.New(), reference.WithDeleter(deleter.Chain(
		deleter.Default[probe.Probe](),
		deleter.Func(func(*probe.Probe) { close(released) }),
	)))

	wg := new(sync.WaitGroup)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		task := i
		if err = owner.Go(ctx, root, func(p *reference.Pointer[probe.Probe]) {
			defer wg.Done()
			log.Debug(p.Get().Hello(), zap.Int("task", task), zap.Int64("use_count", p.UseCount()))
		}); err != nil {
			wg.Done()
			break
		}
	}
	wg.Wait()
	if closeErr := root.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		return
	}

	select {
	case <-released:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func mmapScenario(_ context.Context, log *zap.Logger, _ *probe.Recorder) (err error) {
	a, err := mmap.Share(os.Getpagesize())
	if err != nil {
		return
	}
	b := a.Clone()
	n := copy(b.Get(), "off-heap hello")
	log.Info(string(a.Get()[:n]), zap.Int("size", a.Len()), zap.Int64("use_count", a.UseCount()))
	if err = b.Close(); err != nil {
		return
	}
	return a.Close()
}

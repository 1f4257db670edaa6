// Package scheduler drives the decision engine at a fixed interval with a
// single-flight guarantee: a tick that fires while the previous cycle is
// still in flight is skipped, never run concurrently or queued up.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// CycleFunc runs one decision cycle. Errors are logged and do not stop
// the loop; the next tick retries independently.
type CycleFunc func(ctx context.Context) error

// Scheduler owns the ticker and the in-flight guard.
type Scheduler struct {
	interval time.Duration
	cycle    CycleFunc
	guard    inFlightGuard
	wg       sync.WaitGroup
	log      *logrus.Entry
}

func New(interval time.Duration, cycle CycleFunc) *Scheduler {
	return &Scheduler{
		interval: interval,
		cycle:    cycle,
		log:      logrus.WithField("component", "scheduler"),
	}
}

// Run executes one cycle immediately, then one per tick until ctx is
// cancelled. It blocks until cancellation and then until any in-flight
// cycle has returned.
func (s *Scheduler) Run(ctx context.Context) error {
	s.dispatch(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.wg.Wait()
			return ctx.Err()
		case <-ticker.C:
			s.dispatch(ctx)
		}
	}
}

// dispatch starts a cycle unless one is still running, in which case the
// tick is dropped with a warning. Cycles run off the loop goroutine so an
// overrunning cycle is observed as a skip, not a silently stretched
// interval.
func (s *Scheduler) dispatch(ctx context.Context) {
	if !s.guard.tryAcquire() {
		s.log.Warnf("previous cycle still in flight, skipping tick")
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.guard.release()

		start := time.Now()
		if err := s.cycle(ctx); err != nil {
			s.log.Errorf("cycle failed after %s: %v", time.Since(start).Round(time.Millisecond), err)
			return
		}
		s.log.Debugf("cycle finished in %s", time.Since(start).Round(time.Millisecond))
	}()
}

// Package animate drives a solver.Engine at a controllable cadence,
// relaying its step events to a rendering Sink.
package animate

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/mazelab/mazesolve/solver"
)

// Driver owns drive cadence only: when the engine is stepped, never how
// it searches. Pause, resume, speed changes, and stop all act on the
// schedule, so engine state survives them untouched — which is exactly
// what makes resume continue in place.
//
// Control methods (Pause, Resume, SetInterval, Stop) may be called from
// any goroutine while Run executes; the loop itself steps the engine
// from a single goroutine.
type Driver struct {
	engine    *solver.Engine
	sink      Sink
	pausePoll time.Duration

	interval atomic.Int64 // nanoseconds between steps
	paused   atomic.Bool
	stopped  atomic.Bool
}

// NewDriver wires an engine to a sink. Returns ErrNilEngine, ErrNilSink,
// or an option error (ErrBadInterval, ErrOptionViolation).
func NewDriver(engine *solver.Engine, sink Sink, opts ...Option) (*Driver, error) {
	if engine == nil {
		return nil, ErrNilEngine
	}
	if sink == nil {
		return nil, ErrNilSink
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	d := &Driver{
		engine:    engine,
		sink:      sink,
		pausePoll: o.PausePoll,
	}
	d.interval.Store(int64(o.Interval))

	return d, nil
}

// Run steps the engine until a terminal outcome, Stop, or context
// cancellation. Between steps it sleeps for the configured interval;
// while paused it sleeps for the pause-poll interval without stepping.
//
// On GoalReached the sink receives PathFound and Run returns nil; on
// Exhausted it receives NoSolution and Run returns nil. After Stop, Run
// returns nil with no final event — the engine remains valid and
// inspectable, so a host can restart the search on the same maze with a
// fresh engine.
func (d *Driver) Run(ctx context.Context) error {
	for {
		if d.stopped.Load() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if d.paused.Load() {
			if err := d.wait(ctx, d.pausePoll); err != nil {
				return err
			}

			continue
		}

		res, err := d.engine.Step()
		if err != nil {
			return err
		}
		switch res.Outcome {
		case solver.GoalReached:
			d.sink.PathFound(res.Path, d.engine.Elapsed())

			return nil
		case solver.Exhausted:
			d.sink.NoSolution(d.engine.Elapsed())

			return nil
		case solver.Continue:
			for _, p := range res.Visited {
				d.sink.CellVisited(p)
			}
		}

		if err := d.wait(ctx, time.Duration(d.interval.Load())); err != nil {
			return err
		}
	}
}

// wait sleeps for t or until the context is cancelled.
func (d *Driver) wait(ctx context.Context, t time.Duration) error {
	timer := time.NewTimer(t)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Pause suspends stepping. The loop keeps polling so Resume takes effect
// within one pause-poll interval.
func (d *Driver) Pause() { d.paused.Store(true) }

// Resume lifts a pause; the search continues exactly where it left off.
func (d *Driver) Resume() { d.paused.Store(false) }

// Paused reports whether the driver is currently paused.
func (d *Driver) Paused() bool { return d.paused.Load() }

// Stop permanently ceases scheduling. Engine state remains valid.
func (d *Driver) Stop() { d.stopped.Store(true) }

// SetInterval changes the delay between steps while running.
// Returns ErrBadInterval outside [MinInterval, MaxInterval].
func (d *Driver) SetInterval(t time.Duration) error {
	if t < MinInterval || t > MaxInterval {
		return ErrBadInterval
	}
	d.interval.Store(int64(t))

	return nil
}

// Interval returns the current delay between steps.
func (d *Driver) Interval() time.Duration {
	return time.Duration(d.interval.Load())
}

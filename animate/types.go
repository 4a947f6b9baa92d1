// Package animate defines the sink contract, options, and error
// definitions for driving a search engine at a visual cadence.
package animate

import (
	"errors"
	"fmt"
	"time"

	"github.com/mazelab/mazesolve/grid"
)

// Sentinel errors for driver construction and control.
var (
	// ErrNilEngine is returned if a nil engine is passed to NewDriver.
	ErrNilEngine = errors.New("animate: engine is nil")

	// ErrNilSink is returned if a nil sink is passed to NewDriver.
	ErrNilSink = errors.New("animate: sink is nil")

	// ErrBadInterval is returned for a step interval outside
	// [MinInterval, MaxInterval].
	ErrBadInterval = errors.New("animate: step interval out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("animate: invalid option supplied")
)

// Interval bounds and defaults. The step interval mirrors the original
// delay slider range; the pause poll is the fixed re-arm cadence while
// paused.
const (
	MinInterval      = 10 * time.Millisecond
	MaxInterval      = 200 * time.Millisecond
	DefaultInterval  = 50 * time.Millisecond
	DefaultPausePoll = 100 * time.Millisecond
)

// Sink receives the visual events produced while the driver runs. A
// renderer implements this; the driver never knows what painting means.
//
// All methods are called from the goroutine running Driver.Run.
type Sink interface {
	// CellVisited reports one newly discovered cell ("frontier
	// expanded here").
	CellVisited(p grid.Point)

	// PathFound delivers the final start→goal path and the frozen
	// solve duration. It is the last event of a successful run.
	PathFound(path []grid.Point, elapsed time.Duration)

	// NoSolution reports frontier exhaustion with no path. It is the
	// last event of a failed run.
	NoSolution(elapsed time.Duration)
}

// Option configures driver behavior via functional arguments.
type Option func(*Options)

// Options holds the tunable cadence parameters.
type Options struct {
	// Interval is the delay between engine steps while running.
	Interval time.Duration

	// PausePoll is the re-arm delay while paused; the engine is not
	// stepped, so resume continues exactly where the search left off.
	PausePoll time.Duration

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the standard cadence: 50ms between
// steps, 100ms pause polling.
func DefaultOptions() Options {
	return Options{
		Interval:  DefaultInterval,
		PausePoll: DefaultPausePoll,
	}
}

// WithInterval sets the delay between engine steps.
// Values outside [MinInterval, MaxInterval] yield ErrBadInterval.
func WithInterval(d time.Duration) Option {
	return func(o *Options) {
		if d < MinInterval || d > MaxInterval {
			o.err = fmt.Errorf("%w: %v not in [%v, %v]", ErrBadInterval, d, MinInterval, MaxInterval)

			return
		}
		o.Interval = d
	}
}

// WithPausePoll sets the polling delay used while paused. Non-positive
// values are invalid.
func WithPausePoll(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: pause poll must be positive, got %v", ErrOptionViolation, d)

			return
		}
		o.PausePoll = d
	}
}

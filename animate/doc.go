// Package animate schedules a solver.Engine for visual consumption: it
// repeatedly invokes one engine step at a controllable cadence and
// forwards the resulting cell events to a rendering Sink.
//
// The package deliberately separates engine state from drive cadence.
// The engine never blocks and does one bounded unit of work per step;
// the driver is the sole suspension point. Pausing, resuming, and speed
// changes therefore touch scheduling only — never search state — which
// is what makes a paused search resume exactly where it left off.
//
// Cancellation is cooperative: Stop (or context cancellation) ceases
// scheduling and leaves the engine valid and inspectable, so "restart
// search, same maze" is just a fresh engine on the same grid.
//
// Usage
//
//	drv, err := animate.NewDriver(eng, sink, animate.WithInterval(50*time.Millisecond))
//	if err != nil { ... }
//	go drv.Run(ctx)
//	// later, from the UI event loop:
//	drv.Pause()
//	drv.SetInterval(20 * time.Millisecond)
//	drv.Resume()
package animate

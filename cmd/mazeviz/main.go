// Command mazeviz animates maze solving in the terminal: it generates a
// maze, drives the chosen search algorithm through the animate package,
// and paints frontier expansion and the final path as they happen.
//
// Keys: space pause/resume, +/- speed, 1-4 algorithm (BFS, DFS,
// Dijkstra, A*), r restart search on the same maze, n new maze, q quit.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/mazelab/mazesolve/animate"
	"github.com/mazelab/mazesolve/grid"
	"github.com/mazelab/mazesolve/mazegen"
	"github.com/mazelab/mazesolve/solver"
)

type mark uint8

const (
	markNone mark = iota
	markVisited
	markPath
)

// sinkEvent carries one driver event from the solve goroutine into the
// UI loop. run tags the solve attempt so stale events from a cancelled
// run are dropped.
type sinkEvent struct {
	run        int
	cell       *grid.Point
	path       []grid.Point
	noSolution bool
	elapsed    time.Duration
}

// chanSink forwards driver events onto the UI channel.
type chanSink struct {
	run int
	ch  chan<- sinkEvent
}

func (s *chanSink) CellVisited(p grid.Point) {
	s.ch <- sinkEvent{run: s.run, cell: &p}
}

func (s *chanSink) PathFound(path []grid.Point, elapsed time.Duration) {
	s.ch <- sinkEvent{run: s.run, path: path, elapsed: elapsed}
}

func (s *chanSink) NoSolution(elapsed time.Duration) {
	s.ch <- sinkEvent{run: s.run, noSolution: true, elapsed: elapsed}
}

type app struct {
	screen tcell.Screen

	mazeW, mazeH int
	algo         solver.Algorithm

	g           *grid.Grid
	start, goal grid.Point
	marks       map[grid.Point]mark

	interval time.Duration
	driver   *animate.Driver
	cancel   context.CancelFunc
	events   chan sinkEvent
	run      int

	status string
}

var (
	wallStyle    = tcell.StyleDefault.Background(tcell.ColorDarkSlateGray)
	passageStyle = tcell.StyleDefault.Background(tcell.ColorBlack)
	visitedStyle = tcell.StyleDefault.Background(tcell.ColorLightBlue)
	pathStyle    = tcell.StyleDefault.Background(tcell.ColorYellow)
	startStyle   = tcell.StyleDefault.Background(tcell.ColorGreen)
	goalStyle    = tcell.StyleDefault.Background(tcell.ColorRed)
	textStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// newMaze regenerates the grid and kicks off a fresh solve.
func (a *app) newMaze() error {
	g, err := mazegen.Generate(a.mazeW, a.mazeH)
	if err != nil {
		return err
	}
	a.g = g
	// Corner passages: odd-coordinate cells are always carved.
	a.start = grid.Point{X: 1, Y: 1}
	a.goal = grid.Point{X: g.Width() - 2, Y: g.Height() - 2}

	return a.restartSolve()
}

// restartSolve cancels any running solve and starts a new engine on the
// current maze. The grid is reused; only SearchState is rebuilt.
func (a *app) restartSolve() error {
	if a.cancel != nil {
		a.driver.Stop()
		a.cancel()
	}
	a.marks = make(map[grid.Point]mark)
	a.run++
	a.status = "solving"

	eng, err := solver.New(a.g, a.start, a.goal, a.algo)
	if err != nil {
		return err
	}
	drv, err := animate.NewDriver(eng, &chanSink{run: a.run, ch: a.events},
		animate.WithInterval(a.interval))
	if err != nil {
		return err
	}
	a.driver = drv

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	go func() { _ = drv.Run(ctx) }()

	return nil
}

// applyEvent folds one driver event into the render state.
func (a *app) applyEvent(ev sinkEvent) {
	if ev.run != a.run {
		return // stale event from a cancelled solve
	}
	switch {
	case ev.cell != nil:
		a.marks[*ev.cell] = markVisited
	case ev.path != nil:
		for _, p := range ev.path {
			a.marks[p] = markPath
		}
		a.status = fmt.Sprintf("solved in %.2f s", ev.elapsed.Seconds())
	case ev.noSolution:
		a.status = fmt.Sprintf("no solution (%.2f s)", ev.elapsed.Seconds())
	}
}

// adjustSpeed shifts the step interval by delta, clamped to the valid
// range. Cadence only; the engine never notices.
func (a *app) adjustSpeed(delta time.Duration) {
	next := a.interval + delta
	if next < animate.MinInterval {
		next = animate.MinInterval
	}
	if next > animate.MaxInterval {
		next = animate.MaxInterval
	}
	if a.driver.SetInterval(next) == nil {
		a.interval = next
	}
}

// handleInput reacts to one terminal event; returns false to quit.
func (a *app) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			if a.driver.Paused() {
				a.driver.Resume()
			} else {
				a.driver.Pause()
			}
		case '+', '=':
			a.adjustSpeed(-10 * time.Millisecond)
		case '-':
			a.adjustSpeed(10 * time.Millisecond)
		case 'r':
			_ = a.restartSolve()
		case 'n':
			_ = a.newMaze()
		case '1', '2', '3', '4':
			a.algo = solver.Algorithm(ev.Rune() - '1')
			_ = a.restartSolve()
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}

	return true
}

// draw paints the maze (two columns per cell) and the status line.
func (a *app) draw() {
	a.screen.Clear()
	for y := 0; y < a.g.Height(); y++ {
		for x := 0; x < a.g.Width(); x++ {
			p := grid.Point{X: x, Y: y}
			style := passageStyle
			switch {
			case p == a.start:
				style = startStyle
			case p == a.goal:
				style = goalStyle
			case a.g.At(p) == grid.Wall:
				style = wallStyle
			case a.marks[p] == markPath:
				style = pathStyle
			case a.marks[p] == markVisited:
				style = visitedStyle
			}
			a.screen.SetContent(x*2, y, ' ', nil, style)
			a.screen.SetContent(x*2+1, y, ' ', nil, style)
		}
	}

	paused := ""
	if a.driver.Paused() {
		paused = " [paused]"
	}
	line := fmt.Sprintf("%s  delay %dms  %s%s  |  space pause  +/- speed  1-4 algo  r restart  n new  q quit",
		a.algo, a.interval.Milliseconds(), a.status, paused)
	for i, r := range line {
		a.screen.SetContent(i, a.g.Height(), r, nil, textStyle)
	}
	a.screen.Show()
}

func (a *app) loop() {
	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}
		case ev := <-a.events:
			a.applyEvent(ev)
		case <-ticker.C:
			a.draw()
		}
	}
}

func run() int {
	a := &app{
		interval: animate.DefaultInterval,
		events:   make(chan sinkEvent, 256),
	}
	var algoName string
	flag.IntVar(&a.mazeW, "width", 39, "Maze width in cells (forced odd).")
	flag.IntVar(&a.mazeH, "height", 21, "Maze height in cells (forced odd).")
	flag.StringVar(&algoName, "algorithm", "bfs",
		"Initial algorithm: bfs, dfs, dijkstra, or astar.")
	flag.DurationVar(&a.interval, "interval", animate.DefaultInterval,
		"Delay between search steps (10ms-200ms).")
	flag.Parse()

	algo, err := solver.ParseAlgorithm(algoName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return 1
	}
	a.algo = algo

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, "terminal init:", err)

		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "terminal init:", err)

		return 1
	}
	a.screen = screen
	defer screen.Fini()

	if err := a.newMaze(); err != nil {
		screen.Fini()
		fmt.Fprintln(os.Stderr, err)

		return 1
	}

	a.loop()
	a.driver.Stop()
	a.cancel()

	return 0
}

func main() {
	os.Exit(run())
}

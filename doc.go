// Package mazesolve generates grid mazes and solves them step by step,
// built for animation: every search advances one frontier expansion at
// a time, so a host can paint, pause, and resume it at will.
//
// 🚀 What is mazesolve?
//
//	A small, focused toolkit that brings together:
//		• Maze generation: randomized active-set recursive backtracking
//		• Four search variants behind one engine: BFS, DFS, Dijkstra, A*
//		• Stepwise execution: pop-one-expand-neighbors per call, resumable
//		• Path reconstruction from parent links
//		• A cadence driver with pause/resume and live speed control
//
// ✨ Why choose mazesolve?
//
//   - Engine state and drive cadence are strictly separated — pausing an
//     animation never touches search state
//   - One parameterized engine instead of four copies of the expansion loop
//   - Zero UI dependency in the core; renderers implement a three-method Sink
//
// Everything is organized under four subpackages plus two demo commands:
//
//	grid/        — immutable Wall/Passage raster, Point, neighbors, Manhattan
//	mazegen/     — the branching maze carver
//	solver/      — the steppable BFS/DFS/Dijkstra/A* engine
//	animate/     — the pause-aware scheduling driver
//	cmd/mazeviz/ — terminal animation frontend (tcell)
//	cmd/mazeimg/ — PNG snapshot frontend
//
// Quick ASCII example, a 5×5 maze with its only corridor:
//
//	█████
//	█·███
//	█·███
//	█·███
//	█████
//
// Generate, solve, animate:
//
//	g, _ := mazegen.Generate(21, 21)
//	eng, _ := solver.New(g, start, goal, solver.AStar)
//	drv, _ := animate.NewDriver(eng, mySink)
//	drv.Run(ctx)
package mazesolve

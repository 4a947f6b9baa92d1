// This defines a basic executable for solving a maze offline and saving
// the result as a PNG: walls, the cells the search visited, the final
// path, and arrow markers on the start and goal cells.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/yalue/image_utils"

	"github.com/mazelab/mazesolve/grid"
	"github.com/mazelab/mazesolve/mazegen"
	"github.com/mazelab/mazesolve/solver"
)

var (
	wallColor    = color.RGBA{30, 30, 30, 255}
	passageColor = color.RGBA{255, 255, 255, 255}
	visitedColor = color.RGBA{173, 216, 230, 255} // lightblue
	pathColor    = color.RGBA{250, 210, 40, 255}  // yellow
	startColor   = color.RGBA{40, 180, 70, 255}
	goalColor    = color.RGBA{210, 50, 50, 255}
	borderColor  = color.RGBA{90, 90, 90, 255}
)

// fillCell paints one maze cell as a scale×scale block.
func fillCell(pic *image.RGBA, p grid.Point, scale int, c color.RGBA) {
	for y := p.Y * scale; y < (p.Y+1)*scale; y++ {
		for x := p.X * scale; x < (p.X+1)*scale; x++ {
			pic.SetRGBA(x, y, c)
		}
	}
}

// renderMaze rasterizes the grid with the visited and path overlays.
func renderMaze(g *grid.Grid, visited map[grid.Point]bool, path []grid.Point,
	scale int) *image.RGBA {
	pic := image.NewRGBA(image.Rect(0, 0, g.Width()*scale, g.Height()*scale))
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := grid.Point{X: x, Y: y}
			c := passageColor
			if g.At(p) == grid.Wall {
				c = wallColor
			} else if visited[p] {
				c = visitedColor
			}
			fillCell(pic, p, scale, c)
		}
	}
	for _, p := range path {
		fillCell(pic, p, scale, pathColor)
	}

	return pic
}

// decorate overlays arrow markers on the start and goal cells.
func decorate(pic *image.RGBA, start, goal grid.Point, scale int) (*image.RGBA, error) {
	decorated := image_utils.NewCompositeImage()
	if e := decorated.AddImage(pic, image.Pt(0, 0)); e != nil {
		return nil, fmt.Errorf("setting base maze image: %w", e)
	}
	startArrow := image_utils.ResizeImage(image_utils.DownArrow(startColor), scale, scale)
	if e := decorated.AddImage(startArrow, image.Pt(start.X*scale, start.Y*scale)); e != nil {
		return nil, fmt.Errorf("adding start arrow: %w", e)
	}
	goalArrow := image_utils.ResizeImage(image_utils.DownArrow(goalColor), scale, scale)
	if e := decorated.AddImage(goalArrow, image.Pt(goal.X*scale, goal.Y*scale)); e != nil {
		return nil, fmt.Errorf("adding goal arrow: %w", e)
	}

	return image_utils.ToRGBA(decorated), nil
}

func run() int {
	var width, height, scale int
	var seed int64
	var algoName, outFilename string
	flag.IntVar(&width, "width", 41, "Maze width in cells (forced odd).")
	flag.IntVar(&height, "height", 41, "Maze height in cells (forced odd).")
	flag.IntVar(&scale, "scale", 12, "Pixels per maze cell.")
	flag.Int64Var(&seed, "seed", 0, "Random seed; 0 uses the current time.")
	flag.StringVar(&algoName, "algorithm", "bfs",
		"Search algorithm: bfs, dfs, dijkstra, or astar.")
	flag.StringVar(&outFilename, "o", "maze.png",
		"The name of the .png file to which the solved maze is saved.")
	flag.Parse()
	if scale < 1 {
		fmt.Println("Invalid -scale; must be at least 1.")

		return 1
	}

	algo, err := solver.ParseAlgorithm(algoName)
	if err != nil {
		fmt.Printf("Invalid -algorithm: %s\n", err)

		return 1
	}

	var genOpts []mazegen.Option
	if seed != 0 {
		genOpts = append(genOpts, mazegen.WithSeed(seed))
	}
	g, err := mazegen.Generate(width, height, genOpts...)
	if err != nil {
		fmt.Printf("Failed generating maze: %s\n", err)

		return 1
	}

	start := grid.Point{X: 1, Y: 1}
	goal := grid.Point{X: g.Width() - 2, Y: g.Height() - 2}
	eng, err := solver.New(g, start, goal, algo)
	if err != nil {
		fmt.Printf("Failed initializing %s search: %s\n", algo, err)

		return 1
	}

	visited := make(map[grid.Point]bool)
	var path []grid.Point
	for {
		res, err := eng.Step()
		if err != nil {
			fmt.Printf("Search error: %s\n", err)

			return 1
		}
		if res.Outcome == solver.Continue {
			for _, p := range res.Visited {
				visited[p] = true
			}

			continue
		}
		if res.Outcome == solver.Exhausted {
			fmt.Println("No path from start to goal.")

			return 1
		}
		path = res.Path

		break
	}

	pic, err := decorate(renderMaze(g, visited, path, scale), start, goal, scale)
	if err != nil {
		fmt.Printf("Error adding maze decorations: %s\n", err)

		return 1
	}

	f, err := os.Create(outFilename)
	if err != nil {
		fmt.Printf("Error creating output file %s: %s\n", outFilename, err)

		return 1
	}
	defer f.Close()
	if err := png.Encode(f, image_utils.AddImageBorder(pic, borderColor, scale/2+1)); err != nil {
		fmt.Printf("Error writing image to %s: %s\n", outFilename, err)

		return 1
	}

	fmt.Printf("%s solved %dx%d maze in %.2f s: %d steps, %d cells visited, path length %d. Image %s written OK.\n",
		algo, g.Width(), g.Height(), eng.Elapsed().Seconds(), eng.Steps(), eng.VisitedCount(), len(path), outFilename)

	return 0
}

func main() {
	os.Exit(run())
}

package main

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/dashrunner/physics"
)

// arenaRows is a 3x2 screen test course: a floor, stepping platforms, a
// wall-jump shaft and high ledges on the right.
var arenaRows = []string{
	"################################################",
	"#..............................................#",
	"#...............................#..............#",
	"#...............................#..............#",
	"#...........................#...#..............#",
	"#...........................#...#..............#",
	"#...........................#...#.......######.#",
	"#...................####....#...#..............#",
	"#...........................#...#..............#",
	"#...........................#...#..............#",
	"#............#####..........#...#..............#",
	"#...........................#...#..............#",
	"#...........................#...#...########...#",
	"#.....#####.................#..................#",
	"#........................##.#..................#",
	"#.......................###.#..................#",
	"################################################",
	"################################################",
}

var arenaSpawn = cp.Vector{X: 3, Y: 3}

func buildArena(world *physics.World) (physics.Grid, error) {
	grid, err := physics.ParseGrid(arenaRows)
	if err != nil {
		return physics.Grid{}, err
	}
	world.AddTiles(grid)
	world.AddBounds(float64(grid.Width), float64(grid.Height))
	return grid, nil
}

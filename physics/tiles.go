package physics

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// Grid is a row-major tile map. Row 0 is the top row; a non-zero cell is solid.
type Grid struct {
	Width  int
	Height int
	Cells  []int
}

// ParseGrid reads a text map where '#' marks a solid tile. All rows must have
// the same length.
func ParseGrid(rows []string) (Grid, error) {
	g := Grid{Height: len(rows)}
	for y, row := range rows {
		if y == 0 {
			g.Width = len(row)
			g.Cells = make([]int, 0, g.Width*g.Height)
		} else if len(row) != g.Width {
			return Grid{}, fmt.Errorf("physics: grid row %d has width %d, want %d", y, len(row), g.Width)
		}
		for _, ch := range []byte(row) {
			v := 0
			if ch == '#' {
				v = 1
			}
			g.Cells = append(g.Cells, v)
		}
	}
	return g, nil
}

// Solid reports whether the tile at column x, row y is solid.
func (g Grid) Solid(x, y int) bool {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return false
	}
	return g.Cells[y*g.Width+x] != 0
}

// MergeRects greedily merges solid tiles into rectangles: each run grows
// right as far as it can, then down while the whole run stays solid.
// Rectangles are in tile coordinates with row 0 on top.
func (g Grid) MergeRects() []cp.BB {
	if g.Width <= 0 || g.Height <= 0 || len(g.Cells) != g.Width*g.Height {
		return nil
	}
	var rects []cp.BB
	processed := make([]bool, g.Width*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			idx := y*g.Width + x
			if processed[idx] {
				continue
			}
			if g.Cells[idx] == 0 {
				processed[idx] = true
				continue
			}

			w := 1
			for x+w < g.Width {
				idx2 := y*g.Width + (x + w)
				if processed[idx2] || g.Cells[idx2] == 0 {
					break
				}
				w++
			}

			h := 1
		heightLoop:
			for y+h < g.Height {
				for xi := x; xi < x+w; xi++ {
					idx2 := (y+h)*g.Width + xi
					if processed[idx2] || g.Cells[idx2] == 0 {
						break heightLoop
					}
				}
				h++
			}

			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					processed[yy*g.Width+xx] = true
				}
			}
			rects = append(rects, cp.BB{L: float64(x), B: float64(y), R: float64(x + w), T: float64(y + h)})
		}
	}
	return rects
}

// AddTiles adds the grid as merged static boxes, flipping rows so the bottom
// row sits on y=0. It returns the number of boxes added.
func (w *World) AddTiles(g Grid) int {
	if w == nil || w.space == nil {
		return 0
	}
	rects := g.MergeRects()
	height := float64(g.Height)
	for _, r := range rects {
		w.AddBox(cp.BB{L: r.L, B: height - r.T, R: r.R, T: height - r.B})
	}
	w.logf("added %d boxes for %dx%d tiles", len(rects), g.Width, g.Height)
	return len(rects)
}

package main

import (
	"github.com/pkg/errors"
)

func init() {
	register("4-1", "accessible rolls", day4a)
	register("4-2", "removed rolls", day4b)
}

const (
	_cellEmpty = '.'
	_cellRoll  = '@'
)

// rollGrid marks paper rolls on a rectangular floor plan.
type rollGrid struct {
	width, height int
	rolls         []bool
}

func parseRollGrid(in *Input) (*rollGrid, error) {
	lines := in.Lines()
	if len(lines) == 0 {
		return nil, errors.Wrap(ErrMalformedInput, "empty grid")
	}
	g := &rollGrid{width: len(lines[0]), height: len(lines)}
	g.rolls = make([]bool, g.width*g.height)
	for y, line := range lines {
		if len(line) != g.width {
			return nil, errors.Wrapf(ErrMalformedInput, "line %d: width %d, want %d", y+1, len(line), g.width)
		}
		for x := 0; x < len(line); x++ {
			switch line[x] {
			case _cellEmpty:
			case _cellRoll:
				g.rolls[y*g.width+x] = true
			default:
				return nil, errors.Wrapf(ErrMalformedInput, "line %d: unexpected %q", y+1, line[x])
			}
		}
	}
	return g, nil
}

func (g *rollGrid) at(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height && g.rolls[y*g.width+x]
}

func (g *rollGrid) neighbours(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if (dx != 0 || dy != 0) && g.at(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// accessible returns the index of every roll with fewer than crowded
// neighbouring rolls.
func (g *rollGrid) accessible(crowded int) []int {
	var cells []int
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.at(x, y) && g.neighbours(x, y) < crowded {
				cells = append(cells, y*g.width+x)
			}
		}
	}
	return cells
}

// removeAccessible sweeps the grid until nothing more can be removed. Each
// sweep judges every roll against the grid as it stood when the sweep began.
func (g *rollGrid) removeAccessible(crowded int) int {
	removed := 0
	for {
		cells := g.accessible(crowded)
		if len(cells) == 0 {
			return removed
		}
		for _, i := range cells {
			g.rolls[i] = false
		}
		removed += len(cells)
	}
}

func day4a(in *Input, cfg *Config) ([]Answer, error) {
	g, err := parseRollGrid(in)
	if err != nil {
		return nil, err
	}
	return answer(int64(len(g.accessible(cfg.Grid.Crowded)))), nil
}

func day4b(in *Input, cfg *Config) ([]Answer, error) {
	g, err := parseRollGrid(in)
	if err != nil {
		return nil, err
	}
	return answer(int64(g.removeAccessible(cfg.Grid.Crowded))), nil
}

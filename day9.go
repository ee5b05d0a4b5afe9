package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

func init() {
	register("9-1", "largest area", day9a)
}

type tile struct {
	X, Y int64
}

func parseTiles(in *Input) ([]tile, error) {
	var tiles []tile
	for i, line := range in.Lines() {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 2 {
			return nil, errors.Wrapf(ErrMalformedInput, "line %d: %q is not x,y", i+1, line)
		}
		x, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedInput, "line %d: %v", i+1, err)
		}
		y, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedInput, "line %d: %v", i+1, err)
		}
		tiles = append(tiles, tile{x, y})
	}
	return tiles, nil
}

// area of the rectangle with a and b at opposite corners, counted in tiles.
func (a tile) area(b tile) int64 {
	return (abs64(a.X-b.X) + 1) * (abs64(a.Y-b.Y) + 1)
}

func day9a(in *Input, _ *Config) ([]Answer, error) {
	tiles, err := parseTiles(in)
	if err != nil {
		return nil, err
	}
	var largest int64
	for i := range tiles {
		for j := i + 1; j < len(tiles); j++ {
			largest = max64(largest, tiles[i].area(tiles[j]))
		}
	}
	return answer(largest), nil
}

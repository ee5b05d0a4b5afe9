package main

import (
	"github.com/pkg/errors"
)

func init() {
	register("7-1", "beam splits", day7a)
	register("7-2", "timelines", day7b)
}

const (
	_beamStart = 'S'
	_splitter  = '^'
)

// manifold holds the start column and, top to bottom, the splitter
// columns of each row that has any.
type manifold struct {
	width     int
	start     int
	splitters [][]int
}

func parseManifold(in *Input) (*manifold, error) {
	m := &manifold{start: -1}
	for i, line := range in.Lines() {
		if len(line) > m.width {
			m.width = len(line)
		}
		var row []int
		for x := 0; x < len(line); x++ {
			switch line[x] {
			case _beamStart:
				if m.start >= 0 {
					return nil, errors.Wrapf(ErrMalformedInput, "line %d: second beam start", i+1)
				}
				m.start = x
			case _splitter:
				row = append(row, x)
			}
		}
		if len(row) > 0 {
			m.splitters = append(m.splitters, row)
		}
	}
	if m.start < 0 {
		return nil, errors.Wrapf(ErrMalformedInput, "no beam start %q", _beamStart)
	}
	return m, nil
}

// run sends the beam down the manifold. It returns how many splitters were
// hit and how many timelines reach the bottom, where a split doubles the
// timelines of the beam that hit it and merged beams add theirs up.
func (m *manifold) run() (splits, timelines int64) {
	// two spare columns so beams split at the edges have somewhere to go
	beams := make([]int64, m.width+2)
	beams[m.start+1] = 1
	for _, row := range m.splitters {
		next := make([]int64, len(beams))
		copy(next, beams)
		for _, x := range row {
			c := beams[x+1]
			if c == 0 {
				continue
			}
			splits++
			next[x+1] -= c
			next[x] += c
			next[x+2] += c
		}
		beams = next
	}
	for _, c := range beams {
		timelines += c
	}
	return splits, timelines
}

func day7a(in *Input, _ *Config) ([]Answer, error) {
	m, err := parseManifold(in)
	if err != nil {
		return nil, err
	}
	splits, _ := m.run()
	return answer(splits), nil
}

func day7b(in *Input, _ *Config) ([]Answer, error) {
	m, err := parseManifold(in)
	if err != nil {
		return nil, err
	}
	_, timelines := m.run()
	return answer(timelines), nil
}

package main

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrUnknownPuzzle  = errors.New("unknown puzzle")
	ErrMalformedInput = errors.New("malformed input")
)

// Answer is one labelled result of a puzzle.
type Answer struct {
	Label string `yaml:"label"`
	Value int64  `yaml:"value"`
}

type solveFunc func(in *Input, cfg *Config) ([]Answer, error)

type puzzle struct {
	ID    string
	Label string
	Day   int
	Part  int
	solve solveFunc
}

var puzzleByID = map[string]*puzzle{}

// register adds a puzzle under an id of the form "<day>-<part>".
func register(id, label string, solve solveFunc) {
	if _, ok := puzzleByID[id]; ok {
		panic("puzzle " + id + " registered twice")
	}
	day, part, ok := splitPuzzleID(id)
	if !ok {
		panic("bad puzzle id " + id)
	}
	puzzleByID[id] = &puzzle{ID: id, Label: label, Day: day, Part: part, solve: solve}
}

func splitPuzzleID(id string) (day, part int, ok bool) {
	fields := strings.Split(id, "-")
	if len(fields) != 2 {
		return
	}
	day, err := strconv.Atoi(fields[0])
	if err != nil {
		return
	}
	part, err = strconv.Atoi(fields[1])
	if err != nil {
		return
	}
	return day, part, true
}

func lookup(id string) (*puzzle, error) {
	p, ok := puzzleByID[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPuzzle, "%q", id)
	}
	return p, nil
}

// puzzles returns every registered puzzle ordered by day, then part.
func puzzles() []*puzzle {
	list := make([]*puzzle, 0, len(puzzleByID))
	for _, p := range puzzleByID {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Day != list[j].Day {
			return list[i].Day < list[j].Day
		}
		return list[i].Part < list[j].Part
	})
	return list
}

// Solve runs p over in. A puzzle that reports its answers under its own
// labels keeps them; a lone unlabelled answer takes the puzzle's label.
func (p *puzzle) Solve(in *Input, cfg *Config) ([]Answer, error) {
	answers, err := p.solve(in, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "puzzle %s", p.ID)
	}
	for i := range answers {
		if answers[i].Label == "" {
			answers[i].Label = p.Label
		}
	}
	return answers, nil
}

func answer(v int64) []Answer {
	return []Answer{{Value: v}}
}

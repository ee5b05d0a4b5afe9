package main

import (
	"log"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

func init() {
	register("5-1", "fresh count", day5a)
	register("5-2", "fresh total", day5b)
}

// buildFreshRanges inserts every "start-end" line into a new set. With
// verify on, the result is checked against the reference range set.
func buildFreshRanges(lines []string, verify bool) (IntervalSet, error) {
	var (
		s         IntervalSet
		intervals = make([]Interval, 0, len(lines))
	)
	for i, line := range lines {
		r, err := parseInterval(line)
		if err != nil {
			return nil, errors.Wrapf(err, "range line %d", i+1)
		}
		s.Insert(r)
		intervals = append(intervals, r)
	}
	log.Printf("%d ranges merged into %d", len(lines), len(s))

	if verify {
		if err := s.crossCheck(intervals); err != nil {
			return nil, errors.Wrap(err, "verifying ranges")
		}
	}
	return s, nil
}

func day5a(in *Input, cfg *Config) ([]Answer, error) {
	sections := in.Sections()
	if len(sections) != 2 {
		return nil, errors.Wrapf(ErrMalformedInput, "want ranges and ids sections, got %d sections", len(sections))
	}
	s, err := buildFreshRanges(sections[0], cfg.Verify)
	if err != nil {
		return nil, err
	}

	var fresh int64
	for i, line := range sections[1] {
		id, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedInput, "id line %d: %v", i+1, err)
		}
		if s.Contains(id) {
			fresh++
		}
	}
	return answer(fresh), nil
}

func day5b(in *Input, cfg *Config) ([]Answer, error) {
	sections := in.Sections()
	if len(sections) == 0 {
		return nil, errors.Wrap(ErrMalformedInput, "no ranges section")
	}
	s, err := buildFreshRanges(sections[0], cfg.Verify)
	if err != nil {
		return nil, err
	}
	return answer(s.TotalCovered()), nil
}

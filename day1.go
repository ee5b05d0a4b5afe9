package main

import (
	"strings"

	"github.com/pkg/errors"
)

func init() {
	register("1-1", "count of stops at 0", day1a)
	register("1-2", "count of clicks at 0", day1b)
}

// dial is a combination lock dial numbered 0 to size-1.
type dial struct {
	size     int64
	position int64
	stops    int64 // rotations that ended on 0
	clicks   int64 // times the dial pointed at 0, mid-rotation included
}

func (d *dial) right(n int64) {
	d.clicks += (d.position + n) / d.size
	d.position = (d.position + n) % d.size
	if d.position == 0 {
		d.stops++
	}
}

func (d *dial) left(n int64) {
	// distance to the first 0 going down; starting on 0 does not count
	first := d.position
	if first == 0 {
		first = d.size
	}
	if n >= first {
		d.clicks += 1 + (n-first)/d.size
	}
	d.position = ((d.position-n)%d.size + d.size) % d.size
	if d.position == 0 {
		d.stops++
	}
}

func (d *dial) turn(token string) error {
	dir, n, err := parseInstruction(token)
	if err != nil {
		return err
	}
	switch dir {
	case 'L':
		d.left(n)
	case 'R':
		d.right(n)
	default:
		return errors.Wrapf(ErrMalformedInput, "dial direction %q is not L or R", dir)
	}
	return nil
}

func runDial(in *Input, cfg *Config) (*dial, error) {
	d := &dial{size: cfg.Dial.Size, position: cfg.Dial.Start}
	for i, line := range in.Lines() {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := d.turn(line); err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}
	}
	return d, nil
}

func day1a(in *Input, cfg *Config) ([]Answer, error) {
	d, err := runDial(in, cfg)
	if err != nil {
		return nil, err
	}
	return []Answer{
		{"final dial position", d.position},
		{"count of stops at 0", d.stops},
	}, nil
}

func day1b(in *Input, cfg *Config) ([]Answer, error) {
	d, err := runDial(in, cfg)
	if err != nil {
		return nil, err
	}
	return []Answer{
		{"final dial position", d.position},
		{"count of clicks at 0", d.clicks},
	}, nil
}

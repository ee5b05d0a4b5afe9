package main

import (
	"github.com/b97tsk/rangeset"
	"github.com/pkg/errors"
)

// crossCheck rebuilds intervals in a half-open rangeset.RangeSet and compares
// the result against s. Every interval boundary, and the points just outside
// it, must agree on membership, and both sets must cover the same count.
func (s IntervalSet) crossCheck(intervals []Interval) error {
	var ref rangeset.RangeSet[int64]
	for _, r := range intervals {
		ref.AddRange(r.Start, r.End+1)
	}

	var covered int64
	for _, r := range ref {
		covered += r.High - r.Low
	}
	if covered != s.TotalCovered() {
		return errors.Errorf("covered %d, reference covers %d", s.TotalCovered(), covered)
	}

	for _, r := range intervals {
		for _, v := range [...]int64{r.Start - 1, r.Start, r.End, r.End + 1} {
			if s.Contains(v) != ref.Contains(v) {
				return errors.Errorf("membership of %d disagrees with reference", v)
			}
		}
	}

	if len(ref) != len(s) {
		return errors.Errorf("%d intervals, reference has %d", len(s), len(ref))
	}
	for i, r := range ref {
		if s[i].Start != r.Low || s[i].End != r.High-1 {
			return errors.Errorf("interval %v, reference has [%d,%d)", s[i], r.Low, r.High)
		}
	}
	return nil
}

package main

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrMalformedRange is returned for range tokens that are not "start-end".
var ErrMalformedRange = errors.New("malformed range")

// Interval is the inclusive integer range [Start, End].
type Interval struct {
	Start, End int64
}

// parseInterval parses a "start-end" token. The bounds may come in either
// order; the smaller one becomes Start.
func parseInterval(token string) (Interval, error) {
	fields := strings.Split(strings.TrimSpace(token), "-")
	if len(fields) != 2 {
		return Interval{}, errors.Wrapf(ErrMalformedRange, "%q", token)
	}
	a, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return Interval{}, errors.Wrapf(ErrMalformedRange, "%q: %v", token, err)
	}
	b, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return Interval{}, errors.Wrapf(ErrMalformedRange, "%q: %v", token, err)
	}
	if a > b {
		a, b = b, a
	}
	return Interval{a, b}, nil
}

func (r Interval) Len() int64 {
	return r.End - r.Start + 1
}

func (r Interval) String() string {
	return strconv.FormatInt(r.Start, 10) + "-" + strconv.FormatInt(r.End, 10)
}

// IntervalSet is a sorted list of disjoint intervals. Neighbours never touch:
// for consecutive a, b it always holds that b.Start > a.End+1.
type IntervalSet []Interval

// Insert adds r to s, merging it with every interval it overlaps or touches.
func (s *IntervalSet) Insert(r Interval) {
	i := sort.Search(len(*s), func(i int) bool { return (*s)[i].Start >= r.Start })

	if i > 0 && (*s)[i-1].End >= r.Start-1 {
		if (*s)[i-1].End >= r.End {
			return
		}
		(*s)[i-1].End = r.End
		i--
	} else {
		*s = append(*s, Interval{})
		copy((*s)[i+1:], (*s)[i:])
		(*s)[i] = r
	}

	active := &(*s)[i]
	j := i + 1
	for j < len(*s) && active.End >= (*s)[j].Start-1 {
		if active.End < (*s)[j].End {
			active.End = (*s)[j].End
		}
		j++
	}

	if j > i+1 {
		*s = append((*s)[:i+1], (*s)[j:]...)
	}
}

// Contains reports whether v lies in any interval of s.
func (s IntervalSet) Contains(v int64) bool {
	min, max := 0, len(s)
	for min < max {
		mid := min + (max-min)/2
		r := s[mid]
		if v >= r.Start && v <= r.End {
			return true
		}
		if v < r.Start {
			max = mid
		} else {
			min = mid + 1
		}
	}
	return false
}

// TotalCovered returns the number of integers covered by s.
func (s IntervalSet) TotalCovered() int64 {
	var n int64
	for _, r := range s {
		n += r.Len()
	}
	return n
}

func (s *IntervalSet) Reset() {
	*s = nil
}

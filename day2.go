package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

func init() {
	register("2-1", "sum of doubled IDs", day2a)
	register("2-2", "sum of repeated IDs", day2b)
}

// parseIDRanges reads comma separated "a-b" ranges, which may span lines.
func parseIDRanges(in *Input) ([]Interval, error) {
	var ranges []Interval
	for _, line := range in.Lines() {
		for _, token := range strings.Split(line, ",") {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			r, err := parseInterval(token)
			if err != nil {
				return nil, err
			}
			ranges = append(ranges, r)
		}
	}
	return ranges, nil
}

func digitCount(n int64) int {
	return len(strconv.FormatInt(n, 10))
}

// repeatedIDs returns, without duplicates, every number in r whose decimal
// form is a block of digits repeated. blockLens lists, for a digit length,
// which block lengths to try.
func repeatedIDs(r Interval, blockLens func(length int) []int) ([]int64, error) {
	if digitCount(r.End) > _maxDigits {
		return nil, errors.Wrapf(ErrMalformedInput, "range %v has more than %d digits", r, _maxDigits)
	}

	var ids []int64
	seen := make(map[int64]struct{})
	for length := digitCount(r.Start); length <= digitCount(r.End); length++ {
		lo := max64(r.Start, pow10(length-1))
		hi := min64(r.End, pow10(length)-1)
		for _, p := range blockLens(length) {
			// a p-digit block b repeated length/p times is b*m
			m := (pow10(length) - 1) / (pow10(p) - 1)
			first := max64((lo+m-1)/m, pow10(p-1))
			last := min64(hi/m, pow10(p)-1)
			for b := first; b <= last; b++ {
				id := b * m
				if _, ok := seen[id]; ok {
					continue
				}
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}
	return ids, nil
}

func doubledBlocks(length int) []int {
	if length%2 != 0 {
		return nil
	}
	return []int{length / 2}
}

func repeatedBlocks(length int) []int {
	var blocks []int
	for p := 1; p <= length/2; p++ {
		if length%p == 0 {
			blocks = append(blocks, p)
		}
	}
	return blocks
}

func sumRepeatedIDs(in *Input, blockLens func(int) []int) ([]Answer, error) {
	ranges, err := parseIDRanges(in)
	if err != nil {
		return nil, err
	}
	var sum int64
	for _, r := range ranges {
		ids, err := repeatedIDs(r, blockLens)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			sum += id
		}
	}
	return answer(sum), nil
}

func day2a(in *Input, _ *Config) ([]Answer, error) {
	return sumRepeatedIDs(in, doubledBlocks)
}

func day2b(in *Input, _ *Config) ([]Answer, error) {
	return sumRepeatedIDs(in, repeatedBlocks)
}

package main

import (
	"strings"

	"github.com/pkg/errors"
)

func init() {
	register("3-1", "total joltage", day3a)
	register("3-2", "total joltage", day3b)
}

// maxJoltage picks k digits of bank, keeping their order, so that they read
// as the largest possible number. Each pick takes the leftmost highest digit
// that still leaves enough digits to fill the rest.
func maxJoltage(bank string, k int) (int64, error) {
	if len(bank) < k {
		return 0, errors.Wrapf(ErrMalformedInput, "bank %q has fewer than %d batteries", bank, k)
	}
	digits := make([]int, len(bank))
	for i := 0; i < len(bank); i++ {
		d, ok := digitValue(bank[i])
		if !ok {
			return 0, errors.Wrapf(ErrMalformedInput, "bank %q: %q is not a digit", bank, bank[i])
		}
		digits[i] = d
	}

	var joltage int64
	start := 0
	for picked := 0; picked < k; picked++ {
		end := len(digits) - k + picked
		best := start
		for i := start + 1; i <= end && digits[best] < 9; i++ {
			if digits[i] > digits[best] {
				best = i
			}
		}
		joltage = joltage*10 + int64(digits[best])
		start = best + 1
	}
	return joltage, nil
}

func totalJoltage(in *Input, k int) ([]Answer, error) {
	var total int64
	for i, line := range in.Lines() {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		j, err := maxJoltage(line, k)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}
		total += j
	}
	return answer(total), nil
}

func day3a(in *Input, cfg *Config) ([]Answer, error) {
	return totalJoltage(in, cfg.Battery.Short)
}

func day3b(in *Input, cfg *Config) ([]Answer, error) {
	return totalJoltage(in, cfg.Battery.Long)
}

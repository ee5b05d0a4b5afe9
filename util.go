package main

import (
	"strconv"

	"github.com/pkg/errors"
)

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// pow10 returns 10^n for 0 <= n <= 18.
func pow10(n int) int64 {
	p := int64(1)
	for ; n > 0; n-- {
		p *= 10
	}
	return p
}

func digitValue(c byte) (int, bool) {
	if c < '0' || c > '9' {
		return 0, false
	}
	return int(c - '0'), true
}

// parseInstruction splits a token such as "L68" into its one-byte direction
// and its non-negative magnitude.
func parseInstruction(token string) (dir byte, n int64, err error) {
	if len(token) < 2 {
		return 0, 0, errors.Wrapf(ErrMalformedInput, "instruction %q", token)
	}
	n, err = strconv.ParseInt(token[1:], 10, 64)
	if err != nil || n < 0 {
		return 0, 0, errors.Wrapf(ErrMalformedInput, "instruction %q: bad magnitude", token)
	}
	return token[0], n, nil
}

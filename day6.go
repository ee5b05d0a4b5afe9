package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

func init() {
	register("6-1", "grand total", day6a)
	register("6-2", "grand total", day6b)
}

// problem is one column block of the worksheet: its operator and the raw
// text of each number row, all padded to the block width.
type problem struct {
	op   byte
	rows []string
}

// parseWorksheet cuts the worksheet into problems at columns that are blank
// in every row. The last row holds the operators.
func parseWorksheet(in *Input) ([]problem, error) {
	lines := in.Lines()
	if len(lines) < 2 {
		return nil, errors.Wrap(ErrMalformedInput, "worksheet needs number rows and an operator row")
	}
	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	grid := make([]string, len(lines))
	for i, line := range lines {
		grid[i] = line + strings.Repeat(" ", width-len(line))
	}

	blank := func(x int) bool {
		for _, row := range grid {
			if row[x] != ' ' {
				return false
			}
		}
		return true
	}

	var problems []problem
	for x := 0; x < width; {
		if blank(x) {
			x++
			continue
		}
		end := x
		for end < width && !blank(end) {
			end++
		}
		ops := strings.TrimSpace(grid[len(grid)-1][x:end])
		if ops != "+" && ops != "*" {
			return nil, errors.Wrapf(ErrMalformedInput, "column %d: operator %q", x+1, ops)
		}
		p := problem{op: ops[0]}
		for _, row := range grid[:len(grid)-1] {
			p.rows = append(p.rows, row[x:end])
		}
		problems = append(problems, p)
		x = end
	}
	return problems, nil
}

// rowNumbers reads each row of the block as one number.
func (p problem) rowNumbers() ([]int64, error) {
	var nums []int64
	for _, row := range p.rows {
		text := strings.TrimSpace(row)
		if text == "" {
			continue
		}
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedInput, "number %q", text)
		}
		nums = append(nums, n)
	}
	return nums, nil
}

// columnNumbers reads each column of the block top to bottom as one number.
func (p problem) columnNumbers() ([]int64, error) {
	var nums []int64
	for x := len(p.rows[0]) - 1; x >= 0; x-- {
		var (
			n      int64
			digits int
		)
		for _, row := range p.rows {
			if row[x] == ' ' {
				continue
			}
			d, ok := digitValue(row[x])
			if !ok {
				return nil, errors.Wrapf(ErrMalformedInput, "unexpected %q in number column", row[x])
			}
			n = n*10 + int64(d)
			digits++
		}
		if digits > 0 {
			nums = append(nums, n)
		}
	}
	return nums, nil
}

func (p problem) apply(nums []int64) int64 {
	if p.op == '*' {
		result := int64(1)
		for _, n := range nums {
			result *= n
		}
		return result
	}
	var result int64
	for _, n := range nums {
		result += n
	}
	return result
}

func grandTotal(in *Input, numbers func(problem) ([]int64, error)) ([]Answer, error) {
	problems, err := parseWorksheet(in)
	if err != nil {
		return nil, err
	}
	var total int64
	for _, p := range problems {
		nums, err := numbers(p)
		if err != nil {
			return nil, err
		}
		total += p.apply(nums)
	}
	return answer(total), nil
}

func day6a(in *Input, _ *Config) ([]Answer, error) {
	return grandTotal(in, problem.rowNumbers)
}

func day6b(in *Input, _ *Config) ([]Answer, error) {
	return grandTotal(in, problem.columnNumbers)
}

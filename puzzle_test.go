package main

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sampleDial = `L68
L30
R48
L5
R60
L55
L1
L99
R14
L82
`

	sampleIDs = "11-22,95-115,998-1012,1188511880-1188511890,222220-222224," +
		"1698522-1698528,446443-446449,38593856-38593862,565653-565659," +
		"824824821-824824827,2121212118-2121212124\n"

	sampleBanks = `987654321111111
811111111111119
234234234234278
818181911112111
`

	sampleFloor = `..@@.@@@@.
@@@.@@@.@@
@@@@@.@.@@
@.@@@@..@.
@@.@@@@.@@
.@@@@@@@.@
.@.@.@.@@@
@.@@@.@@@@
.@@@@@@@@.
@.@.@@@.@.
`

	sampleFresh = `3-5
10-14
16-20
12-18

1
5
8
11
17
32
`

	// trailing spaces are significant
	sampleWorksheet = strings.Join([]string{
		"123 328  51 64 ",
		" 45 64  387 23 ",
		"  6 98  215 314",
		"*   +   *   +  ",
	}, "\n")

	sampleManifold = `.......S.......
...............
.......^.......
...............
......^.^......
...............
.....^.^.^.....
...............
....^.^...^....
...............
...^.^...^.^...
...............
..^...^.....^..
...............
.^.^.^.^.^...^.
...............
`

	sampleTiles = `7,1
11,1
11,7
9,7
9,5
2,5
2,3
7,3
`
)

func TestSamples(t *testing.T) {
	testCases := []struct {
		id    string
		input string
		want  []Answer
	}{
		{"1-1", sampleDial, []Answer{{"final dial position", 32}, {"count of stops at 0", 3}}},
		{"1-2", sampleDial, []Answer{{"final dial position", 32}, {"count of clicks at 0", 6}}},
		{"2-1", sampleIDs, []Answer{{"sum of doubled IDs", 1227775554}}},
		{"2-2", sampleIDs, []Answer{{"sum of repeated IDs", 4174379265}}},
		{"3-1", sampleBanks, []Answer{{"total joltage", 357}}},
		{"3-2", sampleBanks, []Answer{{"total joltage", 3121910778619}}},
		{"4-1", sampleFloor, []Answer{{"accessible rolls", 11}}},
		{"4-2", sampleFloor, []Answer{{"removed rolls", 44}}},
		{"5-1", sampleFresh, []Answer{{"fresh count", 3}}},
		{"5-2", sampleFresh, []Answer{{"fresh total", 14}}},
		{"6-1", sampleWorksheet, []Answer{{"grand total", 4277556}}},
		{"6-2", sampleWorksheet, []Answer{{"grand total", 3263827}}},
		{"7-1", sampleManifold, []Answer{{"beam splits", 21}}},
		{"7-2", sampleManifold, []Answer{{"timelines", 40}}},
		{"9-1", sampleTiles, []Answer{{"largest area", 50}}},
	}

	cfg := defaultConfig()
	cfg.Verify = true

	for _, tc := range testCases {
		t.Run(tc.id, func(t *testing.T) {
			p, err := lookup(tc.id)
			require.NoError(t, err)
			answers, err := p.Solve(newInput(tc.input), cfg)
			require.NoError(t, err)
			assert.Equal(t, tc.want, answers)
		})
	}
}

func TestRegistry(t *testing.T) {
	list := puzzles()
	require.NotEmpty(t, list)
	for i := 1; i < len(list); i++ {
		a, b := list[i-1], list[i]
		assert.True(t, a.Day < b.Day || a.Day == b.Day && a.Part < b.Part, "%s before %s", a.ID, b.ID)
	}

	_, err := lookup("8-1")
	assert.Equal(t, ErrUnknownPuzzle, errors.Cause(err))
	_, err = lookup("five")
	assert.Equal(t, ErrUnknownPuzzle, errors.Cause(err))

	assert.Panics(t, func() { register("5-1", "again", day5a) })
	assert.Panics(t, func() { register("5", "no part", day5a) })
}

func TestSplitPuzzleID(t *testing.T) {
	day, part, ok := splitPuzzleID("12-2")
	assert.True(t, ok)
	assert.Equal(t, 12, day)
	assert.Equal(t, 2, part)

	for _, id := range []string{"", "1", "1-", "a-1", "1-2-3"} {
		_, _, ok := splitPuzzleID(id)
		assert.False(t, ok, id)
	}
}

func TestMalformedInputs(t *testing.T) {
	testCases := []struct {
		id    string
		input string
		cause error
	}{
		{"1-1", "L68\nU3\n", ErrMalformedInput},
		{"1-2", "R\n", ErrMalformedInput},
		{"1-1", "Rx5\n", ErrMalformedInput},
		{"2-1", "11-22,95\n", ErrMalformedRange},
		{"3-1", "12a4\n", ErrMalformedInput},
		{"3-2", "12345\n", ErrMalformedInput},
		{"4-1", "..@\n.#.\n", ErrMalformedInput},
		{"4-1", "..@\n..\n", ErrMalformedInput},
		{"5-1", "3-5\n10-14\n", ErrMalformedInput},
		{"5-1", "3-5\n1-2-3\n\n4\n", ErrMalformedRange},
		{"5-1", "3-5\n\nfour\n", ErrMalformedInput},
		{"5-2", "3_5\n", ErrMalformedRange},
		{"6-1", "1 2\n- +\n", ErrMalformedInput},
		{"7-1", "...\n.^.\n", ErrMalformedInput},
		{"9-1", "1,2,3\n", ErrMalformedInput},
	}

	cfg := defaultConfig()
	for _, tc := range testCases {
		p, err := lookup(tc.id)
		require.NoError(t, err)
		_, err = p.Solve(newInput(tc.input), cfg)
		require.Error(t, err, "%s %q", tc.id, tc.input)
		assert.Equal(t, tc.cause, errors.Cause(err), "%s %q: %v", tc.id, tc.input, err)
	}
}

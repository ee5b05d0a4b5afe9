package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	a := &app{v: newViper()}
	cmd := a.command()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	a.stopProfile()
	return out.String(), err
}

func writeInputs(t *testing.T, inputs map[int]string) string {
	t.Helper()
	dir := t.TempDir()
	for day, text := range inputs {
		require.NoError(t, os.WriteFile(inputPath(dir, day), []byte(text), 0644))
	}
	return dir
}

func TestRunCommand(t *testing.T) {
	dir := writeInputs(t, map[int]string{5: sampleFresh})

	out, err := execute(t, "run", "5-2", inputPath(dir, 5))
	require.NoError(t, err)
	assert.Equal(t, "fresh total: 14\n", out)

	out, err = execute(t, "run", "--verify", "5-1", inputPath(dir, 5))
	require.NoError(t, err)
	assert.Equal(t, "fresh count: 3\n", out)
}

func TestRunCommandYAML(t *testing.T) {
	dir := writeInputs(t, map[int]string{1: sampleDial})

	out, err := execute(t, "run", "--format", "yaml", "1-2", inputPath(dir, 1))
	require.NoError(t, err)

	var r report
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, report{
		Puzzle:  "1-2",
		Answers: []Answer{{"final dial position", 32}, {"count of clicks at 0", 6}},
	}, r)
}

func TestRunCommandErrors(t *testing.T) {
	dir := writeInputs(t, map[int]string{5: "3-5\nnot a range\n"})

	_, err := execute(t, "run", "12-1", inputPath(dir, 5))
	assert.Equal(t, ErrUnknownPuzzle, errors.Cause(err))

	_, err = execute(t, "run", "5-2", inputPath(dir, 5))
	assert.Equal(t, ErrMalformedRange, errors.Cause(err))

	_, err = execute(t, "run", "5-2", filepath.Join(dir, "missing"))
	assert.True(t, os.IsNotExist(errors.Cause(err)))

	_, err = execute(t, "run", "5-2")
	assert.Error(t, err)

	_, err = execute(t, "run", "--watch", "5-2", "-")
	assert.Error(t, err)

	_, err = execute(t, "--profile", "heap", "list")
	assert.Error(t, err)
}

func TestAllCommand(t *testing.T) {
	dir := writeInputs(t, map[int]string{
		5: sampleFresh,
		7: sampleManifold,
	})

	out, err := execute(t, "all", dir)
	require.NoError(t, err)
	assert.Equal(t, "fresh count: 3\nfresh total: 14\nbeam splits: 21\ntimelines: 40\n", out)
}

func TestAllCommandFails(t *testing.T) {
	dir := writeInputs(t, map[int]string{
		3: sampleBanks,
		9: "1,2\nthree\n",
	})

	_, err := execute(t, "all", dir)
	assert.Equal(t, ErrMalformedInput, errors.Cause(err))
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "5-1   fresh count\n")
	assert.Contains(t, out, "9-1   largest area\n")
}

func TestConfigCommand(t *testing.T) {
	name := filepath.Join(t.TempDir(), "advent.yaml")
	require.NoError(t, os.WriteFile(name, []byte("grid:\n  crowded: 3\n"), 0644))

	out, err := execute(t, "--config", name, "config")
	require.NoError(t, err)

	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, 3, cfg.Grid.Crowded)
	assert.Equal(t, int64(100), cfg.Dial.Size)
}

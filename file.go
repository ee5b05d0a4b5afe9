package main

import (
	"bufio"
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

const (
	_stdinName     = "-"
	_maxLineLength = 1024 * 1024
)

// Input is the raw text of a puzzle input, split into lines. Interior
// spacing is preserved; trailing blank lines are not.
type Input struct {
	Name  string
	lines []string
}

func _loadInput(name string) (*Input, error) {
	if name == _stdinName {
		return _readInput(os.Stdin, "stdin")
	}
	file, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "opening input")
	}
	defer file.Close()
	return _readInput(file, name)
}

func _readInput(r io.Reader, name string) (*Input, error) {
	in := &Input{Name: name}
	s := bufio.NewScanner(r)
	s.Buffer(nil, _maxLineLength)
	for s.Scan() {
		in.lines = append(in.lines, strings.TrimSuffix(s.Text(), "\r"))
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	for len(in.lines) > 0 && strings.TrimSpace(in.lines[len(in.lines)-1]) == "" {
		in.lines = in.lines[:len(in.lines)-1]
	}
	return in, nil
}

func newInput(text string) *Input {
	in, _ := _readInput(strings.NewReader(text), "text")
	return in
}

func (in *Input) Lines() []string {
	return in.lines
}

// Sections splits the input at blank lines. Runs of blank lines count as one
// separator and leading blank lines are skipped.
func (in *Input) Sections() [][]string {
	var (
		sections [][]string
		current  []string
	)
	for _, line := range in.lines {
		if strings.TrimSpace(line) == "" {
			if current != nil {
				sections = append(sections, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if current != nil {
		sections = append(sections, current)
	}
	return sections
}

// _watchInput calls fn once, then again every time name is written, until
// ctx is done. Only the first call's error is returned. The parent directory
// is watched so that editors replacing the file by rename are still seen.
func _watchInput(ctx context.Context, name string, fn func() error) error {
	if err := fn(); err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "creating watcher")
	}
	defer w.Close()

	abs, err := filepath.Abs(name)
	if err != nil {
		return errors.Wrap(err, "resolving input path")
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return errors.Wrapf(err, "watching %s", filepath.Dir(abs))
	}
	log.Println("watching", abs)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			log.Println("input changed:", event)
			// a half-written file is common while editing; keep watching
			if err := fn(); err != nil {
				eprintln(err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Println("watch error:", err)
		}
	}
}

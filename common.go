package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	_formatText = "text"
	_formatYAML = "yaml"
)

type report struct {
	Puzzle  string   `yaml:"puzzle"`
	Answers []Answer `yaml:"answers"`
}

// writeReport prints the answers of one puzzle in the given format.
func writeReport(w io.Writer, format string, r report) error {
	switch format {
	case _formatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(r); err != nil {
			return errors.Wrap(err, "encoding report")
		}
		return errors.Wrap(enc.Close(), "encoding report")
	default:
		for _, a := range r.Answers {
			if _, err := fmt.Fprintf(w, "%s: %d\n", a.Label, a.Value); err != nil {
				return errors.Wrap(err, "writing report")
			}
		}
		return nil
	}
}

func eprintln(a ...interface{}) {
	fmt.Fprintln(os.Stderr, a...)
}

func fprintf(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintf(w, format, a...)
}

func fprintln(w io.Writer, a ...interface{}) {
	fmt.Fprintln(w, a...)
}

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

const (
	_profileCPU = "cpu"
	_profileMem = "mem"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	a := &app{v: newViper()}
	err := a.command().ExecuteContext(ctx)
	a.stopProfile()
	stop()
	if err != nil {
		eprintln("advent:", err)
		os.Exit(1)
	}
}

type app struct {
	v          *viper.Viper
	cfg        *Config
	configFile string
	profile    string
	profiler   interface{ Stop() }
}

func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:           "advent",
		Short:         "Solve daily puzzles from their text input",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default ./advent.yaml)")
	flags.StringVar(&a.profile, "profile", "", "write a profile: cpu or mem")
	flags.BoolP("verbose", "v", false, "log diagnostics to stderr")
	flags.String("format", _defaultFormat, "answer format: text or yaml")
	flags.Bool("verify", false, "cross-check interval sets against a reference implementation")
	for _, key := range []string{"verbose", "format", "verify"} {
		if err := a.v.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(a.runCommand(), a.allCommand(), a.listCommand(), a.configCommand())
	return root
}

func (a *app) setup() error {
	cfg, err := loadConfig(a.v, a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log.SetPrefix("advent: ")
	log.SetFlags(0)
	if cfg.Verbose {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	switch a.profile {
	case "":
	case _profileCPU:
		a.profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case _profileMem:
		a.profiler = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	default:
		return errors.Errorf("unknown profile %q", a.profile)
	}
	return nil
}

func (a *app) stopProfile() {
	if a.profiler != nil {
		a.profiler.Stop()
		a.profiler = nil
	}
}

func (a *app) runCommand() *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "run <day-part> <input>",
		Short: "Solve one puzzle; input - reads stdin",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := lookup(args[0])
			if err != nil {
				return err
			}
			solve := func() error {
				in, err := _loadInput(args[1])
				if err != nil {
					return err
				}
				answers, err := p.Solve(in, a.cfg)
				if err != nil {
					return err
				}
				return writeReport(cmd.OutOrStdout(), a.cfg.Format, report{p.ID, answers})
			}
			if watch {
				if args[1] == _stdinName {
					return errors.New("cannot watch stdin")
				}
				return _watchInput(cmd.Context(), args[1], solve)
			}
			return solve()
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "solve again whenever the input changes")
	return cmd
}

func inputPath(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("%d.input", day))
}

func (a *app) allCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "all [dir]",
		Short: "Solve every puzzle whose <day>.input exists in dir",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.cfg.InputDir
			if len(args) == 1 {
				dir = args[0]
			}
			return a.solveAll(cmd.Context(), cmd.OutOrStdout(), dir)
		},
	}
}

// solveAll runs the puzzles side by side, one goroutine each, and reports
// them in registry order once all have finished.
func (a *app) solveAll(ctx context.Context, w io.Writer, dir string) error {
	list := puzzles()
	inputs := make(map[int]*Input)
	for _, p := range list {
		if _, ok := inputs[p.Day]; ok {
			continue
		}
		in, err := _loadInput(inputPath(dir, p.Day))
		if err != nil {
			if os.IsNotExist(errors.Cause(err)) {
				log.Printf("skipping day %d: no input", p.Day)
				inputs[p.Day] = nil
				continue
			}
			return err
		}
		inputs[p.Day] = in
	}

	results := make([][]Answer, len(list))
	g, ctx := errgroup.WithContext(ctx)
	for i, p := range list {
		in := inputs[p.Day]
		if in == nil {
			continue
		}
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			answers, err := p.Solve(in, a.cfg)
			results[i] = answers
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, p := range list {
		if results[i] == nil {
			continue
		}
		if err := writeReport(w, a.cfg.Format, report{p.ID, results[i]}); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered puzzles",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range puzzles() {
				fprintf(cmd.OutOrStdout(), "%-5s %s\n", p.ID, p.Label)
			}
		},
	}
}

func (a *app) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f := a.v.ConfigFileUsed(); f != "" {
				fprintln(cmd.OutOrStdout(), "# from", f)
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			if err := enc.Encode(a.cfg); err != nil {
				return errors.Wrap(err, "encoding config")
			}
			return enc.Close()
		},
	}
}

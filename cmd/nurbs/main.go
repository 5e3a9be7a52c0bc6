// Command nurbs samples and evaluates NURBS curves described in TOML or YAML
// files.
//
// A curve file lists the degree, the control points and optionally the
// number of samples and an explicit knot vector:
//
//	degree = 2
//	samples = 50
//
//	[[points]]
//	x = 0.0
//	y = 0.0
//
//	[[points]]
//	x = 10.0
//	y = 10.0
//	weight = 2.0
//
// Usage:
//
//	nurbs sample [-n count] [-f flat|csv|svg] [-o file] curve.toml
//	nurbs eval curve.yaml u...
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"strconv"

	"github.com/spf13/cobra"
)

type app struct {
	stdout io.Writer
	log    *slog.Logger
	level  *slog.LevelVar

	verbose   bool
	traceback bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) (code int) {
	level := new(slog.LevelVar)
	a := &app{
		stdout: stdout,
		log:    slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
		level:  level,
	}

	defer a.reportPanic(&code)

	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		a.log.Error(err.Error())
		return 1
	}
	return 0
}

// reportPanic logs a panic together with its stack and sets the exit code,
// if enabled with --traceback. Otherwise the panic propagates.
func (a *app) reportPanic(code *int) {
	if !a.traceback {
		return
	}
	if r := recover(); r != nil {
		a.log.Error("panic", "value", r, "stack", string(debug.Stack()))
		*code = 2
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "nurbs",
		Short:         "Sample and evaluate NURBS curves",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.verbose {
				a.level.Set(slog.LevelDebug)
			}
			if a.traceback {
				debug.SetTraceback("all")
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug information")
	root.PersistentFlags().BoolVar(&a.traceback, "traceback", false, "log panics with full stack traces")
	root.AddCommand(a.sampleCommand(), a.evalCommand())
	return root
}

func (a *app) sampleCommand() *cobra.Command {
	var (
		count  int
		fmtArg string
		output string
	)
	cmd := &cobra.Command{
		Use:   "sample file",
		Short: "Sample a curve at uniformly spaced parameters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormat(fmtArg)
			if err != nil {
				return err
			}
			cf, err := loadCurveFile(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("count") {
				cf.Samples = count
			}
			a.log.Debug("loaded curve",
				"file", args[0],
				"degree", cf.Degree,
				"control_points", len(cf.Points),
				"custom_knots", len(cf.Knots) > 0,
				"samples", cf.Samples)

			flat := cf.appendSamples(make([]float64, 0, 2*max(cf.Samples, 2)), cf.Samples)
			if len(flat) == 0 {
				a.log.Warn("curve has too few control points for its degree",
					"degree", cf.Degree, "control_points", len(cf.Points))
			}

			if output == "" {
				return writeSamples(a.stdout, f, cf, flat)
			}
			out, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := writeSamples(out, f, cf, flat); err != nil {
				out.Close()
				return err
			}
			return out.Close()
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", defaultSamples, "number of samples, overrides the file")
	cmd.Flags().StringVarP(&fmtArg, "format", "f", string(formatFlat), "output format: flat, csv or svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of standard output")
	return cmd
}

func writeSamples(w io.Writer, f format, cf *curveFile, flat []float64) error {
	var err error
	switch f {
	case formatFlat:
		err = writeFlat(w, flat)
	case formatCSV:
		err = writeCSV(w, flat)
	case formatSVG:
		err = writeSVG(w, cf.curve(), flat)
	}
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func (a *app) evalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval file u...",
		Short: "Evaluate a curve at the given parameters",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			us := make([]float64, len(args)-1)
			for i, s := range args[1:] {
				u, err := strconv.ParseFloat(s, 64)
				if err != nil {
					return fmt.Errorf("invalid parameter %q: %w", s, err)
				}
				us[i] = u
			}
			cf, err := loadCurveFile(args[0])
			if err != nil {
				return err
			}
			c := cf.curve()
			for _, u := range us {
				cp, ok := c.Evaluate(u)
				if !ok {
					a.log.Debug("no result", "u", u)
					fmt.Fprintf(a.stdout, "%s -\n", formatFloat(u))
					continue
				}
				fmt.Fprintf(a.stdout, "%s %s %s\n", formatFloat(u), formatFloat(cp.X), formatFloat(cp.Y))
			}
			return nil
		},
	}
}

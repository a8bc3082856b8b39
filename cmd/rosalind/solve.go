package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/inodb/rosalind/internal/duckdb"
	"github.com/inodb/rosalind/internal/input"
	"github.com/inodb/rosalind/internal/output"
	"github.com/inodb/rosalind/internal/solve"
)

type solveOptions struct {
	lines   bool
	format  string
	workers int
	noCache bool
}

func newSolveCmd(a *app) *cobra.Command {
	var opts solveOptions

	cmd := &cobra.Command{
		Use:   "solve <problem> <input-file>",
		Short: "Solve a problem dataset",
		Long: `Solve a Rosalind problem for the dataset in <input-file> (use '-' for stdin).
Gzipped input is detected automatically. With --lines every non-blank line is
solved as its own dataset.`,
		Example: `  rosalind solve dna rosalind_dna.txt
  rosalind solve --lines --format tab revc batch.txt
  cat rosalind_prot.txt | rosalind solve prot -`,
		Args: usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd.Context(), cmd.OutOrStdout(), args[0], args[1], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.lines, "lines", false, "Treat each line of the input as a separate dataset")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, tab")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "Number of solver workers (default: config workers, 0 = all CPUs)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "Do not read or write the answer cache")

	return cmd
}

func (a *app) runSolve(ctx context.Context, out io.Writer, name, path string, opts solveOptions) error {
	p, ok := solve.Lookup(name)
	if !ok {
		return usageErrorf("unknown problem %q (see 'rosalind problems')", name)
	}

	var writer solve.AnswerWriter
	switch opts.format {
	case "text":
		writer = output.NewTextWriter(out)
	case "tab":
		writer = output.NewTabWriter(out)
	default:
		return usageErrorf("unknown output format %q", opts.format)
	}

	data, err := input.Load(path)
	if err != nil {
		return err
	}
	inputs := []string{data}
	if opts.lines {
		if inputs, err = input.Lines(data); err != nil {
			return err
		}
	}

	runner := solve.NewRunner(p)
	runner.SetLogger(a.logger)
	workers := opts.workers
	if workers == 0 {
		workers = a.settings.Workers
	}
	runner.SetWorkers(workers)

	if a.settings.Cache.Enabled && !opts.noCache {
		store, err := duckdb.Open(a.settings.Cache.Path)
		if err != nil {
			a.logger.Warn("answer cache unavailable, solving without it",
				zap.String("path", a.settings.Cache.Path),
				zap.Error(err))
		} else {
			defer store.Close()
			runner.SetCache(store)
		}
	}

	if err := writer.WriteHeader(); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	summary, err := runner.SolveAll(ctx, inputs, writer)
	if err != nil {
		return err
	}

	a.logger.Debug("solve finished",
		zap.String("problem", p.Name()),
		zap.Int("solved", summary.Solved),
		zap.Int("cached", summary.Cached),
		zap.Int("failed", summary.Failed))

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d datasets failed", summary.Failed, len(inputs))
	}
	return nil
}

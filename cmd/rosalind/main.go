// Package main provides the rosalind command-line tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitUsage   = 2
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// usageError marks errors caused by bad arguments or flags.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// usageArgs wraps a cobra argument validator so its failures exit with ExitUsage.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

// app holds state shared by all subcommands once the root command has
// loaded configuration.
type app struct {
	cfgFile  string
	verbose  bool
	settings Settings
	logger   *zap.Logger
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &app{logger: zap.NewNop()}
	root := newRootCmd(a)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	_ = a.logger.Sync()
	return exitCode(root, err)
}

func exitCode(root *cobra.Command, err error) int {
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
	var uerr *usageError
	if errors.As(err, &uerr) {
		return ExitUsage
	}
	return ExitError
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "rosalind",
		Short: "Solve Rosalind bioinformatics problems",
		Long: `rosalind solves Rosalind bioinformatics problems over DNA, RNA and
protein sequences, caching answers in a local DuckDB database.`,
		Example: `  rosalind problems                       # list solvable problems
  rosalind solve revc rosalind_revc.txt   # solve one dataset
  rosalind solve --lines --format tab prot batch.txt.gz
  rosalind fetch P07204 B5ZC00            # download UniProt entries`,
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Config file (default: ~/.rosalind.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newFetchCmd(a))
	root.AddCommand(newProblemsCmd())
	root.AddCommand(newHistoryCmd(a))
	root.AddCommand(newConfigCmd())

	return root
}

// setup loads configuration and builds the logger.
func (a *app) setup() error {
	if err := initConfig(a.cfgFile); err != nil {
		return err
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	a.settings = settings

	var logger *zap.Logger
	if a.verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	a.logger = logger
	return nil
}

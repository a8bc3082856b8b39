package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/inodb/rosalind/internal/duckdb"
)

func newHistoryCmd(a *app) *cobra.Command {
	var (
		limit    int
		clearAll bool
	)

	cmd := &cobra.Command{
		Use:   "history [problem]",
		Short: "List cached answers",
		Example: `  rosalind history             # most recent answers
  rosalind history revc --limit 5
  rosalind history --clear     # empty the cache`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := duckdb.Open(a.settings.Cache.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			if clearAll {
				n, err := store.AnswerCount()
				if err != nil {
					return err
				}
				if err := store.ClearAnswers(); err != nil {
					return fmt.Errorf("clear answers: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d cached answers from %s\n", n, store.Path())
				return nil
			}

			var problem string
			if len(args) == 1 {
				problem = strings.ToLower(args[0])
			}
			records, err := store.History(problem, limit)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SOLVED\tPROBLEM\tLENGTH\tINPUT\tANSWER")
			for _, r := range records {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
					r.SolvedAt.Local().Format(time.DateTime), r.Problem, r.InputLength,
					r.InputPreview, strings.ReplaceAll(r.Answer, "\n", ";"))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of answers to list (0 = all)")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "Delete all cached answers")

	return cmd
}

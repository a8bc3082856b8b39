package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/inodb/rosalind/internal/uniprot"
)

func newFetchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <uniprot-id>...",
		Short: "Download protein sequences from UniProt",
		Long: `Download UniProt entries and print each label, sequence and monoisotopic mass.
The endpoint and timeout come from uniprot.base_url and uniprot.timeout.`,
		Example: `  rosalind fetch P07204
  rosalind fetch B5ZC00 P20840`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFetch(cmd.Context(), cmd.OutOrStdout(), args)
		},
	}
}

func (a *app) runFetch(ctx context.Context, out io.Writer, ids []string) error {
	client := uniprot.NewClient(a.settings.UniProt.BaseURL, a.settings.UniProt.Timeout)
	client.SetLogger(a.logger)

	for _, id := range ids {
		rec, err := client.Fetch(ctx, id)
		if err != nil {
			return err
		}
		p, err := rec.Protein()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, ">%s\n%s\nmass\t%.3f\n", rec.Label, p, p.MonoisotopicMass())
	}
	return nil
}

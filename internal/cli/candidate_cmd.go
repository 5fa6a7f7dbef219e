package cli

import (
	"fmt"

	"github.com/alexanderramin/skilltrade/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCandidateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "candidates",
		Aliases: []string{"candidate"},
		Short:   "Browse candidates",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List candidates with their trust scores",
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates, err := app.Candidates.ListCandidates(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCandidateList(candidates))
			return nil
		},
	})

	return cmd
}

package cli

import (
	"fmt"

	"github.com/alexanderramin/skilltrade/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newMatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "match CANDIDATE PROJECT",
		Short: "Score a candidate against a project with the factor breakdown",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := app.Candidates.GetCandidate(ctx, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, args[1])
			if err != nil {
				return err
			}
			res, err := app.Matches.Explain(ctx, c.ID, p.ID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatMatch(c, p, *res))
			return nil
		},
	}
}

func newRecommendCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Rank open projects for a candidate or candidates for a project",
	}
	cmd.PersistentFlags().IntVarP(&limit, "limit", "n", 5, "Maximum results (0 for all)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "projects CANDIDATE",
			Short: "Open projects ranked by match score",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				c, err := app.Candidates.GetCandidate(ctx, args[0])
				if err != nil {
					return err
				}
				matches, err := app.Matches.RecommendedProjectsFor(ctx, c.ID)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectMatches(c, truncate(matches, limit)))
				return nil
			},
		},
		&cobra.Command{
			Use:   "candidates PROJECT",
			Short: "Candidates ranked by match score",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				p, err := app.Projects.GetByID(ctx, args[0])
				if err != nil {
					return err
				}
				matches, err := app.Matches.RecommendedCandidatesFor(ctx, p.ID)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCandidateMatches(p, truncate(matches, limit)))
				return nil
			},
		},
	)

	return cmd
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/skilltrade/internal/cli/formatter"
	"github.com/alexanderramin/skilltrade/internal/domain"
	"github.com/alexanderramin/skilltrade/internal/scenario"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

func newRunCmd(app *App) *cobra.Command {
	var metrics bool

	cmd := &cobra.Command{
		Use:   "run SCENARIO",
		Short: "Run a scenario script against the seeded marketplace",
		Long: "Run executes a YAML scenario step by step and prints the step log,\n" +
			"the projects it touched, their escrow and any certificates issued.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			script, err := scenario.Load(args[0])
			if err != nil {
				return err
			}

			runner := scenario.NewRunner(app.ScenarioServices(), app.Logger)
			report, runErr := runner.Run(ctx, script)

			if script.Name != "" {
				fmt.Fprintln(out, formatter.Header(script.Name))
			}
			writeSteps(out, report)

			if err := writeOutcome(cmd, app, report); err != nil {
				return errors.Join(runErr, err)
			}
			if metrics || app.ShowMetrics {
				if err := writeMetrics(out, app); err != nil {
					return errors.Join(runErr, err)
				}
			}
			return runErr
		},
	}

	cmd.Flags().BoolVar(&metrics, "metrics", false, "Print use-case metrics in Prometheus text format")

	return cmd
}

func writeSteps(w io.Writer, report *scenario.Report) {
	for _, st := range report.Steps {
		mark, detail := formatter.StyleGreen.Render("✔"), st.Detail
		if st.Err != nil {
			mark, detail = formatter.StyleRed.Render("✖"), st.Err.Error()
		}
		fmt.Fprintf(w, "%s %2d %-15s %s\n", mark, st.Index, st.Action, detail)
	}
	fmt.Fprintln(w)
}

func writeOutcome(cmd *cobra.Command, app *App, report *scenario.Report) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	var (
		projects []*domain.Project
		txs      []*domain.EscrowTransaction
	)
	for _, id := range report.ProjectIDs {
		p, err := app.Projects.GetByID(ctx, id)
		if err != nil {
			if domain.IsNotFound(err) {
				continue
			}
			return err
		}
		projects = append(projects, p)

		pt, err := app.Escrow.ListByProject(ctx, id)
		if err != nil {
			return err
		}
		txs = append(txs, pt...)
	}

	fmt.Fprintln(out, formatter.FormatProjectList(projects))
	fmt.Fprintln(out, formatter.FormatEscrowList(txs))
	fmt.Fprintln(out, formatter.FormatCertificateList(report.Certificates))
	return nil
}

func writeMetrics(w io.Writer, app *App) error {
	if app.Metrics == nil {
		return errors.New("metrics are not enabled")
	}
	families, err := app.Metrics.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	return nil
}

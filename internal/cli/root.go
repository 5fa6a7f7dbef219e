package cli

import (
	"context"

	"github.com/alexanderramin/skilltrade/internal/marketplace"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App holds the marketplace services and process plumbing used by CLI
// commands.
type App struct {
	*marketplace.Marketplace

	Logger *zap.Logger
	// Metrics is gathered by run --metrics. Nil disables the flag.
	Metrics prometheus.Gatherer
	// ShowMetrics makes run print metrics without the flag.
	ShowMetrics bool
}

// GlobalFlags are the persistent flags every command accepts.
type GlobalFlags struct {
	Seed   string
	Config string
}

// Bootstrap builds the App once the persistent flags are parsed.
type Bootstrap func(ctx context.Context, flags GlobalFlags) (*App, error)

// NewRootCmd creates the top-level "skilltrade" command. The App is built
// by boot before any subcommand runs.
func NewRootCmd(boot Bootstrap) *cobra.Command {
	app := &App{}
	var flags GlobalFlags

	root := &cobra.Command{
		Use:           "skilltrade",
		Short:         "Skill-trading marketplace: projects, matching and milestone payouts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			built, err := boot(cmd.Context(), flags)
			if err != nil {
				return err
			}
			*app = *built
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				_ = app.Logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&flags.Seed, "seed", "", "Seed file (default: bundled sample data)")
	root.PersistentFlags().StringVar(&flags.Config, "config", "", "Config file (default: $SKILLTRADE_CONFIG)")

	root.AddCommand(
		newProjectCmd(app),
		newCandidateCmd(app),
		newMatchCmd(app),
		newRecommendCmd(app),
		newCertificateCmd(app),
		newEscrowCmd(app),
		newRunCmd(app),
	)

	return root
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/skilltrade/internal/cli"
	"github.com/alexanderramin/skilltrade/internal/cli/formatter"
	"github.com/alexanderramin/skilltrade/internal/config"
	"github.com/alexanderramin/skilltrade/internal/domain"
	"github.com/alexanderramin/skilltrade/internal/marketplace"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fd := os.Stdout.Fd()
	formatter.SetPlain(!isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd))

	rootCmd := cli.NewRootCmd(bootstrap)
	return rootCmd.ExecuteContext(context.Background())
}

// bootstrap loads configuration, then wires logging, metrics, the seed and
// the services. Flags win over config values.
func bootstrap(ctx context.Context, flags cli.GlobalFlags) (*cli.App, error) {
	cfg, err := config.Load(flags.Config)
	if err != nil {
		return nil, err
	}

	logger, err := cfg.Log.NewLogger()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	registry := prometheus.NewRegistry()
	m, err := marketplace.New(ctx, marketplace.Options{
		SeedPath:    domain.CoalesceStr(flags.Seed, cfg.Seed),
		Logger:      logger,
		LogUseCases: cfg.Log.UseCases,
		Registerer:  registry,
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("marketplace ready",
		zap.Int("candidates", m.Seeded.Candidates),
		zap.Int("projects", m.Seeded.Projects))

	return &cli.App{
		Marketplace: m,
		Logger:      logger,
		Metrics:     registry,
		ShowMetrics: cfg.Metrics,
	}, nil
}

// Package marketplace wires the in-memory stores, the seed and the
// services into one ready-to-use value.
package marketplace

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/skilltrade/internal/repository"
	"github.com/alexanderramin/skilltrade/internal/scenario"
	"github.com/alexanderramin/skilltrade/internal/seed"
	"github.com/alexanderramin/skilltrade/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type Options struct {
	// SeedPath is a seed file. Empty loads the bundled seed.
	SeedPath string
	// SkipSeed starts from empty stores.
	SkipSeed bool
	// Logger receives use-case entries when LogUseCases is set.
	Logger      *zap.Logger
	LogUseCases bool
	// Registerer, when set, receives the use-case metrics.
	Registerer prometheus.Registerer
	Clock      func() time.Time
}

// Marketplace holds every service over one set of stores.
type Marketplace struct {
	Projects      service.ProjectService
	Matches       service.MatchService
	Lifecycle     service.LifecycleService
	Escrow        service.EscrowService
	Certificates  service.CertificateService
	Notifications service.NotificationService

	Candidates    repository.CandidateDirectory
	Organizations repository.OrganizationDirectory

	// Seeded is nil when SkipSeed was set.
	Seeded *seed.Summary
}

// New builds the stores, loads the seed and wires the services.
func New(ctx context.Context, opts Options) (*Marketplace, error) {
	clock := opts.Clock
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}

	var observers service.MultiObserver
	if opts.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(opts.Logger))
	}
	if opts.Registerer != nil {
		metrics, err := service.NewMetricsUseCaseObserver(opts.Registerer)
		if err != nil {
			return nil, fmt.Errorf("registering metrics: %w", err)
		}
		observers = append(observers, metrics)
	}
	svcOpts := []service.Option{service.WithClock(clock)}
	if len(observers) > 0 {
		svcOpts = append(svcOpts, service.WithObserver(observers))
	}

	projects := repository.NewMemoryProjectRepo()
	escrowRepo := repository.NewMemoryEscrowRepo()
	certs := repository.NewMemoryCertificateRepo()
	notifications := repository.NewMemoryNotificationRepo()
	dir := repository.NewMemoryDirectory()

	m := &Marketplace{
		Candidates:    dir,
		Organizations: dir,
	}

	if !opts.SkipSeed {
		doc, err := seed.Load(opts.SeedPath)
		if err != nil {
			return nil, fmt.Errorf("loading seed: %w", err)
		}
		m.Seeded, err = seed.Apply(ctx, doc, seed.Targets{
			Directory:    dir,
			Projects:     projects,
			Escrow:       escrowRepo,
			Certificates: certs,
		}, clock())
		if err != nil {
			return nil, fmt.Errorf("applying seed: %w", err)
		}
	}

	m.Projects = service.NewProjectService(projects, dir, svcOpts...)
	m.Matches = service.NewMatchService(projects, dir, svcOpts...)
	m.Escrow = service.NewEscrowService(projects, escrowRepo, svcOpts...)
	m.Certificates = service.NewCertificateService(projects, dir, certs, svcOpts...)
	m.Notifications = service.NewNotificationService(notifications, svcOpts...)
	m.Lifecycle = service.NewLifecycleService(projects, m.Escrow, m.Notifications, svcOpts...)
	return m, nil
}

// ScenarioServices exposes the services a scenario script drives.
func (m *Marketplace) ScenarioServices() scenario.Services {
	return scenario.Services{
		Projects:     m.Projects,
		Lifecycle:    m.Lifecycle,
		Escrow:       m.Escrow,
		Certificates: m.Certificates,
	}
}

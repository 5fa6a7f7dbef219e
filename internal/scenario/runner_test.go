package scenario

import (
	"context"
	"testing"

	"github.com/alexanderramin/skilltrade/internal/domain"
	"github.com/alexanderramin/skilltrade/internal/repository"
	"github.com/alexanderramin/skilltrade/internal/seed"
	"github.com/alexanderramin/skilltrade/internal/service"
	"github.com/alexanderramin/skilltrade/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type harness struct {
	svc    Services
	runner *Runner
}

// newHarness wires the services over in-memory stores loaded with the
// bundled seed.
func newHarness(t *testing.T) *harness {
	t.Helper()
	ctx := context.Background()

	projects := repository.NewMemoryProjectRepo()
	escrowRepo := repository.NewMemoryEscrowRepo()
	certs := repository.NewMemoryCertificateRepo()
	dir := repository.NewMemoryDirectory()

	doc, err := seed.Load("")
	require.NoError(t, err)
	_, err = seed.Apply(ctx, doc, seed.Targets{
		Directory:    dir,
		Projects:     projects,
		Escrow:       escrowRepo,
		Certificates: certs,
	}, testutil.FixedNow)
	require.NoError(t, err)

	clock := service.WithClock(testutil.FixedClock())
	escrow := service.NewEscrowService(projects, escrowRepo, clock)
	svc := Services{
		Projects:     service.NewProjectService(projects, dir, clock),
		Lifecycle:    service.NewLifecycleService(projects, escrow, nil, clock),
		Escrow:       escrow,
		Certificates: service.NewCertificateService(projects, dir, certs, clock),
	}
	return &harness{svc: svc, runner: NewRunner(svc, zaptest.NewLogger(t))}
}

func (h *harness) run(t *testing.T, yaml string) (*Report, error) {
	t.Helper()
	s, err := Parse([]byte(yaml))
	require.NoError(t, err)
	return h.runner.Run(context.Background(), s)
}

func TestRun_FullLifecycle(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	s, err := Load("testdata/full_lifecycle.yaml")
	require.NoError(t, err)

	report, err := h.runner.Run(ctx, s)
	require.NoError(t, err)
	assert.False(t, report.Failed())
	require.Len(t, report.Steps, len(s.Steps))
	require.Len(t, report.ProjectIDs, 1)

	projectID := report.ProjectIDs[0]
	p, err := h.svc.Projects.GetByID(ctx, projectID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectCompleted, p.Status)
	assert.Equal(t, "stu-1", p.SelectedCandidateID)
	assert.Equal(t, 100.0, p.Progress())
	require.Len(t, p.Applicants, 2)
	assert.Equal(t, domain.ApplicationAccepted, p.Applicants[0].Status)
	assert.Equal(t, domain.ApplicationRejected, p.Applicants[1].Status)

	txs, err := h.svc.Escrow.ListByProject(ctx, projectID)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, domain.EscrowReleased, txs[0].Status)
	assert.Equal(t, 1200.0, txs[0].Amount)

	require.Len(t, report.Certificates, 1)
	cert := report.Certificates[0]
	assert.Equal(t, "stu-1", cert.CandidateID)
	assert.Equal(t, "TechFlow AI", cert.OrganizationName)
	require.NotNil(t, cert.HoursWorked)
	assert.Equal(t, 6*domain.HoursPerWeek, *cert.HoursWorked)

	last := report.Steps[len(report.Steps)-1]
	assert.Contains(t, last.Detail, "project completed")
}

func TestRun_StopsAtFirstError(t *testing.T) {
	h := newHarness(t)

	report, err := h.run(t, `
steps:
  - action: accept
    project: proj-1
    application: app-missing
  - action: release
    project: proj-1
`)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrApplicationNotFound)
	assert.Contains(t, err.Error(), "step 1 (accept)")
	require.Len(t, report.Steps, 1)
	assert.True(t, report.Failed())
}

func TestRun_ContinueOnError(t *testing.T) {
	h := newHarness(t)

	report, err := h.run(t, `
steps:
  - action: accept
    project: proj-1
    application: app-missing
    continue_on_error: true
  - action: release
    project: proj-1
`)
	require.NoError(t, err)
	require.Len(t, report.Steps, 2)
	assert.Error(t, report.Steps[0].Err)
	assert.Equal(t, "nothing locked", report.Steps[1].Detail)
	assert.True(t, report.Failed())
}

func TestRun_ExpectError(t *testing.T) {
	tests := []struct {
		name    string
		expect  string
		wantErr string
	}{
		{name: "matching substring passes", expect: "application not found"},
		{name: "different error fails", expect: "escrow", wantErr: "expected error containing \"escrow\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			_, err := h.run(t, `
steps:
  - action: reject
    project: proj-1
    application: nope
    expect_error: "`+tt.expect+`"
`)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRun_ExpectErrorWithoutFailure(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, `
steps:
  - action: release
    project: proj-1
    expect_error: anything
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got none")
}

func TestRun_MilestoneResolution(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	// proj-4 is seeded with its second milestone in progress.
	report, err := h.run(t, `
steps:
  - action: submit
    project: proj-4
    submission: charts
`)
	require.NoError(t, err)
	assert.Equal(t, "submitted proj-4-ms2", report.Steps[0].Detail)

	p, err := h.svc.Projects.GetByID(ctx, "proj-4")
	require.NoError(t, err)
	assert.Equal(t, domain.MilestoneSubmitted, p.Milestones[1].Status)

	_, err = h.run(t, `
steps:
  - action: submit
    project: proj-4
    milestone: "7"
`)
	assert.ErrorIs(t, err, domain.ErrMilestoneNotFound)
}

func TestRun_UpdateProject(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, `
steps:
  - action: update_project
    project: proj-2
    patch:
      title: Renamed
      compensation: 750
`)
	require.NoError(t, err)

	p, err := h.svc.Projects.GetByID(context.Background(), "proj-2")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", p.Title)
	assert.Equal(t, 750.0, p.Compensation)
}

func TestRun_FundTwiceFails(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, `
steps:
  - action: fund
    project: proj-4
    amount: 100
`)
	assert.ErrorIs(t, err, domain.ErrEscrowAlreadyLocked)
}

func TestNewRunner_NilLogger(t *testing.T) {
	r := NewRunner(Services{}, nil)
	assert.NotNil(t, r.logger)
}

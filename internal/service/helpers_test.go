package service

import (
	"context"
	"strings"
	"testing"

	"github.com/alexanderramin/skilltrade/internal/domain"
	"github.com/alexanderramin/skilltrade/internal/repository"
	"github.com/alexanderramin/skilltrade/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEnv wires every service over fresh in-memory stores.
type testEnv struct {
	projectRepo  *repository.MemoryProjectRepo
	escrowRepo   *repository.MemoryEscrowRepo
	certRepo     *repository.MemoryCertificateRepo
	notifyRepo   *repository.MemoryNotificationRepo
	directory    *repository.MemoryDirectory
	projects     ProjectService
	matches      MatchService
	escrow       EscrowService
	certificates CertificateService
	notifier     NotificationService
	lifecycle    LifecycleService
}

func newTestEnv(t *testing.T, opts ...Option) *testEnv {
	t.Helper()
	opts = append([]Option{WithClock(testutil.FixedClock())}, opts...)

	env := &testEnv{
		projectRepo: repository.NewMemoryProjectRepo(),
		escrowRepo:  repository.NewMemoryEscrowRepo(),
		certRepo:    repository.NewMemoryCertificateRepo(),
		notifyRepo:  repository.NewMemoryNotificationRepo(),
		directory:   repository.NewMemoryDirectory(),
	}
	env.projects = NewProjectService(env.projectRepo, env.directory, opts...)
	env.matches = NewMatchService(env.projectRepo, env.directory, opts...)
	env.escrow = NewEscrowService(env.projectRepo, env.escrowRepo, opts...)
	env.certificates = NewCertificateService(env.projectRepo, env.directory, env.certRepo, opts...)
	env.notifier = NewNotificationService(env.notifyRepo, opts...)
	env.lifecycle = NewLifecycleService(env.projectRepo, env.escrow, env.notifier, opts...)
	return env
}

func (e *testEnv) addCandidate(t *testing.T, c *domain.Candidate) *domain.Candidate {
	t.Helper()
	require.NoError(t, e.directory.AddCandidate(context.Background(), c))
	return c
}

func (e *testEnv) createProject(t *testing.T, title string, opts ...testutil.ProjectOption) *domain.Project {
	t.Helper()
	p, err := e.projects.Create(context.Background(), testutil.NewTestProjectInput(title, opts...))
	require.NoError(t, err)
	return p
}

func (e *testEnv) apply(t *testing.T, projectID, candidateID string) *domain.Application {
	t.Helper()
	app, err := e.projects.Apply(context.Background(), domain.ApplicationInput{
		ProjectID:   projectID,
		CandidateID: candidateID,
		CoverLetter: "I would love to help.",
	})
	require.NoError(t, err)
	return app
}

func (e *testEnv) reload(t *testing.T, id string) *domain.Project {
	t.Helper()
	p, err := e.projects.GetByID(context.Background(), id)
	require.NoError(t, err)
	return p
}

// startedProject returns a project with an accepted candidate and the first
// milestone in progress.
func (e *testEnv) startedProject(t *testing.T, title string, opts ...testutil.ProjectOption) (*domain.Project, *domain.Candidate) {
	t.Helper()
	cand := e.addCandidate(t, testutil.NewTestCandidate("Worker"))
	p := e.createProject(t, title, opts...)
	app := e.apply(t, p.ID, cand.ID)
	p, err := e.lifecycle.AcceptApplication(context.Background(), p.ID, app.ID)
	require.NoError(t, err)
	return p, cand
}

func TestNewID_Prefix(t *testing.T) {
	a, b := newID("proj"), newID("proj")
	assert.True(t, strings.HasPrefix(a, "proj-"))
	assert.NotEqual(t, a, b)
}

func TestBuildOptions_IgnoresNil(t *testing.T) {
	o := buildOptions([]Option{WithClock(nil), WithObserver(nil)})
	assert.NotNil(t, o.clock)
	assert.IsType(t, NoopUseCaseObserver{}, o.observer)
}

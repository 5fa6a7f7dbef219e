package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/skilltrade/internal/cli/formatter"
	"github.com/alexanderramin/skilltrade/internal/domain"
	"github.com/alexanderramin/skilltrade/internal/marketplace"
	"github.com/alexanderramin/skilltrade/internal/testutil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	formatter.SetPlain(true)
	os.Exit(m.Run())
}

// testBoot wires a full App over the bundled seed for CLI integration
// tests. The flags it was called with are stored in seen.
func testBoot(t *testing.T, seen *GlobalFlags) Bootstrap {
	t.Helper()
	return func(ctx context.Context, flags GlobalFlags) (*App, error) {
		if seen != nil {
			*seen = flags
		}
		reg := prometheus.NewRegistry()
		m, err := marketplace.New(ctx, marketplace.Options{
			SeedPath:   flags.Seed,
			Registerer: reg,
			Clock:      testutil.FixedClock(),
		})
		if err != nil {
			return nil, err
		}
		return &App{Marketplace: m, Logger: zaptest.NewLogger(t), Metrics: reg}, nil
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWith(t, testBoot(t, nil), args...)
}

func executeWith(t *testing.T, boot Bootstrap, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(boot)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// --- Root ---

func TestRootCmd_PassesPersistentFlags(t *testing.T) {
	var seen GlobalFlags
	_, err := executeWith(t, testBoot(t, &seen), "--config", "cfg.yaml", "candidates", "list")
	require.NoError(t, err)
	assert.Equal(t, "cfg.yaml", seen.Config)
	assert.Empty(t, seen.Seed)
}

func TestRootCmd_BootstrapErrorStopsCommand(t *testing.T) {
	boot := func(context.Context, GlobalFlags) (*App, error) {
		return nil, errors.New("no seed")
	}
	_, err := executeWith(t, boot, "projects", "list")
	assert.EqualError(t, err, "no seed")
}

func TestRootCmd_MissingSeedFile(t *testing.T) {
	_, err := executeCmd(t, "--seed", filepath.Join(t.TempDir(), "nope.yaml"), "projects", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading seed")
}

// --- Projects ---

func TestProjectsList_All(t *testing.T) {
	out, err := executeCmd(t, "projects", "list")
	require.NoError(t, err)

	for _, title := range []string{
		"Build a Customer Dashboard",
		"Carbon Data Pipeline",
		"Mobile App Redesign",
		"API Documentation Overhaul",
		"Sustainability Report Analysis",
	} {
		assert.Contains(t, out, title)
	}
}

func TestProjectsList_Filters(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{
			name:    "skill",
			args:    []string{"--skill", "python"},
			want:    []string{"Carbon Data Pipeline"},
			notWant: []string{"Sustainability Report Analysis", "Build a Customer Dashboard"},
		},
		{
			name:    "type",
			args:    []string{"--type", "project-gig"},
			want:    []string{"Build a Customer Dashboard", "Mobile App Redesign"},
			notWant: []string{"Carbon Data Pipeline"},
		},
		{
			name:    "search",
			args:    []string{"--search", "redesign"},
			want:    []string{"Mobile App Redesign"},
			notWant: []string{"Build a Customer Dashboard"},
		},
		{
			name:    "org",
			args:    []string{"--org", "org-2"},
			want:    []string{"Sustainability Report Analysis"},
			notWant: []string{"API Documentation Overhaul"},
		},
		{
			name:    "candidate",
			args:    []string{"--candidate", "stu-1"},
			want:    []string{"API Documentation Overhaul"},
			notWant: []string{"Build a Customer Dashboard"},
		},
		{
			name:    "open",
			args:    []string{"--open"},
			want:    []string{"Carbon Data Pipeline"},
			notWant: []string{"API Documentation Overhaul"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCmd(t, append([]string{"projects", "list"}, tt.args...)...)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			for _, nw := range tt.notWant {
				assert.NotContains(t, out, nw)
			}
		})
	}
}

func TestProjectsList_InvalidType(t *testing.T) {
	_, err := executeCmd(t, "projects", "list", "--type", "full-time")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid project type")
}

func TestProjectsShow(t *testing.T) {
	out, err := executeCmd(t, "projects", "show", "proj-4")
	require.NoError(t, err)

	assert.Contains(t, out, "API Documentation Overhaul")
	assert.Contains(t, out, "TechFlow AI")
	assert.Contains(t, out, "Sarah Chen")
	assert.Contains(t, out, "app-3")
	assert.Contains(t, out, "Mid-Point")
	assert.Contains(t, out, "33%")
}

func TestProjectsShow_NotFound(t *testing.T) {
	_, err := executeCmd(t, "projects", "show", "proj-404")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestProjectsSkills(t *testing.T) {
	out, err := executeCmd(t, "projects", "skills")
	require.NoError(t, err)
	assert.Contains(t, out, "React")
	assert.Contains(t, out, "Figma")
	assert.NotContains(t, out, "Technical Writing")
}

// --- Candidates, matching ---

func TestCandidatesList(t *testing.T) {
	out, err := executeCmd(t, "candidates", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Sarah Chen")
	assert.Contains(t, out, "85 Excellent")
	assert.Contains(t, out, "45 Needs Work")
}

func TestMatch(t *testing.T) {
	out, err := executeCmd(t, "match", "stu-1", "proj-1")
	require.NoError(t, err)
	assert.Contains(t, out, "% match")
	assert.Contains(t, out, "Skill overlap")
	assert.Contains(t, out, "Build a Customer Dashboard")
}

func TestMatch_UnknownCandidate(t *testing.T) {
	_, err := executeCmd(t, "match", "stu-404", "proj-1")
	assert.ErrorIs(t, err, domain.ErrCandidateNotFound)
}

func TestRecommendProjects_Limit(t *testing.T) {
	out, err := executeCmd(t, "recommend", "projects", "stu-1", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Build a Customer Dashboard")
	assert.NotContains(t, out, "Mobile App Redesign")
	assert.NotContains(t, out, "API Documentation Overhaul", "only open projects are recommended")
}

func TestRecommendCandidates(t *testing.T) {
	out, err := executeCmd(t, "recommend", "candidates", "proj-2", "-n", "0")
	require.NoError(t, err)
	for _, name := range []string{"Sarah Chen", "Marcus Johnson", "Emily Rodriguez", "David Kim"} {
		assert.Contains(t, out, name)
	}
}

// --- Ledgers ---

func TestCertificatesList(t *testing.T) {
	out, err := executeCmd(t, "certificates", "list", "--candidate", "stu-2")
	require.NoError(t, err)
	assert.Contains(t, out, "cert-1")
	assert.Contains(t, out, "60h")

	out, err = executeCmd(t, "certificates", "list", "--candidate", "stu-1")
	require.NoError(t, err)
	assert.Contains(t, out, "No certificates issued.")
}

func TestEscrowList(t *testing.T) {
	out, err := executeCmd(t, "escrow", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "esc-1")
	assert.Contains(t, out, "esc-2")

	out, err = executeCmd(t, "escrow", "list", "--project", "proj-4")
	require.NoError(t, err)
	assert.Contains(t, out, "esc-1")
	assert.NotContains(t, out, "esc-2")
}

// --- Run ---

const completeDashboard = `
name: finish the dashboard
steps:
  - action: accept
    project: proj-1
    application: app-1
  - action: fund
    project: proj-1
    amount: 1200
  - action: submit
    project: proj-1
    submission: plan
  - action: approve
    project: proj-1
    rating: 5
    comment: Clear plan, realistic scope and a component inventory we can reuse.
  - action: submit
    project: proj-1
    submission: charts
  - action: approve
    project: proj-1
    rating: 4
    comment: Charts are migrated and the feature flag rollout went without issue.
  - action: submit
    project: proj-1
    submission: handoff
  - action: approve
    project: proj-1
    rating: 5
    comment: Delivered on time with thorough docs and a clean handoff to the team.
`

func TestRun_CompletesProject(t *testing.T) {
	out, err := executeCmd(t, "run", writeScenario(t, completeDashboard))
	require.NoError(t, err)

	assert.Contains(t, out, "FINISH THE DASHBOARD")
	assert.Contains(t, out, "project completed")
	assert.Contains(t, out, "Completed")
	assert.Contains(t, out, "released $1,200")
	assert.Contains(t, out, "60h")
	assert.NotContains(t, out, "skilltrade_use_case_total")
}

func TestRun_Metrics(t *testing.T) {
	out, err := executeCmd(t, "run", writeScenario(t, completeDashboard), "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, `skilltrade_use_case_total{success="true",use_case="approve-milestone"} 3`)
	assert.Contains(t, out, "skilltrade_use_case_duration_seconds")
}

func TestRun_ReportsFailingStep(t *testing.T) {
	out, err := executeCmd(t, "run", writeScenario(t, `
steps:
  - action: submit
    project: proj-1
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 1 (submit)")
	assert.Contains(t, out, "✖")
}

func TestRun_InvalidScript(t *testing.T) {
	_, err := executeCmd(t, "run", writeScenario(t, "steps: []\n"))
	assert.Error(t, err)
}

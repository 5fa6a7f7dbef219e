package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/skilltrade/internal/domain"
	"github.com/alexanderramin/skilltrade/internal/match"
	"github.com/alexanderramin/skilltrade/internal/mocks"
	"github.com/alexanderramin/skilltrade/internal/repository"
	"github.com/alexanderramin/skilltrade/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMatchService_MatchScore(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cand := env.addCandidate(t, testutil.NewTestCandidate("Maya",
		testutil.WithCandidateSkills("react", "node"),
		testutil.WithVerificationLevel(2),
		testutil.WithTrustScore(60),
	))
	p := env.createProject(t, "UI", testutil.WithSkills("React"))

	score, err := env.matches.MatchScore(ctx, cand.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 74, score) // 50 + 15 + 9

	again, err := env.matches.MatchScore(ctx, cand.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, score, again, "scoring is pure")
}

func TestMatchService_MatchScore_MissingIsZero(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cand := env.addCandidate(t, testutil.NewTestCandidate("Maya"))
	p := env.createProject(t, "UI")

	score, err := env.matches.MatchScore(ctx, "stu-missing", p.ID)
	require.NoError(t, err)
	assert.Zero(t, score)

	score, err = env.matches.MatchScore(ctx, cand.ID, "proj-missing")
	require.NoError(t, err)
	assert.Zero(t, score)
}

func TestMatchService_Explain(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cand := env.addCandidate(t, testutil.NewTestCandidate("Leo",
		testutil.WithLearningGoals("testing"),
	))
	p := env.createProject(t, "QA", testutil.WithSkills(), testutil.WithMentorship("Testing strategy sessions"))

	res, err := env.matches.Explain(ctx, cand.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Skill, "zero-skill project contributes nothing")
	assert.Equal(t, match.GoalPoints, res.Goals)
	assert.Equal(t, 28, res.Score) // 0 + 20 + 7.5 rounds up

	_, err = env.matches.Explain(ctx, "stu-missing", p.ID)
	assert.ErrorIs(t, err, domain.ErrCandidateNotFound)
}

func TestMatchService_RecommendedProjectsFor_SortedAndStable(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cand := env.addCandidate(t, testutil.NewTestCandidate("Maya", testutil.WithCandidateSkills("Go")))
	tie1 := env.createProject(t, "Tie One", testutil.WithSkills("Elixir"))
	top := env.createProject(t, "Top", testutil.WithSkills("Go"))
	env.createProject(t, "Closed", testutil.WithSkills("Go"), testutil.WithProjectStatus(domain.ProjectCompleted))
	tie2 := env.createProject(t, "Tie Two", testutil.WithSkills("Scala"))

	ranked, err := env.matches.RecommendedProjectsFor(ctx, cand.ID)
	require.NoError(t, err)
	require.Len(t, ranked, 3, "only open projects are recommended")

	assert.Equal(t, top.ID, ranked[0].Project.ID)
	assert.Equal(t, tie1.ID, ranked[1].Project.ID)
	assert.Equal(t, tie2.ID, ranked[2].Project.ID)
	assert.Equal(t, ranked[1].Result.Score, ranked[2].Result.Score)
}

func TestMatchService_RecommendedCandidatesFor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	low := env.addCandidate(t, testutil.NewTestCandidate("Low"))
	high := env.addCandidate(t, testutil.NewTestCandidate("High", testutil.WithCandidateSkills("Python"), testutil.WithTrustScore(90)))
	p := env.createProject(t, "ML", testutil.WithSkills("Python"))

	ranked, err := env.matches.RecommendedCandidatesFor(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, high.ID, ranked[0].Candidate.ID)
	assert.Equal(t, low.ID, ranked[1].Candidate.ID)
}

func TestMatchService_Recommendations_UnknownIDsAreEmpty(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	projects, err := env.matches.RecommendedProjectsFor(ctx, "stu-missing")
	require.NoError(t, err)
	assert.Empty(t, projects)

	candidates, err := env.matches.RecommendedCandidatesFor(ctx, "proj-missing")
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestMatchService_DirectoryErrorsPropagate(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := mocks.NewMockCandidateDirectory(ctrl)
	projects := repository.NewMemoryProjectRepo()
	ctx := context.Background()

	p := testutil.NewTestProject("Any")
	require.NoError(t, projects.Create(ctx, p))

	svc := NewMatchService(projects, dir)
	boom := errors.New("directory offline")

	dir.EXPECT().ListCandidates(gomock.Any()).Return(nil, boom)
	_, err := svc.RecommendedCandidatesFor(ctx, p.ID)
	assert.ErrorIs(t, err, boom)

	dir.EXPECT().GetCandidate(gomock.Any(), "stu-1").Return(nil, boom)
	_, err = svc.MatchScore(ctx, "stu-1", p.ID)
	assert.ErrorIs(t, err, boom, "only not-found degrades to a zero score")
}

package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/skilltrade/internal/domain"
	"github.com/alexanderramin/skilltrade/internal/match"
	"github.com/alexanderramin/skilltrade/internal/repository"
)

type matchService struct {
	projects   repository.ProjectRepo
	candidates repository.CandidateDirectory
	options
}

func NewMatchService(
	projects repository.ProjectRepo,
	candidates repository.CandidateDirectory,
	opts ...Option,
) MatchService {
	return &matchService{
		projects:   projects,
		candidates: candidates,
		options:    buildOptions(opts),
	}
}

// MatchScore returns 0 without error when either side is unknown.
func (s *matchService) MatchScore(ctx context.Context, candidateID, projectID string) (int, error) {
	res, err := s.Explain(ctx, candidateID, projectID)
	if err != nil {
		if domain.IsNotFound(err) {
			return 0, nil
		}
		return 0, err
	}
	return res.Score, nil
}

// Explain returns the per-factor breakdown. Unlike MatchScore it reports
// unknown ids.
func (s *matchService) Explain(ctx context.Context, candidateID, projectID string) (*match.Result, error) {
	cand, err := s.candidates.GetCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	res := match.Score(cand, p)
	return &res, nil
}

// RecommendedProjectsFor ranks open projects for the candidate. An unknown
// candidate gets no recommendations.
func (s *matchService) RecommendedProjectsFor(ctx context.Context, candidateID string) (ranked []match.ProjectMatch, err error) {
	fields := map[string]any{"candidate": candidateID}
	defer s.observe(ctx, "recommend-projects", fields)(&err)

	cand, lookupErr := s.candidates.GetCandidate(ctx, candidateID)
	if lookupErr != nil {
		if domain.IsNotFound(lookupErr) {
			return []match.ProjectMatch{}, nil
		}
		return nil, lookupErr
	}

	var all []*domain.Project
	all, err = s.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	open := make([]*domain.Project, 0, len(all))
	for _, p := range all {
		if p.Status == domain.ProjectOpen {
			open = append(open, p)
		}
	}
	ranked = match.RankProjects(cand, open)
	fields["count"] = len(ranked)
	return ranked, nil
}

// RecommendedCandidatesFor ranks every known candidate for the project. An
// unknown project gets no recommendations.
func (s *matchService) RecommendedCandidatesFor(ctx context.Context, projectID string) (ranked []match.CandidateMatch, err error) {
	fields := map[string]any{"project": projectID}
	defer s.observe(ctx, "recommend-candidates", fields)(&err)

	p, lookupErr := s.projects.GetByID(ctx, projectID)
	if lookupErr != nil {
		if domain.IsNotFound(lookupErr) {
			return []match.CandidateMatch{}, nil
		}
		return nil, lookupErr
	}

	var candidates []*domain.Candidate
	candidates, err = s.candidates.ListCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing candidates: %w", err)
	}
	ranked = match.RankCandidates(p, candidates)
	fields["count"] = len(ranked)
	return ranked, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/skilltrade/internal/domain"
	"github.com/alexanderramin/skilltrade/internal/match"
	"github.com/alexanderramin/skilltrade/internal/repository"
)

type projectService struct {
	projects   repository.ProjectRepo
	candidates repository.CandidateDirectory
	options
}

func NewProjectService(
	projects repository.ProjectRepo,
	candidates repository.CandidateDirectory,
	opts ...Option,
) ProjectService {
	return &projectService{
		projects:   projects,
		candidates: candidates,
		options:    buildOptions(opts),
	}
}

func (s *projectService) Create(ctx context.Context, in domain.ProjectInput) (p *domain.Project, err error) {
	fields := map[string]any{"organization": in.OrganizationID}
	defer s.observe(ctx, "create-project", fields)(&err)

	p = domain.NewProject(newID("proj"), in, s.clock())
	if err = s.projects.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}
	fields["project"] = p.ID
	return p, nil
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *projectService) ListOpen(ctx context.Context) ([]*domain.Project, error) {
	return s.filter(ctx, func(p *domain.Project) bool {
		return p.Status == domain.ProjectOpen
	})
}

func (s *projectService) ListByOrganization(ctx context.Context, organizationID string) ([]*domain.Project, error) {
	return s.filter(ctx, func(p *domain.Project) bool {
		return p.OrganizationID == organizationID
	})
}

func (s *projectService) ListByCandidate(ctx context.Context, candidateID string) ([]*domain.Project, error) {
	return s.filter(ctx, func(p *domain.Project) bool {
		return candidateID != "" && p.SelectedCandidateID == candidateID
	})
}

func (s *projectService) SearchOpen(ctx context.Context, f domain.ProjectFilter) ([]*domain.Project, error) {
	return s.filter(ctx, func(p *domain.Project) bool {
		return p.Status == domain.ProjectOpen && p.Matches(f)
	})
}

// SkillCatalog lists the distinct skills of open projects in first-seen
// order. Skills differing only in case are reported once.
func (s *projectService) SkillCatalog(ctx context.Context) ([]string, error) {
	open, err := s.ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var out []string
	for _, p := range open {
		for _, skill := range p.Skills {
			key := strings.ToLower(skill)
			if skill == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, skill)
		}
	}
	return out, nil
}

func (s *projectService) Update(ctx context.Context, id string, patch domain.ProjectPatch) (p *domain.Project, err error) {
	defer s.observe(ctx, "update-project", map[string]any{"project": id})(&err)

	p, err = s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Apply(patch)
	if err = s.projects.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("updating project %s: %w", id, err)
	}
	return p, nil
}

func (s *projectService) UpdateMilestone(ctx context.Context, projectID, milestoneID string, patch domain.MilestonePatch) (p *domain.Project, err error) {
	defer s.observe(ctx, "update-milestone", map[string]any{
		"project":   projectID,
		"milestone": milestoneID,
	})(&err)

	p, err = s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err = p.UpdateMilestone(milestoneID, patch); err != nil {
		return nil, err
	}
	if err = s.projects.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("updating project %s: %w", projectID, err)
	}
	return p, nil
}

// Apply records a pending application with its match score frozen at the
// time of applying. An unknown candidate still applies, with a score of 0.
func (s *projectService) Apply(ctx context.Context, in domain.ApplicationInput) (app *domain.Application, err error) {
	fields := map[string]any{
		"project":   in.ProjectID,
		"candidate": in.CandidateID,
	}
	defer s.observe(ctx, "apply", fields)(&err)

	var p *domain.Project
	p, err = s.projects.GetByID(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}

	score := 0
	cand, lookupErr := s.candidates.GetCandidate(ctx, in.CandidateID)
	switch {
	case lookupErr == nil:
		score = match.Score(cand, p).Score
	case !errors.Is(lookupErr, domain.ErrCandidateNotFound):
		err = fmt.Errorf("scoring application: %w", lookupErr)
		return nil, err
	}

	p.Applicants = append(p.Applicants, domain.Application{
		ID:            newID("app"),
		ProjectID:     p.ID,
		CandidateID:   in.CandidateID,
		AppliedAt:     s.clock(),
		Status:        domain.ApplicationPending,
		CoverLetter:   in.CoverLetter,
		VideoPitchURL: in.VideoPitchURL,
		MatchScore:    score,
	})
	if err = s.projects.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("recording application: %w", err)
	}
	recorded := p.Applicants[len(p.Applicants)-1]
	fields["application"] = recorded.ID
	fields["match_score"] = score
	return &recorded, nil
}

func (s *projectService) filter(ctx context.Context, keep func(*domain.Project) bool) ([]*domain.Project, error) {
	all, err := s.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	out := make([]*domain.Project, 0, len(all))
	for _, p := range all {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

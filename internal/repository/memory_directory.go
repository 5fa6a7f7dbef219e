package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/skilltrade/internal/domain"
)

// MemoryDirectory is a seeded CandidateDirectory and OrganizationDirectory.
type MemoryDirectory struct {
	candidates    *orderedTable[*domain.Candidate]
	organizations *orderedTable[*domain.Organization]
}

func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{
		candidates:    newOrderedTable(cloneCandidate),
		organizations: newOrderedTable(cloneOrganization),
	}
}

func (d *MemoryDirectory) AddCandidate(_ context.Context, c *domain.Candidate) error {
	if err := d.candidates.insert(c.ID, c); err != nil {
		return fmt.Errorf("adding candidate: %w", err)
	}
	return nil
}

func (d *MemoryDirectory) AddOrganization(_ context.Context, o *domain.Organization) error {
	if err := d.organizations.insert(o.ID, o); err != nil {
		return fmt.Errorf("adding organization: %w", err)
	}
	return nil
}

func (d *MemoryDirectory) GetCandidate(_ context.Context, id string) (*domain.Candidate, error) {
	c, ok := d.candidates.get(id)
	if !ok {
		return nil, fmt.Errorf("candidate %s: %w", id, domain.ErrCandidateNotFound)
	}
	return c, nil
}

func (d *MemoryDirectory) ListCandidates(_ context.Context) ([]*domain.Candidate, error) {
	return d.candidates.filter(nil), nil
}

func (d *MemoryDirectory) GetOrganization(_ context.Context, id string) (*domain.Organization, error) {
	o, ok := d.organizations.get(id)
	if !ok {
		return nil, fmt.Errorf("organization %s: %w", id, domain.ErrOrganizationNotFound)
	}
	return o, nil
}

func (d *MemoryDirectory) ListOrganizations(_ context.Context) ([]*domain.Organization, error) {
	return d.organizations.filter(nil), nil
}

func cloneCandidate(c *domain.Candidate) *domain.Candidate {
	out := *c
	out.Skills = append([]domain.Skill(nil), c.Skills...)
	out.LearningGoals = append([]string(nil), c.LearningGoals...)
	return &out
}

func cloneOrganization(o *domain.Organization) *domain.Organization {
	out := *o
	return &out
}

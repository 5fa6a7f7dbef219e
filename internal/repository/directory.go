package repository

import (
	"context"

	"github.com/alexanderramin/skilltrade/internal/domain"
)

// CandidateDirectory supplies candidate profiles. The marketplace core only
// reads from it.
type CandidateDirectory interface {
	GetCandidate(ctx context.Context, id string) (*domain.Candidate, error)
	ListCandidates(ctx context.Context) ([]*domain.Candidate, error)
}

// OrganizationDirectory supplies organization profiles for certificate
// snapshots.
type OrganizationDirectory interface {
	GetOrganization(ctx context.Context, id string) (*domain.Organization, error)
	ListOrganizations(ctx context.Context) ([]*domain.Organization, error)
}

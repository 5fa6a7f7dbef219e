package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/skilltrade/internal/domain"
	"github.com/alexanderramin/skilltrade/internal/repository"
)

type certificateService struct {
	projects      repository.ProjectRepo
	organizations repository.OrganizationDirectory
	certificates  repository.CertificateRepo
	options
}

func NewCertificateService(
	projects repository.ProjectRepo,
	organizations repository.OrganizationDirectory,
	certificates repository.CertificateRepo,
	opts ...Option,
) CertificateService {
	return &certificateService{
		projects:      projects,
		organizations: organizations,
		certificates:  certificates,
		options:       buildOptions(opts),
	}
}

// Issue snapshots the project's current title and skills together with the
// owning organization's display name. An unknown organization leaves the
// name empty.
func (s *certificateService) Issue(ctx context.Context, projectID string) (cert *domain.Certificate, err error) {
	fields := map[string]any{"project": projectID}
	defer s.observe(ctx, "issue-certificate", fields)(&err)

	var p *domain.Project
	p, err = s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	var orgName string
	org, lookupErr := s.organizations.GetOrganization(ctx, p.OrganizationID)
	switch {
	case lookupErr == nil:
		orgName = org.DisplayName()
	case !errors.Is(lookupErr, domain.ErrOrganizationNotFound):
		err = fmt.Errorf("resolving organization %s: %w", p.OrganizationID, lookupErr)
		return nil, err
	}

	cert = domain.NewCertificate(newID("cert"), p, orgName, s.clock())
	if err = s.certificates.Create(ctx, cert); err != nil {
		return nil, fmt.Errorf("storing certificate: %w", err)
	}
	fields["certificate"] = cert.ID
	fields["candidate"] = cert.CandidateID
	return cert, nil
}

func (s *certificateService) GetByID(ctx context.Context, id string) (*domain.Certificate, error) {
	return s.certificates.GetByID(ctx, id)
}

func (s *certificateService) List(ctx context.Context) ([]*domain.Certificate, error) {
	return s.certificates.List(ctx)
}

func (s *certificateService) ListByCandidate(ctx context.Context, candidateID string) ([]*domain.Certificate, error) {
	return s.certificates.ListByCandidate(ctx, candidateID)
}

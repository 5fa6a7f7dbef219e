package service

import (
	"context"

	"github.com/alexanderramin/skilltrade/internal/domain"
	"github.com/alexanderramin/skilltrade/internal/match"
)

// ProjectService owns project records and the applications and milestones
// embedded in them.
type ProjectService interface {
	Create(ctx context.Context, in domain.ProjectInput) (*domain.Project, error)
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	ListOpen(ctx context.Context) ([]*domain.Project, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]*domain.Project, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]*domain.Project, error)
	SearchOpen(ctx context.Context, filter domain.ProjectFilter) ([]*domain.Project, error)
	SkillCatalog(ctx context.Context) ([]string, error)
	Update(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error)
	UpdateMilestone(ctx context.Context, projectID, milestoneID string, patch domain.MilestonePatch) (*domain.Project, error)
	Apply(ctx context.Context, in domain.ApplicationInput) (*domain.Application, error)
}

type MatchService interface {
	MatchScore(ctx context.Context, candidateID, projectID string) (int, error)
	Explain(ctx context.Context, candidateID, projectID string) (*match.Result, error)
	RecommendedProjectsFor(ctx context.Context, candidateID string) ([]match.ProjectMatch, error)
	RecommendedCandidatesFor(ctx context.Context, projectID string) ([]match.CandidateMatch, error)
}

// FeedbackInput is the reviewer's verdict on a submitted milestone.
type FeedbackInput struct {
	Rating  int
	Comment string
}

// ApproveResult reports what an approval changed. When ProjectCompleted is
// set the caller is expected to issue the certificate.
type ApproveResult struct {
	Project          *domain.Project
	Milestone        *domain.Milestone
	ProjectCompleted bool
	Released         *domain.EscrowTransaction
}

type LifecycleService interface {
	AcceptApplication(ctx context.Context, projectID, applicationID string) (*domain.Project, error)
	RejectApplication(ctx context.Context, projectID, applicationID string) (*domain.Project, error)
	SubmitMilestone(ctx context.Context, projectID, milestoneID, submission string) (*domain.Project, error)
	ApproveMilestone(ctx context.Context, projectID, milestoneID string, feedback FeedbackInput) (*ApproveResult, error)
}

type EscrowService interface {
	Fund(ctx context.Context, projectID string, amount float64) (*domain.EscrowTransaction, error)
	Release(ctx context.Context, projectID string) (*domain.EscrowTransaction, error)
	List(ctx context.Context) ([]*domain.EscrowTransaction, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.EscrowTransaction, error)
}

type CertificateService interface {
	Issue(ctx context.Context, projectID string) (*domain.Certificate, error)
	GetByID(ctx context.Context, id string) (*domain.Certificate, error)
	List(ctx context.Context) ([]*domain.Certificate, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]*domain.Certificate, error)
}

type NotificationService interface {
	Notify(ctx context.Context, n domain.Notification) (*domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
	ListForUser(ctx context.Context, userID string) ([]*domain.Notification, error)
}

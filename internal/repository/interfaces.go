package repository

import (
	"context"

	"github.com/alexanderramin/skilltrade/internal/domain"
)

// ProjectRepo stores projects in insertion order. Reads return copies and
// writes replace the stored record, so callers never share state with the
// store.
type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
}

type EscrowRepo interface {
	Create(ctx context.Context, t *domain.EscrowTransaction) error
	List(ctx context.Context) ([]*domain.EscrowTransaction, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.EscrowTransaction, error)
	Update(ctx context.Context, t *domain.EscrowTransaction) error
}

type CertificateRepo interface {
	Create(ctx context.Context, c *domain.Certificate) error
	GetByID(ctx context.Context, id string) (*domain.Certificate, error)
	List(ctx context.Context) ([]*domain.Certificate, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]*domain.Certificate, error)
}

type NotificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
	GetByID(ctx context.Context, id string) (*domain.Notification, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error)
	Update(ctx context.Context, n *domain.Notification) error
}

package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/skilltrade/internal/domain"
	"github.com/alexanderramin/skilltrade/internal/repository"
)

type escrowService struct {
	projects repository.ProjectRepo
	escrow   repository.EscrowRepo
	options
}

func NewEscrowService(
	projects repository.ProjectRepo,
	escrow repository.EscrowRepo,
	opts ...Option,
) EscrowService {
	return &escrowService{
		projects: projects,
		escrow:   escrow,
		options:  buildOptions(opts),
	}
}

// Fund locks amount against the project and marks it escrow-funded. A
// project holds at most one locked transaction.
func (s *escrowService) Fund(ctx context.Context, projectID string, amount float64) (tx *domain.EscrowTransaction, err error) {
	fields := map[string]any{"project": projectID, "amount": amount}
	defer s.observe(ctx, "fund-escrow", fields)(&err)

	if amount < 0 {
		return nil, &domain.ValidationError{
			Field:  "amount",
			Reason: fmt.Sprintf("must not be negative (got %.2f)", amount),
			Err:    domain.ErrInvalidAmount,
		}
	}

	var p *domain.Project
	p, err = s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	var locked bool
	if _, locked, err = s.activeFor(ctx, projectID); err != nil {
		return nil, err
	}
	if locked {
		return nil, fmt.Errorf("funding project %s: %w", projectID, domain.ErrEscrowAlreadyLocked)
	}

	tx = &domain.EscrowTransaction{
		ID:        newID("esc"),
		ProjectID: projectID,
		Amount:    amount,
		Status:    domain.EscrowLocked,
		LockedAt:  s.clock(),
	}
	if err = s.escrow.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("locking escrow: %w", err)
	}
	p.EscrowFunded = true
	if err = s.projects.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("marking project %s funded: %w", projectID, err)
	}
	fields["transaction"] = tx.ID
	return tx, nil
}

// Release moves the project's locked transaction to released. With nothing
// locked it returns nil, nil.
func (s *escrowService) Release(ctx context.Context, projectID string) (tx *domain.EscrowTransaction, err error) {
	fields := map[string]any{"project": projectID}
	defer s.observe(ctx, "release-escrow", fields)(&err)

	var found bool
	tx, found, err = s.activeFor(ctx, projectID)
	if err != nil || !found {
		fields["released"] = false
		return nil, err
	}
	tx.Release(s.clock())
	if err = s.escrow.Update(ctx, tx); err != nil {
		return nil, fmt.Errorf("releasing escrow %s: %w", tx.ID, err)
	}
	fields["released"] = true
	fields["transaction"] = tx.ID
	return tx, nil
}

func (s *escrowService) List(ctx context.Context) ([]*domain.EscrowTransaction, error) {
	return s.escrow.List(ctx)
}

func (s *escrowService) ListByProject(ctx context.Context, projectID string) ([]*domain.EscrowTransaction, error) {
	return s.escrow.ListByProject(ctx, projectID)
}

func (s *escrowService) activeFor(ctx context.Context, projectID string) (*domain.EscrowTransaction, bool, error) {
	txs, err := s.escrow.ListByProject(ctx, projectID)
	if err != nil {
		return nil, false, fmt.Errorf("listing escrow for %s: %w", projectID, err)
	}
	for _, tx := range txs {
		if tx.IsActive() {
			return tx, true, nil
		}
	}
	return nil, false, nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/skilltrade/internal/domain"
)

// MemoryEscrowRepo implements EscrowRepo in memory.
type MemoryEscrowRepo struct {
	table *orderedTable[*domain.EscrowTransaction]
}

func NewMemoryEscrowRepo() *MemoryEscrowRepo {
	return &MemoryEscrowRepo{table: newOrderedTable((*domain.EscrowTransaction).Clone)}
}

func (r *MemoryEscrowRepo) Create(_ context.Context, t *domain.EscrowTransaction) error {
	if err := r.table.insert(t.ID, t); err != nil {
		return fmt.Errorf("inserting escrow transaction: %w", err)
	}
	return nil
}

func (r *MemoryEscrowRepo) List(_ context.Context) ([]*domain.EscrowTransaction, error) {
	return r.table.filter(nil), nil
}

func (r *MemoryEscrowRepo) ListByProject(_ context.Context, projectID string) ([]*domain.EscrowTransaction, error) {
	return r.table.filter(func(t *domain.EscrowTransaction) bool {
		return t.ProjectID == projectID
	}), nil
}

func (r *MemoryEscrowRepo) Update(_ context.Context, t *domain.EscrowTransaction) error {
	if !r.table.replace(t.ID, t) {
		return fmt.Errorf("escrow transaction %s not found", t.ID)
	}
	return nil
}

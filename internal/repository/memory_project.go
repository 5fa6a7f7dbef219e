package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/skilltrade/internal/domain"
)

// MemoryProjectRepo implements ProjectRepo in memory.
type MemoryProjectRepo struct {
	table *orderedTable[*domain.Project]
}

// NewMemoryProjectRepo creates an empty MemoryProjectRepo.
func NewMemoryProjectRepo() *MemoryProjectRepo {
	return &MemoryProjectRepo{table: newOrderedTable((*domain.Project).Clone)}
}

func (r *MemoryProjectRepo) Create(_ context.Context, p *domain.Project) error {
	if err := r.table.insert(p.ID, p); err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *MemoryProjectRepo) GetByID(_ context.Context, id string) (*domain.Project, error) {
	p, ok := r.table.get(id)
	if !ok {
		return nil, fmt.Errorf("project %s: %w", id, domain.ErrProjectNotFound)
	}
	return p, nil
}

func (r *MemoryProjectRepo) List(_ context.Context) ([]*domain.Project, error) {
	return r.table.filter(nil), nil
}

func (r *MemoryProjectRepo) Update(_ context.Context, p *domain.Project) error {
	if !r.table.replace(p.ID, p) {
		return fmt.Errorf("updating project %s: %w", p.ID, domain.ErrProjectNotFound)
	}
	return nil
}

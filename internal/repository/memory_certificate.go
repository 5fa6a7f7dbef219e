package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/skilltrade/internal/domain"
)

// MemoryCertificateRepo implements CertificateRepo in memory.
type MemoryCertificateRepo struct {
	table *orderedTable[*domain.Certificate]
}

func NewMemoryCertificateRepo() *MemoryCertificateRepo {
	return &MemoryCertificateRepo{table: newOrderedTable((*domain.Certificate).Clone)}
}

func (r *MemoryCertificateRepo) Create(_ context.Context, c *domain.Certificate) error {
	if err := r.table.insert(c.ID, c); err != nil {
		return fmt.Errorf("inserting certificate: %w", err)
	}
	return nil
}

func (r *MemoryCertificateRepo) GetByID(_ context.Context, id string) (*domain.Certificate, error) {
	c, ok := r.table.get(id)
	if !ok {
		return nil, fmt.Errorf("certificate %s not found", id)
	}
	return c, nil
}

func (r *MemoryCertificateRepo) List(_ context.Context) ([]*domain.Certificate, error) {
	return r.table.filter(nil), nil
}

func (r *MemoryCertificateRepo) ListByCandidate(_ context.Context, candidateID string) ([]*domain.Certificate, error) {
	return r.table.filter(func(c *domain.Certificate) bool {
		return c.CandidateID == candidateID
	}), nil
}

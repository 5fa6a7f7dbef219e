package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/skilltrade/internal/domain"
)

// MemoryNotificationRepo implements NotificationRepo in memory.
type MemoryNotificationRepo struct {
	table *orderedTable[*domain.Notification]
}

func NewMemoryNotificationRepo() *MemoryNotificationRepo {
	return &MemoryNotificationRepo{table: newOrderedTable(func(n *domain.Notification) *domain.Notification {
		c := *n
		return &c
	})}
}

func (r *MemoryNotificationRepo) Create(_ context.Context, n *domain.Notification) error {
	if err := r.table.insert(n.ID, n); err != nil {
		return fmt.Errorf("inserting notification: %w", err)
	}
	return nil
}

func (r *MemoryNotificationRepo) GetByID(_ context.Context, id string) (*domain.Notification, error) {
	n, ok := r.table.get(id)
	if !ok {
		return nil, fmt.Errorf("notification %s: %w", id, domain.ErrNotificationNotFound)
	}
	return n, nil
}

// ListByUser returns the user's notifications newest first.
func (r *MemoryNotificationRepo) ListByUser(_ context.Context, userID string) ([]*domain.Notification, error) {
	rows := r.table.filter(func(n *domain.Notification) bool {
		return n.UserID == userID
	})
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows, nil
}

func (r *MemoryNotificationRepo) Update(_ context.Context, n *domain.Notification) error {
	if !r.table.replace(n.ID, n) {
		return fmt.Errorf("updating notification %s: %w", n.ID, domain.ErrNotificationNotFound)
	}
	return nil
}

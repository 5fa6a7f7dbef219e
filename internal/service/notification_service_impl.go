package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/skilltrade/internal/domain"
	"github.com/alexanderramin/skilltrade/internal/repository"
)

type notificationService struct {
	notifications repository.NotificationRepo
	options
}

func NewNotificationService(notifications repository.NotificationRepo, opts ...Option) NotificationService {
	return &notificationService{
		notifications: notifications,
		options:       buildOptions(opts),
	}
}

// Notify stores n as a new unread notification. ID and CreatedAt are
// assigned here.
func (s *notificationService) Notify(ctx context.Context, n domain.Notification) (*domain.Notification, error) {
	n.ID = newID("notif")
	n.CreatedAt = s.clock()
	n.Read = false
	if n.Type == "" {
		n.Type = domain.NotifySystem
	}
	if err := s.notifications.Create(ctx, &n); err != nil {
		return nil, fmt.Errorf("storing notification: %w", err)
	}
	return &n, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id string) error {
	n, err := s.notifications.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n.Read {
		return nil
	}
	n.Read = true
	return s.notifications.Update(ctx, n)
}

func (s *notificationService) ListForUser(ctx context.Context, userID string) ([]*domain.Notification, error) {
	return s.notifications.ListByUser(ctx, userID)
}

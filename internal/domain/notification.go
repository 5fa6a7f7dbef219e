package domain

import "time"

type Notification struct {
	ID        string
	UserID    string
	Type      NotificationType
	Title     string
	Message   string
	Read      bool
	CreatedAt time.Time
	ActionURL string
}

package domain

import "time"

type EscrowTransaction struct {
	ID         string
	ProjectID  string
	Amount     float64
	Status     EscrowStatus
	LockedAt   time.Time
	ReleasedAt *time.Time
}

// IsActive reports whether the transaction still holds funds.
func (t *EscrowTransaction) IsActive() bool {
	return t.Status == EscrowLocked
}

// Release moves a locked transaction to released. Any other status is left
// unchanged and false is returned.
func (t *EscrowTransaction) Release(now time.Time) bool {
	if t.Status != EscrowLocked {
		return false
	}
	t.Status = EscrowReleased
	t.ReleasedAt = &now
	return true
}

// Clone returns a copy of t.
func (t *EscrowTransaction) Clone() *EscrowTransaction {
	if t == nil {
		return nil
	}
	c := *t
	c.ReleasedAt = clonePtr(t.ReleasedAt)
	return &c
}

package testutil

import (
	"time"

	"github.com/calebmoran/checkin/internal/domain"
	"github.com/google/uuid"
)

// Update options
type UpdateOption func(*domain.Update)

func WithPhase(p domain.Phase) UpdateOption {
	return func(u *domain.Update) {
		u.Phase = p
	}
}

func WithWeek(week string) UpdateOption {
	return func(u *domain.Update) {
		u.Week = week
	}
}

func WithCreatedAt(t time.Time) UpdateOption {
	return func(u *domain.Update) {
		u.CreatedAt = t
		u.Week = domain.WeekBucket(t)
	}
}

// NewTestUpdate creates a persisted-update fixture for the given user.
func NewTestUpdate(email, summary string, opts ...UpdateOption) *domain.Update {
	now := time.Now().UTC()
	u := &domain.Update{
		ID:        uuid.New().String(),
		UserEmail: email,
		Week:      domain.WeekBucket(now),
		Phase:     domain.PhaseBeginning,
		Summary:   summary,
		CreatedAt: now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

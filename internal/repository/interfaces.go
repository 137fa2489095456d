package repository

import (
	"context"
	"errors"

	"github.com/calebmoran/checkin/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// UpdateRepo stores completed status updates for later retrieval.
// Writes happen once per interview, at completion; reads back the
// update history for a user.
type UpdateRepo interface {
	Create(ctx context.Context, u *domain.Update) error
	GetByID(ctx context.Context, id string) (*domain.Update, error)
	ListByEmail(ctx context.Context, email string) ([]*domain.Update, error)
	ListRecent(ctx context.Context, weeks int) ([]*domain.Update, error)
	DeleteAll(ctx context.Context) error
}

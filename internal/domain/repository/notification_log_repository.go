package repository

import (
	"context"

	"plantcare/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationLogRepository stores the append-only reminder delivery audit trail.
type NotificationLogRepository interface {
	// Create appends one delivery attempt.
	Create(ctx context.Context, log *entity.NotificationLog) error

	// FindByUser returns one page of the user's delivery attempts, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.NotificationLog, int64, error)
}

package repository

import (
	"context"

	"plantcare/internal/domain/entity"

	"github.com/google/uuid"
)

// CareTaskRepository persists completed care tasks. Tasks are immutable once written.
type CareTaskRepository interface {
	Create(ctx context.Context, task *entity.CareTask) error

	// FindByUser returns one page of the user's completed tasks, most recent first, with schedule and plant attached.
	FindByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.CareTask, int64, error)

	// FindByPlant returns the plant's most recent completed tasks.
	FindByPlant(ctx context.Context, plantID uuid.UUID, limit int) ([]*entity.CareTask, error)
}

package repository

import (
	"context"
	"errors"

	"plantcare/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPlantNotFound is returned when a plant does not exist, is soft-deleted, or belongs to another user.
var ErrPlantNotFound = errors.New("plant not found")

// PlantRepository defines persistence operations for plants. Soft-deleted plants are never returned.
type PlantRepository interface {
	Create(ctx context.Context, plant *entity.Plant) error

	// FindByIDForUser returns the plant only when it is owned by userID.
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Plant, error)

	// FindByUser returns one page of the user's plants, newest first, and the total match count.
	FindByUser(ctx context.Context, userID uuid.UUID, filter entity.PlantFilter, offset, limit int) ([]*entity.Plant, int64, error)

	Update(ctx context.Context, plant *entity.Plant) error

	SoftDelete(ctx context.Context, id, userID uuid.UUID) error
}

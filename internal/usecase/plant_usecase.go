package usecase

import (
	"context"
	"time"

	"plantcare/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePlantInput holds the fields of a new plant.
type CreatePlantInput struct {
	Name            string
	Species         string
	ImageURL        string
	Location        string
	AcquisitionDate *time.Time
	Notes           string
}

// UpdatePlantInput holds a partial plant update. Nil fields are left unchanged.
type UpdatePlantInput struct {
	Name            *string
	Species         *string
	ImageURL        *string
	Location        *string
	AcquisitionDate *time.Time
	Notes           *string
}

// ListPlantsInput selects one page of plants.
type ListPlantsInput struct {
	Page   int
	Limit  int
	Filter entity.PlantFilter
}

// PlantUsecase manages a user's plants.
type PlantUsecase interface {
	CreatePlant(ctx context.Context, userID uuid.UUID, input *CreatePlantInput) (*entity.Plant, error)
	GetPlant(ctx context.Context, userID, plantID uuid.UUID) (*entity.Plant, error)
	ListPlants(ctx context.Context, userID uuid.UUID, input *ListPlantsInput) (*entity.Page[*entity.Plant], error)
	UpdatePlant(ctx context.Context, userID, plantID uuid.UUID, input *UpdatePlantInput) (*entity.Plant, error)
	DeletePlant(ctx context.Context, userID, plantID uuid.UUID) error
}

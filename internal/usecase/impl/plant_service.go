package impl

import (
	"context"
	"log/slog"

	deliverycontext "plantcare/internal/delivery/context"
	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/repository"
	"plantcare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// plantService implements the PlantUsecase interface.
type plantService struct {
	plantRepo repository.PlantRepository
	logger    *slog.Logger
}

// PlantServiceParams holds dependencies for PlantService, injected by Fx.
type PlantServiceParams struct {
	fx.In

	PlantRepo repository.PlantRepository
	Logger    *slog.Logger
}

// NewPlantService is the constructor for plantService.
func NewPlantService(params PlantServiceParams) usecase.PlantUsecase {
	return &plantService{
		plantRepo: params.PlantRepo,
		logger:    params.Logger,
	}
}

func (srv *plantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePlant stores a new plant owned by userID.
func (srv *plantService) CreatePlant(ctx context.Context, userID uuid.UUID, input *usecase.CreatePlantInput) (*entity.Plant, error) {
	plant := &entity.Plant{
		UserID:          userID,
		Name:            input.Name,
		Species:         input.Species,
		ImageURL:        input.ImageURL,
		Location:        input.Location,
		AcquisitionDate: input.AcquisitionDate,
		Notes:           input.Notes,
	}

	if err := srv.plantRepo.Create(ctx, plant); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("plant owner does not exist")
		}
		srv.log(ctx).Error("Failed to create plant", slog.String("userID", userID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create plant")
	}

	srv.log(ctx).Info("Plant created", slog.String("plantID", plant.ID.String()), slog.String("userID", userID.String()))

	return plant, nil
}

// GetPlant returns the plant with its active schedules.
func (srv *plantService) GetPlant(ctx context.Context, userID, plantID uuid.UUID) (*entity.Plant, error) {
	plant, err := srv.plantRepo.FindByIDForUser(ctx, plantID, userID)
	if err != nil {
		return nil, mapPlantError(err, "failed to get plant")
	}

	return plant, nil
}

// ListPlants returns one filtered page of the user's plants.
func (srv *plantService) ListPlants(ctx context.Context, userID uuid.UUID, input *usecase.ListPlantsInput) (*entity.Page[*entity.Plant], error) {
	page, limit, offset := normalizePagination(input.Page, input.Limit)
	filter := entity.PlantFilter{
		Search:   sanitizeSearch(input.Filter.Search),
		Location: sanitizeSearch(input.Filter.Location),
		Species:  sanitizeSearch(input.Filter.Species),
	}

	plants, total, err := srv.plantRepo.FindByUser(ctx, userID, filter, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list plants")
	}

	return entity.NewPage(plants, page, limit, total), nil
}

// UpdatePlant applies the non-nil fields of input.
func (srv *plantService) UpdatePlant(ctx context.Context, userID, plantID uuid.UUID, input *usecase.UpdatePlantInput) (*entity.Plant, error) {
	plant, err := srv.plantRepo.FindByIDForUser(ctx, plantID, userID)
	if err != nil {
		return nil, mapPlantError(err, "failed to load plant for update")
	}

	if input.Name != nil {
		plant.Name = *input.Name
	}
	if input.Species != nil {
		plant.Species = *input.Species
	}
	if input.ImageURL != nil {
		plant.ImageURL = *input.ImageURL
	}
	if input.Location != nil {
		plant.Location = *input.Location
	}
	if input.AcquisitionDate != nil {
		plant.AcquisitionDate = input.AcquisitionDate
	}
	if input.Notes != nil {
		plant.Notes = *input.Notes
	}

	if err := srv.plantRepo.Update(ctx, plant); err != nil {
		return nil, mapPlantError(err, "failed to update plant")
	}

	return plant, nil
}

// DeletePlant soft-deletes the plant. Its schedules drop out of the due set with it.
func (srv *plantService) DeletePlant(ctx context.Context, userID, plantID uuid.UUID) error {
	if err := srv.plantRepo.SoftDelete(ctx, plantID, userID); err != nil {
		return mapPlantError(err, "failed to delete plant")
	}

	srv.log(ctx).Info("Plant deleted", slog.String("plantID", plantID.String()), slog.String("userID", userID.String()))

	return nil
}

func mapPlantError(err error, message string) error {
	if errors.Is(err, repository.ErrPlantNotFound) {
		return domainerrors.ErrPlantNotFound.WrapMessage(message)
	}

	return errors.Wrap(err, message)
}

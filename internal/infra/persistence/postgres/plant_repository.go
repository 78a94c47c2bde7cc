package postgres

import (
	"context"
	"strings"

	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/repository"
	"plantcare/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// plantRepository implements the repository.PlantRepository interface.
type plantRepository struct {
	db *gorm.DB
}

// NewPlantRepository is the constructor for plantRepository.
func NewPlantRepository(db *gorm.DB) repository.PlantRepository {
	return &plantRepository{db: db}
}

// Create persists a new plant.
func (repo *plantRepository) Create(ctx context.Context, plant *entity.Plant) error {
	plantM := fromPlantDomain(plant)
	if err := repo.db.WithContext(ctx).Omit("User", "Schedules").Create(plantM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create plant")
	}

	plant.ID = plantM.ID
	plant.CreatedAt = plantM.CreatedAt
	plant.UpdatedAt = plantM.UpdatedAt

	return nil
}

// FindByIDForUser retrieves an owned plant together with its non-deleted schedules.
func (repo *plantRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Plant, error) {
	var plantM model.PlantModel
	err := repo.db.WithContext(ctx).
		Preload("Schedules", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_deleted = ?", false).Order("next_due_date ASC")
		}).
		Where("id = ? AND user_id = ? AND is_deleted = ?", id, userID, false).
		First(&plantM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlantNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find plant")
	}

	return toPlantDomain(&plantM), nil
}

// FindByUser lists one page of the user's plants.
func (repo *plantRepository) FindByUser(
	ctx context.Context,
	userID uuid.UUID,
	filter entity.PlantFilter,
	offset, limit int,
) ([]*entity.Plant, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.PlantModel{}).
		Where("user_id = ? AND is_deleted = ?", userID, false)

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("(LOWER(name) LIKE ? OR LOWER(species) LIKE ?)", pattern, pattern)
	}
	if filter.Location != "" {
		query = query.Where("location = ?", filter.Location)
	}
	if filter.Species != "" {
		query = query.Where("species = ?", filter.Species)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count plants")
	}

	var plantModels []*model.PlantModel
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&plantModels).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list plants")
	}

	plants := make([]*entity.Plant, len(plantModels))
	for i, plantM := range plantModels {
		plants[i] = toPlantDomain(plantM)
	}

	return plants, total, nil
}

// Update saves the editable plant fields.
func (repo *plantRepository) Update(ctx context.Context, plant *entity.Plant) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PlantModel{}).
		Where("id = ? AND user_id = ? AND is_deleted = ?", plant.ID, plant.UserID, false).
		Select("name", "species", "image_url", "location", "acquisition_date", "notes").
		Updates(fromPlantDomain(plant))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update plant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlantNotFound
	}

	return nil
}

// SoftDelete flags an owned plant as deleted. Its schedules drop out of the due set with it.
func (repo *plantRepository) SoftDelete(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PlantModel{}).
		Where("id = ? AND user_id = ? AND is_deleted = ?", id, userID, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete plant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlantNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPlantDomain(data *model.PlantModel) *entity.Plant {
	if data == nil {
		return nil
	}

	plant := &entity.Plant{
		ID:              data.ID,
		UserID:          data.UserID,
		Name:            data.Name,
		Species:         data.Species,
		ImageURL:        data.ImageURL,
		Location:        data.Location,
		AcquisitionDate: data.AcquisitionDate,
		Notes:           data.Notes,
		IsDeleted:       data.IsDeleted,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}

	if len(data.Schedules) > 0 {
		plant.Schedules = make([]*entity.CareSchedule, len(data.Schedules))
		for i := range data.Schedules {
			plant.Schedules[i] = toScheduleDomain(&data.Schedules[i])
		}
	}

	return plant
}

func fromPlantDomain(data *entity.Plant) *model.PlantModel {
	if data == nil {
		return nil
	}

	return &model.PlantModel{
		ID:              data.ID,
		UserID:          data.UserID,
		Name:            data.Name,
		Species:         data.Species,
		ImageURL:        data.ImageURL,
		Location:        data.Location,
		AcquisitionDate: data.AcquisitionDate,
		Notes:           data.Notes,
		IsDeleted:       data.IsDeleted,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

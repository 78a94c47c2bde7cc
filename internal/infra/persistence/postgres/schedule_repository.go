package postgres

import (
	"context"
	"time"

	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/repository"
	"plantcare/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const joinScheduleOwner = "JOIN plants ON plants.id = care_schedules.plant_id"

// scheduleRepository implements the repository.ScheduleRepository interface.
type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository is the constructor for scheduleRepository.
func NewScheduleRepository(db *gorm.DB) repository.ScheduleRepository {
	return &scheduleRepository{db: db}
}

// FindDue returns the due set ordered by next due date, oldest first.
func (repo *scheduleRepository) FindDue(ctx context.Context, now time.Time) ([]*entity.DueSchedule, error) {
	var scheduleModels []*model.CareScheduleModel
	err := repo.db.WithContext(ctx).
		Joins(joinScheduleOwner).
		Where("care_schedules.is_active = ? AND care_schedules.is_deleted = ?", true, false).
		Where("plants.is_deleted = ?", false).
		Where("care_schedules.next_due_date <= ?", now).
		Preload("Plant.User").
		Order("care_schedules.next_due_date ASC").
		Find(&scheduleModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find due schedules")
	}

	due := make([]*entity.DueSchedule, 0, len(scheduleModels))
	for _, scheduleM := range scheduleModels {
		if scheduleM.Plant == nil || scheduleM.Plant.User == nil {
			continue
		}
		due = append(due, &entity.DueSchedule{
			Schedule: toScheduleDomain(scheduleM),
			Plant:    toPlantDomain(scheduleM.Plant),
			Owner:    toUserDomain(scheduleM.Plant.User),
		})
	}

	return due, nil
}

// AdvanceNextDueDate performs a compare-and-set on next_due_date.
func (repo *scheduleRepository) AdvanceNextDueDate(ctx context.Context, id uuid.UUID, expected, next time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CareScheduleModel{}).
		Where("id = ? AND next_due_date = ?", id, expected).
		Update("next_due_date", next)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to advance schedule")
	}
	if result.RowsAffected == 0 {
		return repository.ErrScheduleAdvanceConflict
	}

	return nil
}

// Create persists a new schedule.
func (repo *scheduleRepository) Create(ctx context.Context, schedule *entity.CareSchedule) error {
	scheduleM := fromScheduleDomain(schedule)
	if err := repo.db.WithContext(ctx).Omit("Plant").Create(scheduleM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPlantNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create schedule")
	}

	schedule.ID = scheduleM.ID
	schedule.CreatedAt = scheduleM.CreatedAt
	schedule.UpdatedAt = scheduleM.UpdatedAt

	return nil
}

// FindByIDForUser retrieves a schedule visible to the user, with its plant.
func (repo *scheduleRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.CareSchedule, error) {
	var scheduleM model.CareScheduleModel
	err := repo.ownedBy(ctx, userID).
		Where("care_schedules.id = ?", id).
		Preload("Plant").
		First(&scheduleM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrScheduleNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find schedule")
	}

	return toScheduleDomain(&scheduleM), nil
}

// FindByUser lists every schedule across the user's plants.
func (repo *scheduleRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CareSchedule, error) {
	var scheduleModels []*model.CareScheduleModel
	err := repo.ownedBy(ctx, userID).
		Preload("Plant").
		Order("care_schedules.next_due_date ASC").
		Find(&scheduleModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list schedules")
	}

	return toScheduleDomains(scheduleModels), nil
}

// FindByPlant lists the schedules of one plant.
func (repo *scheduleRepository) FindByPlant(ctx context.Context, plantID uuid.UUID) ([]*entity.CareSchedule, error) {
	var scheduleModels []*model.CareScheduleModel
	err := repo.db.WithContext(ctx).
		Where("plant_id = ? AND is_deleted = ?", plantID, false).
		Order("next_due_date ASC").
		Find(&scheduleModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list plant schedules")
	}

	return toScheduleDomains(scheduleModels), nil
}

// FindUpcoming lists the user's active schedules inside the optional window.
func (repo *scheduleRepository) FindUpcoming(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]*entity.CareSchedule, error) {
	query := repo.ownedBy(ctx, userID).Where("care_schedules.is_active = ?", true)
	if from != nil {
		query = query.Where("care_schedules.next_due_date >= ?", *from)
	}
	if to != nil {
		query = query.Where("care_schedules.next_due_date <= ?", *to)
	}

	var scheduleModels []*model.CareScheduleModel
	if err := query.Preload("Plant").Order("care_schedules.next_due_date ASC").Find(&scheduleModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list upcoming schedules")
	}

	return toScheduleDomains(scheduleModels), nil
}

// Update saves the editable schedule fields.
func (repo *scheduleRepository) Update(ctx context.Context, schedule *entity.CareSchedule) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CareScheduleModel{}).
		Where("id = ? AND is_deleted = ?", schedule.ID, false).
		Select("task_type", "frequency_days", "time_of_day", "start_date", "next_due_date", "notes", "is_active").
		Updates(fromScheduleDomain(schedule))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update schedule")
	}
	if result.RowsAffected == 0 {
		return repository.ErrScheduleNotFound
	}

	return nil
}

// SetActive pauses or resumes a schedule.
func (repo *scheduleRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return repo.updateFlag(ctx, id, "is_active", active)
}

// SoftDelete flags a schedule as deleted.
func (repo *scheduleRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return repo.updateFlag(ctx, id, "is_deleted", true)
}

func (repo *scheduleRepository) updateFlag(ctx context.Context, id uuid.UUID, column string, value bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CareScheduleModel{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update(column, value)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update schedule "+column)
	}
	if result.RowsAffected == 0 {
		return repository.ErrScheduleNotFound
	}

	return nil
}

// ownedBy scopes a query to non-deleted schedules on the user's non-deleted plants.
func (repo *scheduleRepository) ownedBy(ctx context.Context, userID uuid.UUID) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.CareScheduleModel{}).
		Joins(joinScheduleOwner).
		Where("plants.user_id = ? AND plants.is_deleted = ?", userID, false).
		Where("care_schedules.is_deleted = ?", false)
}

// --- Mapper Functions ---

func toScheduleDomain(data *model.CareScheduleModel) *entity.CareSchedule {
	if data == nil {
		return nil
	}

	schedule := &entity.CareSchedule{
		ID:            data.ID,
		PlantID:       data.PlantID,
		TaskType:      entity.TaskType(data.TaskType),
		FrequencyDays: data.FrequencyDays,
		TimeOfDay:     data.TimeOfDay,
		StartDate:     data.StartDate,
		NextDueDate:   data.NextDueDate,
		Notes:         data.Notes,
		IsActive:      data.IsActive,
		IsDeleted:     data.IsDeleted,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	if data.Plant != nil {
		schedule.Plant = toPlantDomain(data.Plant)
	}

	return schedule
}

func toScheduleDomains(data []*model.CareScheduleModel) []*entity.CareSchedule {
	schedules := make([]*entity.CareSchedule, len(data))
	for i, scheduleM := range data {
		schedules[i] = toScheduleDomain(scheduleM)
	}

	return schedules
}

func fromScheduleDomain(data *entity.CareSchedule) *model.CareScheduleModel {
	if data == nil {
		return nil
	}

	return &model.CareScheduleModel{
		ID:            data.ID,
		PlantID:       data.PlantID,
		TaskType:      string(data.TaskType),
		FrequencyDays: data.FrequencyDays,
		TimeOfDay:     data.TimeOfDay,
		StartDate:     data.StartDate,
		NextDueDate:   data.NextDueDate,
		Notes:         data.Notes,
		IsActive:      data.IsActive,
		IsDeleted:     data.IsDeleted,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

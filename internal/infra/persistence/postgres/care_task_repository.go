package postgres

import (
	"context"

	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/repository"
	"plantcare/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// careTaskRepository implements the repository.CareTaskRepository interface.
type careTaskRepository struct {
	db *gorm.DB
}

// NewCareTaskRepository is the constructor for careTaskRepository.
func NewCareTaskRepository(db *gorm.DB) repository.CareTaskRepository {
	return &careTaskRepository{db: db}
}

// Create records a completed task.
func (repo *careTaskRepository) Create(ctx context.Context, task *entity.CareTask) error {
	taskM := fromCareTaskDomain(task)
	if err := repo.db.WithContext(ctx).Omit("Schedule").Create(taskM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrScheduleNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create care task")
	}

	task.ID = taskM.ID
	task.CreatedAt = taskM.CreatedAt

	return nil
}

// FindByUser lists one page of the user's completed tasks.
func (repo *careTaskRepository) FindByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.CareTask, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.CareTaskModel{}).
		Joins("JOIN plants ON plants.id = care_tasks.plant_id").
		Where("plants.user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count care tasks")
	}

	var taskModels []*model.CareTaskModel
	err := query.
		Preload("Schedule.Plant").
		Order("care_tasks.completed_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&taskModels).Error
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list care tasks")
	}

	return toCareTaskDomains(taskModels), total, nil
}

// FindByPlant lists the plant's most recent completed tasks.
func (repo *careTaskRepository) FindByPlant(ctx context.Context, plantID uuid.UUID, limit int) ([]*entity.CareTask, error) {
	var taskModels []*model.CareTaskModel
	err := repo.db.WithContext(ctx).
		Where("plant_id = ?", plantID).
		Preload("Schedule").
		Order("completed_at DESC").
		Limit(limit).
		Find(&taskModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list plant care tasks")
	}

	return toCareTaskDomains(taskModels), nil
}

// --- Mapper Functions ---

func toCareTaskDomain(data *model.CareTaskModel) *entity.CareTask {
	if data == nil {
		return nil
	}

	task := &entity.CareTask{
		ID:          data.ID,
		ScheduleID:  data.ScheduleID,
		PlantID:     data.PlantID,
		CompletedAt: data.CompletedAt,
		Notes:       data.Notes,
		PhotoURL:    data.PhotoURL,
		CreatedAt:   data.CreatedAt,
	}
	if data.Schedule != nil {
		task.Schedule = toScheduleDomain(data.Schedule)
	}

	return task
}

func toCareTaskDomains(data []*model.CareTaskModel) []*entity.CareTask {
	tasks := make([]*entity.CareTask, len(data))
	for i, taskM := range data {
		tasks[i] = toCareTaskDomain(taskM)
	}

	return tasks
}

func fromCareTaskDomain(data *entity.CareTask) *model.CareTaskModel {
	if data == nil {
		return nil
	}

	return &model.CareTaskModel{
		ID:          data.ID,
		ScheduleID:  data.ScheduleID,
		PlantID:     data.PlantID,
		CompletedAt: data.CompletedAt,
		Notes:       data.Notes,
		PhotoURL:    data.PhotoURL,
		CreatedAt:   data.CreatedAt,
	}
}

package usecase

import (
	"context"
	"time"

	"plantcare/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateScheduleInput holds the fields of a new care schedule.
type CreateScheduleInput struct {
	PlantID       uuid.UUID
	TaskType      entity.TaskType
	FrequencyDays int
	TimeOfDay     string
	StartDate     time.Time
	Notes         string
}

// UpdateScheduleInput holds a partial schedule update. Nil fields are left unchanged.
// Any change to the recurrence fields recomputes the next due date.
type UpdateScheduleInput struct {
	TaskType      *entity.TaskType
	FrequencyDays *int
	TimeOfDay     *string
	StartDate     *time.Time
	Notes         *string
	IsActive      *bool
}

// ScheduleUsecase manages care schedules.
type ScheduleUsecase interface {
	CreateSchedule(ctx context.Context, userID uuid.UUID, input *CreateScheduleInput) (*entity.CareSchedule, error)
	GetSchedule(ctx context.Context, userID, scheduleID uuid.UUID) (*entity.CareSchedule, error)
	ListSchedules(ctx context.Context, userID uuid.UUID) ([]*entity.CareSchedule, error)
	ListPlantSchedules(ctx context.Context, userID, plantID uuid.UUID) ([]*entity.CareSchedule, error)
	UpdateSchedule(ctx context.Context, userID, scheduleID uuid.UUID, input *UpdateScheduleInput) (*entity.CareSchedule, error)
	ToggleSchedule(ctx context.Context, userID, scheduleID uuid.UUID) (*entity.CareSchedule, error)
	DeleteSchedule(ctx context.Context, userID, scheduleID uuid.UUID) error
}

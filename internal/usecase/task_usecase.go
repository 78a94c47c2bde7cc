package usecase

import (
	"context"
	"time"

	"plantcare/internal/domain/entity"

	"github.com/google/uuid"
)

// UpcomingTasksInput bounds the upcoming listing to whole days.
// The window only applies when both dates are set.
type UpcomingTasksInput struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// CompleteTaskInput records a finished care occurrence.
type CompleteTaskInput struct {
	ScheduleID uuid.UUID
	Notes      string
	PhotoURL   string
}

// CompleteTaskOutput returns the new task and the schedule after its one-cycle advance.
type CompleteTaskOutput struct {
	Task     *entity.CareTask     `json:"task"`
	Schedule *entity.CareSchedule `json:"schedule"`
}

// TaskUsecase covers due tasks and completion history.
type TaskUsecase interface {
	ListUpcoming(ctx context.Context, userID uuid.UUID, input *UpcomingTasksInput) ([]*entity.CareSchedule, error)
	CompleteTask(ctx context.Context, userID uuid.UUID, input *CompleteTaskInput) (*CompleteTaskOutput, error)
	ListHistory(ctx context.Context, userID uuid.UUID, page, limit int) (*entity.Page[*entity.CareTask], error)
	ListPlantHistory(ctx context.Context, userID, plantID uuid.UUID) ([]*entity.CareTask, error)
}

package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "plantcare/internal/delivery/context"
	"plantcare/internal/domain/constants"
	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/recurrence"
	"plantcare/internal/domain/repository"
	"plantcare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// taskService implements the TaskUsecase interface.
type taskService struct {
	txManager    repository.TransactionManager
	plantRepo    repository.PlantRepository
	scheduleRepo repository.ScheduleRepository
	taskRepo     repository.CareTaskRepository
	logger       *slog.Logger
	now          func() time.Time
}

// TaskServiceParams holds dependencies for TaskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	PlantRepo    repository.PlantRepository
	ScheduleRepo repository.ScheduleRepository
	TaskRepo     repository.CareTaskRepository
	Logger       *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		txManager:    params.TxManager,
		plantRepo:    params.PlantRepo,
		scheduleRepo: params.ScheduleRepo,
		taskRepo:     params.TaskRepo,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUpcoming returns the user's active schedules by next due date. When both dates are
// given the listing is limited to the whole days from StartDate through EndDate.
func (srv *taskService) ListUpcoming(ctx context.Context, userID uuid.UUID, input *usecase.UpcomingTasksInput) ([]*entity.CareSchedule, error) {
	var from, to *time.Time
	if input != nil && input.StartDate != nil && input.EndDate != nil {
		start := startOfDay(*input.StartDate)
		end := endOfDay(*input.EndDate)
		if start.After(end) {
			return nil, domainerrors.ErrInvalidDateRange
		}
		from, to = &start, &end
	}

	schedules, err := srv.scheduleRepo.FindUpcoming(ctx, userID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list upcoming tasks")
	}

	return schedules, nil
}

// CompleteTask records the completion and moves the schedule on by one cycle atomically.
func (srv *taskService) CompleteTask(ctx context.Context, userID uuid.UUID, input *usecase.CompleteTaskInput) (*usecase.CompleteTaskOutput, error) {
	schedule, err := srv.scheduleRepo.FindByIDForUser(ctx, input.ScheduleID, userID)
	if err != nil {
		return nil, mapScheduleError(err, "failed to load schedule for completion")
	}

	now := srv.now()
	task := &entity.CareTask{
		ScheduleID:  schedule.ID,
		PlantID:     schedule.PlantID,
		CompletedAt: now,
		Notes:       input.Notes,
		PhotoURL:    input.PhotoURL,
	}
	next := recurrence.AdvanceByDays(schedule.NextDueDate, schedule.FrequencyDays)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewCareTaskRepository().Create(ctx, task); err != nil {
			return errors.Wrap(err, "failed to create care task")
		}

		return repoFactory.NewScheduleRepository().AdvanceNextDueDate(ctx, schedule.ID, schedule.NextDueDate, next)
	})
	if err != nil {
		if errors.Is(err, repository.ErrScheduleAdvanceConflict) {
			srv.log(ctx).Warn("Schedule moved during completion", slog.String("scheduleID", schedule.ID.String()))

			return nil, domainerrors.ErrScheduleConflict.WrapMessage("failed to complete task")
		}
		srv.log(ctx).Error("Failed to complete task", slog.String("scheduleID", schedule.ID.String()), slog.Any("error", err))

		return nil, mapScheduleError(err, "failed to complete task")
	}

	schedule.NextDueDate = next
	task.Schedule = schedule

	srv.log(ctx).Info("Care task completed",
		slog.String("taskID", task.ID.String()),
		slog.String("scheduleID", schedule.ID.String()),
		slog.Time("nextDueDate", next),
	)

	return &usecase.CompleteTaskOutput{Task: task, Schedule: schedule}, nil
}

// ListHistory returns one page of the user's completed tasks, newest first.
func (srv *taskService) ListHistory(ctx context.Context, userID uuid.UUID, page, limit int) (*entity.Page[*entity.CareTask], error) {
	page, limit, offset := normalizePagination(page, limit)

	tasks, total, err := srv.taskRepo.FindByUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list task history")
	}

	return entity.NewPage(tasks, page, limit, total), nil
}

// ListPlantHistory returns the recent completions of one of the user's plants.
func (srv *taskService) ListPlantHistory(ctx context.Context, userID, plantID uuid.UUID) ([]*entity.CareTask, error) {
	if _, err := srv.plantRepo.FindByIDForUser(ctx, plantID, userID); err != nil {
		return nil, mapPlantError(err, "failed to verify plant ownership")
	}

	tasks, err := srv.taskRepo.FindByPlant(ctx, plantID, constants.PlantHistoryLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list plant history")
	}

	return tasks, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "plantcare/internal/delivery/context"
	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/recurrence"
	"plantcare/internal/domain/repository"
	"plantcare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// scheduleService implements the ScheduleUsecase interface.
type scheduleService struct {
	plantRepo    repository.PlantRepository
	scheduleRepo repository.ScheduleRepository
	logger       *slog.Logger
	now          func() time.Time
}

// ScheduleServiceParams holds dependencies for ScheduleService, injected by Fx.
type ScheduleServiceParams struct {
	fx.In

	PlantRepo    repository.PlantRepository
	ScheduleRepo repository.ScheduleRepository
	Logger       *slog.Logger
}

// NewScheduleService is the constructor for scheduleService.
func NewScheduleService(params ScheduleServiceParams) usecase.ScheduleUsecase {
	return &scheduleService{
		plantRepo:    params.PlantRepo,
		scheduleRepo: params.ScheduleRepo,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *scheduleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateSchedule attaches a schedule to one of the user's plants and sets its first due date.
func (srv *scheduleService) CreateSchedule(ctx context.Context, userID uuid.UUID, input *usecase.CreateScheduleInput) (*entity.CareSchedule, error) {
	if _, err := srv.plantRepo.FindByIDForUser(ctx, input.PlantID, userID); err != nil {
		return nil, mapPlantError(err, "failed to verify plant ownership")
	}

	if err := validateRecurrence(input.TaskType, input.FrequencyDays); err != nil {
		return nil, err
	}

	tod, err := parseTimeOfDay(input.TimeOfDay)
	if err != nil {
		return nil, err
	}

	schedule := &entity.CareSchedule{
		PlantID:       input.PlantID,
		TaskType:      input.TaskType,
		FrequencyDays: input.FrequencyDays,
		TimeOfDay:     tod.String(),
		StartDate:     input.StartDate,
		NextDueDate:   recurrence.NextDue(input.StartDate, input.FrequencyDays, tod, srv.now()),
		Notes:         input.Notes,
		IsActive:      true,
	}

	if err := srv.scheduleRepo.Create(ctx, schedule); err != nil {
		return nil, mapScheduleError(err, "failed to create schedule")
	}

	srv.log(ctx).Info("Care schedule created",
		slog.String("scheduleID", schedule.ID.String()),
		slog.String("plantID", schedule.PlantID.String()),
		slog.Time("nextDueDate", schedule.NextDueDate),
	)

	return schedule, nil
}

// GetSchedule returns one of the user's schedules.
func (srv *scheduleService) GetSchedule(ctx context.Context, userID, scheduleID uuid.UUID) (*entity.CareSchedule, error) {
	schedule, err := srv.scheduleRepo.FindByIDForUser(ctx, scheduleID, userID)
	if err != nil {
		return nil, mapScheduleError(err, "failed to get schedule")
	}

	return schedule, nil
}

// ListSchedules returns every schedule across the user's plants.
func (srv *scheduleService) ListSchedules(ctx context.Context, userID uuid.UUID) ([]*entity.CareSchedule, error) {
	schedules, err := srv.scheduleRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list schedules")
	}

	return schedules, nil
}

// ListPlantSchedules returns the schedules of one plant after checking it belongs to the user.
func (srv *scheduleService) ListPlantSchedules(ctx context.Context, userID, plantID uuid.UUID) ([]*entity.CareSchedule, error) {
	if _, err := srv.plantRepo.FindByIDForUser(ctx, plantID, userID); err != nil {
		return nil, mapPlantError(err, "failed to verify plant ownership")
	}

	schedules, err := srv.scheduleRepo.FindByPlant(ctx, plantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list plant schedules")
	}

	return schedules, nil
}

// UpdateSchedule applies the non-nil fields of input. A change to the start date, frequency
// or time of day recomputes the next due date from the start date.
func (srv *scheduleService) UpdateSchedule(ctx context.Context, userID, scheduleID uuid.UUID, input *usecase.UpdateScheduleInput) (*entity.CareSchedule, error) {
	schedule, err := srv.scheduleRepo.FindByIDForUser(ctx, scheduleID, userID)
	if err != nil {
		return nil, mapScheduleError(err, "failed to load schedule for update")
	}

	recompute := false
	if input.TaskType != nil {
		schedule.TaskType = *input.TaskType
	}
	if input.FrequencyDays != nil {
		schedule.FrequencyDays = *input.FrequencyDays
		recompute = true
	}
	if input.StartDate != nil {
		schedule.StartDate = *input.StartDate
		recompute = true
	}
	if input.TimeOfDay != nil {
		schedule.TimeOfDay = *input.TimeOfDay
		recompute = true
	}
	if input.Notes != nil {
		schedule.Notes = *input.Notes
	}
	if input.IsActive != nil {
		schedule.IsActive = *input.IsActive
	}

	if err := validateRecurrence(schedule.TaskType, schedule.FrequencyDays); err != nil {
		return nil, err
	}

	if recompute {
		tod, err := parseTimeOfDay(schedule.TimeOfDay)
		if err != nil {
			return nil, err
		}
		schedule.TimeOfDay = tod.String()
		schedule.NextDueDate = recurrence.NextDue(schedule.StartDate, schedule.FrequencyDays, tod, srv.now())
	}

	if err := srv.scheduleRepo.Update(ctx, schedule); err != nil {
		return nil, mapScheduleError(err, "failed to update schedule")
	}

	return schedule, nil
}

// ToggleSchedule flips the active flag. Inactive schedules are skipped by the scan.
func (srv *scheduleService) ToggleSchedule(ctx context.Context, userID, scheduleID uuid.UUID) (*entity.CareSchedule, error) {
	schedule, err := srv.scheduleRepo.FindByIDForUser(ctx, scheduleID, userID)
	if err != nil {
		return nil, mapScheduleError(err, "failed to load schedule for toggle")
	}

	active := !schedule.IsActive
	if err := srv.scheduleRepo.SetActive(ctx, schedule.ID, active); err != nil {
		return nil, mapScheduleError(err, "failed to toggle schedule")
	}
	schedule.IsActive = active

	srv.log(ctx).Info("Care schedule toggled", slog.String("scheduleID", schedule.ID.String()), slog.Bool("active", active))

	return schedule, nil
}

// DeleteSchedule soft-deletes one of the user's schedules.
func (srv *scheduleService) DeleteSchedule(ctx context.Context, userID, scheduleID uuid.UUID) error {
	if _, err := srv.scheduleRepo.FindByIDForUser(ctx, scheduleID, userID); err != nil {
		return mapScheduleError(err, "failed to load schedule for delete")
	}

	if err := srv.scheduleRepo.SoftDelete(ctx, scheduleID); err != nil {
		return mapScheduleError(err, "failed to delete schedule")
	}

	return nil
}

func validateRecurrence(taskType entity.TaskType, frequencyDays int) error {
	if !taskType.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("taskType must be WATERING or FERTILIZING")
	}
	if frequencyDays < 1 {
		return domainerrors.ErrValidationFailed.WithDetails("frequencyDays must be at least 1")
	}

	return nil
}

func parseTimeOfDay(s string) (recurrence.TimeOfDay, error) {
	tod, err := recurrence.ParseTimeOfDay(s)
	if err != nil {
		return recurrence.TimeOfDay{}, domainerrors.ErrInvalidTimeOfDay.WrapMessage(err.Error())
	}

	return tod, nil
}

func mapScheduleError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrScheduleNotFound):
		return domainerrors.ErrScheduleNotFound.WrapMessage(message)
	case errors.Is(err, repository.ErrPlantNotFound):
		return domainerrors.ErrPlantNotFound.WrapMessage(message)
	default:
		return errors.Wrap(err, message)
	}
}

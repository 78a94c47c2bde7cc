package impl

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"time"

	"plantcare/config"
	deliverycontext "plantcare/internal/delivery/context"
	"plantcare/internal/domain/entity"
	"plantcare/internal/domain/recurrence"
	"plantcare/internal/domain/repository"
	"plantcare/internal/domain/service"
	"plantcare/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// scanTimestampLayout is ISO-8601 with millisecond precision in UTC.
const scanTimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// scanService implements the ScanUsecase interface.
type scanService struct {
	scheduleRepo repository.ScheduleRepository
	userRepo     repository.UserRepository
	logRepo      repository.NotificationLogRepository
	dispatcher   usecase.ReminderDispatcher
	metrics      service.ReminderMetrics
	cronSecret   string
	logger       *slog.Logger
	now          func() time.Time
}

// ScanServiceParams holds dependencies for ScanService, injected by Fx.
type ScanServiceParams struct {
	fx.In

	ScheduleRepo repository.ScheduleRepository
	UserRepo     repository.UserRepository
	LogRepo      repository.NotificationLogRepository
	Dispatcher   usecase.ReminderDispatcher
	Metrics      service.ReminderMetrics
	Config       *config.Config
	Logger       *slog.Logger
}

// NewScanService is the constructor for scanService.
func NewScanService(params ScanServiceParams) usecase.ScanUsecase {
	return &scanService{
		scheduleRepo: params.ScheduleRepo,
		userRepo:     params.UserRepo,
		logRepo:      params.LogRepo,
		dispatcher:   params.Dispatcher,
		metrics:      params.Metrics,
		cronSecret:   params.Config.Cron.Secret,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *scanService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CheckTasks rejects the call before touching storage unless credential equals the cron secret.
func (srv *scanService) CheckTasks(ctx context.Context, credential string) (*usecase.ScanSummary, error) {
	if srv.cronSecret == "" || subtle.ConstantTimeCompare([]byte(credential), []byte(srv.cronSecret)) != 1 {
		srv.log(ctx).Warn("Rejected cron trigger", slog.Bool("secretConfigured", srv.cronSecret != ""))

		return nil, usecase.ErrCronUnauthorized
	}

	return srv.RunScan(ctx)
}

// RunScan processes every due schedule once. A failing schedule never stops the scan;
// only a failure to load the due set is returned.
func (srv *scanService) RunScan(ctx context.Context) (*usecase.ScanSummary, error) {
	started := srv.now()

	due, err := srv.scheduleRepo.FindDue(ctx, started)
	if err != nil {
		srv.log(ctx).Error("Failed to load due schedules", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load due schedules")
	}

	summary := &usecase.ScanSummary{Success: true}
	for _, item := range due {
		srv.processSchedule(ctx, item, summary)
	}

	// The timestamp is the cut-off used for the due query.
	summary.Timestamp = started.UTC().Format(scanTimestampLayout)
	finished := srv.now()
	srv.metrics.ObserveScan(summary.ProcessedCount, summary.NotificationsSent, len(summary.Errors), finished.Sub(started))

	srv.log(ctx).Info("Due-task scan finished",
		slog.Int("due", len(due)),
		slog.Int("processed", summary.ProcessedCount),
		slog.Int("sent", summary.NotificationsSent),
		slog.Int("errors", len(summary.Errors)),
		slog.Duration("elapsed", finished.Sub(started)),
	)

	return summary, nil
}

func (srv *scanService) processSchedule(ctx context.Context, due *entity.DueSchedule, summary *usecase.ScanSummary) {
	schedule := due.Schedule

	if err := srv.handleSchedule(ctx, due, summary); err != nil {
		summary.Errors = append(summary.Errors, fmt.Sprintf("Schedule %s: %s", schedule.ID, err))
		srv.log(ctx).Error("Failed to process due schedule",
			slog.String("scheduleID", schedule.ID.String()),
			slog.Any("error", err),
		)
		srv.writeFallbackLog(ctx, due, err)

		return
	}

	summary.ProcessedCount++
}

// handleSchedule dispatches, aggregates the channel results and advances the schedule one cycle.
func (srv *scanService) handleSchedule(ctx context.Context, due *entity.DueSchedule, summary *usecase.ScanSummary) error {
	if due.Owner == nil {
		return errors.New("schedule has no owner")
	}

	schedule := due.Schedule
	results, err := srv.dispatcher.Dispatch(ctx, due)
	srv.aggregate(ctx, due, results, summary)
	if err != nil {
		return err
	}

	next := recurrence.AdvanceByDays(schedule.NextDueDate, schedule.FrequencyDays)
	err = srv.scheduleRepo.AdvanceNextDueDate(ctx, schedule.ID, schedule.NextDueDate, next)
	if errors.Is(err, repository.ErrScheduleAdvanceConflict) {
		srv.log(ctx).Warn("Schedule already advanced by another writer",
			slog.String("scheduleID", schedule.ID.String()),
			slog.Time("expected", schedule.NextDueDate),
		)

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "advance next due date")
	}

	return nil
}

func (srv *scanService) aggregate(ctx context.Context, due *entity.DueSchedule, results []entity.ChannelResult, summary *usecase.ScanSummary) {
	scheduleID := due.Schedule.ID

	for _, result := range results {
		if result.Success {
			summary.NotificationsSent++

			continue
		}

		switch result.Channel {
		case entity.ChannelEmail:
			summary.Errors = append(summary.Errors, fmt.Sprintf("Email failed for schedule %s: %s", scheduleID, result.Error))
		case entity.ChannelPush:
			summary.Errors = append(summary.Errors, fmt.Sprintf("Push failed for schedule %s: %s", scheduleID, result.Error))
		}

		if result.TokenInvalid {
			if err := srv.userRepo.ClearPushToken(ctx, due.Owner.ID); err != nil {
				srv.log(ctx).Error("Failed to clear invalid push token",
					slog.String("userID", due.Owner.ID.String()),
					slog.Any("error", err),
				)
			} else {
				srv.log(ctx).Info("Cleared invalid push token", slog.String("userID", due.Owner.ID.String()))
			}
		}
	}
}

// writeFallbackLog leaves an audit row for a schedule whose processing failed outright.
func (srv *scanService) writeFallbackLog(ctx context.Context, due *entity.DueSchedule, cause error) {
	if due.Owner == nil {
		return
	}

	err := srv.logRepo.Create(ctx, &entity.NotificationLog{
		ScheduleID:   due.Schedule.ID,
		UserID:       due.Owner.ID,
		Channel:      entity.ChannelEmail,
		Status:       entity.NotificationStatusFailed,
		ErrorMessage: cause.Error(),
		CreatedAt:    srv.now(),
	})
	if err != nil {
		srv.log(ctx).Error("Failed to write fallback notification log",
			slog.String("scheduleID", due.Schedule.ID.String()),
			slog.Any("error", err),
		)
	}
}

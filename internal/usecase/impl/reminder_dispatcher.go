package impl

import (
	"context"
	"log/slog"
	"time"

	"plantcare/config"
	deliverycontext "plantcare/internal/delivery/context"
	"plantcare/internal/domain/entity"
	"plantcare/internal/domain/repository"
	"plantcare/internal/domain/service"
	"plantcare/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

// reminderDispatcher implements the ReminderDispatcher interface.
type reminderDispatcher struct {
	emailSvc   service.EmailService
	pushSvc    service.PushService
	logRepo    repository.NotificationLogRepository
	limiter    *rate.Limiter
	metrics    service.ReminderMetrics
	appBaseURL string
	logger     *slog.Logger
	now        func() time.Time
}

// ReminderDispatcherParams holds dependencies for the dispatcher, injected by Fx.
type ReminderDispatcherParams struct {
	fx.In

	EmailSvc service.EmailService
	PushSvc  service.PushService
	LogRepo  repository.NotificationLogRepository
	Limiter  *rate.Limiter
	Metrics  service.ReminderMetrics
	Config   *config.Config
	Logger   *slog.Logger
}

// NewReminderDispatcher is the constructor for reminderDispatcher.
func NewReminderDispatcher(params ReminderDispatcherParams) usecase.ReminderDispatcher {
	return &reminderDispatcher{
		emailSvc:   params.EmailSvc,
		pushSvc:    params.PushSvc,
		logRepo:    params.LogRepo,
		limiter:    params.Limiter,
		metrics:    params.Metrics,
		appBaseURL: params.Config.App.BaseURL,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (srv *reminderDispatcher) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dispatch sends the reminder for one due schedule, email first, then push.
func (srv *reminderDispatcher) Dispatch(ctx context.Context, due *entity.DueSchedule) ([]entity.ChannelResult, error) {
	owner := due.Owner
	r := newReminder(due)
	results := make([]entity.ChannelResult, 0, 2)

	if owner.WantsEmail() {
		result := srv.sendEmail(ctx, owner.Email, r)
		if err := srv.record(ctx, due, result); err != nil {
			return results, err
		}
		results = append(results, result)
	}

	if owner.WantsPush() {
		result := srv.sendPush(ctx, *owner.PushToken, r)
		if err := srv.record(ctx, due, result); err != nil {
			return results, err
		}
		results = append(results, result)
	}

	return results, nil
}

func (srv *reminderDispatcher) sendEmail(ctx context.Context, to string, r reminder) entity.ChannelResult {
	result := entity.ChannelResult{Channel: entity.ChannelEmail}

	msg, err := buildReminderEmail(to, srv.appBaseURL, r)
	if err != nil {
		result.Error = errors.Wrap(err, "render reminder email").Error()

		return result
	}

	if err := srv.wait(ctx); err != nil {
		result.Error = err.Error()

		return result
	}

	messageID, err := srv.emailSvc.Send(ctx, msg)
	if err != nil {
		result.Error = err.Error()

		return result
	}

	result.Success = true
	result.MessageID = messageID

	return result
}

func (srv *reminderDispatcher) sendPush(ctx context.Context, token string, r reminder) entity.ChannelResult {
	result := entity.ChannelResult{Channel: entity.ChannelPush}

	if err := srv.wait(ctx); err != nil {
		result.Error = err.Error()

		return result
	}

	messageID, err := srv.pushSvc.Send(ctx, token, buildReminderPush(r))
	if err != nil {
		result.Error = err.Error()
		result.TokenInvalid = errors.Is(err, service.ErrInvalidPushToken)

		return result
	}

	result.Success = true
	result.MessageID = messageID

	return result
}

// wait paces transport calls across the whole scan.
func (srv *reminderDispatcher) wait(ctx context.Context) error {
	if srv.limiter == nil {
		return nil
	}

	return errors.Wrap(srv.limiter.Wait(ctx), "dispatch rate limiter")
}

// record writes the audit row for one attempt.
func (srv *reminderDispatcher) record(ctx context.Context, due *entity.DueSchedule, result entity.ChannelResult) error {
	srv.metrics.ObserveDispatch(result.Channel, result.Status())

	if !result.Success {
		srv.log(ctx).Warn("Reminder delivery failed",
			slog.String("scheduleID", due.Schedule.ID.String()),
			slog.String("channel", string(result.Channel)),
			slog.String("error", result.Error),
			slog.Bool("tokenInvalid", result.TokenInvalid),
		)
	}

	err := srv.logRepo.Create(ctx, &entity.NotificationLog{
		ScheduleID:   due.Schedule.ID,
		UserID:       due.Owner.ID,
		Channel:      result.Channel,
		Status:       result.Status(),
		MessageID:    result.MessageID,
		ErrorMessage: result.Error,
		CreatedAt:    srv.now(),
	})

	return errors.Wrap(err, "write notification log")
}

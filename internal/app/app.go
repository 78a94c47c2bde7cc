// Package app groups the Fx providers shared by the service and the operator CLI.
package app

import (
	"context"
	"log/slog"

	"plantcare/config"
	"plantcare/internal/domain/service"
	"plantcare/internal/infra/auth"
	logs "plantcare/internal/infra/log"
	"plantcare/internal/infra/metrics"
	"plantcare/internal/infra/notification"
	"plantcare/internal/infra/persistence/postgres"
	"plantcare/internal/infra/ratelimit"
	"plantcare/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

// Infra provides configuration, logging, the database, metrics and rate limit stores.
func Infra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			metrics.NewRegistry,
			metrics.NewRecorder,
			func(r *metrics.Recorder) service.ReminderMetrics { return r },
			newDispatchLimiter,
			ratelimit.NewRedisClient,
			ratelimit.New,
		),
	)
}

// Repositories provides the PostgreSQL repositories.
func Repositories() fx.Option {
	return fx.Provide(
		postgres.NewUserRepository,
		postgres.NewPlantRepository,
		postgres.NewScheduleRepository,
		postgres.NewCareTaskRepository,
		postgres.NewNotificationLogRepository,
		postgres.NewTransactionManager,
	)
}

// Services provides password hashing, tokens and the reminder transports.
func Services() fx.Option {
	return fx.Provide(
		auth.NewBcryptHasher,
		auth.NewJWTService,
		newEmailService,
		newPushService,
	)
}

// Usecases provides the application services.
func Usecases() fx.Option {
	return fx.Provide(
		impl.NewUserService,
		impl.NewPlantService,
		impl.NewScheduleService,
		impl.NewTaskService,
		impl.NewNotificationService,
		impl.NewReminderDispatcher,
		impl.NewScanService,
	)
}

// newDispatchLimiter paces transport calls across one scan.
func newDispatchLimiter(cfg *config.Config) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(cfg.Dispatch.MaxPerSecond), cfg.Dispatch.Burst)
}

// newEmailService uses SendGrid when an API key is configured.
func newEmailService(cfg *config.Config, logger *slog.Logger) service.EmailService {
	if cfg.SendGrid == nil || cfg.SendGrid.APIKey == "" {
		logs.WithComponent(logger, "notification").Warn("SendGrid is not configured, reminder emails will fail")

		return notification.NewUnconfiguredEmailService()
	}

	return notification.NewSendGridService(cfg.SendGrid)
}

// newPushService uses Firebase Cloud Messaging when a project is configured.
func newPushService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.PushService, error) {
	if cfg.Firebase == nil || (cfg.Firebase.ProjectID == "" && cfg.Firebase.CredentialsPath == "") {
		logs.WithComponent(logger, "notification").Warn("Firebase is not configured, push reminders will fail")

		return notification.NewUnconfiguredPushService(), nil
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase service")
	}

	return svc, nil
}

package main

import (
	"context"
	"log/slog"
	"os"

	"plantcare/internal/app"
	"plantcare/internal/delivery"
	"plantcare/internal/delivery/api"
	apimiddleware "plantcare/internal/delivery/api/middleware"
	"plantcare/internal/delivery/api/router/handler"
	"plantcare/internal/delivery/middleware"
	"plantcare/internal/delivery/scheduler"
	"plantcare/internal/domain/service"
	"plantcare/internal/infra/metrics"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		app.Infra(),
		app.Repositories(),
		app.Services(),
		app.Usecases(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
			func(r *metrics.Recorder) middleware.HTTPMetrics { return r },
			func(r *metrics.Recorder) apimiddleware.RateLimitMetrics { return r },
			fx.Annotate(
				newAuthRateLimit,
				fx.ParamTags(`name:"authRateLimiter"`),
				fx.ResultTags(`name:"authRateLimit"`),
			),
			fx.Annotate(
				newAPIRateLimit,
				fx.ParamTags(`name:"apiRateLimiter"`),
				fx.ResultTags(`name:"apiRateLimit"`),
			),
		),
	)
}

func newAuthRateLimit(limiter service.RateLimiter, metrics apimiddleware.RateLimitMetrics, logger *slog.Logger) *apimiddleware.RateLimitMiddleware {
	return apimiddleware.NewRateLimitMiddleware("auth", limiter, metrics, logger)
}

func newAPIRateLimit(limiter service.RateLimiter, metrics apimiddleware.RateLimitMetrics, logger *slog.Logger) *apimiddleware.RateLimitMiddleware {
	return apimiddleware.NewRateLimitMiddleware("api", limiter, metrics, logger)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewPlantHandler,
			handler.NewScheduleHandler,
			handler.NewTaskHandler,
			handler.NewNotificationHandler,
			handler.NewCronHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.New,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

package middleware

import (
	"context"
	"log/slog"
	"time"

	"plantcare/config"
	deliverycontext "plantcare/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// HTTPMetrics records per-route request outcomes.
type HTTPMetrics interface {
	ObserveHTTP(route, method string, status int, elapsed time.Duration)
}

// LoggerMiddleware records every request in metrics and, in debug mode, logs it
type LoggerMiddleware struct {
	logger  *slog.Logger
	metrics HTTPMetrics
	debug   bool
}

// NewLoggerMiddleware creates a new logger middleware. metrics may be nil.
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config, metrics HTTPMetrics) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger:  logger,
		metrics: metrics,
		debug:   config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			// Render now; the status read below is final.
			c.Error(err)
		}

		if m.metrics != nil {
			m.metrics.ObserveHTTP(routeOf(c), c.Request().Method, c.Response().Status, time.Since(start))
		}
		if m.debug {
			m.logRequest(c, start, err)
		}

		return nil
	}
}

// routeOf returns the registered route pattern, or "unmatched".
func routeOf(c echo.Context) string {
	if path := c.Path(); path != "" {
		return path
	}

	return "unmatched"
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("route", routeOf(c)),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if userID, ok := deliverycontext.GetUserID(c); ok {
		fields = append(fields, slog.String("user_id", userID.String()))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if res.Status >= 400 {
		logLevel = slog.LevelWarn
	}
	if res.Status >= 500 {
		logLevel = slog.LevelError
	}

	m.logger.LogAttrs(context.Background(), logLevel, "HTTP Request", fields...)
}

package middleware

import (
	"log/slog"
	"strconv"
	"strings"

	"plantcare/internal/delivery/api/response"
	deliverycontext "plantcare/internal/delivery/context"
	"plantcare/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	headerRateLimitRemaining = "X-RateLimit-Remaining"
	headerRateLimitReset     = "X-RateLimit-Reset"
	headerRealIP             = "X-Real-Ip"
	headerCFConnectingIP     = "Cf-Connecting-Ip"
)

// RateLimitMetrics counts rejected requests.
type RateLimitMetrics interface {
	ObserveRateLimited(route string)
}

// RateLimitMiddleware rejects clients that exceed a fixed-window budget.
type RateLimitMiddleware struct {
	name    string
	limiter service.RateLimiter
	metrics RateLimitMetrics
	logger  *slog.Logger
}

// NewRateLimitMiddleware creates a limiter middleware. name labels metrics and logs; metrics may be nil.
func NewRateLimitMiddleware(name string, limiter service.RateLimiter, metrics RateLimitMetrics, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		name:    name,
		limiter: limiter,
		metrics: metrics,
		logger:  logger,
	}
}

// Limit is the echo middleware func.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		result, err := m.limiter.Check(c.Request().Context(), m.name+":"+ClientIdentifier(c))
		if err != nil {
			// Fail open on store errors.
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Warn("Rate limiter unavailable", slog.String("limiter", m.name), slog.Any("error", err))

			return next(c)
		}

		header := c.Response().Header()
		header.Set(headerRateLimitRemaining, strconv.Itoa(result.Remaining))
		header.Set(headerRateLimitReset, strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			if m.metrics != nil {
				m.metrics.ObserveRateLimited(m.name)
			}

			return response.TooManyRequests(c)
		}

		return next(c)
	}
}

// ClientIdentifier picks the caller address: the first X-Forwarded-For entry, then
// X-Real-Ip, then Cf-Connecting-Ip, then the connection address.
func ClientIdentifier(c echo.Context) string {
	req := c.Request()

	if forwarded := req.Header.Get(echo.HeaderXForwardedFor); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}

	for _, h := range []string{headerRealIP, headerCFConnectingIP} {
		if v := strings.TrimSpace(req.Header.Get(h)); v != "" {
			return v
		}
	}

	return c.RealIP()
}

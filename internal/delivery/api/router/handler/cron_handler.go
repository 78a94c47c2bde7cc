package handler

import (
	"log/slog"
	"net/http"

	"plantcare/internal/delivery/api/middleware"
	deliverycontext "plantcare/internal/delivery/context"
	"plantcare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CronHandlerParams holds dependencies for CronHandler, injected by Fx.
type CronHandlerParams struct {
	fx.In

	ScanUC usecase.ScanUsecase
	Logger *slog.Logger
}

// CronHandler exposes the due-task scan to an external scheduler.
type CronHandler struct {
	scanUC usecase.ScanUsecase
	logger *slog.Logger
}

// NewCronHandler is the constructor for CronHandler
func NewCronHandler(params CronHandlerParams) *CronHandler {
	return &CronHandler{
		scanUC: params.ScanUC,
		logger: params.Logger,
	}
}

type cronErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// CheckTasks runs one scan. The body is the bare scan summary, not the API envelope.
func (h *CronHandler) CheckTasks(c echo.Context) error {
	credential, _ := middleware.BearerToken(c)

	summary, err := h.scanUC.CheckTasks(c.Request().Context(), credential)
	if err != nil {
		if errors.Is(err, usecase.ErrCronUnauthorized) {
			return c.JSON(http.StatusUnauthorized, cronErrorResponse{Error: "Unauthorized"})
		}

		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Error("Cron scan failed", slog.Any("error", err))

		return c.JSON(http.StatusInternalServerError, cronErrorResponse{
			Error:   "Internal server error",
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, summary)
}

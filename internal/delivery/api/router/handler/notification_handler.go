package handler

import (
	"log/slog"
	"net/http"

	"plantcare/internal/delivery/api/response"
	"plantcare/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves /notifications
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// UpdatePreferencesRequest is the body of PUT /notifications/preferences
type UpdatePreferencesRequest struct {
	PushEnabled   *bool   `json:"push_enabled"`
	EmailEnabled  *bool   `json:"email_enabled"`
	PreferredTime *string `json:"preferred_time" validate:"omitempty,timeofday"`
	DailyDigest   *bool   `json:"daily_digest"`
}

// SubscribeRequest is the body of POST /notifications/subscribe
type SubscribeRequest struct {
	Token string `json:"token" validate:"required,max=4096"`
}

// GetPreferences returns the user's notification preferences
func (h *NotificationHandler) GetPreferences(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	prefs, err := h.notificationUC.GetPreferences(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, prefs)
}

// UpdatePreferences merges the given fields into the stored preferences
func (h *NotificationHandler) UpdatePreferences(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	var req UpdatePreferencesRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	prefs, err := h.notificationUC.UpdatePreferences(c.Request().Context(), userID, &usecase.UpdatePreferencesInput{
		PushEnabled:   req.PushEnabled,
		EmailEnabled:  req.EmailEnabled,
		PreferredTime: req.PreferredTime,
		DailyDigest:   req.DailyDigest,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, prefs)
}

// Subscribe stores a push registration token
func (h *NotificationHandler) Subscribe(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	var req SubscribeRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.notificationUC.Subscribe(c.Request().Context(), userID, req.Token); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Push subscription saved"})
}

// SendTest sends a sample reminder through the enabled channels
func (h *NotificationHandler) SendTest(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	out, err := h.notificationUC.SendTest(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// ListLogs returns one page of the user's delivery log
func (h *NotificationHandler) ListLogs(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	page, limit, err := pageQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "page and limit must be integers")
	}

	logs, err := h.notificationUC.ListLogs(c.Request().Context(), userID, page, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, logs)
}

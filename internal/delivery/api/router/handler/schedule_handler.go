package handler

import (
	"log/slog"
	"net/http"

	"plantcare/internal/delivery/api/response"
	"plantcare/internal/domain/entity"
	"plantcare/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ScheduleHandlerParams holds dependencies for ScheduleHandler, injected by Fx.
type ScheduleHandlerParams struct {
	fx.In

	ScheduleUC usecase.ScheduleUsecase
	Logger     *slog.Logger
}

// ScheduleHandler serves /schedules
type ScheduleHandler struct {
	scheduleUC usecase.ScheduleUsecase
	logger     *slog.Logger
}

// NewScheduleHandler is the constructor for ScheduleHandler
func NewScheduleHandler(params ScheduleHandlerParams) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUC: params.ScheduleUC,
		logger:     params.Logger,
	}
}

// CreateScheduleRequest is the body of POST /schedules
type CreateScheduleRequest struct {
	PlantID       string `json:"plant_id" validate:"required,uuid"`
	TaskType      string `json:"task_type" validate:"required,oneof=WATERING FERTILIZING"`
	FrequencyDays int    `json:"frequency_days" validate:"required,min=1,max=365"`
	TimeOfDay     string `json:"time_of_day" validate:"required,timeofday"`
	StartDate     string `json:"start_date" validate:"required"`
	Notes         string `json:"notes" validate:"max=1000"`
}

// UpdateScheduleRequest is the body of PUT /schedules/:id. Omitted fields are unchanged.
type UpdateScheduleRequest struct {
	TaskType      *string `json:"task_type" validate:"omitempty,oneof=WATERING FERTILIZING"`
	FrequencyDays *int    `json:"frequency_days" validate:"omitempty,min=1,max=365"`
	TimeOfDay     *string `json:"time_of_day" validate:"omitempty,timeofday"`
	StartDate     *string `json:"start_date"`
	Notes         *string `json:"notes" validate:"omitempty,max=1000"`
	IsActive      *bool   `json:"is_active"`
}

// CreateSchedule adds a care schedule to one of the user's plants
func (h *ScheduleHandler) CreateSchedule(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	var req CreateScheduleRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	plantID, err := uuid.Parse(req.PlantID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid plant ID")
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", err.Error())
	}

	schedule, err := h.scheduleUC.CreateSchedule(c.Request().Context(), userID, &usecase.CreateScheduleInput{
		PlantID:       plantID,
		TaskType:      entity.TaskType(req.TaskType),
		FrequencyDays: req.FrequencyDays,
		TimeOfDay:     req.TimeOfDay,
		StartDate:     start,
		Notes:         req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, schedule)
}

// ListSchedules returns every schedule on the user's plants
func (h *ScheduleHandler) ListSchedules(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	schedules, err := h.scheduleUC.ListSchedules(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, schedules)
}

// ListPlantSchedules returns the schedules of one plant
func (h *ScheduleHandler) ListPlantSchedules(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	plantID, ok, err := pathUUID(c, "plantId", "plant")
	if !ok {
		return err
	}

	schedules, err := h.scheduleUC.ListPlantSchedules(c.Request().Context(), userID, plantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, schedules)
}

// GetSchedule returns one schedule
func (h *ScheduleHandler) GetSchedule(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	scheduleID, ok, err := pathUUID(c, "id", "schedule")
	if !ok {
		return err
	}

	schedule, err := h.scheduleUC.GetSchedule(c.Request().Context(), userID, scheduleID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, schedule)
}

// UpdateSchedule applies a partial update and recomputes the next due date when the recurrence changes
func (h *ScheduleHandler) UpdateSchedule(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	scheduleID, ok, err := pathUUID(c, "id", "schedule")
	if !ok {
		return err
	}

	var req UpdateScheduleRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	start, err := parseOptionalDate(req.StartDate)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", err.Error())
	}

	input := &usecase.UpdateScheduleInput{
		FrequencyDays: req.FrequencyDays,
		TimeOfDay:     req.TimeOfDay,
		StartDate:     start,
		Notes:         req.Notes,
		IsActive:      req.IsActive,
	}
	if req.TaskType != nil {
		taskType := entity.TaskType(*req.TaskType)
		input.TaskType = &taskType
	}

	schedule, err := h.scheduleUC.UpdateSchedule(c.Request().Context(), userID, scheduleID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, schedule)
}

// ToggleSchedule flips is_active
func (h *ScheduleHandler) ToggleSchedule(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	scheduleID, ok, err := pathUUID(c, "id", "schedule")
	if !ok {
		return err
	}

	schedule, err := h.scheduleUC.ToggleSchedule(c.Request().Context(), userID, scheduleID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, schedule)
}

// DeleteSchedule soft-deletes a schedule
func (h *ScheduleHandler) DeleteSchedule(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	scheduleID, ok, err := pathUUID(c, "id", "schedule")
	if !ok {
		return err
	}

	if err := h.scheduleUC.DeleteSchedule(c.Request().Context(), userID, scheduleID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Schedule deleted successfully"})
}

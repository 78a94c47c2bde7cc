package handler

import (
	"log/slog"
	"net/http"

	"plantcare/internal/delivery/api/response"
	"plantcare/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TaskHandlerParams holds dependencies for TaskHandler, injected by Fx.
type TaskHandlerParams struct {
	fx.In

	TaskUC usecase.TaskUsecase
	Logger *slog.Logger
}

// TaskHandler serves /tasks
type TaskHandler struct {
	taskUC usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler
func NewTaskHandler(params TaskHandlerParams) *TaskHandler {
	return &TaskHandler{
		taskUC: params.TaskUC,
		logger: params.Logger,
	}
}

// CompleteTaskRequest is the body of POST /tasks/complete
type CompleteTaskRequest struct {
	ScheduleID string `json:"schedule_id" validate:"required,uuid"`
	Notes      string `json:"notes" validate:"max=1000"`
	PhotoURL   string `json:"photo_url" validate:"omitempty,url"`
}

// ListUpcoming returns active schedules ordered by next due date, optionally within startDate..endDate
func (h *TaskHandler) ListUpcoming(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	startParam, endParam := c.QueryParam("startDate"), c.QueryParam("endDate")
	start, err := parseOptionalDate(&startParam)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", err.Error())
	}
	end, err := parseOptionalDate(&endParam)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", err.Error())
	}

	schedules, err := h.taskUC.ListUpcoming(c.Request().Context(), userID, &usecase.UpcomingTasksInput{
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, schedules)
}

// CompleteTask records a completion and advances the schedule by one cycle
func (h *TaskHandler) CompleteTask(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	var req CompleteTaskRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	scheduleID, err := uuid.Parse(req.ScheduleID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid schedule ID")
	}

	out, err := h.taskUC.CompleteTask(c.Request().Context(), userID, &usecase.CompleteTaskInput{
		ScheduleID: scheduleID,
		Notes:      req.Notes,
		PhotoURL:   req.PhotoURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, out)
}

// ListHistory returns one page of completed tasks
func (h *TaskHandler) ListHistory(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	page, limit, err := pageQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "page and limit must be integers")
	}

	history, err := h.taskUC.ListHistory(c.Request().Context(), userID, page, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, history)
}

// ListPlantHistory returns the latest completed tasks of one plant
func (h *TaskHandler) ListPlantHistory(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	plantID, ok, err := pathUUID(c, "plantId", "plant")
	if !ok {
		return err
	}

	tasks, err := h.taskUC.ListPlantHistory(c.Request().Context(), userID, plantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tasks)
}

package handler

import (
	"net/http"
	"testing"
	"time"

	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	usecasemocks "plantcare/internal/mocks/usecase"
	"plantcare/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTaskEcho(t *testing.T, userID uuid.UUID) (*echo.Echo, *usecasemocks.MockTaskUsecase) {
	t.Helper()

	taskUC := usecasemocks.NewMockTaskUsecase(t)
	h := NewTaskHandler(TaskHandlerParams{TaskUC: taskUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	g := e.Group("/api/v1/tasks", asUser(userID))
	g.GET("", h.ListUpcoming)
	g.POST("/complete", h.CompleteTask)
	g.GET("/history", h.ListHistory)
	g.GET("/plant/:plantId/history", h.ListPlantHistory)

	return e, taskUC
}

func TestTaskHandler_ListUpcoming(t *testing.T) {
	userID := uuid.New()

	t.Run("without window", func(t *testing.T) {
		e, taskUC := newTaskEcho(t, userID)
		taskUC.EXPECT().ListUpcoming(mock.Anything, userID, &usecase.UpcomingTasksInput{}).
			Return([]*entity.CareSchedule{}, nil)

		rec := doRequest(t, e, http.MethodGet, "/api/v1/tasks", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("with window", func(t *testing.T) {
		e, taskUC := newTaskEcho(t, userID)
		start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC)
		taskUC.EXPECT().ListUpcoming(mock.Anything, userID, &usecase.UpcomingTasksInput{StartDate: &start, EndDate: &end}).
			Return([]*entity.CareSchedule{}, nil)

		rec := doRequest(t, e, http.MethodGet, "/api/v1/tasks?startDate=2024-03-01&endDate=2024-03-07", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad date", func(t *testing.T) {
		e, _ := newTaskEcho(t, userID)

		rec := doRequest(t, e, http.MethodGet, "/api/v1/tasks?startDate=yesterday", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTaskHandler_CompleteTask(t *testing.T) {
	userID, scheduleID := uuid.New(), uuid.New()
	e, taskUC := newTaskEcho(t, userID)

	taskUC.EXPECT().CompleteTask(mock.Anything, userID, &usecase.CompleteTaskInput{
		ScheduleID: scheduleID,
		Notes:      "soaked",
	}).Return(&usecase.CompleteTaskOutput{
		Task:     &entity.CareTask{ID: uuid.New(), ScheduleID: scheduleID},
		Schedule: &entity.CareSchedule{ID: scheduleID},
	}, nil)

	rec := doRequest(t, e, http.MethodPost, "/api/v1/tasks/complete",
		`{"schedule_id":"`+scheduleID.String()+`","notes":"soaked"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"task":{`)
}

func TestTaskHandler_CompleteTask_Conflict(t *testing.T) {
	userID, scheduleID := uuid.New(), uuid.New()
	e, taskUC := newTaskEcho(t, userID)
	taskUC.EXPECT().CompleteTask(mock.Anything, userID, mock.Anything).
		Return(nil, domainerrors.ErrScheduleConflict.WrapMessage("advance next due date"))

	rec := doRequest(t, e, http.MethodPost, "/api/v1/tasks/complete", `{"schedule_id":"`+scheduleID.String()+`"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "SCHEDULE_CONFLICT", decodeEnvelope(t, rec.Body.Bytes()).Error.Code)
}

func TestTaskHandler_CompleteTask_RequiresScheduleID(t *testing.T) {
	e, _ := newTaskEcho(t, uuid.New())

	rec := doRequest(t, e, http.MethodPost, "/api/v1/tasks/complete", `{"notes":"soaked"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTaskHandler_ListHistory_DefaultsLeftToUsecase(t *testing.T) {
	userID := uuid.New()
	e, taskUC := newTaskEcho(t, userID)
	taskUC.EXPECT().ListHistory(mock.Anything, userID, 0, 0).
		Return(entity.NewPage([]*entity.CareTask{}, 1, 20, 0), nil)

	rec := doRequest(t, e, http.MethodGet, "/api/v1/tasks/history", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTaskHandler_ListPlantHistory(t *testing.T) {
	userID, plantID := uuid.New(), uuid.New()
	e, taskUC := newTaskEcho(t, userID)
	taskUC.EXPECT().ListPlantHistory(mock.Anything, userID, plantID).Return([]*entity.CareTask{}, nil)

	rec := doRequest(t, e, http.MethodGet, "/api/v1/tasks/plant/"+plantID.String()+"/history", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

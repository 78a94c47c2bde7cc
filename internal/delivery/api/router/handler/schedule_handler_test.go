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

func newScheduleEcho(t *testing.T, userID uuid.UUID) (*echo.Echo, *usecasemocks.MockScheduleUsecase) {
	t.Helper()

	scheduleUC := usecasemocks.NewMockScheduleUsecase(t)
	h := NewScheduleHandler(ScheduleHandlerParams{ScheduleUC: scheduleUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	g := e.Group("/api/v1/schedules", asUser(userID))
	g.POST("", h.CreateSchedule)
	g.GET("", h.ListSchedules)
	g.GET("/plant/:plantId", h.ListPlantSchedules)
	g.GET("/:id", h.GetSchedule)
	g.PUT("/:id", h.UpdateSchedule)
	g.PATCH("/:id/toggle", h.ToggleSchedule)
	g.DELETE("/:id", h.DeleteSchedule)

	return e, scheduleUC
}

func TestScheduleHandler_CreateSchedule(t *testing.T) {
	userID, plantID := uuid.New(), uuid.New()
	e, scheduleUC := newScheduleEcho(t, userID)

	scheduleUC.EXPECT().CreateSchedule(mock.Anything, userID, &usecase.CreateScheduleInput{
		PlantID:       plantID,
		TaskType:      entity.TaskTypeWatering,
		FrequencyDays: 7,
		TimeOfDay:     "9:00",
		StartDate:     time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
	}).Return(&entity.CareSchedule{ID: uuid.New(), PlantID: plantID, TimeOfDay: "09:00"}, nil)

	rec := doRequest(t, e, http.MethodPost, "/api/v1/schedules",
		`{"plant_id":"`+plantID.String()+`","task_type":"WATERING","frequency_days":7,"time_of_day":"9:00","start_date":"2024-03-01"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"time_of_day":"09:00"`)
}

func TestScheduleHandler_CreateSchedule_RejectsBadInput(t *testing.T) {
	plantID := uuid.New().String()

	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{
			name:     "bad time of day",
			body:     `{"plant_id":"` + plantID + `","task_type":"WATERING","frequency_days":7,"time_of_day":"25:00","start_date":"2024-03-01"}`,
			wantCode: "VALIDATION_FAILED",
		},
		{
			name:     "unknown task type",
			body:     `{"plant_id":"` + plantID + `","task_type":"PRUNING","frequency_days":7,"time_of_day":"09:00","start_date":"2024-03-01"}`,
			wantCode: "VALIDATION_FAILED",
		},
		{
			name:     "zero frequency",
			body:     `{"plant_id":"` + plantID + `","task_type":"WATERING","frequency_days":0,"time_of_day":"09:00","start_date":"2024-03-01"}`,
			wantCode: "VALIDATION_FAILED",
		},
		{
			name:     "unparseable start date",
			body:     `{"plant_id":"` + plantID + `","task_type":"WATERING","frequency_days":7,"time_of_day":"09:00","start_date":"March first"}`,
			wantCode: "INVALID_DATE",
		},
		{
			name:     "malformed json",
			body:     `{"plant_id":`,
			wantCode: "INVALID_INPUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newScheduleEcho(t, uuid.New())

			rec := doRequest(t, e, http.MethodPost, "/api/v1/schedules", tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantCode, decodeEnvelope(t, rec.Body.Bytes()).Error.Code)
		})
	}
}

func TestScheduleHandler_UpdateSchedule_ConvertsTaskType(t *testing.T) {
	userID, scheduleID := uuid.New(), uuid.New()
	e, scheduleUC := newScheduleEcho(t, userID)

	scheduleUC.EXPECT().UpdateSchedule(mock.Anything, userID, scheduleID, mock.MatchedBy(func(in *usecase.UpdateScheduleInput) bool {
		return in.TaskType != nil && *in.TaskType == entity.TaskTypeFertilizing &&
			in.FrequencyDays != nil && *in.FrequencyDays == 30 &&
			in.StartDate == nil
	})).Return(&entity.CareSchedule{ID: scheduleID}, nil)

	rec := doRequest(t, e, http.MethodPut, "/api/v1/schedules/"+scheduleID.String(),
		`{"task_type":"FERTILIZING","frequency_days":30}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestScheduleHandler_ToggleSchedule(t *testing.T) {
	userID, scheduleID := uuid.New(), uuid.New()
	e, scheduleUC := newScheduleEcho(t, userID)
	scheduleUC.EXPECT().ToggleSchedule(mock.Anything, userID, scheduleID).
		Return(&entity.CareSchedule{ID: scheduleID, IsActive: false}, nil)

	rec := doRequest(t, e, http.MethodPatch, "/api/v1/schedules/"+scheduleID.String()+"/toggle", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"is_active":false`)
}

func TestScheduleHandler_ListPlantSchedules_NotFound(t *testing.T) {
	userID, plantID := uuid.New(), uuid.New()
	e, scheduleUC := newScheduleEcho(t, userID)
	scheduleUC.EXPECT().ListPlantSchedules(mock.Anything, userID, plantID).
		Return(nil, domainerrors.ErrPlantNotFound)

	rec := doRequest(t, e, http.MethodGet, "/api/v1/schedules/plant/"+plantID.String(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestScheduleHandler_DeleteSchedule(t *testing.T) {
	userID, scheduleID := uuid.New(), uuid.New()
	e, scheduleUC := newScheduleEcho(t, userID)
	scheduleUC.EXPECT().DeleteSchedule(mock.Anything, userID, scheduleID).Return(nil)

	rec := doRequest(t, e, http.MethodDelete, "/api/v1/schedules/"+scheduleID.String(), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

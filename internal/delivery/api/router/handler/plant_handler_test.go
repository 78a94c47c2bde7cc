package handler

import (
	"encoding/json"
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

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decodeEnvelope(t *testing.T, body []byte) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(body, &env))

	return env
}

func newPlantEcho(t *testing.T, userID uuid.UUID) (*echo.Echo, *usecasemocks.MockPlantUsecase) {
	t.Helper()

	plantUC := usecasemocks.NewMockPlantUsecase(t)
	h := NewPlantHandler(PlantHandlerParams{PlantUC: plantUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	g := e.Group("/api/v1/plants", asUser(userID))
	g.POST("", h.CreatePlant)
	g.GET("", h.ListPlants)
	g.GET("/:id", h.GetPlant)
	g.PUT("/:id", h.UpdatePlant)
	g.DELETE("/:id", h.DeletePlant)

	return e, plantUC
}

func TestPlantHandler_CreatePlant(t *testing.T) {
	userID := uuid.New()
	e, plantUC := newPlantEcho(t, userID)

	acquired := time.Date(2023, time.May, 4, 0, 0, 0, 0, time.UTC)
	plantUC.EXPECT().CreatePlant(mock.Anything, userID, &usecase.CreatePlantInput{
		Name:            "Monstera",
		Location:        "Living room",
		AcquisitionDate: &acquired,
	}).Return(&entity.Plant{ID: uuid.New(), UserID: userID, Name: "Monstera"}, nil)

	rec := doRequest(t, e, http.MethodPost, "/api/v1/plants",
		`{"name":"Monstera","location":"Living room","acquisition_date":"2023-05-04"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec.Body.Bytes())
	assert.Nil(t, env.Error)
	assert.Contains(t, string(env.Data), `"name":"Monstera"`)
}

func TestPlantHandler_CreatePlant_ValidationFailure(t *testing.T) {
	e, _ := newPlantEcho(t, uuid.New())

	rec := doRequest(t, e, http.MethodPost, "/api/v1/plants", `{"species":"Ficus"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec.Body.Bytes())
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "Name: required")
}

func TestPlantHandler_ListPlants_PassesQuery(t *testing.T) {
	userID := uuid.New()
	e, plantUC := newPlantEcho(t, userID)

	plantUC.EXPECT().ListPlants(mock.Anything, userID, &usecase.ListPlantsInput{
		Page:   2,
		Limit:  10,
		Filter: entity.PlantFilter{Search: "fern", Location: "Office"},
	}).Return(entity.NewPage([]*entity.Plant{}, 2, 10, 11), nil)

	rec := doRequest(t, e, http.MethodGet, "/api/v1/plants?page=2&limit=10&search=fern&location=Office", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_pages":2`)
}

func TestPlantHandler_ListPlants_RejectsNonNumericPage(t *testing.T) {
	e, _ := newPlantEcho(t, uuid.New())

	rec := doRequest(t, e, http.MethodGet, "/api/v1/plants?page=first", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlantHandler_GetPlant_Errors(t *testing.T) {
	userID := uuid.New()
	e, plantUC := newPlantEcho(t, userID)

	t.Run("invalid id", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodGet, "/api/v1/plants/not-a-uuid", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decodeEnvelope(t, rec.Body.Bytes()).Error.Code)
	})

	t.Run("not found", func(t *testing.T) {
		plantID := uuid.New()
		plantUC.EXPECT().GetPlant(mock.Anything, userID, plantID).
			Return(nil, domainerrors.ErrPlantNotFound.WrapMessage("plant lookup"))

		rec := doRequest(t, e, http.MethodGet, "/api/v1/plants/"+plantID.String(), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "PLANT_NOT_FOUND", decodeEnvelope(t, rec.Body.Bytes()).Error.Code)
	})
}

func TestPlantHandler_UpdatePlant_PartialFields(t *testing.T) {
	userID, plantID := uuid.New(), uuid.New()
	e, plantUC := newPlantEcho(t, userID)

	plantUC.EXPECT().UpdatePlant(mock.Anything, userID, plantID, mock.MatchedBy(func(in *usecase.UpdatePlantInput) bool {
		return in.Notes != nil && *in.Notes == "repotted" && in.Name == nil && in.AcquisitionDate == nil
	})).Return(&entity.Plant{ID: plantID, Name: "Monstera", Notes: "repotted"}, nil)

	rec := doRequest(t, e, http.MethodPut, "/api/v1/plants/"+plantID.String(), `{"notes":"repotted"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPlantHandler_DeletePlant(t *testing.T) {
	userID, plantID := uuid.New(), uuid.New()
	e, plantUC := newPlantEcho(t, userID)
	plantUC.EXPECT().DeletePlant(mock.Anything, userID, plantID).Return(nil)

	rec := doRequest(t, e, http.MethodDelete, "/api/v1/plants/"+plantID.String(), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPlantHandler_RequiresUser(t *testing.T) {
	plantUC := usecasemocks.NewMockPlantUsecase(t)
	h := NewPlantHandler(PlantHandlerParams{PlantUC: plantUC, Logger: newDiscardLogger()})
	e := newTestEcho()
	e.GET("/api/v1/plants", h.ListPlants)

	rec := doRequest(t, e, http.MethodGet, "/api/v1/plants", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

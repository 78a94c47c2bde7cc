package handler

import (
	"log/slog"
	"net/http"

	"plantcare/internal/delivery/api/response"
	"plantcare/internal/domain/entity"
	"plantcare/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PlantHandlerParams holds dependencies for PlantHandler, injected by Fx.
type PlantHandlerParams struct {
	fx.In

	PlantUC usecase.PlantUsecase
	Logger  *slog.Logger
}

// PlantHandler serves /plants
type PlantHandler struct {
	plantUC usecase.PlantUsecase
	logger  *slog.Logger
}

// NewPlantHandler is the constructor for PlantHandler
func NewPlantHandler(params PlantHandlerParams) *PlantHandler {
	return &PlantHandler{
		plantUC: params.PlantUC,
		logger:  params.Logger,
	}
}

// CreatePlantRequest is the body of POST /plants
type CreatePlantRequest struct {
	Name            string  `json:"name" validate:"required,max=100"`
	Species         string  `json:"species" validate:"max=100"`
	ImageURL        string  `json:"image_url" validate:"omitempty,url"`
	Location        string  `json:"location" validate:"max=100"`
	AcquisitionDate *string `json:"acquisition_date"`
	Notes           string  `json:"notes" validate:"max=1000"`
}

// UpdatePlantRequest is the body of PUT /plants/:id. Omitted fields are unchanged.
type UpdatePlantRequest struct {
	Name            *string `json:"name" validate:"omitempty,min=1,max=100"`
	Species         *string `json:"species" validate:"omitempty,max=100"`
	ImageURL        *string `json:"image_url" validate:"omitempty,url"`
	Location        *string `json:"location" validate:"omitempty,max=100"`
	AcquisitionDate *string `json:"acquisition_date"`
	Notes           *string `json:"notes" validate:"omitempty,max=1000"`
}

// CreatePlant adds a plant for the signed-in user
func (h *PlantHandler) CreatePlant(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	var req CreatePlantRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	acquired, err := parseOptionalDate(req.AcquisitionDate)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", err.Error())
	}

	plant, err := h.plantUC.CreatePlant(c.Request().Context(), userID, &usecase.CreatePlantInput{
		Name:            req.Name,
		Species:         req.Species,
		ImageURL:        req.ImageURL,
		Location:        req.Location,
		AcquisitionDate: acquired,
		Notes:           req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, plant)
}

// ListPlants returns one page of the user's plants
func (h *PlantHandler) ListPlants(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	page, limit, err := pageQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "page and limit must be integers")
	}

	plants, err := h.plantUC.ListPlants(c.Request().Context(), userID, &usecase.ListPlantsInput{
		Page:  page,
		Limit: limit,
		Filter: entity.PlantFilter{
			Search:   c.QueryParam("search"),
			Location: c.QueryParam("location"),
			Species:  c.QueryParam("species"),
		},
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, plants)
}

// GetPlant returns one plant with its schedules
func (h *PlantHandler) GetPlant(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	plantID, ok, err := pathUUID(c, "id", "plant")
	if !ok {
		return err
	}

	plant, err := h.plantUC.GetPlant(c.Request().Context(), userID, plantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, plant)
}

// UpdatePlant applies a partial update
func (h *PlantHandler) UpdatePlant(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	plantID, ok, err := pathUUID(c, "id", "plant")
	if !ok {
		return err
	}

	var req UpdatePlantRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	acquired, err := parseOptionalDate(req.AcquisitionDate)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", err.Error())
	}

	plant, err := h.plantUC.UpdatePlant(c.Request().Context(), userID, plantID, &usecase.UpdatePlantInput{
		Name:            req.Name,
		Species:         req.Species,
		ImageURL:        req.ImageURL,
		Location:        req.Location,
		AcquisitionDate: acquired,
		Notes:           req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, plant)
}

// DeletePlant soft-deletes a plant
func (h *PlantHandler) DeletePlant(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}
	plantID, ok, err := pathUUID(c, "id", "plant")
	if !ok {
		return err
	}

	if err := h.plantUC.DeletePlant(c.Request().Context(), userID, plantID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Plant deleted successfully"})
}

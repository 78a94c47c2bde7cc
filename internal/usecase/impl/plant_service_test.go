package impl

import (
	"context"
	"testing"

	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/repository"
	mockRepo "plantcare/internal/mocks/repository"
	"plantcare/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPlantService(t *testing.T) (usecase.PlantUsecase, *mockRepo.MockPlantRepository) {
	plantRepo := mockRepo.NewMockPlantRepository(t)

	return NewPlantService(PlantServiceParams{PlantRepo: plantRepo, Logger: newDiscardLogger()}), plantRepo
}

func TestPlantService_ListPlants_SanitizesFilter(t *testing.T) {
	svc, plantRepo := createTestPlantService(t)
	ctx := context.Background()
	userID := uuid.New()
	want := entity.PlantFilter{Search: "script fern", Location: "Kitchen"}

	plantRepo.EXPECT().FindByUser(ctx, userID, want, 10, 10).Return([]*entity.Plant{}, int64(10), nil)

	page, err := svc.ListPlants(ctx, userID, &usecase.ListPlantsInput{
		Page:   2,
		Limit:  10,
		Filter: entity.PlantFilter{Search: "  <script> fern ", Location: "Kitchen"},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 1, page.TotalPages)
	assert.Empty(t, page.Items)
}

func TestPlantService_UpdatePlant_AppliesOnlySetFields(t *testing.T) {
	svc, plantRepo := createTestPlantService(t)
	ctx := context.Background()
	userID := uuid.New()
	plant := &entity.Plant{ID: uuid.New(), UserID: userID, Name: "Fern", Location: "Hall"}

	plantRepo.EXPECT().FindByIDForUser(ctx, plant.ID, userID).Return(plant, nil)
	plantRepo.EXPECT().Update(ctx, plant).Return(nil)

	updated, err := svc.UpdatePlant(ctx, userID, plant.ID, &usecase.UpdatePlantInput{Name: strPtr("Boston fern")})

	require.NoError(t, err)
	assert.Equal(t, "Boston fern", updated.Name)
	assert.Equal(t, "Hall", updated.Location)
}

func TestPlantService_DeletePlant_NotFound(t *testing.T) {
	svc, plantRepo := createTestPlantService(t)
	ctx := context.Background()
	userID := uuid.New()
	plantID := uuid.New()

	plantRepo.EXPECT().SoftDelete(ctx, plantID, userID).Return(repository.ErrPlantNotFound)

	err := svc.DeletePlant(ctx, userID, plantID)

	require.ErrorIs(t, err, domainerrors.ErrPlantNotFound)
}

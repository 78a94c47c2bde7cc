package postgres

import (
	"context"
	"testing"

	"plantcare/internal/domain/entity"
	"plantcare/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlantRepository_FindByUser_FiltersAndPages(t *testing.T) {
	db := newTestDB(t)
	repo := NewPlantRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com", entity.DefaultNotificationPreferences())
	other := seedUser(t, db, "other@example.com", entity.DefaultNotificationPreferences())
	for _, p := range []*entity.Plant{
		{UserID: owner.ID, Name: "Monstera Deliciosa", Species: "Monstera", Location: "Kitchen"},
		{UserID: owner.ID, Name: "Snake Plant", Species: "Sansevieria", Location: "Bedroom"},
		{UserID: owner.ID, Name: "Pothos", Species: "Epipremnum", Location: "Kitchen"},
		{UserID: other.ID, Name: "Monstera", Species: "Monstera", Location: "Kitchen"},
	} {
		require.NoError(t, repo.Create(ctx, p))
	}

	all, total, err := repo.FindByUser(ctx, owner.ID, entity.PlantFilter{}, 0, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, all, 2)

	searched, total, err := repo.FindByUser(ctx, owner.ID, entity.PlantFilter{Search: "monstera"}, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, searched, 1)
	assert.Equal(t, "Monstera Deliciosa", searched[0].Name)

	kitchen, total, err := repo.FindByUser(ctx, owner.ID, entity.PlantFilter{Location: "Kitchen"}, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, kitchen, 2)
}

func TestPlantRepository_UpdateAndSoftDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewPlantRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com", entity.DefaultNotificationPreferences())
	other := seedUser(t, db, "other@example.com", entity.DefaultNotificationPreferences())
	plant := seedPlant(t, db, owner, "Aloe")
	seedSchedule(t, db, plant, utc(2024, 5, 1, 9, 0), true)

	plant.Name = "Aloe Vera"
	plant.Notes = "south window"
	require.NoError(t, repo.Update(ctx, plant))

	got, err := repo.FindByIDForUser(ctx, plant.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Aloe Vera", got.Name)
	assert.Equal(t, "south window", got.Notes)
	assert.Len(t, got.Schedules, 1)

	_, err = repo.FindByIDForUser(ctx, plant.ID, other.ID)
	assert.ErrorIs(t, err, repository.ErrPlantNotFound)
	assert.ErrorIs(t, repo.SoftDelete(ctx, plant.ID, other.ID), repository.ErrPlantNotFound)

	require.NoError(t, repo.SoftDelete(ctx, plant.ID, owner.ID))
	_, err = repo.FindByIDForUser(ctx, plant.ID, owner.ID)
	assert.ErrorIs(t, err, repository.ErrPlantNotFound)
}

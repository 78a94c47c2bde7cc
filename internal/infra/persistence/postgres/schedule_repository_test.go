package postgres

import (
	"context"
	"testing"

	"plantcare/internal/domain/entity"
	"plantcare/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleRepository_FindDue_FiltersAndOrders(t *testing.T) {
	db := newTestDB(t)
	repo := NewScheduleRepository(db)
	ctx := context.Background()
	now := utc(2024, 1, 15, 9, 0)

	owner := seedUser(t, db, "owner@example.com", entity.NotificationPreferences{EmailEnabled: true})
	plant := seedPlant(t, db, owner, "Fern")
	deletedPlant := seedPlant(t, db, owner, "Gone")
	require.NoError(t, NewPlantRepository(db).SoftDelete(ctx, deletedPlant.ID, owner.ID))

	later := seedSchedule(t, db, plant, utc(2024, 1, 14, 9, 0), true)
	earlier := seedSchedule(t, db, plant, utc(2024, 1, 10, 9, 0), true)
	exactlyNow := seedSchedule(t, db, plant, now, true)
	seedSchedule(t, db, plant, utc(2024, 1, 16, 9, 0), true) // future
	seedSchedule(t, db, plant, utc(2024, 1, 1, 9, 0), false) // paused
	seedSchedule(t, db, deletedPlant, utc(2024, 1, 1, 9, 0), true)
	deleted := seedSchedule(t, db, plant, utc(2024, 1, 2, 9, 0), true)
	require.NoError(t, repo.SoftDelete(ctx, deleted.ID))

	due, err := repo.FindDue(ctx, now)

	require.NoError(t, err)
	require.Len(t, due, 3)
	assert.Equal(t, earlier.ID, due[0].Schedule.ID)
	assert.Equal(t, later.ID, due[1].Schedule.ID)
	assert.Equal(t, exactlyNow.ID, due[2].Schedule.ID)

	first := due[0]
	require.NotNil(t, first.Plant)
	require.NotNil(t, first.Owner)
	assert.Equal(t, "Fern", first.Plant.Name)
	assert.Equal(t, "owner@example.com", first.Owner.Email)
	assert.True(t, first.Owner.NotificationPreferences.EmailEnabled)
	assert.True(t, first.Schedule.NextDueDate.Equal(utc(2024, 1, 10, 9, 0)))
}

func TestScheduleRepository_FindDue_Empty(t *testing.T) {
	db := newTestDB(t)

	due, err := NewScheduleRepository(db).FindDue(context.Background(), utc(2024, 1, 1, 0, 0))

	require.NoError(t, err)
	assert.Empty(t, due)
}

func TestScheduleRepository_AdvanceNextDueDate(t *testing.T) {
	db := newTestDB(t)
	repo := NewScheduleRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "a@example.com", entity.DefaultNotificationPreferences())
	plant := seedPlant(t, db, owner, "Cactus")
	current := utc(2024, 1, 10, 9, 0)
	schedule := seedSchedule(t, db, plant, current, true)
	next := utc(2024, 1, 17, 9, 0)

	require.NoError(t, repo.AdvanceNextDueDate(ctx, schedule.ID, current, next))

	got, err := repo.FindByIDForUser(ctx, schedule.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, got.NextDueDate.Equal(next))

	// A second writer still holding the old value loses.
	err = repo.AdvanceNextDueDate(ctx, schedule.ID, current, next)
	assert.ErrorIs(t, err, repository.ErrScheduleAdvanceConflict)
}

func TestScheduleRepository_FindByIDForUser_HidesOtherUsers(t *testing.T) {
	db := newTestDB(t)
	repo := NewScheduleRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com", entity.DefaultNotificationPreferences())
	other := seedUser(t, db, "other@example.com", entity.DefaultNotificationPreferences())
	schedule := seedSchedule(t, db, seedPlant(t, db, owner, "Ivy"), utc(2024, 2, 1, 9, 0), true)

	got, err := repo.FindByIDForUser(ctx, schedule.ID, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Plant)
	assert.Equal(t, "Ivy", got.Plant.Name)

	_, err = repo.FindByIDForUser(ctx, schedule.ID, other.ID)
	assert.ErrorIs(t, err, repository.ErrScheduleNotFound)

	_, err = repo.FindByIDForUser(ctx, uuid.New(), owner.ID)
	assert.ErrorIs(t, err, repository.ErrScheduleNotFound)
}

func TestScheduleRepository_FindUpcoming_Window(t *testing.T) {
	db := newTestDB(t)
	repo := NewScheduleRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com", entity.DefaultNotificationPreferences())
	plant := seedPlant(t, db, owner, "Basil")
	inside := seedSchedule(t, db, plant, utc(2024, 3, 5, 9, 0), true)
	seedSchedule(t, db, plant, utc(2024, 3, 20, 9, 0), true)
	seedSchedule(t, db, plant, utc(2024, 3, 6, 9, 0), false)

	from := utc(2024, 3, 1, 0, 0)
	to := utc(2024, 3, 10, 0, 0)
	got, err := repo.FindUpcoming(ctx, owner.ID, &from, &to)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, inside.ID, got[0].ID)

	all, err := repo.FindUpcoming(ctx, owner.ID, nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestScheduleRepository_UpdateAndFlags(t *testing.T) {
	db := newTestDB(t)
	repo := NewScheduleRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com", entity.DefaultNotificationPreferences())
	plant := seedPlant(t, db, owner, "Rose")
	schedule := seedSchedule(t, db, plant, utc(2024, 4, 1, 9, 0), true)

	schedule.TaskType = entity.TaskTypeFertilizing
	schedule.FrequencyDays = 14
	schedule.TimeOfDay = "18:30"
	schedule.NextDueDate = utc(2024, 4, 2, 18, 30)
	schedule.IsActive = false
	require.NoError(t, repo.Update(ctx, schedule))

	byPlant, err := repo.FindByPlant(ctx, plant.ID)
	require.NoError(t, err)
	require.Len(t, byPlant, 1)
	assert.Equal(t, entity.TaskTypeFertilizing, byPlant[0].TaskType)
	assert.Equal(t, 14, byPlant[0].FrequencyDays)
	assert.Equal(t, "18:30", byPlant[0].TimeOfDay)
	assert.False(t, byPlant[0].IsActive)

	require.NoError(t, repo.SetActive(ctx, schedule.ID, true))
	require.NoError(t, repo.SoftDelete(ctx, schedule.ID))

	byUser, err := repo.FindByUser(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, byUser)

	assert.ErrorIs(t, repo.SoftDelete(ctx, schedule.ID), repository.ErrScheduleNotFound)
	assert.ErrorIs(t, repo.SetActive(ctx, uuid.New(), true), repository.ErrScheduleNotFound)
}

package postgres

import (
	"context"
	"testing"
	"time"

	"plantcare/internal/domain/entity"
	"plantcare/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every pooled connection to ":memory:" would open its own empty database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.AllModels()...))

	return db
}

func utc(y int, m time.Month, d, h, minute int) time.Time {
	return time.Date(y, m, d, h, minute, 0, 0, time.UTC)
}

func seedUser(t *testing.T, db *gorm.DB, email string, prefs entity.NotificationPreferences) *entity.User {
	t.Helper()

	user := &entity.User{
		Email:                   email,
		Name:                    "Test User",
		PasswordHash:            "hash",
		NotificationPreferences: prefs,
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func seedPlant(t *testing.T, db *gorm.DB, owner *entity.User, name string) *entity.Plant {
	t.Helper()

	plant := &entity.Plant{UserID: owner.ID, Name: name, Species: "Monstera", Location: "Living room"}
	require.NoError(t, NewPlantRepository(db).Create(context.Background(), plant))

	return plant
}

func seedSchedule(t *testing.T, db *gorm.DB, plant *entity.Plant, next time.Time, active bool) *entity.CareSchedule {
	t.Helper()

	schedule := &entity.CareSchedule{
		PlantID:       plant.ID,
		TaskType:      entity.TaskTypeWatering,
		FrequencyDays: 7,
		TimeOfDay:     "09:00",
		StartDate:     next,
		NextDueDate:   next,
		IsActive:      true,
	}
	repo := NewScheduleRepository(db)
	require.NoError(t, repo.Create(context.Background(), schedule))
	if !active {
		require.NoError(t, repo.SetActive(context.Background(), schedule.ID, false))
		schedule.IsActive = false
	}

	return schedule
}

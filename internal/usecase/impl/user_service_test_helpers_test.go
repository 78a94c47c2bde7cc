package impl

import (
	"io"
	"log/slog"
	"time"

	"plantcare/config"
	"plantcare/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(cronSecret string) *config.Config {
	return &config.Config{
		Cron: &config.CronConfig{Secret: cronSecret},
		Auth: &config.AuthConfig{ResetTokenTTL: time.Hour},
		App:  &config.AppConfig{BaseURL: "https://plants.example.com"},
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func strPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(i int) *int {
	return &i
}

// newDueSchedule builds a due-set row for a 7-day watering schedule on a plant named Monstera.
func newDueSchedule(nextDue time.Time, prefs entity.NotificationPreferences, pushToken *string) *entity.DueSchedule {
	owner := &entity.User{
		ID:                      uuid.New(),
		Email:                   "ada@example.com",
		Name:                    "Ada",
		PushToken:               pushToken,
		NotificationPreferences: prefs,
	}
	plant := &entity.Plant{ID: uuid.New(), UserID: owner.ID, Name: "Monstera"}
	schedule := &entity.CareSchedule{
		ID:            uuid.New(),
		PlantID:       plant.ID,
		TaskType:      entity.TaskTypeWatering,
		FrequencyDays: 7,
		TimeOfDay:     "09:00",
		NextDueDate:   nextDue,
		IsActive:      true,
		Plant:         plant,
	}

	return &entity.DueSchedule{Schedule: schedule, Plant: plant, Owner: owner}
}

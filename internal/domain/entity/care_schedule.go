package entity

import (
	"time"

	"github.com/google/uuid"
)

// TaskType is the kind of care a schedule reminds about.
type TaskType string

const (
	TaskTypeWatering    TaskType = "WATERING"
	TaskTypeFertilizing TaskType = "FERTILIZING"
)

// IsValid reports whether t is a known task type.
func (t TaskType) IsValid() bool {
	return t == TaskTypeWatering || t == TaskTypeFertilizing
}

// Verb returns the imperative used in reminder copy, e.g. "water".
func (t TaskType) Verb() string {
	switch t {
	case TaskTypeWatering:
		return "water"
	case TaskTypeFertilizing:
		return "fertilize"
	default:
		return "care for"
	}
}

// CareSchedule is a recurring care task on a plant.
//
// NextDueDate is always aligned to TimeOfDay and holds the next occurrence that
// has not been handled yet. It only moves forward: on task completion and on scan
// processing by one FrequencyDays step, on creation and edit by catch-up from StartDate.
type CareSchedule struct {
	ID            uuid.UUID `json:"id"`
	PlantID       uuid.UUID `json:"plant_id"`
	TaskType      TaskType  `json:"task_type"`
	FrequencyDays int       `json:"frequency_days"` // >= 1
	TimeOfDay     string    `json:"time_of_day"`    // "HH:MM", 24h
	StartDate     time.Time `json:"start_date"`
	NextDueDate   time.Time `json:"next_due_date"`
	Notes         string    `json:"notes,omitempty"`
	IsActive      bool      `json:"is_active"`
	IsDeleted     bool      `json:"-"`
	Plant         *Plant    `json:"plant,omitempty"` // Populated by listings that join the plant.
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// CareTask is an immutable record of a completed care occurrence.
type CareTask struct {
	ID          uuid.UUID     `json:"id"`
	ScheduleID  uuid.UUID     `json:"schedule_id"`
	PlantID     uuid.UUID     `json:"plant_id"` // Denormalized from the schedule for history queries.
	CompletedAt time.Time     `json:"completed_at"`
	Notes       string        `json:"notes,omitempty"`
	PhotoURL    string        `json:"photo_url,omitempty"`
	Schedule    *CareSchedule `json:"schedule,omitempty"` // Populated by history listings.
	CreatedAt   time.Time     `json:"created_at"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Plant is a user-owned plant that care schedules attach to.
type Plant struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"user_id"`
	Name            string          `json:"name"`
	Species         string          `json:"species,omitempty"`
	ImageURL        string          `json:"image_url,omitempty"`
	Location        string          `json:"location,omitempty"`
	AcquisitionDate *time.Time      `json:"acquisition_date,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	IsDeleted       bool            `json:"-"`
	Schedules       []*CareSchedule `json:"schedules,omitempty"` // Populated only by detail lookups.
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// PlantFilter narrows plant listings. Empty fields are ignored.
type PlantFilter struct {
	Search   string
	Location string
	Species  string
}

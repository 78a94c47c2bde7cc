package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CareTaskModel is the GORM-specific struct for the 'care_tasks' table.
type CareTaskModel struct {
	ID          uuid.UUID          `gorm:"type:uuid;primaryKey"`
	ScheduleID  uuid.UUID          `gorm:"type:uuid;not null;index"`
	Schedule    *CareScheduleModel `gorm:"foreignKey:ScheduleID"`
	PlantID     uuid.UUID          `gorm:"type:uuid;not null;index"`
	CompletedAt time.Time          `gorm:"not null;index"`
	Notes       string             `gorm:"type:text"`
	PhotoURL    string             `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CareTaskModel) TableName() string {
	return "care_tasks"
}

// BeforeCreate assigns the primary key.
func (m *CareTaskModel) BeforeCreate(*gorm.DB) error {
	return newID(&m.ID)
}

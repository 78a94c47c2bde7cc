package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CareScheduleModel is the GORM-specific struct for the 'care_schedules' table.
// The (is_active, is_deleted, next_due_date) index serves the due-task scan.
type CareScheduleModel struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey"`
	PlantID       uuid.UUID   `gorm:"type:uuid;not null;index"`
	Plant         *PlantModel `gorm:"foreignKey:PlantID"`
	TaskType      string      `gorm:"type:varchar(32);not null"`
	FrequencyDays int         `gorm:"not null"`
	TimeOfDay     string      `gorm:"type:varchar(5);not null"`
	StartDate     time.Time   `gorm:"not null"`
	NextDueDate   time.Time   `gorm:"not null;index:idx_care_schedules_due,priority:3"`
	Notes         string      `gorm:"type:text"`
	IsActive      bool        `gorm:"not null;default:true;index:idx_care_schedules_due,priority:1"`
	IsDeleted     bool        `gorm:"not null;default:false;index:idx_care_schedules_due,priority:2"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CareScheduleModel) TableName() string {
	return "care_schedules"
}

// BeforeCreate assigns the primary key.
func (m *CareScheduleModel) BeforeCreate(*gorm.DB) error {
	return newID(&m.ID)
}

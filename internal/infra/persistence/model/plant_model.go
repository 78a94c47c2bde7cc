package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlantModel is the GORM-specific struct for the 'plants' table.
type PlantModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	User            *UserModel `gorm:"foreignKey:UserID"`
	Name            string     `gorm:"type:varchar(255);not null"`
	Species         string     `gorm:"type:varchar(255)"`
	ImageURL        string     `gorm:"type:text"`
	Location        string     `gorm:"type:varchar(255)"`
	AcquisitionDate *time.Time
	Notes           string              `gorm:"type:text"`
	IsDeleted       bool                `gorm:"not null;default:false;index"`
	Schedules       []CareScheduleModel `gorm:"foreignKey:PlantID"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlantModel) TableName() string {
	return "plants"
}

// BeforeCreate assigns the primary key.
func (m *PlantModel) BeforeCreate(*gorm.DB) error {
	return newID(&m.ID)
}

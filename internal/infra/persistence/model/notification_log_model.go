package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationLogModel is the GORM-specific struct for the 'notification_logs' table.
// Rows are append-only.
type NotificationLogModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ScheduleID   uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Channel      string    `gorm:"type:varchar(16);not null"`
	Status       string    `gorm:"type:varchar(16);not null"`
	MessageID    string    `gorm:"type:varchar(255)"`
	ErrorMessage string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationLogModel) TableName() string {
	return "notification_logs"
}

// BeforeCreate assigns the primary key.
func (m *NotificationLogModel) BeforeCreate(*gorm.DB) error {
	return newID(&m.ID)
}

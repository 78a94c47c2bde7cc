package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NotificationPreferencesData is the JSON document stored in users.notification_preferences.
type NotificationPreferencesData struct {
	PushEnabled   bool   `json:"pushEnabled"`
	EmailEnabled  bool   `json:"emailEnabled"`
	PreferredTime string `json:"preferredTime"`
	DailyDigest   bool   `json:"dailyDigest"`
}

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID                      uuid.UUID                                        `gorm:"type:uuid;primaryKey"`
	Email                   string                                           `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name                    string                                           `gorm:"type:varchar(255);not null"`
	PasswordHash            string                                           `gorm:"type:varchar(255);not null"`
	PushToken               *string                                          `gorm:"type:text"`
	NotificationPreferences datatypes.JSONType[NotificationPreferencesData] `gorm:"not null"`
	ResetToken              *string                                          `gorm:"type:varchar(64);index"` // SHA-256 hex digest of the emailed token.
	ResetTokenExpiry        *time.Time
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns the primary key.
func (m *UserModel) BeforeCreate(*gorm.DB) error {
	return newID(&m.ID)
}

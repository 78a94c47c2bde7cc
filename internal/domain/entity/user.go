// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultPreferredTime is the reminder time assigned to users who never saved preferences.
const DefaultPreferredTime = "09:00"

// User is an account that owns plants and receives care reminders.
type User struct {
	ID                      uuid.UUID               `json:"id"`                       // The Global Unique Identifier (GUID) for the user.
	Email                   string                  `json:"email"`                    // Login identifier and reminder email address.
	Name                    string                  `json:"name"`                     // Display name used in greetings.
	PasswordHash            string                  `json:"-"`                        // bcrypt hash of the user's password.
	PushToken               *string                 `json:"-"`                        // FCM registration token; nil when push was never enabled or was invalidated.
	NotificationPreferences NotificationPreferences `json:"notification_preferences"` // Channel opt-ins.
	ResetTokenExpiry        *time.Time              `json:"-"`                        // Set while a password reset is pending.
	CreatedAt               time.Time               `json:"created_at"`               // Timestamp of when this user account was created.
	UpdatedAt               time.Time               `json:"updated_at"`               // Timestamp of the last modification to this user's data.
}

// NotificationPreferences holds the user's channel opt-ins.
// PreferredTime and DailyDigest are stored for clients; the due-task scan does not read them.
type NotificationPreferences struct {
	PushEnabled   bool   `json:"push_enabled"`
	EmailEnabled  bool   `json:"email_enabled"`
	PreferredTime string `json:"preferred_time"`
	DailyDigest   bool   `json:"daily_digest"`
}

// DefaultNotificationPreferences returns the preferences of a freshly registered user.
func DefaultNotificationPreferences() NotificationPreferences {
	return NotificationPreferences{
		PreferredTime: DefaultPreferredTime,
	}
}

// WantsEmail reports whether an email reminder should be attempted for the user.
func (u *User) WantsEmail() bool {
	return u.NotificationPreferences.EmailEnabled && u.Email != ""
}

// WantsPush reports whether a push reminder should be attempted for the user.
func (u *User) WantsPush() bool {
	return u.NotificationPreferences.PushEnabled && u.PushToken != nil && *u.PushToken != ""
}

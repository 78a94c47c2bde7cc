// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationChannel is a reminder delivery channel.
type NotificationChannel string

const (
	ChannelEmail NotificationChannel = "EMAIL"
	ChannelPush  NotificationChannel = "PUSH"
)

// NotificationStatus is the outcome of one delivery attempt.
type NotificationStatus string

const (
	NotificationStatusSent   NotificationStatus = "SENT"
	NotificationStatusFailed NotificationStatus = "FAILED"
)

// NotificationLog is the append-only audit row written for every delivery attempt.
type NotificationLog struct {
	ID           uuid.UUID           `json:"id"`            // The Global Unique Identifier (GUID) for the log entry.
	ScheduleID   uuid.UUID           `json:"schedule_id"`   // The schedule the reminder was about.
	UserID       uuid.UUID           `json:"user_id"`       // The recipient.
	Channel      NotificationChannel `json:"channel"`       // EMAIL or PUSH.
	Status       NotificationStatus  `json:"status"`        // SENT or FAILED.
	MessageID    string              `json:"message_id"`    // Transport message id on success.
	ErrorMessage string              `json:"error_message"` // Transport or processing error on failure.
	CreatedAt    time.Time           `json:"created_at"`    // Timestamp of the attempt.
}

// ChannelResult is the outcome of one channel attempt for one reminder.
// TokenInvalid is only meaningful for push and tells the caller to forget the token.
type ChannelResult struct {
	Channel      NotificationChannel
	Success      bool
	MessageID    string
	Error        string
	TokenInvalid bool
}

// Status maps the result to the persisted log status.
func (r ChannelResult) Status() NotificationStatus {
	if r.Success {
		return NotificationStatusSent
	}

	return NotificationStatusFailed
}

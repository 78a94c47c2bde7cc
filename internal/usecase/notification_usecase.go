package usecase

import (
	"context"

	"plantcare/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdatePreferencesInput holds a partial preferences update. Nil fields are left unchanged.
type UpdatePreferencesInput struct {
	PushEnabled   *bool
	EmailEnabled  *bool
	PreferredTime *string
	DailyDigest   *bool
}

// TestNotificationOutput reports what a test send did per channel.
type TestNotificationOutput struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	Note    string   `json:"note,omitempty"`
}

// NotificationUsecase manages reminder settings for the signed-in user.
type NotificationUsecase interface {
	GetPreferences(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreferences, error)
	UpdatePreferences(ctx context.Context, userID uuid.UUID, input *UpdatePreferencesInput) (*entity.NotificationPreferences, error)

	// Subscribe stores a push registration token for the user.
	Subscribe(ctx context.Context, userID uuid.UUID, token string) error

	// SendTest sends a sample reminder through every enabled channel. Nothing is logged.
	SendTest(ctx context.Context, userID uuid.UUID) (*TestNotificationOutput, error)

	ListLogs(ctx context.Context, userID uuid.UUID, page, limit int) (*entity.Page[*entity.NotificationLog], error)
}

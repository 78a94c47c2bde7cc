// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"plantcare/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is a domain-specific error returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when registering an email that already has an account.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// UpdateNotificationPreferences replaces the stored channel preferences.
	UpdateNotificationPreferences(ctx context.Context, id uuid.UUID, prefs entity.NotificationPreferences) error

	// UpdatePushToken stores a push registration token for the user.
	UpdatePushToken(ctx context.Context, id uuid.UUID, token string) error

	// ClearPushToken forgets the user's push token, e.g. after the transport rejected it.
	ClearPushToken(ctx context.Context, id uuid.UUID) error

	// SetResetToken records a pending password reset, replacing any earlier one.
	SetResetToken(ctx context.Context, id uuid.UUID, tokenHash string, expiry time.Time) error

	// FindByResetToken returns the user whose pending reset matches tokenHash and
	// expires after now, or ErrUserNotFound.
	FindByResetToken(ctx context.Context, tokenHash string, now time.Time) (*entity.User, error)

	// ResetPassword stores a new password hash and clears the pending reset.
	ResetPassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

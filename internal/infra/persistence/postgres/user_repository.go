package postgres

import (
	"context"
	"strings"
	"time"

	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/repository"
	"plantcare/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a user by ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a user by email, case-insensitively.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).
		Where("email = ?", normalizeEmail(email)).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.Email = userM.Email
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateNotificationPreferences replaces the preferences document.
func (repo *userRepository) UpdateNotificationPreferences(ctx context.Context, id uuid.UUID, prefs entity.NotificationPreferences) error {
	return repo.updateColumn(ctx, id, "notification_preferences", datatypes.NewJSONType(fromPreferencesDomain(prefs)))
}

// UpdatePushToken stores the user's push token.
func (repo *userRepository) UpdatePushToken(ctx context.Context, id uuid.UUID, token string) error {
	return repo.updateColumn(ctx, id, "push_token", token)
}

// ClearPushToken sets the user's push token to NULL.
func (repo *userRepository) ClearPushToken(ctx context.Context, id uuid.UUID) error {
	return repo.updateColumn(ctx, id, "push_token", gorm.Expr("NULL"))
}

// SetResetToken stores the digest and expiry of a pending password reset.
func (repo *userRepository) SetResetToken(ctx context.Context, id uuid.UUID, tokenHash string, expiry time.Time) error {
	return repo.updateColumns(ctx, id, map[string]any{
		"reset_token":        tokenHash,
		"reset_token_expiry": expiry,
	}, "reset token")
}

// FindByResetToken looks up an unexpired pending reset.
func (repo *userRepository) FindByResetToken(ctx context.Context, tokenHash string, now time.Time) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).
		Where("reset_token = ? AND reset_token_expiry > ?", tokenHash, now).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by reset token")
	}

	return toUserDomain(&userM), nil
}

// ResetPassword replaces the password hash and clears the pending reset in one statement.
func (repo *userRepository) ResetPassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return repo.updateColumns(ctx, id, map[string]any{
		"password_hash":      passwordHash,
		"reset_token":        gorm.Expr("NULL"),
		"reset_token_expiry": gorm.Expr("NULL"),
	}, "password")
}

func (repo *userRepository) updateColumns(ctx context.Context, id uuid.UUID, values map[string]any, what string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user "+what)
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) updateColumn(ctx context.Context, id uuid.UUID, column string, value any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update(column, value)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user "+column)
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                      data.ID,
		Email:                   data.Email,
		Name:                    data.Name,
		PasswordHash:            data.PasswordHash,
		PushToken:               data.PushToken,
		NotificationPreferences: toPreferencesDomain(data.NotificationPreferences.Data()),
		ResetTokenExpiry:        data.ResetTokenExpiry,
		CreatedAt:               data.CreatedAt,
		UpdatedAt:               data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                      data.ID,
		Email:                   normalizeEmail(data.Email),
		Name:                    data.Name,
		PasswordHash:            data.PasswordHash,
		PushToken:               data.PushToken,
		NotificationPreferences: datatypes.NewJSONType(fromPreferencesDomain(data.NotificationPreferences)),
		CreatedAt:               data.CreatedAt,
		UpdatedAt:               data.UpdatedAt,
	}
}

func toPreferencesDomain(data model.NotificationPreferencesData) entity.NotificationPreferences {
	prefs := entity.NotificationPreferences{
		PushEnabled:   data.PushEnabled,
		EmailEnabled:  data.EmailEnabled,
		PreferredTime: data.PreferredTime,
		DailyDigest:   data.DailyDigest,
	}
	if prefs.PreferredTime == "" {
		prefs.PreferredTime = entity.DefaultPreferredTime
	}

	return prefs
}

func fromPreferencesDomain(prefs entity.NotificationPreferences) model.NotificationPreferencesData {
	return model.NotificationPreferencesData{
		PushEnabled:   prefs.PushEnabled,
		EmailEnabled:  prefs.EmailEnabled,
		PreferredTime: prefs.PreferredTime,
		DailyDigest:   prefs.DailyDigest,
	}
}

// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"plantcare/config"
	deliverycontext "plantcare/internal/delivery/context"
	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/repository"
	"plantcare/internal/domain/service"
	"plantcare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo      repository.UserRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	emailSvc      service.EmailService
	appBaseURL    string
	resetTokenTTL time.Duration
	logger        *slog.Logger
	now           func() time.Time
	newResetToken func() (token, digest string, err error)
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	EmailSvc     service.EmailService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:      params.UserRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		emailSvc:      params.EmailSvc,
		appBaseURL:    params.Config.App.BaseURL,
		resetTokenTTL: params.Config.Auth.ResetTokenTTL,
		logger:        params.Logger,
		now:           time.Now,
		newResetToken: newResetToken,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates an account with default notification preferences.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		Email:                   email,
		Name:                    strings.TrimSpace(input.Name),
		PasswordHash:            hashedPassword,
		NotificationPreferences: entity.DefaultNotificationPreferences(),
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			srv.log(ctx).Warn("Registration for existing email", slog.String("email", email))

			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("failed to register user")
		}
		srv.log(ctx).Error("Failed to create user", slog.String("email", email), slog.Any("error", err))

		return nil, domainerrors.ErrUserCreationFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Debug("Registration completed", slog.String("userID", user.ID.String()))

	return user, nil
}

// Login verifies the password and issues an access and refresh token pair.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Login for unknown email", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.String("userID", user.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens", slog.String("userID", user.ID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// GetProfile returns the signed-in user.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapUserError(err, "failed to get profile")
	}

	return user, nil
}

// RequestPasswordReset stores a pending reset and emails the link. Unknown addresses
// and email transport failures are logged but reported as success.
func (srv *userService) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Info("Password reset for unknown email", slog.String("email", email))

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to find user for password reset")
	}

	token, digest, err := srv.newResetToken()
	if err != nil {
		return err
	}

	expiry := srv.now().Add(srv.resetTokenTTL)
	if err := srv.userRepo.SetResetToken(ctx, user.ID, digest, expiry); err != nil {
		srv.log(ctx).Error("Failed to store reset token", slog.String("userID", user.ID.String()), slog.Any("error", err))

		return errors.Wrap(err, "failed to store reset token")
	}

	msg, err := buildPasswordResetEmail(user.Email, user.Name,
		passwordResetURL(srv.appBaseURL, token), formatTTL(srv.resetTokenTTL))
	if err != nil {
		return err
	}

	messageID, err := srv.emailSvc.Send(ctx, msg)
	if err != nil {
		srv.log(ctx).Error("Failed to send password reset email",
			slog.String("userID", user.ID.String()), slog.Any("error", err))

		return nil
	}

	srv.log(ctx).Info("Password reset email sent",
		slog.String("userID", user.ID.String()), slog.String("messageID", messageID))

	return nil
}

// ConfirmPasswordReset sets a new password when the token matches an unexpired reset.
func (srv *userService) ConfirmPasswordReset(ctx context.Context, input *usecase.ConfirmPasswordResetInput) error {
	token := strings.TrimSpace(input.Token)
	if token == "" {
		return domainerrors.ErrInvalidResetToken.WrapMessage("empty reset token")
	}

	user, err := srv.userRepo.FindByResetToken(ctx, resetTokenDigest(token), srv.now())
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Rejected password reset token")

		return domainerrors.ErrInvalidResetToken.WrapMessage("failed to confirm password reset")
	}
	if err != nil {
		return errors.Wrap(err, "failed to find user by reset token")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during reset", slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	if err := srv.userRepo.ResetPassword(ctx, user.ID, hashedPassword); err != nil {
		return mapUserError(err, "failed to reset password")
	}

	srv.log(ctx).Info("Password reset completed", slog.String("userID", user.ID.String()))

	return nil
}

// formatTTL renders the reset link lifetime for the email, e.g. "1 hour" or "30 minutes".
func formatTTL(ttl time.Duration) string {
	unit, n := "minute", int(ttl/time.Minute)
	if ttl%time.Hour == 0 {
		unit, n = "hour", int(ttl/time.Hour)
	}
	if n != 1 {
		unit += "s"
	}

	return fmt.Sprintf("%d %s", n, unit)
}

package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/repository"
	"plantcare/internal/domain/service"
	mockRepo "plantcare/internal/mocks/repository"
	mockSvc "plantcare/internal/mocks/service"
	"plantcare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	emailSvc     *mockSvc.MockEmailService
}

var resetNow = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	emailSvc := mockSvc.NewMockEmailService(t)

	svc := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		EmailSvc:     emailSvc,
		Config:       newTestConfig(""),
		Logger:       newDiscardLogger(),
	}).(*userService)
	svc.now = fixedClock(resetNow)
	svc.newResetToken = func() (string, string, error) {
		return "plain-token", resetTokenDigest("plain-token"), nil
	}

	return userServiceFixtures{
		service:      svc,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		emailSvc:     emailSvc,
	}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.RegisterUserInput{Name: " Ada ", Email: "Ada@Example.com ", Password: "Password123!"}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	user, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "hashed_password", user.PasswordHash)
	assert.Equal(t, entity.DefaultNotificationPreferences(), user.NotificationPreferences)
}

func TestUserService_RegisterUser_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.RegisterUserInput{Name: "Ada", Email: "ada@example.com", Password: "Password123!"}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateEmail)

	user, err := fx.service.RegisterUser(ctx, input)

	require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	assert.Nil(t, user)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "hash"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hash").Return(true)
	fx.tokenService.EXPECT().GenerateTokens(user.ID).Return("access", "refresh", nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ADA@example.com", Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, "access", out.AccessToken)
	assert.Equal(t, "refresh", out.RefreshToken)
	assert.Equal(t, user, out.User)
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "x"})

		require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		user := &entity.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "hash"}

		fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
		fx.hasher.EXPECT().Check("wrong", "hash").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "wrong"})

		require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestUserService_RequestPasswordReset_SendsLink(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", Name: "Ada"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
	fx.userRepo.EXPECT().
		SetResetToken(ctx, user.ID, resetTokenDigest("plain-token"), resetNow.Add(time.Hour)).
		Return(nil)
	fx.emailSvc.EXPECT().
		Send(ctx, mock.MatchedBy(func(msg service.EmailMessage) bool {
			return msg.To == "ada@example.com" &&
				msg.Subject == passwordResetSubject &&
				strings.Contains(msg.HTML, "https://plants.example.com/reset-password?token=plain-token") &&
				strings.Contains(msg.HTML, "Hi Ada") &&
				strings.Contains(msg.HTML, "expire in 1 hour")
		})).
		Return("msg-1", nil)

	err := fx.service.RequestPasswordReset(ctx, " Ada@Example.com ")

	require.NoError(t, err)
}

func TestUserService_RequestPasswordReset_UnknownEmailLooksSuccessful(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	err := fx.service.RequestPasswordReset(ctx, "ghost@example.com")

	require.NoError(t, err)
	fx.userRepo.AssertNotCalled(t, "SetResetToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	fx.emailSvc.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestUserService_RequestPasswordReset_EmailFailureIsNotReported(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
	fx.userRepo.EXPECT().SetResetToken(ctx, user.ID, mock.Anything, mock.Anything).Return(nil)
	fx.emailSvc.EXPECT().Send(ctx, mock.Anything).Return("", errors.New("sendgrid API error: 401"))

	err := fx.service.RequestPasswordReset(ctx, "ada@example.com")

	require.NoError(t, err)
}

func TestUserService_RequestPasswordReset_StoreFailureIsReturned(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
	fx.userRepo.EXPECT().SetResetToken(ctx, user.ID, mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	err := fx.service.RequestPasswordReset(ctx, "ada@example.com")

	require.Error(t, err)
	fx.emailSvc.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestUserService_ConfirmPasswordReset_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com"}

	fx.userRepo.EXPECT().FindByResetToken(ctx, resetTokenDigest("plain-token"), resetNow).Return(user, nil)
	fx.hasher.EXPECT().Hash("N3w-Password").Return("new_hash", nil)
	fx.userRepo.EXPECT().ResetPassword(ctx, user.ID, "new_hash").Return(nil)

	err := fx.service.ConfirmPasswordReset(ctx, &usecase.ConfirmPasswordResetInput{
		Token:    "plain-token",
		Password: "N3w-Password",
	})

	require.NoError(t, err)
}

func TestUserService_ConfirmPasswordReset_ExpiredOrUnknownToken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByResetToken(ctx, resetTokenDigest("stale-token"), resetNow).Return(nil, repository.ErrUserNotFound)

	err := fx.service.ConfirmPasswordReset(ctx, &usecase.ConfirmPasswordResetInput{
		Token:    "stale-token",
		Password: "N3w-Password",
	})

	require.ErrorIs(t, err, domainerrors.ErrInvalidResetToken)
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestUserService_ConfirmPasswordReset_EmptyToken(t *testing.T) {
	fx := createTestUserService(t)

	err := fx.service.ConfirmPasswordReset(context.Background(), &usecase.ConfirmPasswordResetInput{
		Token:    "  ",
		Password: "N3w-Password",
	})

	require.ErrorIs(t, err, domainerrors.ErrInvalidResetToken)
}

func TestFormatTTL(t *testing.T) {
	assert.Equal(t, "1 hour", formatTTL(time.Hour))
	assert.Equal(t, "2 hours", formatTTL(2*time.Hour))
	assert.Equal(t, "30 minutes", formatTTL(30*time.Minute))
}

func TestNewResetToken_StoresDigestOnly(t *testing.T) {
	token, digest, err := newResetToken()

	require.NoError(t, err)
	assert.Len(t, token, 2*resetTokenBytes)
	assert.Len(t, digest, 64)
	assert.NotEqual(t, token, digest)
	assert.Equal(t, resetTokenDigest(token), digest)
}

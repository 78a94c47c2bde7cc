package impl

import (
	"context"
	"testing"
	"time"

	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
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

type notificationServiceFixtures struct {
	service  *notificationService
	userRepo *mockRepo.MockUserRepository
	logRepo  *mockRepo.MockNotificationLogRepository
	emailSvc *mockSvc.MockEmailService
	pushSvc  *mockSvc.MockPushService
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	logRepo := mockRepo.NewMockNotificationLogRepository(t)
	emailSvc := mockSvc.NewMockEmailService(t)
	pushSvc := mockSvc.NewMockPushService(t)

	svc := NewNotificationService(NotificationServiceParams{
		UserRepo: userRepo,
		LogRepo:  logRepo,
		EmailSvc: emailSvc,
		PushSvc:  pushSvc,
		Config:   newTestConfig(""),
		Logger:   newDiscardLogger(),
	}).(*notificationService)
	svc.now = fixedClock(time.Date(2024, time.June, 3, 12, 0, 0, 0, time.UTC))

	return notificationServiceFixtures{
		service:  svc,
		userRepo: userRepo,
		logRepo:  logRepo,
		emailSvc: emailSvc,
		pushSvc:  pushSvc,
	}
}

func TestNotificationService_UpdatePreferences_MergesFields(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), NotificationPreferences: entity.DefaultNotificationPreferences()}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().
		UpdateNotificationPreferences(ctx, user.ID, entity.NotificationPreferences{
			EmailEnabled:  true,
			PreferredTime: "07:30",
		}).
		Return(nil)

	prefs, err := fx.service.UpdatePreferences(ctx, user.ID, &usecase.UpdatePreferencesInput{
		EmailEnabled:  boolPtr(true),
		PreferredTime: strPtr("7:30"),
	})

	require.NoError(t, err)
	assert.True(t, prefs.EmailEnabled)
	assert.False(t, prefs.PushEnabled)
	assert.Equal(t, "07:30", prefs.PreferredTime)
}

func TestNotificationService_UpdatePreferences_RejectsBadTime(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	_, err := fx.service.UpdatePreferences(ctx, user.ID, &usecase.UpdatePreferencesInput{PreferredTime: strPtr("noon")})

	require.ErrorIs(t, err, domainerrors.ErrInvalidTimeOfDay)
}

func TestNotificationService_Subscribe(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().UpdatePushToken(ctx, userID, "fcm-token").Return(nil)

	require.NoError(t, fx.service.Subscribe(ctx, userID, "fcm-token"))

	err := fx.service.Subscribe(ctx, userID, "")
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestNotificationService_SendTest(t *testing.T) {
	token := "fcm-token"

	tests := []struct {
		name        string
		prefs       entity.NotificationPreferences
		pushToken   *string
		emailErr    error
		pushErr     error
		wantMessage string
		wantDetails []string
		wantNote    string
	}{
		{
			name:        "no channels",
			prefs:       entity.NotificationPreferences{},
			wantMessage: "No notifications sent",
			wantNote:    "Enable email or push notifications in settings",
		},
		{
			name:        "both succeed",
			prefs:       entity.NotificationPreferences{EmailEnabled: true, PushEnabled: true},
			pushToken:   &token,
			wantMessage: "Test notifications sent successfully",
			wantDetails: []string{"Email notification sent", "Push notification sent"},
		},
		{
			name:        "email fails",
			prefs:       entity.NotificationPreferences{EmailEnabled: true, PushEnabled: true},
			pushToken:   &token,
			emailErr:    errors.New("email service not configured"),
			wantMessage: "Some notifications failed",
			wantDetails: []string{"Email failed: email service not configured", "Push notification sent"},
		},
		{
			name:        "push enabled without token",
			prefs:       entity.NotificationPreferences{PushEnabled: true},
			wantMessage: "No notifications sent",
			wantNote:    "Enable email or push notifications in settings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestNotificationService(t)
			ctx := context.Background()
			user := &entity.User{
				ID:                      uuid.New(),
				Email:                   "ada@example.com",
				PushToken:               tt.pushToken,
				NotificationPreferences: tt.prefs,
			}

			fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
			if user.WantsEmail() {
				fx.emailSvc.EXPECT().
					Send(ctx, mock.MatchedBy(func(msg service.EmailMessage) bool {
						return msg.Subject == "🌱 Time to water Test Plant"
					})).
					Return("email-id", tt.emailErr)
			}
			if user.WantsPush() {
				fx.pushSvc.EXPECT().
					Send(ctx, token, mock.MatchedBy(func(msg service.PushMessage) bool {
						return msg.Data["scheduleId"] == "test-schedule-id"
					})).
					Return("push-id", tt.pushErr)
			}

			out, err := fx.service.SendTest(ctx, user.ID)

			require.NoError(t, err)
			assert.Equal(t, tt.wantMessage, out.Message)
			assert.Equal(t, tt.wantDetails, out.Details)
			assert.Equal(t, tt.wantNote, out.Note)
			fx.logRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestNotificationService_ListLogs(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()
	logs := []*entity.NotificationLog{{ID: uuid.New(), Channel: entity.ChannelEmail, Status: entity.NotificationStatusSent}}

	fx.logRepo.EXPECT().FindByUser(ctx, userID, 20, 20).Return(logs, int64(21), nil)

	page, err := fx.service.ListLogs(ctx, userID, 2, 0)

	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 20, page.Limit)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, logs, page.Items)
}

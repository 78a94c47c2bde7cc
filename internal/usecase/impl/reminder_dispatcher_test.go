package impl

import (
	"context"
	"testing"
	"time"

	"plantcare/internal/domain/entity"
	"plantcare/internal/domain/service"
	mockRepo "plantcare/internal/mocks/repository"
	mockSvc "plantcare/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type dispatcherFixtures struct {
	dispatcher *reminderDispatcher
	emailSvc   *mockSvc.MockEmailService
	pushSvc    *mockSvc.MockPushService
	logRepo    *mockRepo.MockNotificationLogRepository
	metrics    *mockSvc.MockReminderMetrics
}

var dispatchNow = time.Date(2024, time.May, 6, 9, 0, 30, 0, time.UTC)

func createTestDispatcher(t *testing.T) dispatcherFixtures {
	emailSvc := mockSvc.NewMockEmailService(t)
	pushSvc := mockSvc.NewMockPushService(t)
	logRepo := mockRepo.NewMockNotificationLogRepository(t)
	metrics := mockSvc.NewMockReminderMetrics(t)

	dispatcher := NewReminderDispatcher(ReminderDispatcherParams{
		EmailSvc: emailSvc,
		PushSvc:  pushSvc,
		LogRepo:  logRepo,
		Limiter:  rate.NewLimiter(rate.Inf, 1),
		Metrics:  metrics,
		Config:   newTestConfig("secret"),
		Logger:   newDiscardLogger(),
	}).(*reminderDispatcher)
	dispatcher.now = fixedClock(dispatchNow)

	return dispatcherFixtures{
		dispatcher: dispatcher,
		emailSvc:   emailSvc,
		pushSvc:    pushSvc,
		logRepo:    logRepo,
		metrics:    metrics,
	}
}

func TestReminderDispatcher_EmailOnly(t *testing.T) {
	fx := createTestDispatcher(t)
	ctx := context.Background()
	due := newDueSchedule(dispatchNow, entity.NotificationPreferences{EmailEnabled: true}, nil)

	fx.emailSvc.EXPECT().
		Send(ctx, mock.AnythingOfType("service.EmailMessage")).
		Run(func(_ context.Context, msg service.EmailMessage) {
			assert.Equal(t, "ada@example.com", msg.To)
			assert.Equal(t, "🌱 Time to water Monstera", msg.Subject)
			assert.Contains(t, msg.HTML, "Hi Ada,")
			assert.Contains(t, msg.HTML, "Monstera")
			assert.Contains(t, msg.HTML, "Monday, May 6, 2024")
			assert.Contains(t, msg.HTML, "https://plants.example.com/tasks")
		}).
		Return("msg-1", nil)
	fx.metrics.EXPECT().ObserveDispatch(entity.ChannelEmail, entity.NotificationStatusSent).Return()
	fx.logRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(log *entity.NotificationLog) bool {
			return log.Channel == entity.ChannelEmail &&
				log.Status == entity.NotificationStatusSent &&
				log.MessageID == "msg-1" &&
				log.ScheduleID == due.Schedule.ID &&
				log.UserID == due.Owner.ID &&
				log.CreatedAt.Equal(dispatchNow)
		})).
		Return(nil)

	results, err := fx.dispatcher.Dispatch(ctx, due)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Success)
	assert.Equal(t, entity.ChannelEmail, results[0].Channel)
	assert.Equal(t, "msg-1", results[0].MessageID)
}

func TestReminderDispatcher_BothChannelsEmailFirst(t *testing.T) {
	fx := createTestDispatcher(t)
	ctx := context.Background()
	token := "fcm-token"
	due := newDueSchedule(dispatchNow, entity.NotificationPreferences{EmailEnabled: true, PushEnabled: true}, &token)

	var order []entity.NotificationChannel
	fx.emailSvc.EXPECT().Send(ctx, mock.Anything).Return("email-id", nil)
	fx.pushSvc.EXPECT().
		Send(ctx, token, mock.AnythingOfType("service.PushMessage")).
		Run(func(_ context.Context, _ string, msg service.PushMessage) {
			assert.Equal(t, "🌱 Plant Care Reminder", msg.Title)
			assert.Equal(t, "Time to water Monstera", msg.Body)
			assert.Equal(t, due.Schedule.ID.String(), msg.Data["scheduleId"])
			assert.Equal(t, due.Plant.ID.String(), msg.Data["plantId"])
			assert.Equal(t, "/tasks", msg.Data["url"])
			assert.Equal(t, "task-"+due.Schedule.ID.String(), msg.Tag)
		}).
		Return("push-id", nil)
	fx.metrics.EXPECT().ObserveDispatch(mock.Anything, entity.NotificationStatusSent).Return().Times(2)
	fx.logRepo.EXPECT().
		Create(ctx, mock.Anything).
		Run(func(_ context.Context, log *entity.NotificationLog) {
			order = append(order, log.Channel)
		}).
		Return(nil).
		Times(2)

	results, err := fx.dispatcher.Dispatch(ctx, due)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, []entity.NotificationChannel{entity.ChannelEmail, entity.ChannelPush}, order)
	assert.Equal(t, entity.ChannelEmail, results[0].Channel)
	assert.Equal(t, entity.ChannelPush, results[1].Channel)
}

func TestReminderDispatcher_InvalidPushTokenIsFlagged(t *testing.T) {
	fx := createTestDispatcher(t)
	ctx := context.Background()
	token := "stale-token"
	due := newDueSchedule(dispatchNow, entity.NotificationPreferences{PushEnabled: true}, &token)

	fx.pushSvc.EXPECT().
		Send(ctx, token, mock.Anything).
		Return("", errors.Wrap(service.ErrInvalidPushToken, "messaging/registration-token-not-registered"))
	fx.metrics.EXPECT().ObserveDispatch(entity.ChannelPush, entity.NotificationStatusFailed).Return()
	fx.logRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(log *entity.NotificationLog) bool {
			return log.Channel == entity.ChannelPush &&
				log.Status == entity.NotificationStatusFailed &&
				log.ErrorMessage != ""
		})).
		Return(nil)

	results, err := fx.dispatcher.Dispatch(ctx, due)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.True(t, results[0].TokenInvalid)
	assert.Contains(t, results[0].Error, "registration-token-not-registered")
}

func TestReminderDispatcher_TransportErrorDoesNotStopNextChannel(t *testing.T) {
	fx := createTestDispatcher(t)
	ctx := context.Background()
	token := "fcm-token"
	due := newDueSchedule(dispatchNow, entity.NotificationPreferences{EmailEnabled: true, PushEnabled: true}, &token)

	fx.emailSvc.EXPECT().Send(ctx, mock.Anything).Return("", errors.New("email service not configured"))
	fx.pushSvc.EXPECT().Send(ctx, token, mock.Anything).Return("push-id", nil)
	fx.metrics.EXPECT().ObserveDispatch(entity.ChannelEmail, entity.NotificationStatusFailed).Return()
	fx.metrics.EXPECT().ObserveDispatch(entity.ChannelPush, entity.NotificationStatusSent).Return()
	fx.logRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Times(2)

	results, err := fx.dispatcher.Dispatch(ctx, due)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.False(t, results[0].Success)
	assert.Equal(t, "email service not configured", results[0].Error)
	assert.False(t, results[0].TokenInvalid)
	assert.True(t, results[1].Success)
}

func TestReminderDispatcher_NoChannelsEnabled(t *testing.T) {
	fx := createTestDispatcher(t)
	token := "fcm-token"
	due := newDueSchedule(dispatchNow, entity.NotificationPreferences{PushEnabled: false, EmailEnabled: false}, &token)

	results, err := fx.dispatcher.Dispatch(context.Background(), due)

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestReminderDispatcher_PushEnabledWithoutTokenIsSkipped(t *testing.T) {
	fx := createTestDispatcher(t)
	empty := ""
	due := newDueSchedule(dispatchNow, entity.NotificationPreferences{PushEnabled: true}, &empty)

	results, err := fx.dispatcher.Dispatch(context.Background(), due)

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestReminderDispatcher_LogWriteFailureIsReturned(t *testing.T) {
	fx := createTestDispatcher(t)
	ctx := context.Background()
	token := "fcm-token"
	due := newDueSchedule(dispatchNow, entity.NotificationPreferences{EmailEnabled: true, PushEnabled: true}, &token)

	fx.emailSvc.EXPECT().Send(ctx, mock.Anything).Return("email-id", nil)
	fx.metrics.EXPECT().ObserveDispatch(entity.ChannelEmail, entity.NotificationStatusSent).Return()
	fx.logRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("connection reset"))

	results, err := fx.dispatcher.Dispatch(ctx, due)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "write notification log")
	assert.Empty(t, results)
	fx.pushSvc.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestReminderDispatcher_CancelledContextIsChannelFailure(t *testing.T) {
	fx := createTestDispatcher(t)
	fx.dispatcher.limiter = rate.NewLimiter(rate.Every(time.Hour), 1)
	require.True(t, fx.dispatcher.limiter.Allow())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	due := newDueSchedule(dispatchNow, entity.NotificationPreferences{EmailEnabled: true}, nil)

	fx.metrics.EXPECT().ObserveDispatch(entity.ChannelEmail, entity.NotificationStatusFailed).Return()
	fx.logRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	results, err := fx.dispatcher.Dispatch(ctx, due)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.Contains(t, results[0].Error, "dispatch rate limiter")
}

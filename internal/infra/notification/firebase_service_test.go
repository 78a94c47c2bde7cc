package notification

import (
	"context"
	"testing"

	"plantcare/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage_SetsWebpushOptions(t *testing.T) {
	msg := service.PushMessage{
		Title: "🌱 Plant Care Reminder",
		Body:  "Time to water Fern",
		Data:  map[string]string{"scheduleId": "s-1", "plantId": "p-1", "url": "/tasks"},
		Link:  "/tasks",
		Tag:   "task-s-1",
	}

	got := buildMessage("token-123", msg)

	assert.Equal(t, "token-123", got.Token)
	require.NotNil(t, got.Notification)
	assert.Equal(t, msg.Title, got.Notification.Title)
	assert.Equal(t, msg.Body, got.Notification.Body)
	assert.Equal(t, msg.Data, got.Data)

	require.NotNil(t, got.Webpush)
	require.NotNil(t, got.Webpush.Notification)
	assert.Equal(t, "task-s-1", got.Webpush.Notification.Tag)
	assert.True(t, got.Webpush.Notification.Renotify)
	assert.Equal(t, webpushIcon, got.Webpush.Notification.Icon)
	require.NotNil(t, got.Webpush.FCMOptions)
	assert.Equal(t, "/tasks", got.Webpush.FCMOptions.Link)
}

func TestBuildMessage_OmitsLinkWhenEmpty(t *testing.T) {
	got := buildMessage("token-123", service.PushMessage{Title: "t", Body: "b"})

	assert.Nil(t, got.Webpush.FCMOptions)
	assert.False(t, got.Webpush.Notification.Renotify)
}

func TestUnconfiguredServices_FailEverySend(t *testing.T) {
	ctx := context.Background()

	_, err := NewUnconfiguredEmailService().Send(ctx, service.EmailMessage{To: "a@example.com"})
	assert.ErrorIs(t, err, ErrEmailNotConfigured)

	_, err = NewUnconfiguredPushService().Send(ctx, "token", service.PushMessage{})
	assert.ErrorIs(t, err, ErrPushNotConfigured)
	assert.NotErrorIs(t, err, service.ErrInvalidPushToken)
}

package notification

import (
	"context"
	"fmt"

	"plantcare/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

const (
	webpushIcon  = "/icon-192x192.png"
	webpushBadge = "/badge-72x72.png"
)

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase push service instance
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string) (service.PushService, error) {
	var fbConfig *firebase.Config
	if projectID != "" {
		fbConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// Send sends a push notification to a single device token
func (s *firebaseService) Send(ctx context.Context, token string, msg service.PushMessage) (string, error) {
	messageID, err := s.client.Send(ctx, buildMessage(token, msg))
	if err != nil {
		if isInvalidTokenError(err) {
			return "", fmt.Errorf("%w: %v", service.ErrInvalidPushToken, err)
		}

		return "", fmt.Errorf("failed to send notification: %w", err)
	}

	return messageID, nil
}

func buildMessage(token string, msg service.PushMessage) *messaging.Message {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
		Webpush: &messaging.WebpushConfig{
			Notification: &messaging.WebpushNotification{
				Title:              msg.Title,
				Body:               msg.Body,
				Icon:               webpushIcon,
				Badge:              webpushBadge,
				Tag:                msg.Tag,
				Renotify:           msg.Tag != "",
				RequireInteraction: false,
			},
		},
	}

	if msg.Link != "" {
		message.Webpush.FCMOptions = &messaging.WebpushFCMOptions{Link: msg.Link}
	}

	return message
}

// isInvalidTokenError reports FCM errors that mean the registration token must be dropped.
func isInvalidTokenError(err error) bool {
	return messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err)
}

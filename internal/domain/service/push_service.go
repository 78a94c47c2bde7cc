package service

import (
	"context"
	"errors"
)

// ErrInvalidPushToken marks a push failure caused by a token the transport no longer accepts.
// Callers should stop using the token.
var ErrInvalidPushToken = errors.New("push token is invalid or unregistered")

// PushMessage is a single push notification.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string // Deep-link payload delivered to the client.
	Link  string            // Web push click-through path.
	Tag   string            // Collapses repeated notifications for the same subject.
}

// PushService defines the interface for push notification transports
type PushService interface {
	// Send delivers msg to a single registration token and returns the transport message id.
	// Rejected tokens are reported with an error wrapping ErrInvalidPushToken.
	Send(ctx context.Context, token string, msg PushMessage) (string, error)
}

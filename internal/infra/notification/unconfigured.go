package notification

import (
	"context"

	"plantcare/internal/domain/service"
	"plantcare/internal/errors"
)

var (
	// ErrEmailNotConfigured is returned by the email transport when no provider credentials are set.
	ErrEmailNotConfigured = errors.New("email service not configured")
	// ErrPushNotConfigured is returned by the push transport when no provider credentials are set.
	ErrPushNotConfigured = errors.New("push service not configured")
)

type unconfiguredEmailService struct{}

// NewUnconfiguredEmailService returns a transport that fails every send.
// Failed sends are still logged per attempt, so a deployment without email keeps an audit trail.
func NewUnconfiguredEmailService() service.EmailService {
	return unconfiguredEmailService{}
}

func (unconfiguredEmailService) Send(context.Context, service.EmailMessage) (string, error) {
	return "", ErrEmailNotConfigured
}

type unconfiguredPushService struct{}

// NewUnconfiguredPushService returns a transport that fails every send.
func NewUnconfiguredPushService() service.PushService {
	return unconfiguredPushService{}
}

func (unconfiguredPushService) Send(context.Context, string, service.PushMessage) (string, error) {
	return "", ErrPushNotConfigured
}

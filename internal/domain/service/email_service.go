package service

import "context"

// EmailMessage is a single transactional email.
type EmailMessage struct {
	To      string
	Subject string
	HTML    string
}

// EmailService defines the interface for email transports
type EmailService interface {
	// Send delivers msg and returns the transport message id, if the transport provides one.
	Send(ctx context.Context, msg EmailMessage) (string, error)
}

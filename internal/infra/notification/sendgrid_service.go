package notification

import (
	"context"
	"net/http"
	"strings"
	"time"

	"plantcare/config"
	"plantcare/internal/domain/service"
	"plantcare/internal/errors"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	defaultSendGridTimeout = 10 * time.Second
	sendGridMessageHeader  = "X-Message-Id"
)

type sendGridService struct {
	apiKey    string
	host      string
	fromEmail string
	fromName  string
	timeout   time.Duration
}

// NewSendGridService creates the SendGrid email transport.
func NewSendGridService(cfg *config.SendGridConfig) service.EmailService {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultSendGridTimeout
	}

	host := strings.TrimRight(cfg.Host, "/")
	if host == "" {
		host = config.DefaultSendGridHost
	}

	return &sendGridService{
		apiKey:    cfg.APIKey,
		host:      host,
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		timeout:   timeout,
	}
}

// Send posts one HTML email through the v3 mail send API.
func (s *sendGridService) Send(ctx context.Context, msg service.EmailMessage) (string, error) {
	message := mail.NewSingleEmail(
		mail.NewEmail(s.fromName, s.fromEmail),
		msg.Subject,
		mail.NewEmail("", msg.To),
		"",
		msg.HTML,
	)

	request := sendgrid.GetRequest(s.apiKey, "/v3/mail/send", s.host)
	request.Method = rest.Post
	request.Body = mail.GetRequestBody(message)

	sendCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := sendgrid.MakeRequestWithContext(sendCtx, request)
	if err != nil {
		return "", errors.Wrap(err, "sendgrid send error")
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return "", errors.Errorf("sendgrid API error: %d %s", resp.StatusCode, resp.Body)
	}

	return firstHeader(resp.Headers, sendGridMessageHeader), nil
}

func firstHeader(headers map[string][]string, key string) string {
	if values := http.Header(headers).Values(key); len(values) > 0 {
		return values[0]
	}

	return ""
}

package impl

import (
	"bytes"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"html/template"
	"net/url"

	"plantcare/internal/domain/constants"
	"plantcare/internal/domain/service"
	"plantcare/internal/errors"
)

const (
	passwordResetSubject = "🌱 Reset Your Password"
	resetTokenBytes      = 32
)

var passwordResetEmailTemplate = template.Must(template.New("password-reset").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <title>Reset Your Password</title>
  </head>
  <body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background-color: #f8f9fa; border-radius: 8px; padding: 30px;">
      <h1 style="color: #22c55e; margin-top: 0;">🌱 Reset Your Password</h1>
      <p style="font-size: 16px;">Hi {{.UserName}},</p>
      <p style="font-size: 16px;">We received a request to reset your password for your Plant Care Reminder account.</p>
      <div style="text-align: center; margin: 30px 0;">
        <a href="{{.ResetURL}}" style="background-color: #22c55e; color: white; padding: 12px 30px; text-decoration: none; border-radius: 6px; display: inline-block; font-weight: bold;">Reset Password</a>
      </div>
      <p style="font-size: 14px; color: #666;">This link will expire in {{.ExpiresIn}}. If you didn't request a password reset, you can safely ignore this email.</p>
      <p style="font-size: 14px; color: #666;">Or copy and paste this URL into your browser:<br>
        <a href="{{.ResetURL}}" style="color: #22c55e; word-break: break-all;">{{.ResetURL}}</a>
      </p>
    </div>
  </body>
</html>
`))

// newResetToken returns a random hex token for the email link and the digest that is stored.
func newResetToken() (token, digest string, err error) {
	raw := make([]byte, resetTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", "", errors.Wrap(err, "failed to generate reset token")
	}
	token = hex.EncodeToString(raw)

	return token, resetTokenDigest(token), nil
}

func resetTokenDigest(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

func passwordResetURL(appBaseURL, token string) string {
	return appBaseURL + constants.AppResetPasswordPath + "?token=" + url.QueryEscape(token)
}

func buildPasswordResetEmail(to, userName, resetURL, expiresIn string) (service.EmailMessage, error) {
	if userName == "" {
		userName = defaultUserName
	}

	var body bytes.Buffer
	err := passwordResetEmailTemplate.Execute(&body, map[string]string{
		"UserName":  userName,
		"ResetURL":  resetURL,
		"ExpiresIn": expiresIn,
	})
	if err != nil {
		return service.EmailMessage{}, errors.Wrap(err, "failed to render password reset email")
	}

	return service.EmailMessage{
		To:      to,
		Subject: passwordResetSubject,
		HTML:    body.String(),
	}, nil
}

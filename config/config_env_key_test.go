package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"cron": map[string]any{
			"secret": "",
		},
		"sendgrid": map[string]any{
			"apiKey":    "",
			"fromEmail": "",
		},
		"rateLimit": map[string]any{
			"provider": "memory",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "CRON_SECRET", want: "cron.secret"},
		{envKey: "SENDGRID_APIKEY", want: "sendgrid.apiKey"},
		{envKey: "SENDGRID_FROMEMAIL", want: "sendgrid.fromEmail"},
		{envKey: "RATELIMIT_PROVIDER", want: "rateLimit.provider"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsOptionalSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Cron)
	assert.Empty(t, cfg.Cron.Secret)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "*/5 * * * *", cfg.Scheduler.Spec)
	assert.False(t, cfg.Scheduler.Enabled)
	assert.Equal(t, "memory", cfg.RateLimit.Provider)
	assert.Equal(t, 5, cfg.RateLimit.Auth.MaxRequests)
	assert.Equal(t, 60, cfg.RateLimit.API.MaxRequests)
	assert.Equal(t, time.Minute, cfg.RateLimit.API.Interval)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, time.Hour, cfg.Auth.ResetTokenTTL)
	require.NotNil(t, cfg.SendGrid)
	assert.Equal(t, DefaultSendGridHost, cfg.SendGrid.Host)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		App:       &AppConfig{BaseURL: "https://plants.example.com/"},
		Scheduler: &SchedulerConfig{Enabled: true, Spec: "0 * * * *"},
		RateLimit: &RateLimitConfig{
			Provider: "redis",
			API:      RateLimitWindow{Interval: 30 * time.Second, MaxRequests: 10},
		},
	}

	applyDefaults(cfg)

	assert.Equal(t, "https://plants.example.com", cfg.App.BaseURL)
	assert.Equal(t, "0 * * * *", cfg.Scheduler.Spec)
	assert.Equal(t, "redis", cfg.RateLimit.Provider)
	assert.Equal(t, 10, cfg.RateLimit.API.MaxRequests)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.API.Interval)
	assert.Equal(t, 5, cfg.RateLimit.Auth.MaxRequests)
}

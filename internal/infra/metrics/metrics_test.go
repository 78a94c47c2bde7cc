package metrics

import (
	"strings"
	"testing"
	"time"

	"plantcare/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_ObserveDispatch(t *testing.T) {
	r, err := NewRecorder(prometheus.NewRegistry())
	require.NoError(t, err)

	r.ObserveDispatch(entity.ChannelEmail, entity.NotificationStatusSent)
	r.ObserveDispatch(entity.ChannelEmail, entity.NotificationStatusSent)
	r.ObserveDispatch(entity.ChannelPush, entity.NotificationStatusFailed)

	assert.InDelta(t, 2, testutil.ToFloat64(r.notifications.WithLabelValues("EMAIL", "SENT")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.notifications.WithLabelValues("PUSH", "FAILED")), 0)
}

func TestRecorder_ObserveScan(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := NewRecorder(reg)
	require.NoError(t, err)

	r.ObserveScan(4, 3, 1, 1500*time.Millisecond)
	r.ObserveScan(2, 2, 0, time.Second)

	expected := `
# HELP plantcare_scan_schedules_processed_total Due schedules processed by scans.
# TYPE plantcare_scan_schedules_processed_total counter
plantcare_scan_schedules_processed_total 6
# HELP plantcare_scan_errors_total Errors collected by scans.
# TYPE plantcare_scan_errors_total counter
plantcare_scan_errors_total 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"plantcare_scan_schedules_processed_total", "plantcare_scan_errors_total"))
	assert.InDelta(t, 2, testutil.ToFloat64(r.scanRuns), 0)
	assert.InDelta(t, 5, testutil.ToFloat64(r.scanSent), 0)
	assert.Positive(t, testutil.ToFloat64(r.lastScan))
}

func TestNewRecorder_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewRecorder(reg)
	require.NoError(t, err)

	_, err = NewRecorder(reg)
	assert.Error(t, err)
}

func TestRecorder_ObserveHTTP(t *testing.T) {
	r, err := NewRecorder(prometheus.NewRegistry())
	require.NoError(t, err)

	r.ObserveHTTP("/api/cron/check-tasks", "GET", 401, 10*time.Millisecond)
	r.ObserveRateLimited("/api/v1/auth/login")

	assert.InDelta(t, 1, testutil.ToFloat64(r.httpRequests.WithLabelValues("/api/cron/check-tasks", "GET", "401")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.rateLimitDenied.WithLabelValues("/api/v1/auth/login")), 0)
}

package usecase

import (
	"context"
	"errors"

	"plantcare/internal/domain/entity"
)

// ErrCronUnauthorized is returned by CheckTasks when the presented credential does not match
// the configured cron secret, or when no secret is configured.
var ErrCronUnauthorized = errors.New("unauthorized")

// ReminderDispatcher delivers one due reminder through the owner's enabled channels.
type ReminderDispatcher interface {
	// Dispatch attempts email then push and writes one notification log per attempt.
	// Transport failures are reported in the results, never as the error; the error
	// is only set when a log row could not be written.
	Dispatch(ctx context.Context, due *entity.DueSchedule) ([]entity.ChannelResult, error)
}

// ScanSummary is the outcome of one due-task scan.
type ScanSummary struct {
	Success           bool     `json:"success"`
	ProcessedCount    int      `json:"processedCount"`
	NotificationsSent int      `json:"notificationsSent"`
	Errors            []string `json:"errors,omitempty"`
	Timestamp         string   `json:"timestamp"`
}

// ScanUsecase is the due-task scan orchestrator.
type ScanUsecase interface {
	// CheckTasks authorizes credential against the cron secret, then runs a scan.
	CheckTasks(ctx context.Context, credential string) (*ScanSummary, error)

	// RunScan runs a scan for a trusted caller such as the in-process scheduler.
	RunScan(ctx context.Context) (*ScanSummary, error)
}

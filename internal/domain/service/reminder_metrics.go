package service

import (
	"time"

	"plantcare/internal/domain/entity"
)

// ReminderMetrics records dispatch and scan outcomes.
type ReminderMetrics interface {
	ObserveDispatch(channel entity.NotificationChannel, status entity.NotificationStatus)
	ObserveScan(processed, sent, failed int, elapsed time.Duration)
}

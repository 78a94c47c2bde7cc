package repository

import (
	"context"
	"errors"
	"time"

	"plantcare/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrScheduleNotFound is returned when a schedule does not exist, is soft-deleted, or is not visible to the user.
	ErrScheduleNotFound = errors.New("care schedule not found")

	// ErrScheduleAdvanceConflict is returned by AdvanceNextDueDate when the stored next due date
	// no longer matches the expected value, meaning another writer already moved it.
	ErrScheduleAdvanceConflict = errors.New("care schedule next due date changed concurrently")
)

// ScheduleRepository is the store accessor for care schedules.
type ScheduleRepository interface {
	// FindDue returns every active, non-deleted schedule on a non-deleted plant whose
	// next due date is at or before now, joined with its plant and owning user,
	// ordered by next due date ascending.
	FindDue(ctx context.Context, now time.Time) ([]*entity.DueSchedule, error)

	// AdvanceNextDueDate moves the schedule's next due date from expected to next.
	// It returns ErrScheduleAdvanceConflict when the stored value is no longer expected.
	AdvanceNextDueDate(ctx context.Context, id uuid.UUID, expected, next time.Time) error

	Create(ctx context.Context, schedule *entity.CareSchedule) error

	// FindByIDForUser returns the schedule only when its plant is owned by userID and not deleted.
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.CareSchedule, error)

	// FindByUser lists all non-deleted schedules across the user's plants, with the plant attached.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CareSchedule, error)

	// FindByPlant lists the plant's non-deleted schedules ordered by next due date.
	FindByPlant(ctx context.Context, plantID uuid.UUID) ([]*entity.CareSchedule, error)

	// FindUpcoming lists the user's active schedules, optionally bounded to next due dates in [from, to].
	FindUpcoming(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]*entity.CareSchedule, error)

	// Update persists the editable fields of a schedule, including a recomputed next due date.
	Update(ctx context.Context, schedule *entity.CareSchedule) error

	SetActive(ctx context.Context, id uuid.UUID, active bool) error

	SoftDelete(ctx context.Context, id uuid.UUID) error
}

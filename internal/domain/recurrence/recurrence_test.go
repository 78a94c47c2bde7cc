package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d, h, minute int) time.Time {
	return time.Date(y, m, d, h, minute, 0, 0, time.UTC)
}

func TestParseTimeOfDay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{name: "zero padded", input: "09:30", want: TimeOfDay{Hour: 9, Minute: 30}},
		{name: "single digit hour", input: "7:05", want: TimeOfDay{Hour: 7, Minute: 5}},
		{name: "midnight", input: "00:00", want: TimeOfDay{}},
		{name: "last minute", input: "23:59", want: TimeOfDay{Hour: 23, Minute: 59}},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "12:60", wantErr: true},
		{name: "missing minutes", input: "12", wantErr: true},
		{name: "seconds not allowed", input: "12:00:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeOfDay)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, IsValidTimeOfDay(tt.input))
		})
	}
}

func TestTimeOfDay_String(t *testing.T) {
	assert.Equal(t, "07:05", TimeOfDay{Hour: 7, Minute: 5}.String())
}

func TestNextDue_FutureStartReturnsStartAtTimeOfDay(t *testing.T) {
	start := date(2024, time.March, 10, 15, 42)
	now := date(2024, time.March, 1, 12, 0)

	got := NextDue(start, 3, TimeOfDay{Hour: 9}, now)

	assert.Equal(t, date(2024, time.March, 10, 9, 0), got)
}

func TestNextDue_DropsSecondsFromStart(t *testing.T) {
	start := time.Date(2024, time.March, 10, 15, 42, 17, 900, time.UTC)
	now := date(2024, time.March, 1, 12, 0)

	got := NextDue(start, 1, TimeOfDay{Hour: 8, Minute: 15}, now)

	assert.Equal(t, 0, got.Second())
	assert.Equal(t, 0, got.Nanosecond())
	assert.Equal(t, date(2024, time.March, 10, 8, 15), got)
}

func TestNextDue_PastStartCatchesUp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start time.Time
		freq  int
		tod   TimeOfDay
		now   time.Time
		want  time.Time
	}{
		{
			name:  "weekly, ten days late",
			start: date(2024, time.January, 1, 0, 0),
			freq:  7,
			tod:   TimeOfDay{Hour: 9},
			now:   date(2024, time.January, 11, 9, 0),
			want:  date(2024, time.January, 15, 9, 0),
		},
		{
			name:  "daily, first occurrence earlier today",
			start: date(2024, time.January, 11, 0, 0),
			freq:  1,
			tod:   TimeOfDay{Hour: 6},
			now:   date(2024, time.January, 11, 9, 0),
			want:  date(2024, time.January, 12, 6, 0),
		},
		{
			name:  "exactly one cycle plus a few hours",
			start: date(2024, time.January, 1, 0, 0),
			freq:  7,
			tod:   TimeOfDay{Hour: 9},
			now:   date(2024, time.January, 8, 13, 0),
			want:  date(2024, time.January, 15, 9, 0),
		},
		{
			name:  "occurrence equal to now is due now",
			start: date(2024, time.January, 1, 0, 0),
			freq:  3,
			tod:   TimeOfDay{Hour: 9},
			now:   date(2024, time.January, 7, 9, 0),
			want:  date(2024, time.January, 7, 9, 0),
		},
		{
			name:  "zero frequency behaves as daily",
			start: date(2024, time.January, 1, 0, 0),
			freq:  0,
			tod:   TimeOfDay{Hour: 9},
			now:   date(2024, time.January, 3, 10, 0),
			want:  date(2024, time.January, 4, 9, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NextDue(tt.start, tt.freq, tt.tod, tt.now)
			assert.Equal(t, tt.want, got)
			assert.False(t, got.Before(tt.now))
		})
	}
}

func TestNextDue_ResultIsSmallestAlignedOccurrence(t *testing.T) {
	start := date(2023, time.November, 3, 0, 0)
	tod := TimeOfDay{Hour: 18, Minute: 30}
	first := tod.On(start)

	for _, freq := range []int{1, 2, 5, 14, 30} {
		for offset := 0; offset < 200; offset += 7 {
			now := first.Add(time.Duration(offset)*24*time.Hour + 5*time.Hour)

			got := NextDue(start, freq, tod, now)

			require.False(t, got.Before(now), "freq=%d offset=%d", freq, offset)
			assert.False(t, AdvanceByDays(got, -freq).After(now) || AdvanceByDays(got, -freq).Equal(now),
				"previous occurrence should be before now (freq=%d offset=%d)", freq, offset)

			days := int(got.Sub(first).Hours() / 24)
			assert.Zero(t, days%freq, "freq=%d offset=%d", freq, offset)
			assert.Equal(t, 18, got.Hour())
			assert.Equal(t, 30, got.Minute())
		}
	}
}

func TestAdvanceByDays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   time.Time
		days int
		want time.Time
	}{
		{name: "zero days is identity", in: date(2024, time.May, 5, 9, 0), days: 0, want: date(2024, time.May, 5, 9, 0)},
		{name: "month rollover", in: date(2024, time.January, 30, 9, 0), days: 3, want: date(2024, time.February, 2, 9, 0)},
		{name: "year rollover", in: date(2023, time.December, 30, 21, 15), days: 7, want: date(2024, time.January, 6, 21, 15)},
		{name: "leap year lands on Feb 29", in: date(2024, time.February, 28, 9, 0), days: 1, want: date(2024, time.February, 29, 9, 0)},
		{name: "non-leap year lands on Mar 1", in: date(2023, time.February, 28, 9, 0), days: 1, want: date(2023, time.March, 1, 9, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := tt.in
			got := AdvanceByDays(in, tt.days)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, in)
		})
	}
}

func TestAdvanceByDays_KeepsWallClockAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	before := time.Date(2024, time.March, 9, 9, 0, 0, 0, loc)
	got := AdvanceByDays(before, 1)

	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 10, got.Day())
}

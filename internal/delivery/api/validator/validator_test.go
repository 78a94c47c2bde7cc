package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scheduleRequest struct {
	FrequencyDays int    `json:"frequency_days" validate:"required,min=1"`
	TimeOfDay     string `json:"time_of_day" validate:"required,timeofday"`
}

func TestValidate_TimeOfDay(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		tod     string
		wantErr bool
	}{
		{name: "padded", tod: "09:00"},
		{name: "short hour", tod: "7:30"},
		{name: "hour out of range", tod: "25:00", wantErr: true},
		{name: "garbage", tod: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&scheduleRequest{FrequencyDays: 3, TimeOfDay: tt.tod})
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, Describe(err), "TimeOfDay: timeofday")

				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDescribe_IncludesParam(t *testing.T) {
	err := New().Validate(&scheduleRequest{FrequencyDays: -1, TimeOfDay: "09:00"})

	require.Error(t, err)
	assert.Equal(t, "FrequencyDays: min=1", Describe(err))
}

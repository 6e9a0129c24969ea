package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "07:00", want: "07:00"},
		{name: "valid evening", input: "17:45", want: "17:45"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "missing leading zero", input: "7:00", wantErr: true},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "out of range minute", input: "12:60", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("17:15")

	end, err := ts.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("18:00"), end)

	_, err = ts.AddMinutes(7 * 60)
	assert.ErrorIs(t, err, ErrInvalidTimeString, "crossing midnight must fail")
}

func TestTimeString_Comparison(t *testing.T) {
	early := TimeString("09:00")
	late := TimeString("09:30")

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsAfter(early))
	assert.False(t, early.IsBefore(early))
}

func TestTimeString_OnDate(t *testing.T) {
	date := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)

	got, err := TimeString("07:30").OnDate(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.September, 7, 7, 30, 0, 0, time.UTC), got)
}

func TestNewTimeString(t *testing.T) {
	now := time.Date(2026, time.March, 2, 14, 5, 59, 0, time.UTC)
	assert.Equal(t, TimeString("14:05"), NewTimeString(now))
}

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input   string
		minutes int
	}{
		{"00:00", 0},
		{"00:01", 1},
		{"09:00", 540},
		{"14:30", 870},
		{"23:59", 1439},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.minutes, got.Minutes())
		})
	}
}

func TestParseTimeOfDay_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"24:00",
		"25:00",
		"12:60",
		"9:00",
		"12:5",
		"12-30",
		"noon",
		"12:30:00",
	}

	for _, input := range invalid {
		t.Run(input, func(t *testing.T) {
			_, err := ParseTimeOfDay(input)
			assert.ErrorIs(t, err, ErrInvalidTimeFormat)
		})
	}
}

func TestTimeOfDay_RoundTrip(t *testing.T) {
	for _, input := range []string{"00:00", "09:05", "14:30", "23:59"} {
		parsed, err := ParseTimeOfDay(input)
		require.NoError(t, err)
		assert.Equal(t, input, parsed.String())
	}
}

func TestTimeOfDay_String_EndOfDay(t *testing.T) {
	assert.Equal(t, "24:00", EndOfDay.String())
}

func TestTimeOfDay_Format12Hour(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"00:00", "12:00 AM"},
		{"00:30", "12:30 AM"},
		{"09:00", "9:00 AM"},
		{"12:00", "12:00 PM"},
		{"12:30", "12:30 PM"},
		{"14:30", "2:30 PM"},
		{"23:59", "11:59 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			parsed, err := ParseTimeOfDay(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, parsed.Format12Hour())
		})
	}
}

func TestTimeOfDay_Arithmetic(t *testing.T) {
	start, err := ParseTimeOfDay("10:00")
	require.NoError(t, err)

	end := start.AddMinutes(90)
	assert.Equal(t, "11:30", end.String())

	assert.True(t, start.IsBefore(end))
	assert.True(t, end.IsAfter(start))
	assert.False(t, start.IsBefore(start))
	assert.False(t, start.IsAfter(start))
}

func TestTimeOfDay_IsValid(t *testing.T) {
	assert.True(t, TimeOfDay(0).IsValid())
	assert.True(t, TimeOfDay(1439).IsValid())
	assert.True(t, EndOfDay.IsValid())
	assert.False(t, TimeOfDay(-1).IsValid())
	assert.False(t, TimeOfDay(1441).IsValid())
}

func TestTimeOfDay_ScanValue(t *testing.T) {
	var tod TimeOfDay
	require.NoError(t, tod.Scan("14:30"))
	assert.Equal(t, 870, tod.Minutes())

	value, err := tod.Value()
	require.NoError(t, err)
	assert.Equal(t, "14:30", value)

	require.NoError(t, tod.Scan([]byte("09:15")))
	assert.Equal(t, "09:15", tod.String())
}

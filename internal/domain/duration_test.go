package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationConfig_Options(t *testing.T) {
	config := &DurationConfig{
		MinDuration:     30,
		MaxDuration:     180,
		IntervalMinutes: 30,
	}

	options, err := config.Options()
	require.NoError(t, err)
	require.Len(t, options, 6)

	assert.Equal(t, DurationOption{Minutes: 30, Label: "30 minutes"}, options[0])
	assert.Equal(t, DurationOption{Minutes: 60, Label: "1 hour"}, options[1])
	assert.Equal(t, DurationOption{Minutes: 90, Label: "1 hour 30 minutes"}, options[2])
	assert.Equal(t, DurationOption{Minutes: 120, Label: "2 hours"}, options[3])
	assert.Equal(t, DurationOption{Minutes: 150, Label: "2 hours 30 minutes"}, options[4])
	assert.Equal(t, DurationOption{Minutes: 180, Label: "3 hours"}, options[5])
}

func TestDurationConfig_Options_StrictlyIncreasing(t *testing.T) {
	config := &DurationConfig{
		MinDuration:     45,
		MaxDuration:     200,
		IntervalMinutes: 15,
	}

	options, err := config.Options()
	require.NoError(t, err)
	require.NotEmpty(t, options)

	assert.Equal(t, 45, options[0].Minutes)
	for i := 1; i < len(options); i++ {
		assert.Equal(t, 15, options[i].Minutes-options[i-1].Minutes)
	}
	assert.LessOrEqual(t, options[len(options)-1].Minutes, 200)
}

func TestDurationConfig_Options_Invalid(t *testing.T) {
	_, err := (&DurationConfig{MinDuration: 30, MaxDuration: 180, IntervalMinutes: 0}).Options()
	assert.ErrorIs(t, err, ErrInvalidDurationConfig)

	_, err = (&DurationConfig{MinDuration: 30, MaxDuration: 180, IntervalMinutes: -15}).Options()
	assert.ErrorIs(t, err, ErrInvalidDurationConfig)

	_, err = (&DurationConfig{MinDuration: 180, MaxDuration: 30, IntervalMinutes: 30}).Options()
	assert.ErrorIs(t, err, ErrInvalidDurationConfig)

	_, err = (&DurationConfig{MinDuration: 0, MaxDuration: 180, IntervalMinutes: 30}).Options()
	assert.ErrorIs(t, err, ErrInvalidDurationConfig)
}

func TestDurationConfig_Contains(t *testing.T) {
	config := &DurationConfig{MinDuration: 30, MaxDuration: 180, IntervalMinutes: 30}

	assert.True(t, config.Contains(30))
	assert.True(t, config.Contains(90))
	assert.True(t, config.Contains(180))

	assert.False(t, config.Contains(15))  // меньше минимума
	assert.False(t, config.Contains(45))  // не кратно шагу
	assert.False(t, config.Contains(210)) // больше максимума
	assert.False(t, config.Contains(0))
}

func TestDurationConfig_SlotInterval(t *testing.T) {
	assert.Equal(t, 15, (&DurationConfig{IntervalMinutes: 15}).SlotInterval())
	assert.Equal(t, DefaultSlotIntervalMinutes, (&DurationConfig{}).SlotInterval())
	assert.Equal(t, DefaultSlotIntervalMinutes, (&DurationConfig{IntervalMinutes: -5}).SlotInterval())
}

func TestFormatDurationLabel(t *testing.T) {
	assert.Equal(t, "15 minutes", FormatDurationLabel(15))
	assert.Equal(t, "30 minutes", FormatDurationLabel(30))
	assert.Equal(t, "1 hour", FormatDurationLabel(60))
	assert.Equal(t, "1 hour 30 minutes", FormatDurationLabel(90))
	assert.Equal(t, "2 hours", FormatDurationLabel(120))
	assert.Equal(t, "2 hours 45 minutes", FormatDurationLabel(165))
}

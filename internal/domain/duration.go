package domain

import "fmt"

// DurationConfig describes the selectable booking lengths for a business:
// everything from MinDuration to MaxDuration in IntervalMinutes steps.
type DurationConfig struct {
	MinDuration     int // minutes
	MaxDuration     int // minutes
	IntervalMinutes int
}

// DurationOption is one selectable booking length
type DurationOption struct {
	Minutes int
	Label   string
}

// SlotInterval returns the slot-generation step, falling back to the
// default when the interval is unset.
func (c *DurationConfig) SlotInterval() int {
	if c.IntervalMinutes <= 0 {
		return DefaultSlotIntervalMinutes
	}
	return c.IntervalMinutes
}

// Options expands the configuration into the ordered list of selectable
// durations with humanized labels. Returns ErrInvalidDurationConfig when
// the interval is not positive or min exceeds max, since either would
// make the option list empty or unbounded.
func (c *DurationConfig) Options() ([]DurationOption, error) {
	if c.IntervalMinutes <= 0 {
		return nil, fmt.Errorf("%w: interval must be positive, got %d", ErrInvalidDurationConfig, c.IntervalMinutes)
	}
	if c.MinDuration <= 0 || c.MinDuration > c.MaxDuration {
		return nil, fmt.Errorf("%w: min=%d max=%d", ErrInvalidDurationConfig, c.MinDuration, c.MaxDuration)
	}

	options := make([]DurationOption, 0, (c.MaxDuration-c.MinDuration)/c.IntervalMinutes+1)
	for minutes := c.MinDuration; minutes <= c.MaxDuration; minutes += c.IntervalMinutes {
		options = append(options, DurationOption{
			Minutes: minutes,
			Label:   FormatDurationLabel(minutes),
		})
	}

	return options, nil
}

// Contains reports whether the duration is one of the selectable options.
func (c *DurationConfig) Contains(durationMinutes int) bool {
	if c.IntervalMinutes <= 0 {
		return false
	}
	if durationMinutes < c.MinDuration || durationMinutes > c.MaxDuration {
		return false
	}
	return (durationMinutes-c.MinDuration)%c.IntervalMinutes == 0
}

// FormatDurationLabel humanizes a duration in minutes:
// "30 minutes", "1 hour", "1 hour 30 minutes", "3 hours".
func FormatDurationLabel(minutes int) string {
	hours := minutes / 60
	remainder := minutes % 60

	switch {
	case hours == 0:
		return fmt.Sprintf("%d minutes", remainder)
	case remainder == 0 && hours == 1:
		return "1 hour"
	case remainder == 0:
		return fmt.Sprintf("%d hours", hours)
	case hours == 1:
		return fmt.Sprintf("1 hour %d minutes", remainder)
	default:
		return fmt.Sprintf("%d hours %d minutes", hours, remainder)
	}
}

package domain

import "github.com/mmaniatis/v-tee/pkg/types"

// TimeSlot represents one candidate booking start time on a date.
// Derived per request, never persisted.
type TimeSlot struct {
	StartTime   types.TimeOfDay
	Display     string // 12-hour display string, e.g. "9:00 AM"
	RatePerHour float64
	IsAvailable bool
	IsPeak      bool
}

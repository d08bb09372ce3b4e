package domain

import (
	"fmt"
	"time"

	"github.com/mmaniatis/v-tee/pkg/types"
)

// DaySchedule holds the opening hours and peak-hour eligibility for one
// weekday of one business.
type DaySchedule struct {
	Weekday          time.Weekday // 0=Sunday .. 6=Saturday
	IsOpen           bool
	OpenTime         types.TimeOfDay
	CloseTime        types.TimeOfDay
	PeakHoursEnabled bool
}

// WeekSchedule is the full week of day schedules for a business.
// A fully configured business carries exactly one record per weekday.
type WeekSchedule []DaySchedule

// ScheduleForDate resolves the day schedule for a calendar date.
// A close time of 00:00 means "midnight at the end of the day" and is
// normalized to the 24:00 sentinel so slot generation can treat the
// open window as [open, 1440).
// Returns ErrScheduleNotFound if the weekday has no record.
func (w WeekSchedule) ScheduleForDate(date time.Time) (DaySchedule, error) {
	weekday := date.Weekday()

	for _, day := range w {
		if day.Weekday != weekday {
			continue
		}

		resolved := day
		if resolved.CloseTime == 0 {
			resolved.CloseTime = types.EndOfDay
		}
		return resolved, nil
	}

	return DaySchedule{}, fmt.Errorf("%w: %s", ErrScheduleNotFound, weekday)
}

// IsWeekend reports whether the date falls on Saturday or Sunday.
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

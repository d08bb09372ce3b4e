package domain

import "errors"

var (
	// ErrScheduleNotFound is returned when a business has no schedule record
	// for a weekday. A fully configured business always carries all seven
	// records, so this is a data-integrity error, not a user-facing one.
	ErrScheduleNotFound = errors.New("domain: no schedule configured for weekday")

	// ErrInvalidDurationConfig is returned when a duration configuration
	// cannot produce a finite option list (interval <= 0, min > max).
	ErrInvalidDurationConfig = errors.New("domain: invalid duration config")

	// ErrInvalidBookingParameters is returned when pricing or availability
	// inputs are malformed (invalid time, non-positive duration).
	ErrInvalidBookingParameters = errors.New("domain: invalid booking parameters")
)

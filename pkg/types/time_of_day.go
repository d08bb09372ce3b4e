package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 1440

// EndOfDay специальное значение "полночь в конце дня" (24:00)
// Используется как время закрытия, когда заведение работает до полуночи.
// ParseTimeOfDay никогда не возвращает это значение.
const EndOfDay = TimeOfDay(MinutesPerDay)

// ErrInvalidTimeFormat возвращается, когда строка времени не соответствует формату HH:MM
var ErrInvalidTimeFormat = errors.New("types: invalid time format, expected HH:MM")

var timeOfDayRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// TimeOfDay represents a wall-clock time with minute granularity,
// stored as minutes since midnight. Valid values are 0..1439 plus
// the EndOfDay sentinel 1440.
type TimeOfDay int

// ParseTimeOfDay parses a "HH:MM" string into a TimeOfDay.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	m := timeOfDayRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])

	return TimeOfDay(hours*60 + minutes), nil
}

// Minutes returns the value as minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return int(t)
}

// Hour returns the hour component (0-23, or 24 for EndOfDay).
func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

// Minute returns the minute component (0-59).
func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

// IsValid reports whether the value is within 0..1440.
func (t TimeOfDay) IsValid() bool {
	return t >= 0 && t <= EndOfDay
}

// IsBefore reports whether t is strictly before other.
func (t TimeOfDay) IsBefore(other TimeOfDay) bool {
	return t < other
}

// IsAfter reports whether t is strictly after other.
func (t TimeOfDay) IsAfter(other TimeOfDay) bool {
	return t > other
}

// AddMinutes returns the time shifted forward by the given number of minutes.
// The result may exceed EndOfDay; callers compare it against interval bounds.
func (t TimeOfDay) AddMinutes(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

// String returns the 24-hour "HH:MM" representation.
// EndOfDay renders as "24:00".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Format12Hour returns the 12-hour clock representation, e.g. "9:00 AM".
// Hour 0 renders as 12 AM, hour 12 as 12 PM; minutes are preserved.
func (t TimeOfDay) Format12Hour() string {
	hour := t.Hour() % 24
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}

	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}

	return fmt.Sprintf("%d:%02d %s", displayHour, t.Minute(), period)
}

// Scan implements sql.Scanner. Times are stored as "HH:MM" text.
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		parsed, err := ParseTimeOfDay(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := ParseTimeOfDay(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeFormat, src)
	}
}

// Value implements driver.Valuer.
func (t TimeOfDay) Value() (driver.Value, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("%w: %d minutes out of range", ErrInvalidTimeFormat, int(t))
	}
	return t.String(), nil
}

package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/mmaniatis/v-tee/pkg/types"
)

// PricingConfig holds a business's hourly rates and the peak-hour window.
// The peak window and surcharge live here; per-day peak eligibility lives
// on DaySchedule. Discount and membership fields are stored and displayed
// in admin settings but are never applied by CalculatePrice.
type PricingConfig struct {
	WeekdayPrice float64 // currency per hour
	WeekendPrice float64 // currency per hour

	PeakHourPricingEnabled bool
	PeakHourStart          types.TimeOfDay
	PeakHourEnd            types.TimeOfDay
	PeakHourAdditionalCost float64 // currency per hour, added on top of the base rate

	SoloDiscount       float64 // fractional rate, stored only
	MembershipDiscount float64 // fractional rate, stored only

	MembershipMonthlyCost float64
	MembershipYearlyCost  float64
}

// IsPeakTime reports whether a start time falls inside the peak window.
// The window is half-open: [PeakHourStart, PeakHourEnd), consistent with
// the interval math used for overlap checking. Both the global enable flag
// and the day's flag must be set.
func (p *PricingConfig) IsPeakTime(start types.TimeOfDay, dayPeakEnabled bool) bool {
	if !p.PeakHourPricingEnabled || !dayPeakEnabled {
		return false
	}
	return !start.IsBefore(p.PeakHourStart) && start.IsBefore(p.PeakHourEnd)
}

// RatePerHour returns the effective hourly rate for a booking starting at
// the given time on the given date.
func (p *PricingConfig) RatePerHour(start types.TimeOfDay, date time.Time, dayPeakEnabled bool) float64 {
	base := p.WeekdayPrice
	if IsWeekend(date) {
		base = p.WeekendPrice
	}

	if p.IsPeakTime(start, dayPeakEnabled) {
		return base + p.PeakHourAdditionalCost
	}
	return base
}

// CalculatePrice computes the undiscounted total price for a booking:
// effective hourly rate times duration in hours, rounded half-up to cents.
// Returns ErrInvalidBookingParameters for a non-positive duration or a
// start time outside the day.
func CalculatePrice(
	start types.TimeOfDay,
	durationMinutes int,
	date time.Time,
	pricing *PricingConfig,
	dayPeakEnabled bool,
) (float64, error) {
	if durationMinutes <= 0 {
		return 0, fmt.Errorf("%w: duration must be positive, got %d", ErrInvalidBookingParameters, durationMinutes)
	}
	if !start.IsValid() || start == types.EndOfDay {
		return 0, fmt.Errorf("%w: start time %d minutes out of range", ErrInvalidBookingParameters, start.Minutes())
	}

	rate := pricing.RatePerHour(start, date, dayPeakEnabled)
	price := rate * float64(durationMinutes) / 60.0

	return roundToCents(price), nil
}

// roundToCents rounds half-up to 2 decimal places (currency precision)
func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}

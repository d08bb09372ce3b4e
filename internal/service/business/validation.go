package business

import (
	"fmt"
	"regexp"
	"time"

	"github.com/mmaniatis/v-tee/internal/domain"
	"github.com/mmaniatis/v-tee/pkg/types"
)

// hexColorRegex формат цвета брендинга: # и шесть шестнадцатеричных цифр
var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// validateSchedule проверяет недельное расписание целиком:
// ровно одна запись на каждый день недели, у открытых дней open < close.
// CloseTime == 0 трактуется как полночь конца дня и допустим.
func validateSchedule(schedule domain.WeekSchedule) error {
	if len(schedule) != domain.DaysPerWeek {
		return fmt.Errorf("%w: expected %d day records, got %d", ErrInvalidSchedule, domain.DaysPerWeek, len(schedule))
	}

	seen := make(map[time.Weekday]bool, domain.DaysPerWeek)
	for _, day := range schedule {
		if day.Weekday < time.Sunday || day.Weekday > time.Saturday {
			return fmt.Errorf("%w: unknown weekday %d", ErrInvalidSchedule, day.Weekday)
		}
		if seen[day.Weekday] {
			return fmt.Errorf("%w: duplicate record for %s", ErrInvalidSchedule, day.Weekday)
		}
		seen[day.Weekday] = true

		if !day.IsOpen {
			continue
		}

		if !day.OpenTime.IsValid() || day.OpenTime == types.EndOfDay {
			return fmt.Errorf("%w: %s open time is out of range", ErrInvalidSchedule, day.Weekday)
		}
		if !day.CloseTime.IsValid() {
			return fmt.Errorf("%w: %s close time is out of range", ErrInvalidSchedule, day.Weekday)
		}

		close := day.CloseTime
		if close == 0 {
			close = types.EndOfDay
		}
		if !day.OpenTime.IsBefore(close) {
			return fmt.Errorf("%w: %s open time %s is not before close time %s",
				ErrInvalidSchedule, day.Weekday, day.OpenTime, close)
		}
	}

	return nil
}

// validatePricing проверяет конфигурацию цен
func validatePricing(pricing *domain.PricingConfig) error {
	if pricing.WeekdayPrice < 0 || pricing.WeekdayPrice > domain.MaxPriceRatePerHour {
		return fmt.Errorf("%w: weekday price %.2f is out of range", ErrInvalidPricing, pricing.WeekdayPrice)
	}
	if pricing.WeekendPrice < 0 || pricing.WeekendPrice > domain.MaxPriceRatePerHour {
		return fmt.Errorf("%w: weekend price %.2f is out of range", ErrInvalidPricing, pricing.WeekendPrice)
	}

	if pricing.PeakHourPricingEnabled {
		if pricing.PeakHourAdditionalCost < 0 || pricing.PeakHourAdditionalCost > domain.MaxPriceRatePerHour {
			return fmt.Errorf("%w: peak additional cost %.2f is out of range", ErrInvalidPricing, pricing.PeakHourAdditionalCost)
		}
		if !pricing.PeakHourStart.IsValid() || pricing.PeakHourStart == types.EndOfDay {
			return fmt.Errorf("%w: peak start is out of range", ErrInvalidPricing)
		}
		if !pricing.PeakHourEnd.IsValid() {
			return fmt.Errorf("%w: peak end is out of range", ErrInvalidPricing)
		}
		if !pricing.PeakHourStart.IsBefore(pricing.PeakHourEnd) {
			return fmt.Errorf("%w: peak window [%s, %s) is empty", ErrInvalidPricing, pricing.PeakHourStart, pricing.PeakHourEnd)
		}
	}

	if pricing.SoloDiscount < 0 || pricing.SoloDiscount > domain.MaxDiscountRate {
		return fmt.Errorf("%w: solo discount %.2f is out of range", ErrInvalidPricing, pricing.SoloDiscount)
	}
	if pricing.MembershipDiscount < 0 || pricing.MembershipDiscount > domain.MaxDiscountRate {
		return fmt.Errorf("%w: membership discount %.2f is out of range", ErrInvalidPricing, pricing.MembershipDiscount)
	}

	if pricing.MembershipMonthlyCost < 0 {
		return fmt.Errorf("%w: monthly membership cost must not be negative", ErrInvalidPricing)
	}
	if pricing.MembershipYearlyCost < 0 {
		return fmt.Errorf("%w: yearly membership cost must not be negative", ErrInvalidPricing)
	}

	return nil
}

// validateDurations проверяет конфигурацию длительностей
func validateDurations(durations *domain.DurationConfig) error {
	if durations.IntervalMinutes < domain.MinSlotIntervalMinutes || durations.IntervalMinutes > domain.MaxSlotIntervalMinutes {
		return fmt.Errorf("%w: interval %d minutes is out of range [%d, %d]",
			ErrInvalidDurations, durations.IntervalMinutes,
			domain.MinSlotIntervalMinutes, domain.MaxSlotIntervalMinutes)
	}

	if durations.MinDuration < domain.MinBookingDuration || durations.MinDuration > domain.MaxBookingDuration {
		return fmt.Errorf("%w: min duration %d minutes is out of range [%d, %d]",
			ErrInvalidDurations, durations.MinDuration,
			domain.MinBookingDuration, domain.MaxBookingDuration)
	}

	if durations.MaxDuration < durations.MinDuration || durations.MaxDuration > domain.MaxBookingDuration {
		return fmt.Errorf("%w: max duration %d minutes is out of range [%d, %d]",
			ErrInvalidDurations, durations.MaxDuration,
			durations.MinDuration, domain.MaxBookingDuration)
	}

	return nil
}

// validateBranding проверяет настройки брендинга
func validateBranding(ui *domain.UISettings) error {
	if !hexColorRegex.MatchString(ui.PrimaryColor) {
		return fmt.Errorf("%w: primary color %q is not #RRGGBB", ErrInvalidBranding, ui.PrimaryColor)
	}
	if !hexColorRegex.MatchString(ui.SecondaryColor) {
		return fmt.Errorf("%w: secondary color %q is not #RRGGBB", ErrInvalidBranding, ui.SecondaryColor)
	}
	if !hexColorRegex.MatchString(ui.AccentColor) {
		return fmt.Errorf("%w: accent color %q is not #RRGGBB", ErrInvalidBranding, ui.AccentColor)
	}
	if len(ui.LogoText) > domain.MaxLogoTextLength {
		return fmt.Errorf("%w: logo text exceeds %d characters", ErrInvalidBranding, domain.MaxLogoTextLength)
	}

	return nil
}

package update_business_config

import (
	"time"

	"github.com/mmaniatis/v-tee/internal/domain"
	"github.com/mmaniatis/v-tee/pkg/types"
)

// DayScheduleRequest HTTP модель расписания одного дня
type DayScheduleRequest struct {
	Weekday          int    `json:"weekday"` // 0=воскресенье .. 6=суббота
	IsOpen           bool   `json:"isOpen"`
	OpenTime         string `json:"openTime"`  // "09:00"
	CloseTime        string `json:"closeTime"` // "22:00", "00:00" = до полуночи
	PeakHoursEnabled bool   `json:"peakHoursEnabled"`
}

// ScheduleRequest HTTP модель секции расписания
type ScheduleRequest struct {
	Days []DayScheduleRequest `json:"days"`
}

// PricingRequest HTTP модель секции цен
type PricingRequest struct {
	WeekdayPrice           float64 `json:"weekdayPrice"`
	WeekendPrice           float64 `json:"weekendPrice"`
	PeakHourPricingEnabled bool    `json:"peakHourPricingEnabled"`
	PeakHourStart          string  `json:"peakHourStart"`
	PeakHourEnd            string  `json:"peakHourEnd"`
	PeakHourAdditionalCost float64 `json:"peakHourAdditionalCost"`
	SoloDiscount           float64 `json:"soloDiscount"`
	MembershipDiscount     float64 `json:"membershipDiscount"`
	MembershipMonthlyCost  float64 `json:"membershipMonthlyCost"`
	MembershipYearlyCost   float64 `json:"membershipYearlyCost"`
}

// DurationsRequest HTTP модель секции длительностей
type DurationsRequest struct {
	MinDuration     int `json:"minDuration"`
	MaxDuration     int `json:"maxDuration"`
	IntervalMinutes int `json:"intervalMinutes"`
}

// BrandingRequest HTTP модель секции брендинга
type BrandingRequest struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	AccentColor    string `json:"accentColor"`
	LogoText       string `json:"logoText"`
}

// ToDomainSchedule конвертирует секцию расписания в доменную модель
// Время закрытия "00:00" остается нулем - нормализация в 24:00
// выполняется при резолве расписания на дату
func (r *ScheduleRequest) ToDomainSchedule() (domain.WeekSchedule, error) {
	schedule := make(domain.WeekSchedule, len(r.Days))

	for i, day := range r.Days {
		openTime, err := types.ParseTimeOfDay(day.OpenTime)
		if err != nil {
			return nil, err
		}

		closeTime, err := types.ParseTimeOfDay(day.CloseTime)
		if err != nil {
			return nil, err
		}

		schedule[i] = domain.DaySchedule{
			Weekday:          time.Weekday(day.Weekday),
			IsOpen:           day.IsOpen,
			OpenTime:         openTime,
			CloseTime:        closeTime,
			PeakHoursEnabled: day.PeakHoursEnabled,
		}
	}

	return schedule, nil
}

// ToDomainPricing конвертирует секцию цен в доменную модель
// Пиковое окно парсится только когда пиковое ценообразование включено
// или поля заданы - выключенный пик с пустыми полями валиден
func (r *PricingRequest) ToDomainPricing() (*domain.PricingConfig, error) {
	var peakStart, peakEnd types.TimeOfDay

	if r.PeakHourPricingEnabled || r.PeakHourStart != "" || r.PeakHourEnd != "" {
		var err error

		peakStart, err = types.ParseTimeOfDay(r.PeakHourStart)
		if err != nil {
			return nil, err
		}

		peakEnd, err = types.ParseTimeOfDay(r.PeakHourEnd)
		if err != nil {
			return nil, err
		}
	}

	return &domain.PricingConfig{
		WeekdayPrice:           r.WeekdayPrice,
		WeekendPrice:           r.WeekendPrice,
		PeakHourPricingEnabled: r.PeakHourPricingEnabled,
		PeakHourStart:          peakStart,
		PeakHourEnd:            peakEnd,
		PeakHourAdditionalCost: r.PeakHourAdditionalCost,
		SoloDiscount:           r.SoloDiscount,
		MembershipDiscount:     r.MembershipDiscount,
		MembershipMonthlyCost:  r.MembershipMonthlyCost,
		MembershipYearlyCost:   r.MembershipYearlyCost,
	}, nil
}

// ToDomainDurations конвертирует секцию длительностей в доменную модель
func (r *DurationsRequest) ToDomainDurations() *domain.DurationConfig {
	return &domain.DurationConfig{
		MinDuration:     r.MinDuration,
		MaxDuration:     r.MaxDuration,
		IntervalMinutes: r.IntervalMinutes,
	}
}

// ToDomainBranding конвертирует секцию брендинга в доменную модель
func (r *BrandingRequest) ToDomainBranding() *domain.UISettings {
	return &domain.UISettings{
		PrimaryColor:   r.PrimaryColor,
		SecondaryColor: r.SecondaryColor,
		AccentColor:    r.AccentColor,
		LogoText:       r.LogoText,
	}
}

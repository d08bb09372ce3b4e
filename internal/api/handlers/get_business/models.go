package get_business

import (
	"time"

	"github.com/mmaniatis/v-tee/internal/domain"
)

// DayScheduleResponse HTTP модель расписания одного дня недели
type DayScheduleResponse struct {
	Weekday          int    `json:"weekday"` // 0=воскресенье .. 6=суббота
	IsOpen           bool   `json:"isOpen"`
	OpenTime         string `json:"openTime"`
	CloseTime        string `json:"closeTime"`
	PeakHoursEnabled bool   `json:"peakHoursEnabled"`
}

// PricingResponse HTTP модель конфигурации цен
type PricingResponse struct {
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

// DurationsResponse HTTP модель конфигурации длительностей
type DurationsResponse struct {
	MinDuration     int `json:"minDuration"`
	MaxDuration     int `json:"maxDuration"`
	IntervalMinutes int `json:"intervalMinutes"`
}

// BrandingResponse HTTP модель настроек брендинга
type BrandingResponse struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	AccentColor    string `json:"accentColor"`
	LogoText       string `json:"logoText"`
}

// BusinessResponse HTTP модель бизнеса со всеми настройками
type BusinessResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`

	Schedule  []DayScheduleResponse `json:"schedule"`
	Pricing   PricingResponse       `json:"pricing"`
	Durations DurationsResponse     `json:"durations"`
	Branding  BrandingResponse      `json:"branding"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// FromDomainBusiness конвертирует доменную модель в HTTP response
func FromDomainBusiness(b *domain.Business) *BusinessResponse {
	schedule := make([]DayScheduleResponse, len(b.Schedule))
	for i, day := range b.Schedule {
		schedule[i] = DayScheduleResponse{
			Weekday:          int(day.Weekday),
			IsOpen:           day.IsOpen,
			OpenTime:         day.OpenTime.String(),
			CloseTime:        day.CloseTime.String(),
			PeakHoursEnabled: day.PeakHoursEnabled,
		}
	}

	return &BusinessResponse{
		ID:          b.ID,
		Name:        b.Name,
		Location:    b.Location,
		Description: b.Description,
		Schedule:    schedule,
		Pricing: PricingResponse{
			WeekdayPrice:           b.Pricing.WeekdayPrice,
			WeekendPrice:           b.Pricing.WeekendPrice,
			PeakHourPricingEnabled: b.Pricing.PeakHourPricingEnabled,
			PeakHourStart:          b.Pricing.PeakHourStart.String(),
			PeakHourEnd:            b.Pricing.PeakHourEnd.String(),
			PeakHourAdditionalCost: b.Pricing.PeakHourAdditionalCost,
			SoloDiscount:           b.Pricing.SoloDiscount,
			MembershipDiscount:     b.Pricing.MembershipDiscount,
			MembershipMonthlyCost:  b.Pricing.MembershipMonthlyCost,
			MembershipYearlyCost:   b.Pricing.MembershipYearlyCost,
		},
		Durations: DurationsResponse{
			MinDuration:     b.Durations.MinDuration,
			MaxDuration:     b.Durations.MaxDuration,
			IntervalMinutes: b.Durations.IntervalMinutes,
		},
		Branding: BrandingResponse{
			PrimaryColor:   b.UI.PrimaryColor,
			SecondaryColor: b.UI.SecondaryColor,
			AccentColor:    b.UI.AccentColor,
			LogoText:       b.UI.LogoText,
		},
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}
}

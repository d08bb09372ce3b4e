package update_business_config

import (
	"context"

	"github.com/mmaniatis/v-tee/internal/domain"
)

type BusinessService interface {
	UpdateSchedule(ctx context.Context, businessID int64, schedule domain.WeekSchedule) error
	UpdatePricing(ctx context.Context, businessID int64, pricing *domain.PricingConfig) error
	UpdateDurations(ctx context.Context, businessID int64, durations *domain.DurationConfig) error
	UpdateBranding(ctx context.Context, businessID int64, ui *domain.UISettings) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

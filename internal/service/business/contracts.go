package business

import (
	"context"

	"github.com/mmaniatis/v-tee/internal/domain"
)

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Business, error)
	UpdateSchedule(ctx context.Context, businessID int64, schedule domain.WeekSchedule) error
	UpdatePricing(ctx context.Context, businessID int64, pricing *domain.PricingConfig) error
	UpdateDurations(ctx context.Context, businessID int64, durations *domain.DurationConfig) error
	UpdateBranding(ctx context.Context, businessID int64, ui *domain.UISettings) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

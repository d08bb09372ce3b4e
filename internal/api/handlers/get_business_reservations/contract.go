package get_business_reservations

import (
	"context"

	"github.com/mmaniatis/v-tee/internal/domain"
)

type ReservationService interface {
	GetByBusiness(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

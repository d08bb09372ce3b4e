package get_reservation

import (
	"time"

	"github.com/mmaniatis/v-tee/internal/domain"
	"github.com/mmaniatis/v-tee/pkg/ptr"
)

// ReservationResponse HTTP модель бронирования
type ReservationResponse struct {
	ID              int64   `json:"id"`
	BusinessID      int64   `json:"businessId"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Status          string  `json:"status"`
	CancelledAt     *string `json:"cancelledAt,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// FromDomainReservation конвертирует доменную модель в HTTP response
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	var cancelledAt *string
	if r.CancelledAt != nil {
		cancelledAt = ptr.Ptr(r.CancelledAt.Format(time.RFC3339))
	}

	return &ReservationResponse{
		ID:              r.ID,
		BusinessID:      r.BusinessID,
		Date:            r.Date.Format(domain.DateFormat),
		StartTime:       r.StartTime.String(),
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
		Status:          string(r.Status),
		CancelledAt:     cancelledAt,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       r.UpdatedAt.Format(time.RFC3339),
	}
}

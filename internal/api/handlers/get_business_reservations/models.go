package get_business_reservations

import (
	"strconv"
	"time"

	"github.com/mmaniatis/v-tee/internal/domain"
	"github.com/mmaniatis/v-tee/pkg/ptr"
)

// ReservationResponse HTTP модель бронирования в журнале
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

// ReservationListResponse HTTP модель списка бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// ToDomainFilter собирает фильтр из query параметров
// Все параметры опциональны: пустой период означает все бронирования
func ToDomainFilter(businessID int64, startDateStr, endDateStr, includeInactiveStr string) (domain.ReservationFilter, error) {
	filter := domain.ReservationFilter{BusinessID: businessID}

	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return domain.ReservationFilter{}, err
		}
		filter.StartDate = ptr.Ptr(startDate)
	}

	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return domain.ReservationFilter{}, err
		}
		filter.EndDate = ptr.Ptr(endDate)
	}

	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return domain.ReservationFilter{}, err
		}
		filter.IncludeInactive = includeInactive
	}

	return filter, nil
}

// FromDomainReservations конвертирует список доменных моделей в HTTP response
func FromDomainReservations(reservations []*domain.Reservation) *ReservationListResponse {
	result := make([]ReservationResponse, len(reservations))
	for i, r := range reservations {
		var cancelledAt *string
		if r.CancelledAt != nil {
			cancelledAt = ptr.Ptr(r.CancelledAt.Format(time.RFC3339))
		}

		result[i] = ReservationResponse{
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

	return &ReservationListResponse{
		Reservations: result,
		Total:        len(result),
	}
}

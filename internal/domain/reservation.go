package domain

import (
	"time"

	"github.com/mmaniatis/v-tee/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation represents a booked simulator session. It is the only
// persisted fact the rules engine treats as ground truth when checking
// slot availability.
type Reservation struct {
	ID              int64
	BusinessID      int64
	Date            time.Time // calendar date, no timezone semantics
	StartTime       types.TimeOfDay
	DurationMinutes int
	Price           float64
	Status          ReservationStatus

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation still blocks its time window
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// CanBeCancelled returns true if the reservation can be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusConfirmed
}

// EndTime returns the exclusive end of the reserved interval
func (r *Reservation) EndTime() types.TimeOfDay {
	return r.StartTime.AddMinutes(r.DurationMinutes)
}

// ReservationFilter фильтр для получения бронирований бизнеса
type ReservationFilter struct {
	BusinessID      int64      // Обязательный параметр
	StartDate       *time.Time // Начало периода (опционально)
	EndDate         *time.Time // Конец периода (опционально)
	IncludeInactive bool       // Включать ли отмененные бронирования
}

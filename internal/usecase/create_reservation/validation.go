package create_reservation

import (
	"fmt"
	"time"

	"github.com/mmaniatis/v-tee/internal/domain"
	"github.com/mmaniatis/v-tee/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.StartTime.IsValid() || req.StartTime == types.EndOfDay {
		return fmt.Errorf("%w: startTime is out of range", ErrInvalidInput)
	}

	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(reservationDate time.Time, now time.Time) error {
	if isDateInPast(reservationDate, now) {
		return ErrInvalidDate
	}
	return nil
}

// validateDuration проверяет, что длительность входит в список разрешенных
func validateDuration(durationMinutes int, durations *domain.DurationConfig) error {
	if !durations.Contains(durationMinutes) {
		return fmt.Errorf("%w: %d minutes (allowed %d..%d step %d)",
			ErrInvalidDuration, durationMinutes,
			durations.MinDuration, durations.MaxDuration, durations.IntervalMinutes)
	}
	return nil
}

// validateWithinHours проверяет, что интервал [start, start+duration)
// целиком лежит внутри рабочих часов дня
func validateWithinHours(start types.TimeOfDay, durationMinutes int, day domain.DaySchedule) error {
	end := start.AddMinutes(durationMinutes)

	if start.IsBefore(day.OpenTime) || end.IsAfter(day.CloseTime) {
		return fmt.Errorf("%w: [%s, %s) is outside [%s, %s)",
			ErrOutsideBusinessHours, start, end, day.OpenTime, day.CloseTime)
	}
	return nil
}

// isSlotAvailable проверяет, что кандидат не пересекается ни с одним
// активным бронированием на эту дату
// Интервалы полуоткрытые: бронирования встык не считаются пересечением
func isSlotAvailable(
	start types.TimeOfDay,
	durationMinutes int,
	date time.Time,
	reservations []*domain.Reservation,
) bool {
	slotEnd := start.AddMinutes(durationMinutes)

	for _, reservation := range reservations {
		if !reservation.IsActive() {
			continue
		}
		if !isSameDay(reservation.Date, date) {
			continue
		}

		if reservation.StartTime.IsBefore(slotEnd) && reservation.EndTime().IsAfter(start) {
			return false
		}
	}

	return true
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

package get_available_slots

import (
	"time"

	"github.com/mmaniatis/v-tee/internal/domain"
	"github.com/mmaniatis/v-tee/pkg/types"
)

// generateTimeSlots генерирует список всех возможных временных слотов на день
// Слоты генерируются от времени открытия с фиксированным шагом interval,
// пока начало слота строго раньше времени закрытия.
// Время закрытия "00:00" нормализуется в 24:00 еще на уровне расписания,
// поэтому заведение, работающее до полуночи, получает слоты до 1440 - interval.
// Если open >= close, последовательность пустая - это не ошибка, просто ноль слотов.
func generateTimeSlots(openTime, closeTime types.TimeOfDay, interval int) []types.TimeOfDay {
	slots := make([]types.TimeOfDay, 0)

	for current := openTime; current.IsBefore(closeTime); current = current.AddMinutes(interval) {
		slots = append(slots, current)
	}

	return slots
}

// buildSlots вычисляет для каждого слота доступность, признак пиковых часов
// и действующую почасовую ставку
// Доступность проверяется для минимальной бронируемой длительности -
// точная проверка под выбранную длительность выполняется при создании бронирования
func buildSlots(
	starts []types.TimeOfDay,
	date time.Time,
	day domain.DaySchedule,
	business *domain.Business,
	reservations []*domain.Reservation,
) []domain.TimeSlot {
	minDuration := business.Durations.MinDuration
	if minDuration <= 0 {
		minDuration = domain.DefaultMinDurationMinutes
	}

	result := make([]domain.TimeSlot, len(starts))

	for i, start := range starts {
		result[i] = domain.TimeSlot{
			StartTime:   start,
			Display:     start.Format12Hour(),
			RatePerHour: business.Pricing.RatePerHour(start, date, day.PeakHoursEnabled),
			IsAvailable: isSlotAvailable(start, minDuration, date, reservations),
			IsPeak:      business.Pricing.IsPeakTime(start, day.PeakHoursEnabled),
		}
	}

	return result
}

// isSlotAvailable проверяет, что кандидат [start, start+duration) не пересекается
// ни с одним активным бронированием на эту дату.
// Интервалы полуоткрытые, пересечение только при strict overlap:
// слот, начинающийся ровно в момент окончания брони (и наоборот), доступен.
// Бронирования на другие даты и отмененные бронирования игнорируются,
// поэтому функция корректно работает и с неотфильтрованным списком.
// Пустой список означает, что все слоты свободны.
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

		resStart := reservation.StartTime
		resEnd := reservation.EndTime()

		if resStart.IsBefore(slotEnd) && resEnd.IsAfter(start) {
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

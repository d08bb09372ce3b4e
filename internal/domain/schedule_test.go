package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmaniatis/v-tee/pkg/types"
)

func fullWeek(open, close types.TimeOfDay) WeekSchedule {
	schedule := make(WeekSchedule, 0, DaysPerWeek)
	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		schedule = append(schedule, DaySchedule{
			Weekday:   weekday,
			IsOpen:    true,
			OpenTime:  open,
			CloseTime: close,
		})
	}
	return schedule
}

func TestScheduleForDate(t *testing.T) {
	schedule := fullWeek(types.TimeOfDay(9*60), types.TimeOfDay(22*60))

	// 1 сентября 2026 - вторник
	day, err := schedule.ScheduleForDate(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, time.Tuesday, day.Weekday)
	assert.Equal(t, "09:00", day.OpenTime.String())
	assert.Equal(t, "22:00", day.CloseTime.String())
}

func TestScheduleForDate_MidnightClose(t *testing.T) {
	// Закрытие "00:00" означает полночь конца дня
	schedule := fullWeek(types.TimeOfDay(9*60), 0)

	day, err := schedule.ScheduleForDate(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, types.EndOfDay, day.CloseTime)
	assert.Equal(t, "24:00", day.CloseTime.String())
}

func TestScheduleForDate_MissingDay(t *testing.T) {
	schedule := fullWeek(types.TimeOfDay(9*60), types.TimeOfDay(22*60))[:6] // без субботы

	saturday := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Saturday, saturday.Weekday())

	_, err := schedule.ScheduleForDate(saturday)
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, IsWeekend(time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)))  // суббота
	assert.True(t, IsWeekend(time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)))  // воскресенье
	assert.False(t, IsWeekend(time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC))) // понедельник
}

func TestHasCompleteSchedule(t *testing.T) {
	business := &Business{Schedule: fullWeek(types.TimeOfDay(9*60), types.TimeOfDay(22*60))}
	assert.True(t, business.HasCompleteSchedule())

	business.Schedule = business.Schedule[:5]
	assert.False(t, business.HasCompleteSchedule())
}

func TestReservation_Lifecycle(t *testing.T) {
	reservation := &Reservation{
		StartTime:       types.TimeOfDay(10 * 60),
		DurationMinutes: 90,
		Status:          StatusConfirmed,
	}

	assert.True(t, reservation.IsActive())
	assert.True(t, reservation.CanBeCancelled())
	assert.Equal(t, "11:30", reservation.EndTime().String())

	reservation.Status = StatusCompleted
	assert.True(t, reservation.IsActive())
	assert.False(t, reservation.CanBeCancelled())

	reservation.Status = StatusCancelled
	assert.False(t, reservation.IsActive())
	assert.False(t, reservation.CanBeCancelled())
}

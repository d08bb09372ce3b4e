package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmaniatis/v-tee/internal/domain"
	businessRepo "github.com/mmaniatis/v-tee/internal/infra/storage/business"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeBusinessRepo struct {
	business *domain.Business
}

func (f *fakeBusinessRepo) GetByID(ctx context.Context, id int64) (*domain.Business, error) {
	if f.business == nil || f.business.ID != id {
		return nil, businessRepo.ErrBusinessNotFound
	}
	return f.business, nil
}

type fakeReservationRepo struct {
	reservations []*domain.Reservation
}

func (f *fakeReservationRepo) GetByBusinessWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	return f.reservations, nil
}

func testBusiness(t *testing.T) *domain.Business {
	t.Helper()

	schedule := make(domain.WeekSchedule, 0, domain.DaysPerWeek)
	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		schedule = append(schedule, domain.DaySchedule{
			Weekday:          weekday,
			IsOpen:           weekday != time.Monday,
			OpenTime:         mustTime(t, "09:00"),
			CloseTime:        mustTime(t, "17:00"),
			PeakHoursEnabled: true,
		})
	}

	return &domain.Business{
		ID:       1,
		Name:     "Fairway Indoor Golf",
		Schedule: schedule,
		Pricing: domain.PricingConfig{
			WeekdayPrice: 45,
			WeekendPrice: 60,
		},
		Durations: domain.DurationConfig{MinDuration: 30, MaxDuration: 180, IntervalMinutes: 60},
	}
}

func TestExecute_OpenDay(t *testing.T) {
	uc := NewUseCase(&fakeReservationRepo{}, &fakeBusinessRepo{business: testBusiness(t)}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID: 1,
		Date:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), // вторник
	})
	require.NoError(t, err)

	assert.True(t, resp.IsOpen)
	require.Len(t, resp.Slots, 8)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "16:00", resp.Slots[7].StartTime.String())

	for _, slot := range resp.Slots {
		assert.True(t, slot.IsAvailable)
	}
}

func TestExecute_ClosedDay(t *testing.T) {
	uc := NewUseCase(&fakeReservationRepo{}, &fakeBusinessRepo{business: testBusiness(t)}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID: 1,
		Date:       time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), // понедельник
	})
	require.NoError(t, err)

	assert.False(t, resp.IsOpen)
	assert.Empty(t, resp.Slots)
}

func TestExecute_BusinessNotFound(t *testing.T) {
	uc := NewUseCase(&fakeReservationRepo{}, &fakeBusinessRepo{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BusinessID: 42,
		Date:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestExecute_IncompleteScheduleIsInternal(t *testing.T) {
	business := testBusiness(t)
	business.Schedule = business.Schedule[:3]

	uc := NewUseCase(&fakeReservationRepo{}, &fakeBusinessRepo{business: business}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BusinessID: 1,
		Date:       time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC), // суббота, нет записи
	})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_ReservationsMarkSlotsUnavailable(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	reservations := []*domain.Reservation{{
		BusinessID:      1,
		Date:            date,
		StartTime:       mustTime(t, "10:00"),
		DurationMinutes: 120,
		Status:          domain.StatusConfirmed,
	}}

	uc := NewUseCase(&fakeReservationRepo{reservations: reservations}, &fakeBusinessRepo{business: testBusiness(t)}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 1, Date: date})
	require.NoError(t, err)

	byStart := make(map[string]domain.TimeSlot, len(resp.Slots))
	for _, slot := range resp.Slots {
		byStart[slot.StartTime.String()] = slot
	}

	assert.True(t, byStart["09:00"].IsAvailable)
	assert.False(t, byStart["10:00"].IsAvailable)
	assert.False(t, byStart["11:00"].IsAvailable)
	assert.True(t, byStart["12:00"].IsAvailable) // встык с концом брони [10:00, 12:00)
}

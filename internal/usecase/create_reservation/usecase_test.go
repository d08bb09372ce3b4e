package create_reservation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmaniatis/v-tee/internal/domain"
	businessRepo "github.com/mmaniatis/v-tee/internal/infra/storage/business"
	reservationRepo "github.com/mmaniatis/v-tee/internal/infra/storage/reservation"
	"github.com/mmaniatis/v-tee/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type fakeBusinessRepo struct {
	business *domain.Business
}

func (f *fakeBusinessRepo) GetByID(ctx context.Context, id int64) (*domain.Business, error) {
	if f.business == nil || f.business.ID != id {
		return nil, businessRepo.ErrBusinessNotFound
	}
	return f.business, nil
}

// fakeReservationRepo хранит бронирования в памяти и воспроизводит
// поведение уникального индекса на активный слот
type fakeReservationRepo struct {
	mu           sync.Mutex
	nextID       int64
	reservations []*domain.Reservation
}

func (f *fakeReservationRepo) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.reservations {
		if existing.Status == domain.StatusConfirmed &&
			existing.BusinessID == reservation.BusinessID &&
			existing.Date.Equal(reservation.Date) &&
			existing.StartTime == reservation.StartTime {
			return nil, reservationRepo.ErrDuplicateReservation
		}
	}

	f.nextID++
	created := *reservation
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.reservations = append(f.reservations, &created)

	result := created
	return &result, nil
}

func (f *fakeReservationRepo) GetByBusinessWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []*domain.Reservation
	for _, reservation := range f.reservations {
		if reservation.BusinessID != filter.BusinessID {
			continue
		}
		if !filter.IncludeInactive && !reservation.IsActive() {
			continue
		}
		copied := *reservation
		result = append(result, &copied)
	}
	return result, nil
}

// fakeTxManager сериализует транзакции мьютексом - конкурентные вызовы
// видят вставки друг друга строго по очереди, как при SERIALIZABLE
type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

func mustTime(t *testing.T, s string) types.TimeOfDay {
	t.Helper()
	parsed, err := types.ParseTimeOfDay(s)
	require.NoError(t, err)
	return parsed
}

func testBusiness(t *testing.T) *domain.Business {
	t.Helper()

	schedule := make(domain.WeekSchedule, 0, domain.DaysPerWeek)
	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		schedule = append(schedule, domain.DaySchedule{
			Weekday:          weekday,
			IsOpen:           weekday != time.Monday,
			OpenTime:         mustTime(t, "09:00"),
			CloseTime:        mustTime(t, "22:00"),
			PeakHoursEnabled: true,
		})
	}

	return &domain.Business{
		ID:       1,
		Name:     "Fairway Indoor Golf",
		Schedule: schedule,
		Pricing: domain.PricingConfig{
			WeekdayPrice:           45,
			WeekendPrice:           60,
			PeakHourPricingEnabled: true,
			PeakHourStart:          mustTime(t, "17:00"),
			PeakHourEnd:            mustTime(t, "20:00"),
			PeakHourAdditionalCost: 10,
		},
		Durations: domain.DurationConfig{MinDuration: 30, MaxDuration: 180, IntervalMinutes: 30},
	}
}

func newTestUseCase(t *testing.T, repo *fakeReservationRepo) *UseCase {
	t.Helper()

	uc := NewUseCase(repo, &fakeBusinessRepo{business: testBusiness(t)}, &fakeTxManager{}, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(t, repo)

	// Вторник, 18:00 в пиковом окне: (45 + 10) * 1h = 55.00
	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID:      1,
		Date:            time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:       mustTime(t, "18:00"),
		DurationMinutes: 60,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, 55.00, resp.Price)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, "18:00", resp.StartTime.String())
	require.Len(t, repo.reservations, 1)
}

func TestExecute_BusinessNotFound(t *testing.T) {
	uc := NewUseCase(&fakeReservationRepo{}, &fakeBusinessRepo{}, &fakeTxManager{}, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)}

	_, err := uc.Execute(context.Background(), &Request{
		BusinessID:      42,
		Date:            time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:       mustTime(t, "10:00"),
		DurationMinutes: 60,
	})
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(t, &fakeReservationRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		BusinessID:      1,
		Date:            time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		StartTime:       mustTime(t, "10:00"),
		DurationMinutes: 60,
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_SameDayAllowed(t *testing.T) {
	uc := newTestUseCase(t, &fakeReservationRepo{})

	// Бронирование на сегодня не считается прошлым
	_, err := uc.Execute(context.Background(), &Request{
		BusinessID:      1,
		Date:            time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:       mustTime(t, "10:00"),
		DurationMinutes: 60,
	})
	assert.NoError(t, err)
}

func TestExecute_BusinessClosed(t *testing.T) {
	uc := newTestUseCase(t, &fakeReservationRepo{})

	// Понедельник закрыт
	_, err := uc.Execute(context.Background(), &Request{
		BusinessID:      1,
		Date:            time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartTime:       mustTime(t, "10:00"),
		DurationMinutes: 60,
	})
	assert.ErrorIs(t, err, ErrBusinessClosed)
}

func TestExecute_InvalidDuration(t *testing.T) {
	uc := newTestUseCase(t, &fakeReservationRepo{})

	request := &Request{
		BusinessID: 1,
		Date:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:  mustTime(t, "10:00"),
	}

	// Не кратно шагу
	request.DurationMinutes = 45
	_, err := uc.Execute(context.Background(), request)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	// Больше максимума
	request.DurationMinutes = 210
	_, err = uc.Execute(context.Background(), request)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestExecute_OutsideBusinessHours(t *testing.T) {
	uc := newTestUseCase(t, &fakeReservationRepo{})

	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	// До открытия
	_, err := uc.Execute(context.Background(), &Request{
		BusinessID: 1, Date: date, StartTime: mustTime(t, "08:00"), DurationMinutes: 60,
	})
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)

	// Конец выходит за закрытие: 21:30 + 60 мин > 22:00
	_, err = uc.Execute(context.Background(), &Request{
		BusinessID: 1, Date: date, StartTime: mustTime(t, "21:30"), DurationMinutes: 60,
	})
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)

	// Ровно до закрытия - допустимо
	_, err = uc.Execute(context.Background(), &Request{
		BusinessID: 1, Date: date, StartTime: mustTime(t, "21:00"), DurationMinutes: 60,
	})
	assert.NoError(t, err)
}

func TestExecute_SlotNotAvailable(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(t, repo)

	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), &Request{
		BusinessID: 1, Date: date, StartTime: mustTime(t, "14:00"), DurationMinutes: 120,
	})
	require.NoError(t, err)

	// Пересечение с [14:00, 16:00)
	_, err = uc.Execute(context.Background(), &Request{
		BusinessID: 1, Date: date, StartTime: mustTime(t, "15:00"), DurationMinutes: 30,
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	// Встык - допустимо
	_, err = uc.Execute(context.Background(), &Request{
		BusinessID: 1, Date: date, StartTime: mustTime(t, "16:00"), DurationMinutes: 60,
	})
	assert.NoError(t, err)
}

func TestExecute_ConcurrentSameSlot(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(t, repo)

	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	request := &Request{
		BusinessID: 1, Date: date, StartTime: mustTime(t, "12:00"), DurationMinutes: 60,
	}

	const attempts = 2
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), request)
		}(i)
	}
	wg.Wait()

	// Ровно один из конкурентных вызовов успешен
	var succeeded, conflicted int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, ErrSlotNotAvailable):
			conflicted++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, conflicted)
	assert.Len(t, repo.reservations, 1)
}

// blindReservationRepo не видит существующие бронирования через фильтр,
// но вставка упирается в уникальный индекс - имитация гонки, которую
// ловит последний рубеж защиты в БД
type blindReservationRepo struct {
	*fakeReservationRepo
}

func (f *blindReservationRepo) GetByBusinessWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	return nil, nil
}

func TestExecute_DuplicateFromRepoMapsToSlotNotAvailable(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	inner := &fakeReservationRepo{reservations: []*domain.Reservation{{
		ID:              99,
		BusinessID:      1,
		Date:            date,
		StartTime:       mustTime(t, "12:00"),
		DurationMinutes: 60,
		Status:          domain.StatusConfirmed,
	}}}

	uc := NewUseCase(&blindReservationRepo{inner}, &fakeBusinessRepo{business: testBusiness(t)}, &fakeTxManager{}, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)}

	_, err := uc.Execute(context.Background(), &Request{
		BusinessID: 1, Date: date, StartTime: mustTime(t, "12:00"), DurationMinutes: 60,
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

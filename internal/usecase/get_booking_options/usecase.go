package get_booking_options

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmaniatis/v-tee/internal/domain"
	businessRepo "github.com/mmaniatis/v-tee/internal/infra/storage/business"
	"github.com/mmaniatis/v-tee/pkg/types"
)

// UseCase use case для получения вариантов длительности бронирования
type UseCase struct {
	businessRepo BusinessRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(businessRepo BusinessRepository, logger Logger) *UseCase {
	return &UseCase{
		businessRepo: businessRepo,
		logger:       logger,
	}
}

// Execute выполняет use case получения вариантов длительности
// Для выбранного слота возвращаются все разрешенные длительности,
// помещающиеся до закрытия, каждая с полной ценой интервала.
// Доступность слота здесь не проверяется - она проверяется при создании
// бронирования в транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetBookingOptions: business=%d, date=%s, time=%s",
		req.BusinessID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetBookingOptions: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бизнес со всеми настройками
	business, err := uc.businessRepo.GetByID(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("GetBookingOptions: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetBookingOptions: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 3. Резолвим расписание на дату
	day, err := business.Schedule.ScheduleForDate(req.Date)
	if err != nil {
		uc.logger.Error("GetBookingOptions: schedule integrity error for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if !day.IsOpen {
		uc.logger.Warn("GetBookingOptions: business=%d is closed on %s",
			req.BusinessID, req.Date.Format(domain.DateFormat))
		return nil, ErrBusinessClosed
	}

	// 4. Время начала должно лежать внутри рабочих часов
	if req.StartTime.IsBefore(day.OpenTime) || !req.StartTime.IsBefore(day.CloseTime) {
		uc.logger.Warn("GetBookingOptions: start time %s is outside hours [%s, %s)",
			req.StartTime, day.OpenTime, day.CloseTime)
		return nil, ErrOutsideBusinessHours
	}

	// 5. Генерируем варианты длительности
	durationOptions, err := business.Durations.Options()
	if err != nil {
		uc.logger.Error("GetBookingOptions: invalid duration config for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 6. Рассчитываем цену для каждого варианта, отбрасывая выходящие за закрытие
	options := make([]Option, 0, len(durationOptions))
	for _, opt := range durationOptions {
		end := req.StartTime.AddMinutes(opt.Minutes)
		if end.IsAfter(day.CloseTime) {
			continue
		}

		price, err := domain.CalculatePrice(req.StartTime, opt.Minutes, req.Date, &business.Pricing, day.PeakHoursEnabled)
		if err != nil {
			uc.logger.Error("GetBookingOptions: price calculation failed for duration=%d: %v", opt.Minutes, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}

		options = append(options, Option{
			DurationMinutes: opt.Minutes,
			Label:           opt.Label,
			Price:           price,
		})
	}

	uc.logger.Info("GetBookingOptions: %d options for business=%d, date=%s, time=%s",
		len(options), req.BusinessID, req.Date.Format(domain.DateFormat), req.StartTime)

	return &Response{
		BusinessID: req.BusinessID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		Options:    options,
	}, nil
}

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

	return nil
}

package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmaniatis/v-tee/internal/domain"
	businessRepo "github.com/mmaniatis/v-tee/internal/infra/storage/business"
	reservationRepo "github.com/mmaniatis/v-tee/internal/infra/storage/reservation"
	"github.com/mmaniatis/v-tee/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	businessRepo    BusinessRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	businessRepo BusinessRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		businessRepo:    businessRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Цена всегда рассчитывается сервером по конфигурации цен бизнеса.
// Проверка доступности и вставка выполняются в одной сериализуемой
// транзакции с блокировкой строк (FOR UPDATE) - два конкурентных
// бронирования одного слота не могут пройти оба.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: business=%d, date=%s, time=%s, duration=%d",
		req.BusinessID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем дату
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateReservation: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем бизнес со всеми настройками
	business, err := uc.businessRepo.GetByID(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("CreateReservation: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("CreateReservation: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 5. Резолвим расписание на дату
	day, err := business.Schedule.ScheduleForDate(req.Date)
	if err != nil {
		uc.logger.Error("CreateReservation: schedule integrity error for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if !day.IsOpen {
		uc.logger.Warn("CreateReservation: business=%d is closed on %s",
			req.BusinessID, req.Date.Format(domain.DateFormat))
		return nil, ErrBusinessClosed
	}

	// 6. Проверяем длительность и попадание в рабочие часы
	if err := validateDuration(req.DurationMinutes, &business.Durations); err != nil {
		uc.logger.Warn("CreateReservation: duration validation failed: %v", err)
		return nil, err
	}

	if err := validateWithinHours(req.StartTime, req.DurationMinutes, day); err != nil {
		uc.logger.Warn("CreateReservation: hours validation failed: %v", err)
		return nil, err
	}

	// 7. Рассчитываем цену
	price, err := domain.CalculatePrice(req.StartTime, req.DurationMinutes, req.Date, &business.Pricing, day.PeakHoursEnabled)
	if err != nil {
		uc.logger.Warn("CreateReservation: price calculation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Переменная для хранения результата
	var result *domain.Reservation

	// 8. Проверка доступности и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Получаем активные бронирования на эту дату с блокировкой (FOR UPDATE)
		filter := domain.ReservationFilter{
			BusinessID:      req.BusinessID,
			StartDate:       ptr.Ptr(req.Date),
			EndDate:         ptr.Ptr(req.Date),
			IncludeInactive: false,
		}

		reservations, err := uc.reservationRepo.GetByBusinessWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			// Цепочка причин сохраняется: конфликт сериализации должен
			// дойти до transaction manager и вызвать повтор
			return fmt.Errorf("%w: failed to get reservations: %w", ErrInternal, err)
		}

		// 8.2. Проверяем доступность слота
		if !isSlotAvailable(req.StartTime, req.DurationMinutes, req.Date, reservations) {
			uc.logger.Warn("CreateReservation: slot %s not available for business=%d on %s",
				req.StartTime, req.BusinessID, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 8.3. Создаем бронирование
		reservation := &domain.Reservation{
			BusinessID:      req.BusinessID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: req.DurationMinutes,
			Price:           price,
			Status:          domain.StatusConfirmed,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			// Уникальный индекс - последний рубеж защиты от двойного бронирования
			if errors.Is(err, reservationRepo.ErrDuplicateReservation) {
				uc.logger.Warn("CreateReservation: duplicate slot %s for business=%d", req.StartTime, req.BusinessID)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d, price=%.2f", result.ID, result.Price)

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		BusinessID:      result.BusinessID,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Price:           result.Price,
		Status:          string(result.Status),
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

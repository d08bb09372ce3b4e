package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmaniatis/v-tee/internal/domain"
	businessRepo "github.com/mmaniatis/v-tee/internal/infra/storage/business"
	"github.com/mmaniatis/v-tee/pkg/ptr"
)

// UseCase use case для получения слотов на дату
type UseCase struct {
	reservationRepo ReservationRepository
	businessRepo    BusinessRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	businessRepo BusinessRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		businessRepo:    businessRepo,
		logger:          logger,
	}
}

// Execute выполняет use case получения слотов
// Возвращает все слоты дня с признаками доступности и пиковых часов:
// занятые слоты помечаются IsAvailable=false, а не скрываются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: business=%d, date=%s",
		req.BusinessID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бизнес со всеми настройками
	business, err := uc.businessRepo.GetByID(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("GetAvailableSlots: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 3. Резолвим расписание на дату
	// Отсутствие записи для дня недели - ошибка конфигурации, а не пользователя
	day, err := business.Schedule.ScheduleForDate(req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: schedule integrity error for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 4. Если бизнес закрыт в этот день - ноль слотов
	if !day.IsOpen {
		uc.logger.Info("GetAvailableSlots: business=%d is closed on %s",
			req.BusinessID, req.Date.Format(domain.DateFormat))
		return &Response{
			BusinessID: req.BusinessID,
			Date:       req.Date,
			IsOpen:     false,
			Slots:      []domain.TimeSlot{},
		}, nil
	}

	// 5. Генерируем слоты с шагом из конфигурации длительностей
	starts := generateTimeSlots(day.OpenTime, day.CloseTime, business.Durations.SlotInterval())

	// 6. Получаем активные бронирования на эту дату
	filter := domain.ReservationFilter{
		BusinessID:      req.BusinessID,
		StartDate:       ptr.Ptr(req.Date),
		EndDate:         ptr.Ptr(req.Date),
		IncludeInactive: false,
	}

	reservations, err := uc.reservationRepo.GetByBusinessWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 7. Вычисляем доступность, пиковость и ставку для каждого слота
	slots := buildSlots(starts, req.Date, day, business, reservations)

	uc.logger.Info("GetAvailableSlots: generated %d slots for business=%d, date=%s",
		len(slots), req.BusinessID, req.Date.Format(domain.DateFormat))

	return &Response{
		BusinessID: req.BusinessID,
		Date:       req.Date,
		IsOpen:     true,
		Slots:      slots,
	}, nil
}

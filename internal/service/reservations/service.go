package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmaniatis/v-tee/internal/domain"
	businessRepo "github.com/mmaniatis/v-tee/internal/infra/storage/business"
	reservationRepo "github.com/mmaniatis/v-tee/internal/infra/storage/reservation"
)

// Service сервис для работы с бронированиями
type Service struct {
	reservationRepo ReservationRepository
	businessRepo    BusinessRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	businessRepo BusinessRepository,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		businessRepo:    businessRepo,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return reservation, nil
}

// GetByBusiness получает бронирования бизнеса с фильтрацией по периоду
// Используется админ-консолью для просмотра журнала бронирований
//
// Примеры использования:
// - Все активные бронирования: фильтр только с BusinessID
// - Бронирования на дату: StartDate и EndDate указывают на одну дату
// - Бронирования за период: StartDate и EndDate указывают на разные даты
// - Включая отмененные: IncludeInactive = true
func (s *Service) GetByBusiness(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	s.logger.Info("GetByBusiness: fetching reservations for business=%d", filter.BusinessID)

	if filter.BusinessID <= 0 {
		s.logger.Warn("GetByBusiness: invalid business id=%d", filter.BusinessID)
		return nil, fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		s.logger.Warn("GetByBusiness: invalid period for business=%d: end before start", filter.BusinessID)
		return nil, fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	// Проверяем, что бизнес существует - иначе пустой список неотличим
	// от опечатки в идентификаторе
	if _, err := s.businessRepo.GetByID(ctx, filter.BusinessID); err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("GetByBusiness: business id=%d not found", filter.BusinessID)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("GetByBusiness: failed to get business id=%d: %v", filter.BusinessID, err)
		return nil, fmt.Errorf("%w: GetByBusiness - repository error: %v", ErrInternal, err)
	}

	reservations, err := s.reservationRepo.GetByBusinessWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetByBusiness: repository error for business=%d: %v", filter.BusinessID, err)
		return nil, fmt.Errorf("%w: GetByBusiness - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByBusiness: successfully fetched %d reservations for business=%d",
		len(reservations), filter.BusinessID)
	return reservations, nil
}

// Cancel отменяет бронирование
// Отмененное бронирование перестает блокировать слоты
func (s *Service) Cancel(ctx context.Context, id int64) error {
	s.logger.Info("Cancel: cancelling reservation id=%d", id)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", id, reservation.Status)
		return ErrCannotCancel
	}

	if err := s.reservationRepo.Cancel(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrCannotCancel) {
			// Статус успел измениться между чтением и отменой
			s.logger.Warn("Cancel: reservation id=%d cannot be cancelled anymore", id)
			return ErrCannotCancel
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", id)
	return nil
}

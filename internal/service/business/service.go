package business

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmaniatis/v-tee/internal/domain"
	businessRepo "github.com/mmaniatis/v-tee/internal/infra/storage/business"
)

// Service сервис для работы с бизнесами и их настройками
// Настройки обновляются дискретными секциями (расписание, цены,
// длительности, брендинг), каждая секция валидируется целиком перед записью
type Service struct {
	businessRepo BusinessRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса бизнесов
func NewService(businessRepo BusinessRepository, logger Logger) *Service {
	return &Service{
		businessRepo: businessRepo,
		logger:       logger,
	}
}

// GetByID получает бизнес со всеми настройками
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Business, error) {
	s.logger.Info("GetByID: fetching business id=%d", id)

	business, err := s.businessRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("GetByID: business id=%d not found", id)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("GetByID: repository error for business id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched business id=%d", id)
	return business, nil
}

// UpdateSchedule заменяет недельное расписание бизнеса
func (s *Service) UpdateSchedule(ctx context.Context, businessID int64, schedule domain.WeekSchedule) error {
	s.logger.Info("UpdateSchedule: updating schedule for business=%d", businessID)

	if err := validateSchedule(schedule); err != nil {
		s.logger.Warn("UpdateSchedule: validation failed for business=%d: %v", businessID, err)
		return err
	}

	if err := s.ensureExists(ctx, businessID); err != nil {
		return err
	}

	if err := s.businessRepo.UpdateSchedule(ctx, businessID, schedule); err != nil {
		s.logger.Error("UpdateSchedule: repository error for business=%d: %v", businessID, err)
		return fmt.Errorf("%w: UpdateSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSchedule: successfully updated schedule for business=%d", businessID)
	return nil
}

// UpdatePricing заменяет конфигурацию цен бизнеса
func (s *Service) UpdatePricing(ctx context.Context, businessID int64, pricing *domain.PricingConfig) error {
	s.logger.Info("UpdatePricing: updating pricing for business=%d", businessID)

	if err := validatePricing(pricing); err != nil {
		s.logger.Warn("UpdatePricing: validation failed for business=%d: %v", businessID, err)
		return err
	}

	if err := s.ensureExists(ctx, businessID); err != nil {
		return err
	}

	if err := s.businessRepo.UpdatePricing(ctx, businessID, pricing); err != nil {
		s.logger.Error("UpdatePricing: repository error for business=%d: %v", businessID, err)
		return fmt.Errorf("%w: UpdatePricing - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdatePricing: successfully updated pricing for business=%d", businessID)
	return nil
}

// UpdateDurations заменяет конфигурацию длительностей бизнеса
func (s *Service) UpdateDurations(ctx context.Context, businessID int64, durations *domain.DurationConfig) error {
	s.logger.Info("UpdateDurations: updating durations for business=%d", businessID)

	if err := validateDurations(durations); err != nil {
		s.logger.Warn("UpdateDurations: validation failed for business=%d: %v", businessID, err)
		return err
	}

	if err := s.ensureExists(ctx, businessID); err != nil {
		return err
	}

	if err := s.businessRepo.UpdateDurations(ctx, businessID, durations); err != nil {
		s.logger.Error("UpdateDurations: repository error for business=%d: %v", businessID, err)
		return fmt.Errorf("%w: UpdateDurations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateDurations: successfully updated durations for business=%d", businessID)
	return nil
}

// UpdateBranding заменяет настройки брендинга бизнеса
func (s *Service) UpdateBranding(ctx context.Context, businessID int64, ui *domain.UISettings) error {
	s.logger.Info("UpdateBranding: updating branding for business=%d", businessID)

	if err := validateBranding(ui); err != nil {
		s.logger.Warn("UpdateBranding: validation failed for business=%d: %v", businessID, err)
		return err
	}

	if err := s.ensureExists(ctx, businessID); err != nil {
		return err
	}

	if err := s.businessRepo.UpdateBranding(ctx, businessID, ui); err != nil {
		s.logger.Error("UpdateBranding: repository error for business=%d: %v", businessID, err)
		return fmt.Errorf("%w: UpdateBranding - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateBranding: successfully updated branding for business=%d", businessID)
	return nil
}

// ensureExists проверяет существование бизнеса перед обновлением секции
// Неполное расписание не препятствует обновлению - именно обновлением
// секции расписания такой бизнес и чинится
func (s *Service) ensureExists(ctx context.Context, businessID int64) error {
	if _, err := s.businessRepo.GetByID(ctx, businessID); err != nil {
		switch {
		case errors.Is(err, businessRepo.ErrBusinessNotFound):
			s.logger.Warn("business id=%d not found", businessID)
			return ErrBusinessNotFound
		case errors.Is(err, businessRepo.ErrIncompleteSchedule):
			return nil
		default:
			s.logger.Error("failed to get business id=%d: %v", businessID, err)
			return fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
		}
	}
	return nil
}

package business

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("business not found")

	// ErrInvalidSchedule возвращается при некорректном недельном расписании
	ErrInvalidSchedule = errors.New("invalid schedule configuration")

	// ErrInvalidPricing возвращается при некорректной конфигурации цен
	ErrInvalidPricing = errors.New("invalid pricing configuration")

	// ErrInvalidDurations возвращается при некорректной конфигурации длительностей
	ErrInvalidDurations = errors.New("invalid duration configuration")

	// ErrInvalidBranding возвращается при некорректных настройках брендинга
	ErrInvalidBranding = errors.New("invalid branding configuration")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

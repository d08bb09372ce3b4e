package create_reservation

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("create_reservation: business not found")

	// ErrInvalidDate возвращается при некорректной дате бронирования (в прошлом)
	ErrInvalidDate = errors.New("create_reservation: invalid reservation date")

	// ErrBusinessClosed возвращается, когда бизнес закрыт в указанную дату
	ErrBusinessClosed = errors.New("create_reservation: business is closed on this date")

	// ErrSlotNotAvailable возвращается, когда слот пересекается с существующим бронированием
	ErrSlotNotAvailable = errors.New("create_reservation: slot is not available")

	// ErrInvalidDuration возвращается, когда длительность не входит в список
	// разрешенных конфигурацией длительностей
	ErrInvalidDuration = errors.New("create_reservation: duration is not allowed by business config")

	// ErrOutsideBusinessHours возвращается, когда интервал бронирования
	// выходит за рабочие часы
	ErrOutsideBusinessHours = errors.New("create_reservation: slot is outside business hours")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

package get_booking_options

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("get_booking_options: business not found")

	// ErrBusinessClosed возвращается, когда бизнес закрыт в указанную дату
	ErrBusinessClosed = errors.New("get_booking_options: business is closed on this date")

	// ErrOutsideBusinessHours возвращается, когда выбранное время начала
	// лежит вне рабочих часов дня
	ErrOutsideBusinessHours = errors.New("get_booking_options: start time is outside business hours")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_booking_options: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_booking_options: internal error")
)

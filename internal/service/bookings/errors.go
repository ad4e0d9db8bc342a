package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	// (в том числе неизвестном значении статуса)
	ErrInvalidInput = errors.New("bookings.service: invalid input data")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса,
	// включая любой переход из терминального статуса
	ErrInvalidTransition = errors.New("bookings.service: invalid status transition")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)

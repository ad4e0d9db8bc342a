package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrMasterNotFound возвращается, когда указанный мастер не найден
	ErrMasterNotFound = errors.New("create_booking: master not found")

	// ErrInvalidServiceType возвращается при попытке забронировать товар,
	// не являющийся услугой
	ErrInvalidServiceType = errors.New("create_booking: product is not a service")

	// ErrMasterUnavailable возвращается, когда указанный мастер занят
	// в запрошенном интервале
	ErrMasterUnavailable = errors.New("create_booking: master is not available at this time")

	// ErrNoAvailableMaster возвращается, когда ни один активный мастер
	// не свободен в запрошенном интервале
	ErrNoAvailableMaster = errors.New("create_booking: no available masters at this time")

	// ErrInvalidTimeWindow возвращается при времени начала в прошлом
	// или некорректном интервале
	ErrInvalidTimeWindow = errors.New("create_booking: invalid time window")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

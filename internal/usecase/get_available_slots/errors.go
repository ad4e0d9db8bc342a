package get_available_slots

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrMasterNotFound возвращается, когда указанный мастер не найден
	ErrMasterNotFound = errors.New("get_available_slots: master not found")

	// ErrInvalidServiceType возвращается для товаров, не являющихся услугами
	ErrInvalidServiceType = errors.New("get_available_slots: product is not a service")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)

package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrStaffNotFound возвращается, когда мастер не найден
	ErrStaffNotFound = errors.New("staff not found")

	// ErrInvalidName возвращается при пустом или слишком длинном названии
	ErrInvalidName = errors.New("invalid name")

	// ErrInvalidDuration возвращается при недопустимой длительности услуги
	ErrInvalidDuration = errors.New("invalid duration, allowed 15, 30 or 60 minutes")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

package schedule

import "errors"

var (
	// ErrWorkingHourNotFound возвращается, когда запись рабочих часов не найдена
	ErrWorkingHourNotFound = errors.New("working hour not found")

	// ErrBlockNotFound возвращается, когда блокировка не найдена
	ErrBlockNotFound = errors.New("block not found")

	// ErrStaffNotFound возвращается, когда мастер не найден
	ErrStaffNotFound = errors.New("staff not found")

	// ErrInvalidDayOfWeek возвращается при дне недели вне 0..6
	ErrInvalidDayOfWeek = errors.New("invalid day of week, expected 0 (monday) to 6 (sunday)")

	// ErrInvalidTimeRange возвращается, когда начало не раньше конца
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

package place_hold

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("place_hold: service not found")

	// ErrInvalidSlot возвращается, когда метку времени не удалось разобрать
	ErrInvalidSlot = errors.New("place_hold: invalid slot label")

	// ErrTooLateToBook возвращается, когда до начала осталось меньше минимального времени
	ErrTooLateToBook = errors.New("place_hold: too late to book this slot")

	// ErrSlotTaken возвращается, когда время занято или на него уже стоит бронь
	ErrSlotTaken = errors.New("place_hold: slot is taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("place_hold: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("place_hold: internal error")
)

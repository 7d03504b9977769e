package confirm_hold

import "errors"

var (
	// ErrHoldExpired возвращается, когда бронь не найдена или истекла
	ErrHoldExpired = errors.New("confirm_hold: hold expired or not found")

	// ErrServiceNotFound возвращается, когда услуга брони удалена
	ErrServiceNotFound = errors.New("confirm_hold: service not found")

	// ErrSlotTaken возвращается, когда за время брони время успели занять
	ErrSlotTaken = errors.New("confirm_hold: slot is no longer available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_hold: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_hold: internal error")
)

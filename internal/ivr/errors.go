package ivr

import "errors"

var (
	// ErrInvalidInput возвращается при пустом номере, пустом каталоге или неизвестной кнопке
	ErrInvalidInput = errors.New("ivr: invalid input")

	// ErrSessionNotFound возвращается, когда call_id не соответствует живому звонку
	ErrSessionNotFound = errors.New("ivr: session not found")

	// ErrHoldUnavailable возвращается, когда выбранное время уже занято
	ErrHoldUnavailable = errors.New("ivr: hold unavailable")

	// ErrConfirmationFailed возвращается, когда бронирование не удалось подтвердить
	ErrConfirmationFailed = errors.New("ivr: confirmation failed")
)

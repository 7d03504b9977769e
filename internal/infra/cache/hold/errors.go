package hold

import "errors"

var (
	// ErrHoldNotFound возвращается, когда бронь не найдена или истекла
	ErrHoldNotFound = errors.New("hold.store: hold not found")

	// ErrSlotHeld возвращается, когда мастер уже занят другой бронью на это время
	ErrSlotHeld = errors.New("hold.store: slot already held")

	// ErrStaffBusy возвращается, когда на мастера прямо сейчас ставится другая бронь
	ErrStaffBusy = errors.New("hold.store: staff is being held by another call")

	// ErrInvalidHold возвращается для брони без мастера
	ErrInvalidHold = errors.New("hold.store: invalid hold")

	// ErrRedis возвращается при ошибке Redis
	ErrRedis = errors.New("hold.store: redis error")

	// ErrDecode возвращается, когда бронь в Redis не читается
	ErrDecode = errors.New("hold.store: failed to decode hold")
)

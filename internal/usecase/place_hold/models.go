package place_hold

import "time"

// Config параметры брони
type Config struct {
	HoldTTL          time.Duration  // Сколько живет бронь
	MinNoticeMinutes int            // Минимальное время до начала записи
	Location         *time.Location // Часовой пояс салона
}

// Request модель запроса на бронь времени
type Request struct {
	CallID      string // ID звонка
	CallerPhone string // Номер звонящего
	ServiceID   string // ID услуги
	SlotLabel   string // Метка времени, например "Tisdag 10:30"
}

// Response модель ответа с поставленной бронью
type Response struct {
	HoldID    string
	StaffID   string // Мастер, занятый бронью
	StartDT   time.Time
	EndDT     time.Time
	ExpiresAt time.Time
}

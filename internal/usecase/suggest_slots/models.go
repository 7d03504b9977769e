package suggest_slots

import "time"

// Config параметры подбора времени
type Config struct {
	HorizonDays      int            // На сколько дней вперед искать (не больше 7)
	SlotCount        int            // Сколько вариантов предложить
	StepMinutes      int            // Шаг между возможными началами
	MinNoticeMinutes int            // Минимальное время до начала записи
	Location         *time.Location // Часовой пояс салона
}

// Request модель запроса на подбор времени
type Request struct {
	ServiceID string
}

// Slot предложенное время
type Slot struct {
	Label   string    // "Tisdag 10:30"
	StartDT time.Time // Начало
	EndDT   time.Time // Конец
}

// Response модель ответа
type Response struct {
	ServiceID   string
	ServiceName string
	Slots       []Slot
}

package confirm_hold

import "time"

// Request модель запроса на подтверждение брони
type Request struct {
	HoldID string
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID     string
	CustomerName  string
	CustomerPhone string
	ServiceID     string
	ServiceName   string
	StaffID       string
	StaffName     string
	StartDT       time.Time
	EndDT         time.Time
	Status        string
	CreatedAt     time.Time
}

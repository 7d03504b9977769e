package domain

import (
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusBooked    BookingStatus = "booked"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a salon appointment
type Booking struct {
	ID            string
	CustomerName  string
	CustomerEmail *string
	CustomerPhone string
	ServiceID     string
	StaffID       string
	StartDT       time.Time
	EndDT         time.Time
	Status        BookingStatus

	// Denormalized data for history
	ServiceName string
	StaffName   string

	CreatedAt time.Time
}

// IsActive returns true if the booking still occupies its time
func (b *Booking) IsActive() bool {
	return b.Status == StatusBooked
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusBooked
}

// Overlaps returns true if the booking intersects [start, end)
// Touching intervals do not overlap
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartDT.Before(end) && b.EndDT.After(start)
}

// BookingsFilter фильтр для списка бронирований в админке
type BookingsFilter struct {
	From    *time.Time     // Начало периода (включительно)
	To      *time.Time     // Конец периода (не включительно)
	Status  *BookingStatus // Фильтр по статусу
	StaffID *string        // Фильтр по мастеру
}

// IsValidBookingStatus проверяет, что статус известен
func IsValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case StatusBooked, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest запрос на получение бронирований для админки
type ListBookingsRequest struct {
	From    *time.Time `json:"from,omitempty"`    // Начало периода (включительно)
	To      *time.Time `json:"to,omitempty"`      // Конец периода (не включительно)
	Status  *string    `json:"status,omitempty"`  // Фильтр по статусу
	StaffID *string    `json:"staffId,omitempty"` // Фильтр по мастеру
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		From:    r.From,
		To:      r.To,
		StaffID: r.StaffID,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            string  `json:"id"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	CustomerPhone string  `json:"customerPhone"`
	ServiceID     string  `json:"serviceId"`
	StaffID       string  `json:"staffId"`
	StartDT       string  `json:"startDt"` // RFC 3339
	EndDT         string  `json:"endDt"`
	Status        string  `json:"status"`

	// Денормализованные данные
	ServiceName string `json:"serviceName"`
	StaffName   string `json:"staffName"`

	CreatedAt time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:            b.ID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		ServiceID:     b.ServiceID,
		StaffID:       b.StaffID,
		StartDT:       b.StartDT.Format(time.RFC3339),
		EndDT:         b.EndDT.Format(time.RFC3339),
		Status:        string(b.Status),
		ServiceName:   b.ServiceName,
		StaffName:     b.StaffName,
		CreatedAt:     b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	if !domain.IsValidBookingStatus(status) {
		return "", ErrInvalidStatus
	}
	return domain.BookingStatus(status), nil
}

package list_bookings

import (
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// date=YYYY-MM-DD заменяет from/to одним днем
func ToServiceRequest(r *http.Request, loc *time.Location) (*models.ListBookingsRequest, error) {
	if loc == nil {
		loc = time.UTC
	}
	req := &models.ListBookingsRequest{
		Status:  handlers.QueryString(r, "status"),
		StaffID: handlers.QueryString(r, "staffId"),
	}

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := time.ParseInLocation(domain.DateFormat, dateStr, loc)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %w", err)
		}
		next := date.AddDate(0, 0, 1)
		req.From = &date
		req.To = &next
		return req, nil
	}

	from, err := handlers.QueryTime(r, "from", loc)
	if err != nil {
		return nil, err
	}
	to, err := handlers.QueryTime(r, "to", loc)
	if err != nil {
		return nil, err
	}
	req.From = from
	req.To = to

	return req, nil
}

package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Service is a bookable treatment type offered by the salon
type Service struct {
	ID          string
	NamePublic  string
	DurationMin int
	IsActive    bool
	CreatedAt   time.Time
}

// Staff is a salon employee who can be booked
type Staff struct {
	ID        string
	Name      string
	IsActive  bool
	CreatedAt time.Time
}

// WorkingHour is a weekly recurring shift of a staff member
// DayOfWeek: 0 = Monday, 6 = Sunday
type WorkingHour struct {
	ID        string
	StaffID   string
	DayOfWeek int
	StartTime types.TimeString
	EndTime   types.TimeString
	IsActive  bool
}

// Block is an absence interval during which a staff member cannot be booked
type Block struct {
	ID        string
	StaffID   string
	StaffName string
	StartDT   time.Time
	EndDT     time.Time
	Reason    string
	CreatedAt time.Time
}

// Overlaps returns true if the block intersects [start, end)
func (b *Block) Overlaps(start, end time.Time) bool {
	return b.StartDT.Before(end) && b.EndDT.After(start)
}

// BlocksFilter фильтр для списка блокировок
type BlocksFilter struct {
	From    *time.Time
	To      *time.Time
	StaffID *string
}

// IsAllowedDuration проверяет длительность услуги (салон работает с 15/30/60 минутами)
func IsAllowedDuration(minutes int) bool {
	for _, d := range AllowedDurations {
		if d == minutes {
			return true
		}
	}
	return false
}

// DayOfWeekIndex переводит time.Weekday в индекс рабочей недели (0 = понедельник)
func DayOfWeekIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// ServiceUpdate частичное обновление услуги, nil = не менять
type ServiceUpdate struct {
	NamePublic  *string
	DurationMin *int
	IsActive    *bool
}

// StaffUpdate частичное обновление мастера
type StaffUpdate struct {
	Name     *string
	IsActive *bool
}

// WorkingHourUpdate частичное обновление рабочих часов
type WorkingHourUpdate struct {
	DayOfWeek *int
	StartTime *types.TimeString
	EndTime   *types.TimeString
	IsActive  *bool
}

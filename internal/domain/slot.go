package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// ErrInvalidSlotLabel is returned when a label is not "<weekday> HH:MM"
var ErrInvalidSlotLabel = errors.New("domain: invalid slot label")

// SlotLabel is a human readable start time within the coming week, e.g. "Tisdag 14:30"
type SlotLabel struct {
	DayIndex int // 0 = Monday
	Time     types.TimeString
}

// NewSlotLabel builds the label for a concrete start time
func NewSlotLabel(t time.Time) SlotLabel {
	return SlotLabel{
		DayIndex: DayOfWeekIndex(t.Weekday()),
		Time:     types.NewTimeString(t),
	}
}

// ParseSlotLabel parses "<Swedish weekday> HH:MM"
func ParseSlotLabel(s string) (SlotLabel, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return SlotLabel{}, fmt.Errorf("%w: %q", ErrInvalidSlotLabel, s)
	}

	day := -1
	for i, name := range WeekdayNames {
		if strings.EqualFold(name, parts[0]) {
			day = i
			break
		}
	}
	if day < 0 {
		return SlotLabel{}, fmt.Errorf("%w: unknown weekday %q", ErrInvalidSlotLabel, parts[0])
	}

	ts, err := types.NewTimeStringFromString(parts[1])
	if err != nil {
		return SlotLabel{}, fmt.Errorf("%w: %v", ErrInvalidSlotLabel, err)
	}

	return SlotLabel{DayIndex: day, Time: ts}, nil
}

func (l SlotLabel) String() string {
	return WeekdayNames[l.DayIndex] + " " + l.Time.String()
}

// Resolve returns the first occurrence of the label strictly after now
// Labels only address the coming seven days
func (l SlotLabel) Resolve(now time.Time) (time.Time, error) {
	offset := (l.DayIndex - DayOfWeekIndex(now.Weekday()) + 7) % 7
	start, err := l.Time.On(now.AddDate(0, 0, offset))
	if err != nil {
		return time.Time{}, err
	}
	if !start.After(now) {
		start = start.AddDate(0, 0, 7)
	}
	return start, nil
}

// Hold is a provisional, time-bounded claim on a slot placed by a phone call
type Hold struct {
	ID          string    `json:"id"`
	CallID      string    `json:"callId"`
	CallerPhone string    `json:"callerPhone"`
	ServiceID   string    `json:"serviceId"`
	StaffID     string    `json:"staffId"`
	SlotLabel   string    `json:"slotLabel"`
	StartDT     time.Time `json:"startDt"`
	EndDT       time.Time `json:"endDt"`
	ExpiresAt   time.Time `json:"expiresAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// IsExpired returns true if the hold can no longer be confirmed
func (h *Hold) IsExpired(now time.Time) bool {
	return !now.Before(h.ExpiresAt)
}

// Overlaps reports whether the held interval intersects [start, end)
func (h *Hold) Overlaps(start, end time.Time) bool {
	return h.StartDT.Before(end) && h.EndDT.After(start)
}

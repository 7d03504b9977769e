package ivr

import "time"

// StateName имя состояния звонка
type StateName string

const (
	StateSelectService StateName = "select_service"
	StateSelectTime    StateName = "select_time"
	StateConfirm       StateName = "confirm"
	StateDone          StateName = "done"
)

// Outcome итог завершённого звонка
type Outcome string

const (
	OutcomeNone      Outcome = ""
	OutcomeConfirmed Outcome = "confirmed"
	OutcomeCancelled Outcome = "cancelled"
	OutcomeExpired   Outcome = "expired"
)

// LogKind тип записи в журнале звонка
type LogKind string

const (
	LogSystem LogKind = "system"
	LogUser   LogKind = "user"
	LogError  LogKind = "error"
)

// Offering is a bookable service presented as a numbered menu choice
type Offering struct {
	ID              string
	Label           string
	DurationMinutes int
}

// HoldRequest describes the slot a caller wants to hold
type HoldRequest struct {
	CallID      string
	CallerPhone string
	OfferingID  string
	SlotLabel   string
}

// Reply is what the engine says after an event
type Reply struct {
	CallID    string
	Message   string
	State     StateName
	Options   []string // пункты текущего меню, пусто в confirm и done
	HoldID    string
	BookingID string
	Done      bool
}

// LogEntry одна запись журнала звонка
type LogEntry struct {
	Timestamp time.Time
	Kind      LogKind
	Message   string
}

// Snapshot read-only view of a session used by drivers and diagnostics
type Snapshot struct {
	CallID         string
	CallerPhone    string
	State          StateName
	Outcome        Outcome
	Offering       *Offering
	CandidateSlots []string
	SelectedIndex  int // 1-based, 0 если время не выбрано
	HoldID         string
	BookingID      string
	Log            []LogEntry
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SelectedSlot возвращает выбранное время или пустую строку
func (s Snapshot) SelectedSlot() string {
	if s.SelectedIndex < 1 || s.SelectedIndex > len(s.CandidateSlots) {
		return ""
	}
	return s.CandidateSlots[s.SelectedIndex-1]
}

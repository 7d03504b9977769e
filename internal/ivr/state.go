package ivr

// state текущее состояние звонка
// Поля, которые имеют смысл только в одном состоянии, живут только в нём:
// holdID существует только в confirmSlot
type state interface {
	name() StateName
}

type selectService struct{}

type selectTime struct {
	offering Offering
	slots    []string
}

type confirmSlot struct {
	offering Offering
	slots    []string
	selected int // 1-based
	holdID   string
}

type done struct {
	outcome   Outcome
	offering  *Offering
	slots     []string
	selected  int
	bookingID string
}

func (selectService) name() StateName { return StateSelectService }
func (selectTime) name() StateName    { return StateSelectTime }
func (confirmSlot) name() StateName   { return StateConfirm }
func (done) name() StateName          { return StateDone }

func (c confirmSlot) slot() string {
	return c.slots[c.selected-1]
}

// finish переводит любое состояние в done с указанным итогом
func finish(st state, outcome Outcome) done {
	switch s := st.(type) {
	case selectTime:
		o := s.offering
		return done{outcome: outcome, offering: &o, slots: s.slots}
	case confirmSlot:
		o := s.offering
		return done{outcome: outcome, offering: &o, slots: s.slots, selected: s.selected}
	case done:
		return s
	default:
		return done{outcome: outcome}
	}
}

// fill копирует поля состояния в снимок
func fill(snap *Snapshot, st state) {
	snap.State = st.name()

	switch s := st.(type) {
	case selectTime:
		o := s.offering
		snap.Offering = &o
		snap.CandidateSlots = cloneStrings(s.slots)
	case confirmSlot:
		o := s.offering
		snap.Offering = &o
		snap.CandidateSlots = cloneStrings(s.slots)
		snap.SelectedIndex = s.selected
		snap.HoldID = s.holdID
	case done:
		if s.offering != nil {
			o := *s.offering
			snap.Offering = &o
		}
		snap.CandidateSlots = cloneStrings(s.slots)
		snap.SelectedIndex = s.selected
		snap.BookingID = s.bookingID
		snap.Outcome = s.outcome
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

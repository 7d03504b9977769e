package availability

import (
	"errors"
	"sort"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ErrInvalidParams возвращается при неположительной длительности услуги
var ErrInvalidParams = errors.New("availability: duration must be positive")

// StaffSchedule всё, что влияет на занятость одного мастера
type StaffSchedule struct {
	Staff    *domain.Staff
	Hours    []*domain.WorkingHour
	Bookings []*domain.Booking
	Blocks   []*domain.Block
	Holds    []*domain.Hold
}

// Params параметры поиска свободного времени
type Params struct {
	DurationMinutes  int
	StepMinutes      int
	MinNoticeMinutes int
	HorizonDays      int
	Count            int
}

// BuildSchedules группирует данные по активным мастерам
func BuildSchedules(
	staff []*domain.Staff,
	hours []*domain.WorkingHour,
	bookings []*domain.Booking,
	blocks []*domain.Block,
) []StaffSchedule {
	index := make(map[string]int, len(staff))
	schedules := make([]StaffSchedule, 0, len(staff))
	for _, s := range staff {
		if !s.IsActive {
			continue
		}
		index[s.ID] = len(schedules)
		schedules = append(schedules, StaffSchedule{Staff: s})
	}

	for _, h := range hours {
		if i, ok := index[h.StaffID]; ok && h.IsActive {
			schedules[i].Hours = append(schedules[i].Hours, h)
		}
	}
	for _, b := range bookings {
		if i, ok := index[b.StaffID]; ok && b.IsActive() {
			schedules[i].Bookings = append(schedules[i].Bookings, b)
		}
	}
	for _, b := range blocks {
		if i, ok := index[b.StaffID]; ok {
			schedules[i].Blocks = append(schedules[i].Blocks, b)
		}
	}
	return schedules
}

// AttachHolds раздает живые брони телефонных звонков их мастерам
// Бронь с ID skipHoldID не учитывается
func AttachHolds(schedules []StaffSchedule, holds []*domain.Hold, skipHoldID string) {
	index := make(map[string]int, len(schedules))
	for i, s := range schedules {
		index[s.Staff.ID] = i
	}
	for _, h := range holds {
		if h.ID == skipHoldID {
			continue
		}
		if i, ok := index[h.StaffID]; ok {
			schedules[i].Holds = append(schedules[i].Holds, h)
		}
	}
}

// Overlaps проверяет пересечение интервалов [aStart, aEnd) и [bStart, bEnd)
// Интервалы, которые только граничат, не пересекаются
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// IsFree проверяет, что мастер работает весь интервал и ничем не занят
func (s StaffSchedule) IsFree(start, end time.Time) bool {
	if !s.works(start, end) {
		return false
	}
	for _, b := range s.Bookings {
		if b.IsActive() && b.Overlaps(start, end) {
			return false
		}
	}
	for _, b := range s.Blocks {
		if b.Overlaps(start, end) {
			return false
		}
	}
	for _, h := range s.Holds {
		if h.Overlaps(start, end) {
			return false
		}
	}
	return true
}

func (s StaffSchedule) works(start, end time.Time) bool {
	day := domain.DayOfWeekIndex(start.Weekday())
	for _, h := range s.Hours {
		if !h.IsActive || h.DayOfWeek != day {
			continue
		}
		from, err := h.StartTime.On(start)
		if err != nil {
			continue
		}
		to, err := h.EndTime.On(start)
		if err != nil {
			continue
		}
		if !start.Before(from) && !end.After(to) {
			return true
		}
	}
	return false
}

// FreeStaff возвращает мастеров, свободных весь интервал, в исходном порядке
func FreeStaff(schedules []StaffSchedule, start, end time.Time) []*domain.Staff {
	free := make([]*domain.Staff, 0)
	for _, s := range schedules {
		if s.IsFree(start, end) {
			free = append(free, s.Staff)
		}
	}
	return free
}

// CandidateStarts возможные начала услуги в день date по рабочим часам мастеров
// Начала идут с шагом step от начала смены, услуга должна закончиться до конца смены
// Результат отсортирован и без повторов
func CandidateStarts(schedules []StaffSchedule, date time.Time, durationMin, stepMin int) ([]time.Time, error) {
	if durationMin <= 0 || stepMin <= 0 {
		return nil, ErrInvalidParams
	}
	day := domain.DayOfWeekIndex(date.Weekday())
	seen := make(map[time.Time]struct{})
	starts := make([]time.Time, 0)

	for _, s := range schedules {
		for _, h := range s.Hours {
			if !h.IsActive || h.DayOfWeek != day {
				continue
			}
			from, err := h.StartTime.On(date)
			if err != nil {
				return nil, err
			}
			to, err := h.EndTime.On(date)
			if err != nil {
				return nil, err
			}

			for cur := from; !cur.Add(time.Duration(durationMin) * time.Minute).After(to); cur = cur.Add(time.Duration(stepMin) * time.Minute) {
				if _, dup := seen[cur]; dup {
					continue
				}
				seen[cur] = struct{}{}
				starts = append(starts, cur)
			}
		}
	}

	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })
	return starts, nil
}

// Suggest ищет первые p.Count начал, в которые свободен хотя бы один мастер
// Поиск идет от now на p.HorizonDays дней вперед, начало не раньше now + MinNotice
// p.Count <= 0 возвращает все найденные начала
func Suggest(schedules []StaffSchedule, now time.Time, p Params) ([]time.Time, error) {
	if p.DurationMinutes <= 0 {
		return nil, ErrInvalidParams
	}
	if p.StepMinutes <= 0 {
		p.StepMinutes = p.DurationMinutes
	}
	earliest := now.Add(time.Duration(p.MinNoticeMinutes) * time.Minute)
	duration := time.Duration(p.DurationMinutes) * time.Minute

	enough := func(n int) bool { return p.Count > 0 && n >= p.Count }

	result := make([]time.Time, 0)
	for d := 0; d < p.HorizonDays && !enough(len(result)); d++ {
		date := now.AddDate(0, 0, d)
		starts, err := CandidateStarts(schedules, date, p.DurationMinutes, p.StepMinutes)
		if err != nil {
			return nil, err
		}

		for _, start := range starts {
			if start.Before(earliest) {
				continue
			}
			if len(FreeStaff(schedules, start, start.Add(duration))) == 0 {
				continue
			}
			result = append(result, start)
			if enough(len(result)) {
				break
			}
		}
	}
	return result, nil
}

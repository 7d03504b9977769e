package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Понедельник, 19 октября 2026
var monday = time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)

func at(day, hour, minute int) time.Time {
	return monday.AddDate(0, 0, day).Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func hour(staffID string, day int, from, to string) *domain.WorkingHour {
	return &domain.WorkingHour{
		ID:        staffID + "-" + from,
		StaffID:   staffID,
		DayOfWeek: day,
		StartTime: types.TimeString(from),
		EndTime:   types.TimeString(to),
		IsActive:  true,
	}
}

func fixtures() []StaffSchedule {
	anna := &domain.Staff{ID: "anna", Name: "Anna", IsActive: true}
	erik := &domain.Staff{ID: "erik", Name: "Erik", IsActive: true}
	gone := &domain.Staff{ID: "gone", Name: "Gone", IsActive: false}

	hours := []*domain.WorkingHour{
		hour("anna", 0, "09:00", "12:00"),
		hour("erik", 0, "10:00", "11:00"),
		hour("anna", 1, "09:00", "17:00"),
		hour("gone", 0, "06:00", "22:00"),
	}
	bookings := []*domain.Booking{
		{ID: "b1", StaffID: "anna", StartDT: at(0, 9, 0), EndDT: at(0, 10, 0), Status: domain.StatusBooked},
		{ID: "b2", StaffID: "anna", StartDT: at(0, 10, 0), EndDT: at(0, 11, 0), Status: domain.StatusCancelled},
	}
	blocks := []*domain.Block{
		{ID: "x1", StaffID: "erik", StartDT: at(0, 10, 0), EndDT: at(0, 10, 30)},
	}
	return BuildSchedules([]*domain.Staff{anna, erik, gone}, hours, bookings, blocks)
}

func TestBuildSchedules(t *testing.T) {
	schedules := fixtures()
	require.Len(t, schedules, 2)
	assert.Equal(t, "anna", schedules[0].Staff.ID)
	assert.Len(t, schedules[0].Hours, 2)
	assert.Len(t, schedules[0].Bookings, 1, "cancelled booking does not occupy time")
	assert.Len(t, schedules[1].Blocks, 1)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                     string
		aStart, aEnd, bStart, bEnd time.Time
		want                     bool
	}{
		{"inside", at(0, 11, 30), at(0, 12, 0), at(0, 11, 20), at(0, 11, 40), true},
		{"touching before", at(0, 11, 30), at(0, 12, 0), at(0, 11, 0), at(0, 11, 30), false},
		{"touching after", at(0, 11, 30), at(0, 12, 0), at(0, 12, 0), at(0, 12, 30), false},
		{"covering", at(0, 11, 30), at(0, 12, 0), at(0, 11, 0), at(0, 13, 0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}

func TestFreeStaff(t *testing.T) {
	schedules := fixtures()

	free := FreeStaff(schedules, at(0, 9, 30), at(0, 10, 0))
	assert.Empty(t, free, "anna is booked, erik does not work yet")

	free = FreeStaff(schedules, at(0, 10, 0), at(0, 10, 30))
	require.Len(t, free, 1)
	assert.Equal(t, "anna", free[0].ID)

	free = FreeStaff(schedules, at(0, 10, 30), at(0, 11, 0))
	assert.Len(t, free, 2)

	free = FreeStaff(schedules, at(0, 11, 30), at(0, 12, 30))
	assert.Empty(t, free, "shift ends at 12:00")
}

func TestCandidateStarts(t *testing.T) {
	starts, err := CandidateStarts(fixtures(), monday, 60, 30)
	require.NoError(t, err)

	want := []time.Time{at(0, 9, 0), at(0, 9, 30), at(0, 10, 0), at(0, 10, 30), at(0, 11, 0)}
	assert.Equal(t, want, starts)
}

func TestSuggest(t *testing.T) {
	schedules := fixtures()
	now := at(0, 8, 0)

	got, err := Suggest(schedules, now, Params{DurationMinutes: 60, StepMinutes: 30, HorizonDays: 7, Count: 3})
	require.NoError(t, err)
	assert.Equal(t, []time.Time{at(0, 10, 0), at(0, 10, 30), at(0, 11, 0)}, got)

	// Минимальное время до записи переносит поиск на вторник
	got, err = Suggest(schedules, at(0, 10, 45), Params{DurationMinutes: 60, StepMinutes: 30, MinNoticeMinutes: 60, HorizonDays: 7, Count: 2})
	require.NoError(t, err)
	assert.Equal(t, []time.Time{at(1, 9, 0), at(1, 9, 30)}, got)

	got, err = Suggest(schedules, now, Params{DurationMinutes: 60, HorizonDays: 0, Count: 3})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSuggest_AllWhenCountIsZero(t *testing.T) {
	got, err := Suggest(fixtures(), at(0, 8, 0), Params{DurationMinutes: 60, StepMinutes: 60, HorizonDays: 2})
	require.NoError(t, err)
	// Понедельник: 10:00, 11:00 (9:00 занято); вторник: 09:00..16:00
	assert.Len(t, got, 2+8)
}

func TestAttachHolds(t *testing.T) {
	schedules := fixtures()
	AttachHolds(schedules, []*domain.Hold{
		{ID: "h1", StaffID: "anna", StartDT: at(0, 10, 30), EndDT: at(0, 11, 30)},
		{ID: "h2", StaffID: "erik", StartDT: at(0, 10, 30), EndDT: at(0, 11, 0)},
		{ID: "h3", StaffID: "gone", StartDT: at(0, 10, 30), EndDT: at(0, 11, 0)},
	}, "h2")

	require.Len(t, schedules[0].Holds, 1)
	assert.Empty(t, schedules[1].Holds, "skipped hold is not attached")

	free := FreeStaff(schedules, at(0, 10, 30), at(0, 11, 0))
	require.Len(t, free, 1)
	assert.Equal(t, "erik", free[0].ID)

	// бронь Анны до 11:30, дальше она свободна
	free = FreeStaff(schedules, at(0, 11, 30), at(0, 12, 0))
	require.Len(t, free, 1)
	assert.Equal(t, "anna", free[0].ID)
}

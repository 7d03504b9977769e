package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlotLabel(t *testing.T) {
	label, err := ParseSlotLabel("Tisdag 14:30")
	require.NoError(t, err)
	assert.Equal(t, 1, label.DayIndex)
	assert.Equal(t, "14:30", label.Time.String())
	assert.Equal(t, "Tisdag 14:30", label.String())

	_, err = ParseSlotLabel("Someday 10:00")
	assert.ErrorIs(t, err, ErrInvalidSlotLabel)

	_, err = ParseSlotLabel("Måndag")
	assert.ErrorIs(t, err, ErrInvalidSlotLabel)
}

func TestSlotLabelResolve(t *testing.T) {
	// Понедельник, 19 октября 2026, 12:00
	now := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		label string
		want  time.Time
	}{
		{"later today", "Måndag 14:30", time.Date(2026, time.October, 19, 14, 30, 0, 0, time.UTC)},
		{"earlier today rolls to next week", "Måndag 09:00", time.Date(2026, time.October, 26, 9, 0, 0, 0, time.UTC)},
		{"tomorrow", "Tisdag 10:30", time.Date(2026, time.October, 20, 10, 30, 0, 0, time.UTC)},
		{"sunday", "Söndag 13:00", time.Date(2026, time.October, 25, 13, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, err := ParseSlotLabel(tt.label)
			require.NoError(t, err)

			got, err := label.Resolve(now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewSlotLabel(t *testing.T) {
	start := time.Date(2026, time.October, 23, 16, 0, 0, 0, time.UTC)
	assert.Equal(t, "Fredag 16:00", NewSlotLabel(start).String())
}

func TestBookingOverlaps(t *testing.T) {
	b := &Booking{
		StartDT: time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC),
		EndDT:   time.Date(2026, 10, 19, 10, 30, 0, 0, time.UTC),
		Status:  StatusBooked,
	}

	assert.True(t, b.Overlaps(b.StartDT.Add(15*time.Minute), b.EndDT.Add(15*time.Minute)))
	assert.False(t, b.Overlaps(b.EndDT, b.EndDT.Add(30*time.Minute)))
	assert.False(t, b.Overlaps(b.StartDT.Add(-30*time.Minute), b.StartDT))
}

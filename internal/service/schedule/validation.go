package schedule

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

func validateDayOfWeek(day int) error {
	if day < domain.MinDayOfWeek || day > domain.MaxDayOfWeek {
		return fmt.Errorf("%w: got %d", ErrInvalidDayOfWeek, day)
	}
	return nil
}

func parseTime(s string) (types.TimeString, error) {
	t, err := types.NewTimeStringFromString(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return t, nil
}

func validateHours(start, end types.TimeString) error {
	if !start.IsBefore(end) {
		return fmt.Errorf("%w: start %s must be before end %s", ErrInvalidTimeRange, start, end)
	}
	return nil
}

func validateBlock(start, end time.Time, reason string) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}
	if !start.Before(end) {
		return fmt.Errorf("%w: start must be before end", ErrInvalidTimeRange)
	}
	if utf8.RuneCountInString(reason) > domain.MaxBlockReasonLength {
		return fmt.Errorf("%w: reason is longer than %d characters", ErrInvalidInput, domain.MaxBlockReasonLength)
	}
	return nil
}

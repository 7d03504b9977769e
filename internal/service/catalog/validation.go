package catalog

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

func validateName(name string, max int) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidName)
	}
	if utf8.RuneCountInString(trimmed) > max {
		return fmt.Errorf("%w: name is longer than %d characters", ErrInvalidName, max)
	}
	return nil
}

func validateDuration(minutes int) error {
	if !domain.IsAllowedDuration(minutes) {
		return fmt.Errorf("%w: got %d", ErrInvalidDuration, minutes)
	}
	return nil
}

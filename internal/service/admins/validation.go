package admins

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// normalizeEmail обрезает пробелы и приводит email к нижнему регистру
func normalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return "", fmt.Errorf("%w: email is required", ErrInvalidEmail)
	}
	if len(normalized) > domain.MaxEmailLength {
		return "", fmt.Errorf("%w: email is longer than %d characters", ErrInvalidEmail, domain.MaxEmailLength)
	}
	if !emailPattern.MatchString(normalized) {
		return "", fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return normalized, nil
}

func validateRole(role domain.AdminRole) error {
	if !role.IsValid() {
		return fmt.Errorf("%w: got %q", ErrInvalidRole, role)
	}
	return nil
}

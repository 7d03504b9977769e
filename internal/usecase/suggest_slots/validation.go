package suggest_slots

import (
	"fmt"
	"strings"
)

// validateRequest проверяет входные данные
func validateRequest(req *Request) error {
	if req == nil || strings.TrimSpace(req.ServiceID) == "" {
		return fmt.Errorf("%w: service id is required", ErrInvalidInput)
	}
	return nil
}

package place_hold

import (
	"fmt"
	"strings"
)

// validateRequest проверяет входные данные
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ServiceID) == "" {
		return fmt.Errorf("%w: service id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.CallerPhone) == "" {
		return fmt.Errorf("%w: caller phone is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.SlotLabel) == "" {
		return fmt.Errorf("%w: slot label is required", ErrInvalidInput)
	}
	return nil
}

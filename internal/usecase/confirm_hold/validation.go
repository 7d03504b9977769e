package confirm_hold

import (
	"fmt"
	"strings"
)

// validateRequest проверяет входные данные
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if strings.TrimSpace(req.HoldID) == "" {
		return fmt.Errorf("%w: hold id is required", ErrInvalidInput)
	}
	return nil
}

package get_available_dates

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, maxWeeks int) error {
	if req.TenantID == uuid.Nil {
		return ErrTenantRequired
	}

	if req.PartySize < domain.MinPartySize {
		return fmt.Errorf("%w: party size must be >= %d, got %d", ErrInvalidPartySize, domain.MinPartySize, req.PartySize)
	}

	if req.Weeks < domain.MinHorizonWeeks || req.Weeks > maxWeeks {
		return fmt.Errorf("%w: weeks must be in [%d, %d], got %d", ErrInvalidWeeks, domain.MinHorizonWeeks, maxWeeks, req.Weeks)
	}

	return nil
}

package get_availability

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TenantID == uuid.Nil {
		return ErrTenantRequired
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	if req.PartySize < domain.MinPartySize {
		return fmt.Errorf("%w: party size must be >= %d, got %d", ErrInvalidPartySize, domain.MinPartySize, req.PartySize)
	}

	return nil
}

package get_available_slots

import (
	"fmt"

	"github.com/google/uuid"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if _, err := uuid.Parse(req.ShopID); err != nil {
		return fmt.Errorf("%w: shopID must be a valid UUID", ErrInvalidInput)
	}

	if _, err := uuid.Parse(req.ServiceID); err != nil {
		return fmt.Errorf("%w: serviceID must be a valid UUID", ErrInvalidInput)
	}

	if req.MasterID != nil {
		if _, err := uuid.Parse(*req.MasterID); err != nil {
			return fmt.Errorf("%w: masterID must be a valid UUID", ErrInvalidInput)
		}
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

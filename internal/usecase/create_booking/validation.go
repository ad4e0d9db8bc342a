package create_booking

import (
	"fmt"
	"strings"

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

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidTimeWindow)
	}

	if strings.TrimSpace(req.Customer.Name) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Customer.Phone) == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}

	return nil
}

package output

import (
	"errors"

	"github.com/caportal/prorate-calculator/internal/domain"
)

// ErrorMessage returns the single user-facing sentence shown for a failed calculation.
func ErrorMessage(err error) string {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		if err == nil {
			return ""
		}
		return "Unexpected error: " + err.Error()
	}
	switch ve.Kind {
	case domain.KindInvalidAmount:
		return "Please enter a valid Total Monthly Subscription Cost (positive number)."
	case domain.KindInvalidStartDate:
		if ve.Missing() {
			return "Please select a Subscription Start Date."
		}
		return "Invalid Subscription Start Date."
	case domain.KindInvalidCalculationDate:
		if ve.Missing() {
			return "Please select a Calculation Date."
		}
		return "Invalid Calculation Date."
	case domain.KindDateOrder:
		return "Calculation Date cannot be before Subscription Start Date."
	}
	return ve.Error()
}

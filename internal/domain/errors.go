package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a proration request was rejected.
type ErrorKind string

const (
	KindInvalidAmount          ErrorKind = "InvalidAmount"
	KindInvalidStartDate       ErrorKind = "InvalidStartDate"
	KindInvalidCalculationDate ErrorKind = "InvalidCalculationDate"
	KindDateOrder              ErrorKind = "DateOrderError"
)

// Sentinel errors, one per kind, for use with errors.Is.
var (
	ErrInvalidAmount          = errors.New("invalid total monthly cost")
	ErrInvalidStartDate       = errors.New("invalid start date")
	ErrInvalidCalculationDate = errors.New("invalid calculation date")
	ErrDateOrder              = errors.New("calculation date is before start date")
)

var kindSentinels = map[ErrorKind]error{
	KindInvalidAmount:          ErrInvalidAmount,
	KindInvalidStartDate:       ErrInvalidStartDate,
	KindInvalidCalculationDate: ErrInvalidCalculationDate,
	KindDateOrder:              ErrDateOrder,
}

// ValidationError reports the first rule a proration request violated.
type ValidationError struct {
	Kind ErrorKind
	// Input is the offending raw value, empty when the value was missing.
	Input string
	// Err is the underlying parse failure, if any.
	Err error
}

// NewValidationError builds a ValidationError of the given kind.
func NewValidationError(kind ErrorKind, input string, cause error) *ValidationError {
	return &ValidationError{Kind: kind, Input: input, Err: cause}
}

func (e *ValidationError) Error() string {
	msg := kindSentinels[e.Kind].Error()
	if e.Input != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Input)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes both the kind sentinel and the parse cause.
func (e *ValidationError) Unwrap() []error {
	errs := []error{kindSentinels[e.Kind]}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// Missing reports whether the rejected value was absent rather than malformed.
func (e *ValidationError) Missing() bool {
	return e.Input == "" && e.Kind != KindDateOrder
}

// KindOf returns the ErrorKind carried by err, or "" when err is not a ValidationError.
func KindOf(err error) ErrorKind {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return ""
}

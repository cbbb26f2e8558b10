package models

import (
	"errors"
	"fmt"
)

// ErrEnrollmentLocked is returned when a discount or payment-plan election is
// attempted after the enrollment's first payment has been recorded.
var ErrEnrollmentLocked = errors.New("discount and payment plan cannot be changed after the first payment")

// ExceedsPendingError is returned when a payment amount is larger than the
// enrollment's pending balance at the time of recording. Pending carries the
// maximum amount the caller may submit.
type ExceedsPendingError struct {
	Pending int64
}

func (e *ExceedsPendingError) Error() string {
	return fmt.Sprintf("amount exceeds pending balance; maximum allowed is %d", e.Pending)
}

// IsExceedsPending unwraps err as an *ExceedsPendingError, or returns nil.
func IsExceedsPending(err error) *ExceedsPendingError {
	var e *ExceedsPendingError
	if errors.As(err, &e) {
		return e
	}
	return nil
}

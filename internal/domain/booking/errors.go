package booking

import "travel-booking/internal/pkg/errs"

// Failure kinds of the booking core. Returned errors wrap one of these
// with detail, so errors.Is matches them.
var (
	ErrInvalidBookingParameters = errs.New("invalid booking parameters")
	ErrItemNotFound             = errs.New("item not found")
	ErrInvalidDateRange         = errs.New("check-out date precedes check-in date")
	ErrInvalidStatusTransition  = errs.New("invalid status transition")
)

func invalidParams(format string, args ...any) error {
	return errs.Wrapf(ErrInvalidBookingParameters, format, args...)
}

func itemNotFound(format string, args ...any) error {
	return errs.Wrapf(ErrItemNotFound, format, args...)
}

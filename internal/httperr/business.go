package httperr

import "errors"

// Error codes surfaced by the scheduling core.
const (
	CodeInvalidDate         = "invalid_date"
	CodeInvalidSlot         = "invalid_slot"
	CodeServiceNotFound     = "service_not_found"
	CodeBookingNotFound     = "booking_not_found"
	CodeEmployeeNotFound    = "employee_not_found"
	CodeSlotUnavailable     = "slot_unavailable"
	CodeNoEmployee          = "no_employee_available"
	CodeIllegalTransition   = "illegal_transition"
	CodeFlagNotFound        = "flag_not_found"
	CodePersistenceConflict = "persistence_conflict"
)

type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrBusinessMsg(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// AsBusiness extracts a BusinessError if err carries one.
func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}

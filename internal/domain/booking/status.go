package booking

import "github.com/gulfwash/carwash-scheduler/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "Unpaid"
	PaymentPaid     PaymentStatus = "Paid"
	PaymentRefunded PaymentStatus = "Refunded"
)

func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentUnpaid, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

// ===============================
// Transitions
// ===============================

// CanTransition reports whether a status change is permitted.
// pending exists only for bookings created without an assignment;
// completed and cancelled are terminal.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusInProgress || to == StatusCancelled
	case StatusInProgress:
		return to == StatusCompleted || to == StatusCancelled
	}
	return false
}

func CheckTransition(from, to Status) error {
	if from == to {
		return nil
	}
	if !CanTransition(from, to) {
		return httperr.ErrBusinessMsg(httperr.CodeIllegalTransition,
			"cannot change status from "+string(from)+" to "+string(to))
	}
	return nil
}

// CanReschedule rejects moves of finished bookings.
func CanReschedule(current Status) error {
	if current == StatusCompleted || current == StatusCancelled {
		return httperr.ErrBusinessMsg(httperr.CodeIllegalTransition,
			"cannot reschedule a "+string(current)+" booking")
	}
	return nil
}

// CanReview allows exactly one review of a completed, assigned booking.
func CanReview(current Status, isReviewed bool, hasEmployee bool) error {
	if current != StatusCompleted {
		return httperr.ErrBusinessMsg(httperr.CodeIllegalTransition,
			"only completed bookings can be reviewed")
	}
	if isReviewed {
		return httperr.ErrBusinessMsg(httperr.CodeIllegalTransition,
			"this booking has already been reviewed")
	}
	if !hasEmployee {
		return httperr.ErrBusinessMsg(httperr.CodeIllegalTransition,
			"no employee assigned to this booking")
	}
	return nil
}

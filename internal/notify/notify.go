// Package notify is the fire-and-forget notification sink. Delivery is
// best effort: a full queue or failed write is logged and dropped, never
// surfaced to the caller.
package notify

type Type string

const (
	TypeBookingConfirmed   Type = "BOOKING_CONFIRMED"
	TypeBookingCancelled   Type = "BOOKING_CANCELLED"
	TypeBookingCompleted   Type = "BOOKING_COMPLETED"
	TypeBookingRescheduled Type = "BOOKING_RESCHEDULED"
	TypeStatusChanged      Type = "STATUS_CHANGED"
	TypePaymentReceived    Type = "PAYMENT_RECEIVED"
	TypePaymentFailed      Type = "PAYMENT_FAILED"
	TypeEmployeeAssigned   Type = "EMPLOYEE_ASSIGNED"
	TypeJobAssigned        Type = "JOB_ASSIGNED"
	TypeReminder           Type = "APPOINTMENT_REMINDER"
	TypeReviewRequest      Type = "REVIEW_REQUEST"
	TypeMessage            Type = "MESSAGE"
)

type Message struct {
	UserID uint
	Title  string
	Text   string
	Type   Type
	Data   map[string]any
}

// Sink accepts notifications with no delivery guarantee.
type Sink interface {
	Push(msg Message)
}

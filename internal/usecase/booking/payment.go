package booking

import (
	"context"
	"time"

	domain "github.com/gulfwash/carwash-scheduler/internal/domain/booking"
	"github.com/gulfwash/carwash-scheduler/internal/models"
)

type MakePaymentInput struct {
	BookingID     uint
	PaymentMethod string
	PaymentStatus domain.PaymentStatus
}

type MakePaymentResult struct {
	Message string          `json:"message"`
	Booking *models.Booking `json:"booking,omitempty"`
}

type MakePayment struct {
	env *Env
}

func NewMakePayment(env *Env) *MakePayment {
	return &MakePayment{env: env}
}

// Execute records a settlement against a completed booking. Payments
// before completion are answered with a message, not an error, and leave
// the booking untouched. Capture itself belongs to the payment gateway.
func (uc *MakePayment) Execute(
	ctx context.Context,
	in MakePaymentInput,
) (*MakePaymentResult, error) {

	b, err := uc.env.Repo.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}

	if domain.Status(b.Status) != domain.StatusCompleted {
		return &MakePaymentResult{Message: "Booking is still in progress"}, nil
	}

	status := in.PaymentStatus
	if !status.Valid() {
		status = domain.PaymentPaid
	}

	now := time.Now()
	b.PaymentStatus = string(status)
	if in.PaymentMethod != "" {
		b.PaymentMethod = in.PaymentMethod
	}
	b.PaidAt = &now

	if err := uc.env.Repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	return &MakePaymentResult{Message: "Payment Successful", Booking: b}, nil
}

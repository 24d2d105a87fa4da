package booking

import (
	"context"
	"fmt"

	domain "github.com/gulfwash/carwash-scheduler/internal/domain/booking"
	"github.com/gulfwash/carwash-scheduler/internal/httperr"
	"github.com/gulfwash/carwash-scheduler/internal/models"
	"github.com/gulfwash/carwash-scheduler/internal/notify"
)

type UpdateStatusInput struct {
	BookingID uint
	Status    domain.Status
	ByRole    models.Role
	// Reason is recorded only on cancellation.
	Reason string
}

type UpdateStatus struct {
	env *Env
}

func NewUpdateStatus(env *Env) *UpdateStatus {
	return &UpdateStatus{env: env}
}

var statusMessages = map[domain.Status]string{
	domain.StatusConfirmed:  "Your booking has been confirmed.",
	domain.StatusInProgress: "Your service is now in progress.",
	domain.StatusCompleted:  "Your service has been completed.",
	domain.StatusCancelled:  "Your booking has been cancelled.",
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Booking, error) {

	if !in.Status.Valid() {
		return nil, httperr.ErrBusinessMsg(httperr.CodeIllegalTransition, "unknown status "+string(in.Status))
	}

	b, err := uc.env.Repo.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}

	oldStatus := domain.Status(b.Status)
	if err := domain.CheckTransition(oldStatus, in.Status); err != nil {
		return nil, err
	}
	if oldStatus == in.Status {
		return b, nil
	}

	b.Status = string(in.Status)
	if in.Status == domain.StatusCancelled && in.Reason != "" {
		b.CancellationReason = in.Reason
	}
	if err := uc.env.Repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	data := map[string]any{
		"booking_id": b.ID,
		"new_status": string(in.Status),
		"old_status": string(oldStatus),
		"changed_by": string(in.ByRole),
	}

	uc.env.Notify.Push(notify.Message{
		UserID: b.CustomerID,
		Title:  "Booking Status Updated",
		Text:   statusMessages[in.Status],
		Type:   notify.TypeStatusChanged,
		Data:   data,
	})

	uc.env.notifyStaff(ctx,
		"Booking Status Changed",
		fmt.Sprintf("Booking #%d status changed from %s to %s by %s.", b.ID, oldStatus, in.Status, in.ByRole),
		notify.TypeStatusChanged,
		data,
	)

	return b, nil
}

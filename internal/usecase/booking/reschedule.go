package booking

import (
	"context"
	"fmt"
	"time"

	domain "github.com/gulfwash/carwash-scheduler/internal/domain/booking"
	"github.com/gulfwash/carwash-scheduler/internal/httperr"
	"github.com/gulfwash/carwash-scheduler/internal/models"
	"github.com/gulfwash/carwash-scheduler/internal/notify"
)

type RescheduleInput struct {
	BookingID uint
	Date      string
	TimeSlot  string
	Reason    string
}

type Reschedule struct {
	env *Env
}

func NewReschedule(env *Env) *Reschedule {
	return &Reschedule{env: env}
}

// Execute moves a booking to a new day and slot. The destination is NOT
// re-admitted through the capacity oracle; staff own the override.
func (uc *Reschedule) Execute(
	ctx context.Context,
	in RescheduleInput,
) (*models.Booking, error) {

	b, err := uc.env.Repo.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanReschedule(domain.Status(b.Status)); err != nil {
		return nil, err
	}

	newDate, err := uc.env.Zone.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusinessMsg(httperr.CodeInvalidDate, "invalid date format, expected YYYY-MM-DD")
	}
	if uc.env.Zone.IsPastDay(newDate) {
		return nil, httperr.ErrBusinessMsg(httperr.CodeInvalidDate, "cannot reschedule to a past date")
	}
	if !uc.env.Catalog.IsValidLabel(in.TimeSlot) {
		return nil, httperr.ErrBusinessMsg(httperr.CodeInvalidSlot, "unknown time slot "+in.TimeSlot)
	}

	oldDate := b.Date
	oldSlot := b.TimeSlot

	b.Date = uc.env.Zone.DayStart(newDate)
	b.TimeSlot = in.TimeSlot
	if in.Reason != "" {
		annotation := fmt.Sprintf("[Rescheduled on %s]: %s", time.Now().Format(time.RFC3339), in.Reason)
		if b.AdditionalNotes != "" {
			b.AdditionalNotes += "\n" + annotation
		} else {
			b.AdditionalNotes = annotation
		}
	}

	if err := uc.env.Repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	oldDay := uc.env.Zone.FormatDay(oldDate)
	newDay := uc.env.Zone.FormatDay(b.Date)
	data := map[string]any{
		"booking_id":    b.ID,
		"old_date":      uc.env.Zone.DateString(oldDate),
		"old_time_slot": oldSlot,
		"new_date":      uc.env.Zone.DateString(b.Date),
		"new_time_slot": b.TimeSlot,
		"reason":        in.Reason,
	}

	text := fmt.Sprintf("Your booking has been rescheduled from %s at %s to %s at %s.", oldDay, oldSlot, newDay, b.TimeSlot)
	if in.Reason != "" {
		text += " Reason: " + in.Reason
	}
	uc.env.Notify.Push(notify.Message{
		UserID: b.CustomerID,
		Title:  "Booking Rescheduled",
		Text:   text,
		Type:   notify.TypeBookingRescheduled,
		Data:   data,
	})

	if b.AssignedEmployeeID != nil {
		uc.env.notifyEmployee(ctx, *b.AssignedEmployeeID,
			"Job Rescheduled",
			fmt.Sprintf("A job has been rescheduled from %s at %s to %s at %s.", oldDay, oldSlot, newDay, b.TimeSlot),
			notify.TypeBookingRescheduled,
			data,
		)
	}

	uc.env.notifyStaff(ctx,
		"Booking Rescheduled",
		fmt.Sprintf("Booking #%d rescheduled from %s at %s to %s at %s.", b.ID, oldDay, oldSlot, newDay, b.TimeSlot),
		notify.TypeBookingRescheduled,
		data,
	)

	return b, nil
}

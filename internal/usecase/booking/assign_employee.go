package booking

import (
	"context"
	"fmt"

	domain "github.com/gulfwash/carwash-scheduler/internal/domain/booking"
	"github.com/gulfwash/carwash-scheduler/internal/httperr"
	"github.com/gulfwash/carwash-scheduler/internal/models"
	"github.com/gulfwash/carwash-scheduler/internal/notify"
)

type AssignEmployeeInput struct {
	BookingID uint
	// EmployeeRef is an employee id, or a user id of someone with the
	// Employee role; a missing profile is created on the fly.
	EmployeeRef uint
}

type AssignEmployee struct {
	env *Env
}

func NewAssignEmployee(env *Env) *AssignEmployee {
	return &AssignEmployee{env: env}
}

// Execute is the manual staff override of the automatic selector.
func (uc *AssignEmployee) Execute(
	ctx context.Context,
	in AssignEmployeeInput,
) (*models.Booking, error) {

	employee, err := uc.resolveEmployee(ctx, in.EmployeeRef)
	if err != nil {
		return nil, err
	}

	b, err := uc.env.Repo.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}

	// Find the ledger row for the booking's day and slot; synthesize one
	// only for an empty ledger (the implicit-availability bootstrap).
	var row *models.AvailabilitySlot
	for i := range employee.AvailabilitySlots {
		r := &employee.AvailabilitySlots[i]
		if uc.env.Zone.SameDay(r.Date, b.Date) && r.TimeSlot == b.TimeSlot {
			row = r
			break
		}
	}

	if row == nil && len(employee.AvailabilitySlots) == 0 {
		row = &models.AvailabilitySlot{
			EmployeeID:  employee.ID,
			Date:        uc.env.Zone.DayStart(b.Date),
			TimeSlot:    b.TimeSlot,
			IsAvailable: true,
		}
	}

	if row == nil {
		return nil, httperr.ErrBusinessMsg(httperr.CodeNoEmployee,
			fmt.Sprintf("employee is not available on %s at %s", uc.env.Zone.FormatDay(b.Date), b.TimeSlot))
	}
	if !row.IsAvailable {
		return nil, httperr.ErrBusinessMsg(httperr.CodeSlotUnavailable,
			fmt.Sprintf("the selected slot (%s on %s) is not available", b.TimeSlot, uc.env.Zone.FormatDay(b.Date)))
	}

	row.IsAvailable = false
	if err := uc.env.Repo.UpsertAvailabilitySlot(ctx, row); err != nil {
		return nil, err
	}

	wasAssigned := b.AssignedEmployeeID != nil
	b.AssignedEmployeeID = &employee.ID
	b.Status = string(domain.StatusConfirmed)
	if err := uc.env.Repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	if !wasAssigned {
		data := map[string]any{
			"booking_id":  b.ID,
			"employee_id": employee.ID,
			"date":        uc.env.Zone.DateString(b.Date),
			"time_slot":   b.TimeSlot,
		}

		uc.env.Notify.Push(notify.Message{
			UserID: employee.UserID,
			Title:  "New Job Assigned",
			Text:   fmt.Sprintf("You have been assigned a job on %s at %s.", uc.env.Zone.FormatDay(b.Date), b.TimeSlot),
			Type:   notify.TypeJobAssigned,
			Data:   data,
		})

		uc.env.notifyStaff(ctx,
			"Employee Assigned to Booking",
			fmt.Sprintf("Employee has been assigned to booking #%d for %s at %s.", b.ID, uc.env.Zone.FormatDay(b.Date), b.TimeSlot),
			notify.TypeEmployeeAssigned,
			data,
		)
	}

	return uc.env.Repo.GetBooking(ctx, b.ID)
}

func (uc *AssignEmployee) resolveEmployee(ctx context.Context, ref uint) (*models.Employee, error) {
	if emp, err := uc.env.Repo.GetEmployee(ctx, ref); err == nil {
		return emp, nil
	}
	if emp, err := uc.env.Repo.GetEmployeeByUser(ctx, ref); err == nil {
		return emp, nil
	}

	user, err := uc.env.Repo.GetUser(ctx, ref)
	if err != nil || user.Role != models.RoleEmployee {
		return nil, httperr.ErrBusinessMsg(httperr.CodeEmployeeNotFound,
			"employee not found; the user may not have an employee profile or is not an employee")
	}

	emp := &models.Employee{UserID: user.ID}
	if err := uc.env.Repo.CreateEmployee(ctx, emp); err != nil {
		return nil, err
	}
	return emp, nil
}

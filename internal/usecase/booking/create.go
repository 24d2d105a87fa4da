package booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	domain "github.com/gulfwash/carwash-scheduler/internal/domain/booking"
	"github.com/gulfwash/carwash-scheduler/internal/httperr"
	"github.com/gulfwash/carwash-scheduler/internal/models"
	"github.com/gulfwash/carwash-scheduler/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CustomerID uint
	VehicleID  uint
	ServiceID  uint
	AddressID  uint

	Date     string
	TimeSlot string

	AdditionalNotes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	env *Env
}

func NewCreateBooking(env *Env) *CreateBooking {
	return &CreateBooking{env: env}
}

// Execute admits, assigns and persists a booking. The availability
// re-check, booking insert and employee ledger mutations share one
// transaction; notifications go out only after commit and never roll
// it back.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// Date inside the booking window
	// --------------------------------------------------
	date, err := uc.env.Zone.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusinessMsg(httperr.CodeInvalidDate, "invalid date format, expected YYYY-MM-DD")
	}

	today := uc.env.Zone.DayStart(uc.env.Zone.Now())
	maxDate := today.AddDate(0, 0, uc.env.Params.WindowDays)
	bookingDay := uc.env.Zone.DayStart(date)
	if bookingDay.Before(today) || bookingDay.After(maxDate) {
		return nil, httperr.ErrBusinessMsg(httperr.CodeInvalidDate,
			fmt.Sprintf("booking date must be within the next %d days and cannot be in the past", uc.env.Params.WindowDays))
	}

	// --------------------------------------------------
	// Catalog slot
	// --------------------------------------------------
	if !uc.env.Catalog.IsValidLabel(in.TimeSlot) {
		return nil, httperr.ErrBusinessMsg(httperr.CodeInvalidSlot, "unknown time slot "+in.TimeSlot)
	}

	// --------------------------------------------------
	// Service and slot arithmetic
	// --------------------------------------------------
	service, err := uc.env.Repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	duration := service.EstimatedMinutes
	if duration <= 0 {
		duration = 60
	}
	requiredSlots := uc.env.Catalog.RequiredSlots(in.TimeSlot, duration, uc.env.Params.SlotLengthMinutes)

	var created *models.Booking
	var assigned *models.Employee

	err = uc.env.Repo.InTx(ctx, func(tx domain.Repository) error {

		// --------------------------------------------------
		// Admission re-check under the transaction
		// --------------------------------------------------
		avail, err := Evaluate(ctx, tx, uc.env.Catalog, uc.env.Zone, uc.env.Params, domain.AvailabilityInput{
			Date:      date,
			TimeSlot:  in.TimeSlot,
			ServiceID: in.ServiceID,
		}, true)
		if err != nil {
			return err
		}
		if !avail.Available {
			return httperr.ErrBusinessMsg(httperr.CodeSlotUnavailable,
				fmt.Sprintf("the selected time slots (%s) are fully booked; this service requires %d minutes",
					strings.Join(requiredSlots, ", "), duration))
		}

		// --------------------------------------------------
		// Assignment
		// --------------------------------------------------
		employee, err := findBestEmployee(ctx, tx, uc.env.Zone, uc.env.Params, date, requiredSlots)
		if err != nil {
			return err
		}
		if employee == nil {
			return httperr.ErrBusinessMsg(httperr.CodeNoEmployee,
				fmt.Sprintf("no employees available for %s on %s; this service needs continuous availability",
					in.TimeSlot, uc.env.Zone.FormatDay(date)))
		}

		b := &models.Booking{
			Code:               uuid.NewString(),
			CustomerID:         in.CustomerID,
			VehicleID:          in.VehicleID,
			ServiceID:          service.ID,
			AddressID:          in.AddressID,
			AssignedEmployeeID: &employee.ID,
			Date:               bookingDay,
			TimeSlot:           in.TimeSlot,
			Status:             string(domain.StatusConfirmed),
			PaymentStatus:      string(domain.PaymentUnpaid),
			TotalPrice:         service.Price,
			AdditionalNotes:    in.AdditionalNotes,
		}

		if err := tx.CreateBooking(ctx, b); err != nil {
			return err
		}

		// --------------------------------------------------
		// Ledger flips: slots where the employee just hit budget
		// --------------------------------------------------
		dayStart := uc.env.Zone.DayStart(date)
		dayEnd := uc.env.Zone.DayEnd(date)
		for _, slot := range requiredSlots {
			count, err := tx.CountEmployeeSlotBookings(ctx, employee.ID, dayStart, dayEnd, slot)
			if err != nil {
				return err
			}
			if count < uc.env.Params.PerEmployeeBudget {
				continue
			}
			for i := range employee.AvailabilitySlots {
				row := &employee.AvailabilitySlots[i]
				if uc.env.Zone.SameDay(row.Date, date) && row.TimeSlot == slot {
					row.IsAvailable = false
					if err := tx.UpsertAvailabilitySlot(ctx, row); err != nil {
						return err
					}
					break
				}
			}
		}

		created = b
		assigned = employee
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.emitCreated(ctx, created, assigned, service)
	return created, nil
}

func (uc *CreateBooking) emitCreated(ctx context.Context, b *models.Booking, emp *models.Employee, service *models.Service) {
	day := uc.env.Zone.FormatDay(b.Date)
	data := map[string]any{
		"booking_id":   b.ID,
		"booking_code": b.Code,
		"date":         uc.env.Zone.DateString(b.Date),
		"time_slot":    b.TimeSlot,
		"service_name": service.Name,
	}

	uc.env.Notify.Push(notify.Message{
		UserID: b.CustomerID,
		Title:  "Booking Confirmed",
		Text:   fmt.Sprintf("Your %s booking for %s at %s has been confirmed.", service.Name, day, b.TimeSlot),
		Type:   notify.TypeBookingConfirmed,
		Data:   data,
	})

	uc.env.Notify.Push(notify.Message{
		UserID: emp.UserID,
		Title:  "New Job Assigned",
		Text:   fmt.Sprintf("You have been assigned a %s job on %s at %s.", service.Name, day, b.TimeSlot),
		Type:   notify.TypeJobAssigned,
		Data:   data,
	})

	customerName := "Customer"
	if customer, err := uc.env.Repo.GetUser(ctx, b.CustomerID); err == nil {
		customerName = customer.FullName
	}
	uc.env.notifyStaff(ctx,
		"New Booking Created",
		fmt.Sprintf("New %s booking by %s for %s at %s.", service.Name, customerName, day, b.TimeSlot),
		notify.TypeBookingConfirmed,
		data,
	)
}

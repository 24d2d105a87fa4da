package booking

import (
	"context"
	"time"

	"github.com/gulfwash/carwash-scheduler/internal/models"
)

// Read-side operations; thin pass-throughs kept as use cases so handlers
// never touch the repository directly.

type Queries struct {
	env *Env
}

func NewQueries(env *Env) *Queries {
	return &Queries{env: env}
}

func (q *Queries) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	return q.env.Repo.GetBooking(ctx, id)
}

func (q *Queries) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return q.env.Repo.ListBookings(ctx)
}

func (q *Queries) ListByCustomer(ctx context.Context, customerID uint) ([]models.Booking, error) {
	return q.env.Repo.ListBookingsByCustomer(ctx, customerID)
}

// ListByEmployee accepts either an employee id or the user id behind the
// profile, matching how clients address employees.
func (q *Queries) ListByEmployee(ctx context.Context, ref uint) ([]models.Booking, error) {
	if emp, err := q.env.Repo.GetEmployeeByUser(ctx, ref); err == nil {
		return q.env.Repo.ListBookingsByEmployee(ctx, emp.ID)
	}
	return q.env.Repo.ListBookingsByEmployee(ctx, ref)
}

func (q *Queries) ListServices(ctx context.Context) ([]models.Service, error) {
	return q.env.Repo.ListServices(ctx)
}

type AvailableEmployee struct {
	EmployeeID    uint `json:"employee_id"`
	UserID        uint `json:"user_id"`
	CompletedJobs int  `json:"completed_jobs"`
}

// AvailableEmployees lists employees with an explicit available row for
// the given day and slot.
func (q *Queries) AvailableEmployees(ctx context.Context, date time.Time, slot string) ([]AvailableEmployee, error) {
	employees, err := q.env.Repo.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]AvailableEmployee, 0)
	for i := range employees {
		emp := &employees[i]
		for j := range emp.AvailabilitySlots {
			row := &emp.AvailabilitySlots[j]
			if q.env.Zone.SameDay(row.Date, date) && row.TimeSlot == slot && row.IsAvailable {
				out = append(out, AvailableEmployee{
					EmployeeID:    emp.ID,
					UserID:        emp.UserID,
					CompletedJobs: emp.CompletedJobs,
				})
				break
			}
		}
	}
	return out, nil
}

// DeleteBooking hard-deletes. It deliberately does not restore the
// ledger rows the booking consumed; staff use it for administrative
// cleanup only.
func (q *Queries) DeleteBooking(ctx context.Context, id uint) error {
	return q.env.Repo.DeleteBooking(ctx, id)
}

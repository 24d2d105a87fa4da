package booking

import (
	"context"

	"github.com/gulfwash/carwash-scheduler/internal/httperr"
	"github.com/gulfwash/carwash-scheduler/internal/models"
)

type AvailabilityRowInput struct {
	Date        string `json:"date"`
	TimeSlot    string `json:"time_slot"`
	IsAvailable bool   `json:"is_available"`
}

type PublishAvailability struct {
	env *Env
}

func NewPublishAvailability(env *Env) *PublishAvailability {
	return &PublishAvailability{env: env}
}

// Execute upserts ledger rows for an employee. This is the write path
// that moves an employee off the implicit-availability bootstrap onto an
// explicit schedule.
func (uc *PublishAvailability) Execute(
	ctx context.Context,
	employeeID uint,
	rows []AvailabilityRowInput,
) (*models.Employee, error) {

	emp, err := uc.env.Repo.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	for _, in := range rows {
		date, err := uc.env.Zone.ParseDate(in.Date)
		if err != nil {
			return nil, httperr.ErrBusinessMsg(httperr.CodeInvalidDate, "invalid date "+in.Date)
		}
		if !uc.env.Catalog.IsValidLabel(in.TimeSlot) {
			return nil, httperr.ErrBusinessMsg(httperr.CodeInvalidSlot, "unknown time slot "+in.TimeSlot)
		}

		if err := uc.env.Repo.UpsertAvailabilitySlot(ctx, &models.AvailabilitySlot{
			EmployeeID:  emp.ID,
			Date:        uc.env.Zone.DayStart(date),
			TimeSlot:    in.TimeSlot,
			IsAvailable: in.IsAvailable,
		}); err != nil {
			return nil, err
		}
	}

	return uc.env.Repo.GetEmployee(ctx, employeeID)
}

package booking

import (
	"context"
	"time"

	domain "github.com/gulfwash/carwash-scheduler/internal/domain/booking"
	"github.com/gulfwash/carwash-scheduler/internal/models"
	"github.com/gulfwash/carwash-scheduler/internal/opzone"
	"github.com/gulfwash/carwash-scheduler/internal/slots"
)

// ======================================================
// Capacity evaluation
// ======================================================

// employeeCoversSlots applies the implicit-availability bootstrap: an
// employee with an empty ledger is available everywhere; otherwise every
// required slot needs an explicit available row on that day.
func employeeCoversSlots(emp *models.Employee, zone *opzone.Zone, date time.Time, required []string) bool {
	if len(emp.AvailabilitySlots) == 0 {
		return true
	}
	for _, slot := range required {
		found := false
		for i := range emp.AvailabilitySlots {
			row := &emp.AvailabilitySlots[i]
			if zone.SameDay(row.Date, date) && row.TimeSlot == slot && row.IsAvailable {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// availableEmployeeCount counts employees offering one slot on a day.
// With zero employees in the system the configured default capacity is
// the escape hatch that keeps a fresh deployment bookable.
func availableEmployeeCount(employees []models.Employee, zone *opzone.Zone, date time.Time, slot string, defaultCapacity int) int {
	if len(employees) == 0 {
		return defaultCapacity
	}

	count := 0
	for i := range employees {
		if employeeCoversSlots(&employees[i], zone, date, []string{slot}) {
			count++
		}
	}
	return count
}

// Evaluate computes the admission verdict for a start slot. A service
// longer than one slot must be admissible across every slot it occupies;
// the aggregate figures report the bottleneck slot. With locking=true
// the booking counts take row locks (used inside the create transaction).
func Evaluate(
	ctx context.Context,
	repo domain.Repository,
	catalog *slots.Catalog,
	zone *opzone.Zone,
	params Params,
	in domain.AvailabilityInput,
	locking bool,
) (*domain.Availability, error) {

	required := []string{in.TimeSlot}
	if in.ServiceID != 0 {
		if svc, err := repo.GetService(ctx, in.ServiceID); err == nil && svc.EstimatedMinutes > 0 {
			required = catalog.RequiredSlots(in.TimeSlot, svc.EstimatedMinutes, params.SlotLengthMinutes)
		}
	}

	employees, err := repo.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}

	dayStart := zone.DayStart(in.Date)
	dayEnd := zone.DayEnd(in.Date)

	result := &domain.Availability{Available: true}
	for i, slot := range required {
		availableEmployees := availableEmployeeCount(employees, zone, in.Date, slot, params.DefaultCapacity)
		maxCapacity := availableEmployees * params.PerEmployeeBudget

		current, err := repo.CountSlotBookings(ctx, dayStart, dayEnd, slot, locking)
		if err != nil {
			return nil, err
		}

		if current >= maxCapacity {
			result.Available = false
		}
		if i == 0 || maxCapacity < result.Capacity {
			result.Capacity = maxCapacity
		}
		if current > result.CurrentBookings {
			result.CurrentBookings = current
		}
		if i == 0 || availableEmployees < result.AvailableEmployees {
			result.AvailableEmployees = availableEmployees
		}
	}

	if len(required) > 1 {
		result.RequiredSlots = required
	}
	return result, nil
}

// ======================================================
// USE CASES
// ======================================================

type CheckAvailability struct {
	env *Env
}

func NewCheckAvailability(env *Env) *CheckAvailability {
	return &CheckAvailability{env: env}
}

func (uc *CheckAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*domain.Availability, error) {
	return Evaluate(ctx, uc.env.Repo, uc.env.Catalog, uc.env.Zone, uc.env.Params, in, false)
}

// ListDaySlots renders the day view: one row per catalog slot with the
// full/limited/available UI status.
type ListDaySlots struct {
	env *Env
}

func NewListDaySlots(env *Env) *ListDaySlots {
	return &ListDaySlots{env: env}
}

func (uc *ListDaySlots) Execute(
	ctx context.Context,
	date time.Time,
	serviceID uint,
) ([]domain.DaySlot, error) {

	out := make([]domain.DaySlot, 0, uc.env.Catalog.Len())
	for _, slot := range uc.env.Catalog.All() {
		avail, err := Evaluate(ctx, uc.env.Repo, uc.env.Catalog, uc.env.Zone, uc.env.Params, domain.AvailabilityInput{
			Date:      date,
			TimeSlot:  slot.DisplayTime,
			ServiceID: serviceID,
		}, false)
		if err != nil {
			return nil, err
		}

		status := domain.SlotAvailable
		switch {
		case !avail.Available:
			status = domain.SlotFull
		case float64(avail.CurrentBookings) >= float64(avail.Capacity)*0.7:
			status = domain.SlotLimited
		}

		out = append(out, domain.DaySlot{
			TimeSlot:        slot.DisplayTime,
			Available:       avail.Available,
			Capacity:        avail.Capacity,
			CurrentBookings: avail.CurrentBookings,
			Status:          status,
			RequiredSlots:   avail.RequiredSlots,
		})
	}
	return out, nil
}

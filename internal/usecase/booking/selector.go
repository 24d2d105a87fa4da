package booking

import (
	"context"
	"sort"
	"time"

	domain "github.com/gulfwash/carwash-scheduler/internal/domain/booking"
	"github.com/gulfwash/carwash-scheduler/internal/models"
	"github.com/gulfwash/carwash-scheduler/internal/opzone"
)

// findBestEmployee picks the employee with the fewest non-cancelled
// bookings that day among those available across every required slot and
// still under the per-slot budget. Ties keep enumeration order. Returns
// nil when no candidate passes.
func findBestEmployee(
	ctx context.Context,
	repo domain.Repository,
	zone *opzone.Zone,
	params Params,
	date time.Time,
	requiredSlots []string,
) (*models.Employee, error) {

	employees, err := repo.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}

	dayStart := zone.DayStart(date)
	dayEnd := zone.DayEnd(date)

	type candidate struct {
		employee *models.Employee
		dayLoad  int
	}
	var candidates []candidate

	for i := range employees {
		emp := &employees[i]
		if !employeeCoversSlots(emp, zone, date, requiredSlots) {
			continue
		}

		underBudget := true
		for _, slot := range requiredSlots {
			count, err := repo.CountEmployeeSlotBookings(ctx, emp.ID, dayStart, dayEnd, slot)
			if err != nil {
				return nil, err
			}
			if count >= params.PerEmployeeBudget {
				underBudget = false
				break
			}
		}
		if !underBudget {
			continue
		}

		dayLoad, err := repo.CountEmployeeDayBookings(ctx, emp.ID, dayStart, dayEnd)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate{employee: emp, dayLoad: dayLoad})
	}

	if len(candidates) == 0 {
		return nil, nil
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].dayLoad < candidates[b].dayLoad
	})
	return candidates[0].employee, nil
}

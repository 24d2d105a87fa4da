package booking

import (
	"context"

	domain "github.com/gulfwash/carwash-scheduler/internal/domain/booking"
	"github.com/gulfwash/carwash-scheduler/internal/models"
	"github.com/gulfwash/carwash-scheduler/internal/notify"
	"github.com/gulfwash/carwash-scheduler/internal/opzone"
	"github.com/gulfwash/carwash-scheduler/internal/slots"
)

// Params are the scheduling knobs of the core.
type Params struct {
	WindowDays        int
	PerEmployeeBudget int
	SlotLengthMinutes int
	DefaultCapacity   int
}

// Env bundles the collaborators every booking use case consumes.
type Env struct {
	Repo    domain.Repository
	Catalog *slots.Catalog
	Zone    *opzone.Zone
	Notify  notify.Sink
	Params  Params
}

// notifyStaff broadcasts to every Admin and Manager. Best effort: a
// failed directory lookup drops the broadcast silently.
func (e *Env) notifyStaff(ctx context.Context, title, text string, typ notify.Type, data map[string]any) {
	staff := make([]models.User, 0)

	if admins, err := e.Repo.ListUsersByRole(ctx, models.RoleAdmin); err == nil {
		staff = append(staff, admins...)
	}
	if managers, err := e.Repo.ListUsersByRole(ctx, models.RoleManager); err == nil {
		staff = append(staff, managers...)
	}

	for _, u := range staff {
		e.Notify.Push(notify.Message{
			UserID: u.ID,
			Title:  title,
			Text:   text,
			Type:   typ,
			Data:   data,
		})
	}
}

// notifyEmployee pushes to the user behind an employee profile.
func (e *Env) notifyEmployee(ctx context.Context, employeeID uint, title, text string, typ notify.Type, data map[string]any) {
	emp, err := e.Repo.GetEmployee(ctx, employeeID)
	if err != nil {
		return
	}
	e.Notify.Push(notify.Message{
		UserID: emp.UserID,
		Title:  title,
		Text:   text,
		Type:   typ,
		Data:   data,
	})
}

package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/gulfwash/carwash-scheduler/internal/httperr"
	"github.com/gulfwash/carwash-scheduler/internal/models"
)

type ResolveFlagInput struct {
	EmployeeID uint
	FlagIndex  int
	Resolved   bool
	ResolvedBy *uint
}

type ResolveFlagResult struct {
	Message string              `json:"message"`
	Flag    models.EmployeeFlag `json:"flag"`
}

type ResolveFlag struct {
	env *Env
}

func NewResolveFlag(env *Env) *ResolveFlag {
	return &ResolveFlag{env: env}
}

// Execute flips one flag by its position in the employee's flag list.
// Reopening clears both resolution fields.
func (uc *ResolveFlag) Execute(
	ctx context.Context,
	in ResolveFlagInput,
) (*ResolveFlagResult, error) {

	if _, err := uc.env.Repo.GetEmployee(ctx, in.EmployeeID); err != nil {
		return nil, err
	}

	flags, err := uc.env.Repo.ListFlags(ctx, in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if in.FlagIndex < 0 || in.FlagIndex >= len(flags) {
		return nil, httperr.ErrBusinessMsg(httperr.CodeFlagNotFound, "flag not found")
	}

	flag := flags[in.FlagIndex]
	flag.Resolved = in.Resolved
	if in.Resolved {
		now := time.Now()
		flag.ResolvedAt = &now
		flag.ResolvedBy = in.ResolvedBy
	} else {
		flag.ResolvedAt = nil
		flag.ResolvedBy = nil
	}

	if err := uc.env.Repo.UpdateFlag(ctx, &flag); err != nil {
		return nil, err
	}

	verb := "reopened"
	if in.Resolved {
		verb = "marked as resolved"
	}
	return &ResolveFlagResult{
		Message: fmt.Sprintf("Flag #%d %s successfully.", in.FlagIndex+1, verb),
		Flag:    flag,
	}, nil
}

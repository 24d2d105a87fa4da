package booking

import (
	"context"
	"fmt"
	"time"

	domain "github.com/gulfwash/carwash-scheduler/internal/domain/booking"
	"github.com/gulfwash/carwash-scheduler/internal/httperr"
	"github.com/gulfwash/carwash-scheduler/internal/models"
)

const lowRatingThreshold = 3

type AddReviewInput struct {
	BookingID  uint
	CustomerID uint
	Rating     int
	Review     string
}

type AddReview struct {
	env *Env
}

func NewAddReview(env *Env) *AddReview {
	return &AddReview{env: env}
}

// Execute records a one-shot review of a completed booking and flags the
// employee on a low rating.
func (uc *AddReview) Execute(
	ctx context.Context,
	in AddReviewInput,
) error {

	if in.Rating < 1 || in.Rating > 5 {
		return httperr.ErrBusinessMsg(httperr.CodeIllegalTransition, "rating must be between 1 and 5")
	}

	b, err := uc.env.Repo.GetBooking(ctx, in.BookingID)
	if err != nil {
		return err
	}

	if err := domain.CanReview(domain.Status(b.Status), b.IsReviewed, b.AssignedEmployeeID != nil); err != nil {
		return err
	}

	if err := uc.env.Repo.AddReview(ctx, &models.EmployeeReview{
		EmployeeID: *b.AssignedEmployeeID,
		BookingID:  b.ID,
		Rating:     in.Rating,
		Review:     in.Review,
	}); err != nil {
		return err
	}

	if in.Rating < lowRatingThreshold {
		bookingID := b.ID
		if err := uc.env.Repo.AddFlag(ctx, &models.EmployeeFlag{
			EmployeeID: *b.AssignedEmployeeID,
			Reason:     fmt.Sprintf("Low customer rating (%d stars)", in.Rating),
			Date:       time.Now(),
			IssuedByID: in.CustomerID,
			BookingID:  &bookingID,
		}); err != nil {
			return err
		}
	}

	b.IsReviewed = true
	return uc.env.Repo.UpdateBooking(ctx, b)
}

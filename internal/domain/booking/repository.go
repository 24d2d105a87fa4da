package booking

import (
	"context"
	"time"

	"github.com/gulfwash/carwash-scheduler/internal/models"
)

// Repository is the persistence contract consumed by the scheduling core.
// InTx runs fn against a transactional view with read-your-writes
// semantics; every write inside createBooking goes through it.
type Repository interface {
	InTx(ctx context.Context, fn func(tx Repository) error) error

	// -------- Service --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	ListServices(
		ctx context.Context,
	) ([]models.Service, error)

	// -------- Booking --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	DeleteBooking(
		ctx context.Context,
		id uint,
	) error

	ListBookings(
		ctx context.Context,
	) ([]models.Booking, error)

	ListBookingsByCustomer(
		ctx context.Context,
		customerID uint,
	) ([]models.Booking, error)

	ListBookingsByEmployee(
		ctx context.Context,
		employeeID uint,
	) ([]models.Booking, error)

	// CountSlotBookings counts non-cancelled bookings occupying one slot
	// on a day. Locking counts take row locks so concurrent admissions
	// against the same slot serialize.
	CountSlotBookings(
		ctx context.Context,
		dayStart time.Time,
		dayEnd time.Time,
		slot string,
		locking bool,
	) (int, error)

	CountEmployeeSlotBookings(
		ctx context.Context,
		employeeID uint,
		dayStart time.Time,
		dayEnd time.Time,
		slot string,
	) (int, error)

	CountEmployeeDayBookings(
		ctx context.Context,
		employeeID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) (int, error)

	// ListDueReminders returns confirmed, assigned, not-yet-reminded
	// bookings whose date falls in [from, to].
	ListDueReminders(
		ctx context.Context,
		from time.Time,
		to time.Time,
	) ([]models.Booking, error)

	// -------- Employee / availability ledger --------
	ListEmployees(
		ctx context.Context,
	) ([]models.Employee, error)

	GetEmployee(
		ctx context.Context,
		id uint,
	) (*models.Employee, error)

	GetEmployeeByUser(
		ctx context.Context,
		userID uint,
	) (*models.Employee, error)

	CreateEmployee(
		ctx context.Context,
		e *models.Employee,
	) error

	UpsertAvailabilitySlot(
		ctx context.Context,
		row *models.AvailabilitySlot,
	) error

	AddReview(
		ctx context.Context,
		r *models.EmployeeReview,
	) error

	AddFlag(
		ctx context.Context,
		f *models.EmployeeFlag,
	) error

	// ListFlags returns an employee's flags in stable issue order; the
	// flag index used by resolveFlag is a position in this sequence.
	ListFlags(
		ctx context.Context,
		employeeID uint,
	) ([]models.EmployeeFlag, error)

	UpdateFlag(
		ctx context.Context,
		f *models.EmployeeFlag,
	) error

	// -------- User directory --------
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetUserByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	ListUsersByRole(
		ctx context.Context,
		role models.Role,
	) ([]models.User, error)
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/gulfwash/carwash-scheduler/internal/domain/booking"
	"github.com/gulfwash/carwash-scheduler/internal/httperr"
	"github.com/gulfwash/carwash-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// InTx spans the admission re-check, booking insert and employee
// mutations of createBooking with one database transaction. The
// transaction runs SERIALIZABLE: row locks alone cannot fence the
// capacity count when the slot holds zero rows yet, so overlapping
// admissions must be detected by the isolation level and one of them
// aborted.
func (r *BookingGormRepository) InTx(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	err := r.db.WithContext(ctx).Transaction(func(txdb *gorm.DB) error {
		return fn(&BookingGormRepository{db: txdb})
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
	return translateTxError(err)
}

// translateTxError maps Postgres serialization aborts (SQLSTATE 40001)
// and deadlocks (40P01) onto the business conflict code. The losing
// side of a concurrent admission surfaces as a retryable 409, not a
// raw driver error.
func translateTxError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01":
			return httperr.ErrBusinessMsg(httperr.CodePersistenceConflict,
				"a concurrent update aborted the transaction, please retry")
		}
	}
	return err
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
		}
		return nil, err
	}
	return &svc, nil
}

func (r *BookingGormRepository) ListServices(
	ctx context.Context,
) ([]models.Service, error) {

	var svcs []models.Service
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&svcs).Error; err != nil {
		return nil, err
	}
	return svcs, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Vehicle").
		Preload("Service").
		Preload("Address").
		Preload("AssignedEmployee").
		First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Booking{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.CodeBookingNotFound)
	}
	return nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
) ([]models.Booking, error) {

	var bs []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Vehicle").
		Preload("Service").
		Preload("Address").
		Preload("AssignedEmployee").
		Order("created_at DESC").
		Find(&bs).Error; err != nil {
		return nil, err
	}
	return bs, nil
}

func (r *BookingGormRepository) ListBookingsByCustomer(
	ctx context.Context,
	customerID uint,
) ([]models.Booking, error) {

	var bs []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Vehicle").
		Preload("Service").
		Preload("Address").
		Preload("AssignedEmployee").
		Where("customer_id = ?", customerID).
		Order("date ASC, time_slot ASC").
		Find(&bs).Error; err != nil {
		return nil, err
	}
	return bs, nil
}

func (r *BookingGormRepository) ListBookingsByEmployee(
	ctx context.Context,
	employeeID uint,
) ([]models.Booking, error) {

	var bs []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Vehicle").
		Preload("Service").
		Preload("Address").
		Where("assigned_employee_id = ? AND status <> ?", employeeID, domain.StatusCancelled).
		Order("date ASC, time_slot ASC").
		Find(&bs).Error; err != nil {
		return nil, err
	}
	return bs, nil
}

// --------------------------------------------------
// Slot counters
// --------------------------------------------------

func (r *BookingGormRepository) CountSlotBookings(
	ctx context.Context,
	dayStart time.Time,
	dayEnd time.Time,
	slot string,
	locking bool,
) (int, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"date >= ? AND date <= ? AND time_slot = ? AND status <> ?",
			dayStart, dayEnd, slot, domain.StatusCancelled,
		)

	if locking {
		// lock the occupying rows; the serializable transaction in InTx
		// covers the zero-row case these locks cannot reach
		var rows []models.Booking
		if err := q.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Find(&rows).Error; err != nil {
			return 0, err
		}
		return len(rows), nil
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *BookingGormRepository) CountEmployeeSlotBookings(
	ctx context.Context,
	employeeID uint,
	dayStart time.Time,
	dayEnd time.Time,
	slot string,
) (int, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"assigned_employee_id = ? AND date >= ? AND date <= ? AND time_slot = ? AND status <> ?",
			employeeID, dayStart, dayEnd, slot, domain.StatusCancelled,
		).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *BookingGormRepository) CountEmployeeDayBookings(
	ctx context.Context,
	employeeID uint,
	dayStart time.Time,
	dayEnd time.Time,
) (int, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"assigned_employee_id = ? AND date >= ? AND date <= ? AND status <> ?",
			employeeID, dayStart, dayEnd, domain.StatusCancelled,
		).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *BookingGormRepository) ListDueReminders(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.Booking, error) {

	var bs []models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"status = ? AND reminder_notified = ? AND assigned_employee_id IS NOT NULL AND date >= ? AND date <= ?",
			domain.StatusConfirmed, false, from, to,
		).
		Find(&bs).Error; err != nil {
		return nil, err
	}
	return bs, nil
}

// --------------------------------------------------
// Employee / availability ledger
// --------------------------------------------------

func (r *BookingGormRepository) ListEmployees(
	ctx context.Context,
) ([]models.Employee, error) {

	var emps []models.Employee
	if err := r.db.WithContext(ctx).
		Preload("AvailabilitySlots").
		Order("id ASC").
		Find(&emps).Error; err != nil {
		return nil, err
	}
	return emps, nil
}

func (r *BookingGormRepository) GetEmployee(
	ctx context.Context,
	id uint,
) (*models.Employee, error) {

	var emp models.Employee
	if err := r.db.WithContext(ctx).
		Preload("AvailabilitySlots").
		Preload("Flags").
		First(&emp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeEmployeeNotFound)
		}
		return nil, err
	}
	return &emp, nil
}

func (r *BookingGormRepository) GetEmployeeByUser(
	ctx context.Context,
	userID uint,
) (*models.Employee, error) {

	var emp models.Employee
	if err := r.db.WithContext(ctx).
		Preload("AvailabilitySlots").
		Where("user_id = ?", userID).
		First(&emp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeEmployeeNotFound)
		}
		return nil, err
	}
	return &emp, nil
}

func (r *BookingGormRepository) CreateEmployee(
	ctx context.Context,
	e *models.Employee,
) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *BookingGormRepository) UpsertAvailabilitySlot(
	ctx context.Context,
	row *models.AvailabilitySlot,
) error {

	if row.ID != 0 {
		return r.db.WithContext(ctx).Save(row).Error
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "employee_id"}, {Name: "date"}, {Name: "time_slot"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"is_available", "updated_at"}),
		}).
		Create(row).Error
}

func (r *BookingGormRepository) AddReview(
	ctx context.Context,
	rv *models.EmployeeReview,
) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *BookingGormRepository) AddFlag(
	ctx context.Context,
	f *models.EmployeeFlag,
) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *BookingGormRepository) ListFlags(
	ctx context.Context,
	employeeID uint,
) ([]models.EmployeeFlag, error) {

	var flags []models.EmployeeFlag
	if err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("id ASC").
		Find(&flags).Error; err != nil {
		return nil, err
	}
	return flags, nil
}

func (r *BookingGormRepository) UpdateFlag(
	ctx context.Context,
	f *models.EmployeeFlag,
) error {
	return r.db.WithContext(ctx).Save(f).Error
}

// --------------------------------------------------
// User directory
// --------------------------------------------------

func (r *BookingGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *BookingGormRepository) GetUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *BookingGormRepository) ListUsersByRole(
	ctx context.Context,
	role models.Role,
) ([]models.User, error) {

	var users []models.User
	if err := r.db.WithContext(ctx).
		Where("role = ?", role).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)

package db

import (
	"log"
	"time"

	"github.com/gulfwash/carwash-scheduler/internal/config"
	"github.com/gulfwash/carwash-scheduler/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Vehicle{},
		&models.Address{},
		&models.Employee{},
		&models.AvailabilitySlot{},
		&models.EmployeeReview{},
		&models.EmployeeFlag{},
		&models.Booking{},
		&models.Notification{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	db.Exec(`
        UPDATE bookings
        SET payment_status = 'Unpaid'
        WHERE payment_status IS NULL OR payment_status = ''
    `)

	return db
}

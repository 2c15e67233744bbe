package db

import (
	"log"
	"time"

	"github.com/SalonVioleta/nail-scheduler/internal/config"
	"github.com/SalonVioleta/nail-scheduler/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SlotConstraint is the partial unique index enforcing one non-cancelled
// appointment per (date, time) slot. It is the source of truth for
// conflicts; the application-level availability check is only a fast path.
const SlotConstraint = "uniq_appointments_active_slot"

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
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS ` + SlotConstraint + `
        ON appointments (date, time)
        WHERE status <> 'cancelada'
    `)

	return db
}

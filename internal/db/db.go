package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/barbermx/appointment-api/internal/config"
	"github.com/barbermx/appointment-api/internal/models"
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
		&models.Profile{},
		&models.Barber{},
		&models.Service{},
		&models.Appointment{},
		&models.Payment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Mesmo slot não pode ser reservado duas vezes entre não cancelados.
	// O create já trava e re-checa em transação; o índice é a autoridade final.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uq_appointments_slot
        ON appointments (barber_id, appointment_date, start_time)
        WHERE status <> 'cancelled'
    `)

	return db
}

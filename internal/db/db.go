package db

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/barbexa/barbexa-api/internal/config"
	"github.com/barbexa/barbexa-api/internal/logger"
	"github.com/barbexa/barbexa-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		logger.Error.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		logger.Error.Fatalf("failed to migrate: %v", err)
	}

	if err := Seed(db); err != nil {
		logger.Error.Fatalf("failed to seed lookup tables: %v", err)
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Service{},
		&models.Combo{},
		&models.ComboItem{},
		&models.BarberService{},
		&models.ReservationStatus{},
		&models.Reservation{},
		&models.ReservationService{},
		&models.ReservationCombo{},
		&models.AuditLog{},
	)
}

// Seed grava as tabelas de consulta (status e papéis). Idempotente:
// linhas existentes são preservadas.
func Seed(db *gorm.DB) error {
	statuses := []models.ReservationStatus{
		{ID: 1, Name: "PENDING"},
		{ID: 2, Name: "CONFIRMED"},
		{ID: 3, Name: "IN_PROGRESS"},
		{ID: 4, Name: "COMPLETED"},
		{ID: 5, Name: "CANCELLED"},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&statuses).Error; err != nil {
		return err
	}

	roles := []models.Role{
		{ID: 1, CodeName: "ADMIN_01"},
		{ID: 2, CodeName: "BARBER_02"},
		{ID: 3, CodeName: "CLIENT_03"},
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&roles).Error
}

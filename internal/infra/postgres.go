package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"workwithme/internal/models/db_models"
	"workwithme/pkg/config"
)

func InitPostgresql(cfg config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := AutoMigrate(db); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return db
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Category{},
		&db_models.Question{},
		&db_models.Profile{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}

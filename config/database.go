package config

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskhive/models"
)

var DB *gorm.DB

// InitDB opens the Postgres connection, sets pool limits and migrates
// the schema.
func InitDB(config Config) error {
	var err error
	DB, err = gorm.Open(postgres.Open(config.GetDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return err
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return MigrateDB(DB)
}

// MigrateDB creates or updates the three tables. Foreign keys carry
// ON DELETE CASCADE; the repositories still delete children explicitly
// inside transactions so the policy holds on stores without FK support.
func MigrateDB(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Workspace{},
		&models.Task{},
		&models.Subtask{},
	)
}

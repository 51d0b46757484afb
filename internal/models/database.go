package models

import (
	"fmt"

	"github.com/huangang/skillhub/backend/internal/config"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func InitDB(cfg *config.DatabaseConfig) error {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	case "mysql":
		dialector = mysql.Open(cfg.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}

	DB = db
	return nil
}

func AutoMigrate() error {
	return DB.AutoMigrate(
		&User{},
		&Project{},
		&Membership{},
	)
}

func GetDB() *gorm.DB {
	return DB
}

// SeedDefaultData inserts a handful of pre-approved sample projects when the
// catalog is empty, so a fresh install has something to browse. Seeded rows
// have no creator.
func SeedDefaultData() error {
	var count int64
	DB.Model(&Project{}).Count(&count)
	if count > 0 {
		return nil
	}

	seeds := []Project{
		{
			Name:        "Community Garden Tracker",
			Description: "Track plots, plantings and harvests for the neighborhood garden.",
			Type:        "web",
			Difficulty:  "beginner",
			Location:    "remote",
			Status:      ProjectStatusApproved,
		},
		{
			Name:        "Local Event Board",
			Description: "A shared board for meetups, workshops and volunteer days.",
			Type:        "web",
			Difficulty:  "intermediate",
			Location:    "remote",
			Status:      ProjectStatusApproved,
		},
		{
			Name:        "Tool Library API",
			Description: "Lend and borrow tools between members, with availability tracking.",
			Type:        "api",
			Difficulty:  "intermediate",
			Location:    "remote",
			Status:      ProjectStatusApproved,
		},
	}

	for i := range seeds {
		seeds[i].ID = NewID()
		if err := DB.Create(&seeds[i]).Error; err != nil {
			return err
		}
	}

	return nil
}

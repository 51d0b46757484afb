package main

import (
	"github.com/huangang/skillhub/backend/internal/config"
	"github.com/huangang/skillhub/backend/internal/handlers"
	"github.com/huangang/skillhub/backend/internal/models"
	"github.com/huangang/skillhub/backend/internal/utils"
	"github.com/huangang/skillhub/backend/pkg/logger"
)

// appServices holds the initialized handlers the route table needs.
type appServices struct {
	authHandler       *handlers.AuthHandler
	projectHandler    *handlers.ProjectHandler
	membershipHandler *handlers.MembershipHandler
	userHandler       *handlers.UserHandler
	healthHandler     *handlers.HealthHandler
}

// bootstrap initializes all application dependencies: signing key, database,
// migrations, seed data, handlers.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)
	utils.SetHashCost(cfg.Security.BcryptCost)

	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	if err := models.SeedDefaultData(); err != nil {
		logger.Warn().Err(err).Msg("Failed to seed default data")
	}

	db := models.GetDB()

	return &appServices{
		authHandler:       handlers.NewAuthHandler(db, cfg),
		projectHandler:    handlers.NewProjectHandler(db),
		membershipHandler: handlers.NewMembershipHandler(db),
		userHandler:       handlers.NewUserHandler(db, cfg),
		healthHandler:     handlers.NewHealthHandler(db),
	}
}

package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/huangang/skillhub/backend/internal/models"
	"gorm.io/gorm"
)

// HealthHandler reports service liveness and store reachability.
type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// CheckHealth returns the health status of the service and its store
// GET /api/health
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	overall := "healthy"

	dbStatus := "ok"
	sqlDB, err := h.db.DB()
	if err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	} else if err := sqlDB.Ping(); err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	}

	var pendingCount int64
	h.db.Model(&models.Project{}).
		Where("status = ?", models.ProjectStatusPending).
		Count(&pendingCount)

	c.JSON(200, gin.H{
		"status":  overall,
		"service": "skillhub",
		"components": gin.H{
			"database":         dbStatus,
			"pending_projects": pendingCount,
		},
	})
}

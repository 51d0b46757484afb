package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/huangang/skillhub/backend/internal/config"
	"github.com/huangang/skillhub/backend/internal/middleware"
	"github.com/huangang/skillhub/backend/internal/models"
	"github.com/huangang/skillhub/backend/internal/services"
	"github.com/huangang/skillhub/backend/pkg/response"
	"gorm.io/gorm"
)

type UserHandler struct {
	db          *gorm.DB
	authService *services.AuthService
}

func NewUserHandler(db *gorm.DB, cfg *config.Config) *UserHandler {
	return &UserHandler{
		db:          db,
		authService: services.NewAuthService(db, &cfg.JWT),
	}
}

// List returns all users, skills expanded, password hashes omitted
// GET /api/admin/users
func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.Order("created_at ASC").Find(&users).Error; err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

type UpdateSkillsRequest struct {
	Skills []string `json:"skills" binding:"required"`
}

// UpdateSkills replaces the current user's skill list
// PUT /api/users/skills
func (h *UserHandler) UpdateSkills(c *gin.Context) {
	var req UpdateSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.authService.UpdateSkills(middleware.GetUserID(c), req.Skills)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "skills updated", "skills": user.Skills})
}

type UpdatePasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// UpdatePassword replaces the current user's password
// PUT /api/users/password
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.authService.ChangePassword(middleware.GetUserID(c), req.NewPassword); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

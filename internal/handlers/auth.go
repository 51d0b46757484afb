package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/huangang/skillhub/backend/internal/config"
	"github.com/huangang/skillhub/backend/internal/middleware"
	"github.com/huangang/skillhub/backend/internal/services"
	"github.com/huangang/skillhub/backend/pkg/response"
	"gorm.io/gorm"
)

type AuthHandler struct {
	authService       *services.AuthService
	membershipService *services.MembershipService
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService:       services.NewAuthService(db, &cfg.JWT),
		membershipService: services.NewMembershipService(db),
	}
}

// Signup handles account registration
// POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req services.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.authService.Signup(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login handles user login
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Profile returns the current user with their joined project ids
// GET /api/auth/profile
func (h *AuthHandler) Profile(c *gin.Context) {
	userID := middleware.GetUserID(c)

	user, err := h.authService.GetUserByID(userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	projectIDs, err := h.membershipService.ProjectIDsForUser(userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":     user,
		"projects": projectIDs,
	})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/huangang/skillhub/backend/internal/middleware"
	"github.com/huangang/skillhub/backend/internal/services"
	"github.com/huangang/skillhub/backend/pkg/response"
	"gorm.io/gorm"
)

type MembershipHandler struct {
	membershipService *services.MembershipService
}

func NewMembershipHandler(db *gorm.DB) *MembershipHandler {
	return &MembershipHandler{
		membershipService: services.NewMembershipService(db),
	}
}

// Join adds the current user to a project (idempotent)
// POST /api/projects/:id/join
func (h *MembershipHandler) Join(c *gin.Context) {
	err := h.membershipService.Join(middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "joined project"})
}

// Leave removes the current user from a project (idempotent)
// DELETE /api/projects/:id/leave
func (h *MembershipHandler) Leave(c *gin.Context) {
	err := h.membershipService.Leave(middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "left project"})
}

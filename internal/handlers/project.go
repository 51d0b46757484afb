package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/huangang/skillhub/backend/internal/middleware"
	"github.com/huangang/skillhub/backend/internal/services"
	"github.com/huangang/skillhub/backend/pkg/response"
	"gorm.io/gorm"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(db *gorm.DB) *ProjectHandler {
	return &ProjectHandler{
		projectService: services.NewProjectService(db),
	}
}

// ListApproved returns the public catalog of approved projects
// GET /api/projects
func (h *ProjectHandler) ListApproved(c *gin.Context) {
	projects, err := h.projectService.ListApproved()
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// Submit creates a new pending project
// POST /api/projects
func (h *ProjectHandler) Submit(c *gin.Context) {
	var req services.SubmitProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.Submit(&req, middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"project_id": project.ID})
}

// ListPending returns projects awaiting moderation
// GET /api/admin/projects/pending
func (h *ProjectHandler) ListPending(c *gin.Context) {
	projects, err := h.projectService.ListPending()
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// Approve transitions a project to approved
// PUT /api/admin/projects/:id/approve
func (h *ProjectHandler) Approve(c *gin.Context) {
	if err := h.projectService.Approve(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "project approved"})
}

// Reject transitions a project to rejected
// PUT /api/admin/projects/:id/reject
func (h *ProjectHandler) Reject(c *gin.Context) {
	if err := h.projectService.Reject(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "project rejected"})
}

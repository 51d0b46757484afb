package services

import (
	"errors"

	"github.com/huangang/skillhub/backend/internal/models"
	"github.com/huangang/skillhub/backend/pkg/response"
	"gorm.io/gorm"
)

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

type SubmitProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Difficulty  string `json:"difficulty"`
	Location    string `json:"location"`
}

// Submit creates a new project in pending state. The submitter's role is
// irrelevant: even admin submissions wait for approval.
func (s *ProjectService) Submit(req *SubmitProjectRequest, creatorID string) (*models.Project, error) {
	project := models.Project{
		ID:          models.NewID(),
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Difficulty:  req.Difficulty,
		Location:    req.Location,
		Status:      models.ProjectStatusPending,
		CreatedBy:   &creatorID,
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// ListApproved returns the public catalog.
func (s *ProjectService) ListApproved() ([]models.Project, error) {
	var projects []models.Project
	err := s.db.Where("status = ?", models.ProjectStatusApproved).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

// ListPending returns projects awaiting moderation.
func (s *ProjectService) ListPending() ([]models.Project, error) {
	var projects []models.Project
	err := s.db.Where("status = ?", models.ProjectStatusPending).
		Order("created_at ASC").
		Find(&projects).Error
	return projects, err
}

// Approve moves a project to approved. The transition is an unconditional
// last-writer-wins write: re-approving, or approving a rejected project, is
// permitted and idempotent in effect.
func (s *ProjectService) Approve(id string) error {
	return s.setStatus(id, models.ProjectStatusApproved)
}

// Reject moves a project to rejected. Symmetric to Approve.
func (s *ProjectService) Reject(id string) error {
	return s.setStatus(id, models.ProjectStatusRejected)
}

func (s *ProjectService) setStatus(id, status string) error {
	var project models.Project
	if err := s.db.First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("project not found")
		}
		return err
	}

	project.Status = status
	return s.db.Save(&project).Error
}

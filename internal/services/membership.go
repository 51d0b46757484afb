package services

import (
	"errors"

	"github.com/huangang/skillhub/backend/internal/models"
	"github.com/huangang/skillhub/backend/pkg/response"
	"gorm.io/gorm"
)

type MembershipService struct {
	db *gorm.DB
}

func NewMembershipService(db *gorm.DB) *MembershipService {
	return &MembershipService{db: db}
}

// Join records a user's membership in a project. Idempotent: re-joining an
// already-joined project succeeds without creating a second row. The target
// project must exist, but its approval status is not checked.
func (s *MembershipService) Join(userID, projectID string) error {
	var count int64
	if err := s.db.Model(&models.Project{}).Where("id = ?", projectID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return response.NewNotFound("project not found")
	}

	membership := models.Membership{UserID: userID, ProjectID: projectID}
	err := s.db.Where("user_id = ? AND project_id = ?", userID, projectID).
		FirstOrCreate(&membership).Error
	if err != nil {
		// Concurrent join of the same pair; the composite unique index held.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}
	return nil
}

// Leave removes a membership. Idempotent: leaving a project the user never
// joined is not an error.
func (s *MembershipService) Leave(userID, projectID string) error {
	return s.db.Where("user_id = ? AND project_id = ?", userID, projectID).
		Delete(&models.Membership{}).Error
}

// ProjectIDsForUser returns the ids of every project the user has joined.
func (s *MembershipService) ProjectIDsForUser(userID string) ([]string, error) {
	ids := []string{}
	err := s.db.Model(&models.Membership{}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Pluck("project_id", &ids).Error
	return ids, err
}

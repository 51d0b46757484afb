package services

import (
	"errors"
	"net/http"
	"testing"

	"github.com/huangang/skillhub/backend/internal/models"
	"github.com/huangang/skillhub/backend/pkg/response"
)

func TestSubmit_StartsPending(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)
	creator := createTestUser(t, db, "creator@example.com")

	project, err := svc.Submit(&SubmitProjectRequest{
		Name:        "Community Garden Tracker",
		Description: "Track plots and harvests",
		Type:        "web",
		Difficulty:  "beginner",
		Location:    "remote",
	}, creator.ID)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if project.Status != models.ProjectStatusPending {
		t.Errorf("status = %q, expected %q", project.Status, models.ProjectStatusPending)
	}
	if project.CreatedBy == nil || *project.CreatedBy != creator.ID {
		t.Error("creator reference should be set for user submissions")
	}
	if project.ID == "" {
		t.Error("Submit() should assign an id")
	}
}

func TestListApproved_ExcludesPendingAndRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)

	createTestProject(t, db, "pending one", models.ProjectStatusPending)
	createTestProject(t, db, "rejected one", models.ProjectStatusRejected)
	approved := createTestProject(t, db, "approved one", models.ProjectStatusApproved)

	projects, err := svc.ListApproved()
	if err != nil {
		t.Fatalf("ListApproved() error = %v", err)
	}

	if len(projects) != 1 {
		t.Fatalf("expected 1 approved project, got %d", len(projects))
	}
	if projects[0].ID != approved.ID {
		t.Errorf("wrong project returned: %q", projects[0].Name)
	}
}

func TestApprove_MakesProjectVisible(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)
	creator := createTestUser(t, db, "creator@example.com")

	project, _ := svc.Submit(&SubmitProjectRequest{Name: "New Project"}, creator.ID)

	before, _ := svc.ListApproved()
	if len(before) != 0 {
		t.Fatalf("submission should not be visible before approval, got %d", len(before))
	}

	if err := svc.Approve(project.ID); err != nil {
		t.Fatalf("Approve() error = %v", err)
	}

	after, _ := svc.ListApproved()
	if len(after) != 1 || after[0].ID != project.ID {
		t.Error("approved project should appear in the public catalog")
	}
}

func TestApprove_UnknownID(t *testing.T) {
	svc := NewProjectService(newTestDB(t))

	err := svc.Approve("no-such-project")
	var appErr *response.AppError
	if !errors.As(err, &appErr) || appErr.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected 404 AppError, got %v", err)
	}
}

func TestReject_UnknownID(t *testing.T) {
	svc := NewProjectService(newTestDB(t))

	err := svc.Reject("no-such-project")
	var appErr *response.AppError
	if !errors.As(err, &appErr) || appErr.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected 404 AppError, got %v", err)
	}
}

func TestApprove_Idempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)
	project := createTestProject(t, db, "twice approved", models.ProjectStatusApproved)

	if err := svc.Approve(project.ID); err != nil {
		t.Fatalf("re-approving an approved project should succeed, got %v", err)
	}

	var got models.Project
	db.First(&got, "id = ?", project.ID)
	if got.Status != models.ProjectStatusApproved {
		t.Errorf("status = %q, expected %q", got.Status, models.ProjectStatusApproved)
	}
}

func TestApproveReject_DirectTransitions(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)
	project := createTestProject(t, db, "flip flop", models.ProjectStatusApproved)

	// Admin actions are unconditional writes: approved -> rejected -> approved.
	if err := svc.Reject(project.ID); err != nil {
		t.Fatalf("Reject() error = %v", err)
	}
	var got models.Project
	db.First(&got, "id = ?", project.ID)
	if got.Status != models.ProjectStatusRejected {
		t.Fatalf("status = %q, expected %q", got.Status, models.ProjectStatusRejected)
	}

	if err := svc.Approve(project.ID); err != nil {
		t.Fatalf("Approve() error = %v", err)
	}
	db.First(&got, "id = ?", project.ID)
	if got.Status != models.ProjectStatusApproved {
		t.Errorf("status = %q, expected %q", got.Status, models.ProjectStatusApproved)
	}
}

func TestListPending(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)

	createTestProject(t, db, "approved one", models.ProjectStatusApproved)
	p1 := createTestProject(t, db, "pending one", models.ProjectStatusPending)
	p2 := createTestProject(t, db, "pending two", models.ProjectStatusPending)

	pending, err := svc.ListPending()
	if err != nil {
		t.Fatalf("ListPending() error = %v", err)
	}

	if len(pending) != 2 {
		t.Fatalf("expected 2 pending projects, got %d", len(pending))
	}
	ids := map[string]bool{pending[0].ID: true, pending[1].ID: true}
	if !ids[p1.ID] || !ids[p2.ID] {
		t.Error("pending list should contain both pending projects")
	}
}

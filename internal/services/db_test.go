package services

import (
	"strings"
	"testing"

	"github.com/huangang/skillhub/backend/internal/models"
	"github.com/huangang/skillhub/backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	utils.SetJWTSecret("test-secret-for-service-tests")
	utils.SetHashCost(bcrypt.MinCost)
}

// newTestDB opens a named in-memory sqlite database. The shared cache keeps
// the database alive across the pool's connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := "file:" + name + "?mode=memory&cache=shared"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Project{}, &models.Membership{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := utils.HashPassword("password123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		ID:       models.NewID(),
		Email:    email,
		Password: hash,
		Name:     "Test User",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func createTestProject(t *testing.T, db *gorm.DB, name, status string) *models.Project {
	t.Helper()

	project := &models.Project{
		ID:     models.NewID(),
		Name:   name,
		Status: status,
	}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("failed to create test project: %v", err)
	}
	return project
}

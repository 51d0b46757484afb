package services

import (
	"errors"
	"sync"

	"github.com/huangang/skillhub/backend/internal/config"
	"github.com/huangang/skillhub/backend/internal/models"
	"github.com/huangang/skillhub/backend/internal/utils"
	"github.com/huangang/skillhub/backend/pkg/response"
	"gorm.io/gorm"
)

type AuthService struct {
	db        *gorm.DB
	jwtConfig *config.JWTConfig

	// mu serializes the first-user-admin decision. Two signups racing the
	// empty users table must not both win the admin flag.
	mu sync.Mutex
}

func NewAuthService(db *gorm.DB, jwtCfg *config.JWTConfig) *AuthService {
	return &AuthService{
		db:        db,
		jwtConfig: jwtCfg,
	}
}

type SignupRequest struct {
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	Name     string   `json:"name" binding:"required"`
	Location string   `json:"location"`
	Skills   []string `json:"skills"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Signup registers a new account and returns a fresh token. The very first
// account created in the system gets the admin flag; the count-then-create
// runs under the service mutex and a single transaction so concurrent first
// signups serialize.
func (s *AuthService) Signup(req *SignupRequest) (*AuthResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:       models.NewID(),
		Email:    req.Email,
		Password: hashed,
		Name:     req.Name,
		Location: req.Location,
		Skills:   req.Skills,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.User{}).Where("email = ?", req.Email).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return response.NewBadRequest("email already registered")
		}

		var total int64
		if err := tx.Model(&models.User{}).Count(&total).Error; err != nil {
			return err
		}
		user.IsAdmin = total == 0

		return tx.Create(&user).Error
	})
	if err != nil {
		// The unique email index backstops the in-transaction check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewBadRequest("email already registered")
		}
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.IsAdmin, s.jwtConfig.ExpireHour)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Token: token, User: &user}, nil
}

// Login authenticates by email and password. The error never reveals which
// factor failed.
func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewUnauthorized("invalid email or password")
		}
		return nil, err
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		return nil, response.NewUnauthorized("invalid email or password")
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.IsAdmin, s.jwtConfig.ExpireHour)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Token: token, User: &user}, nil
}

// GetUserByID retrieves a user by ID.
func (s *AuthService) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("user not found")
		}
		return nil, err
	}
	return &user, nil
}

// UpdateSkills replaces the user's skill list, preserving element order.
func (s *AuthService) UpdateSkills(userID string, skills []string) (*models.User, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	user.Skills = skills
	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword replaces the stored hash with one for the new plaintext.
func (s *AuthService) ChangePassword(userID, newPassword string) error {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return err
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	return s.db.Save(user).Error
}

package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/locumconnect/locum-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrInvalidStatus  = errors.New("invalid verification status")
	ErrNotAPharmacist = errors.New("verification status applies to pharmacists only")
)

// UserService is the account directory: lookups, role listings and the
// admin-driven pharmacist verification lifecycle.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetByGoogleID(googleID string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("google_id = ?", googleID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// List returns all users, newest first, optionally restricted to one role.
func (s *UserService) List(role string) ([]models.User, error) {
	var users []models.User
	q := s.db.Order("created_at DESC")
	if role != "" {
		q = q.Where("role = ?", role)
	}
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// SetVerification moves a pharmacist through the verification lifecycle.
// Handlers gate this behind the admin role.
func (s *UserService) SetVerification(id uuid.UUID, status string) (*models.User, error) {
	switch status {
	case models.VerificationPending, models.VerificationVerified, models.VerificationRejected:
	default:
		return nil, ErrInvalidStatus
	}

	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RolePharmacist {
		return nil, ErrNotAPharmacist
	}

	if err := s.db.Model(user).Update("verification_status", status).Error; err != nil {
		return nil, err
	}
	user.VerificationStatus = status
	return user, nil
}

package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/locumconnect/locum-backend/internal/config"
	"github.com/locumconnect/locum-backend/internal/dto"
	"github.com/locumconnect/locum-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
	ErrInvalidRole        = errors.New("role must be pharmacist or owner")
)

type AuthService struct {
	db         *gorm.DB
	cfg        *config.Config
	googleJWKS *GoogleJWKSClient
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{
		db:         db,
		cfg:        cfg,
		googleJWKS: NewGoogleJWKSClient(),
	}
}

func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if len(req.Email) == 0 || len(req.Password) < 8 {
		return nil, errors.New("email required and password must be at least 8 characters")
	}
	if req.Role != models.RolePharmacist && req.Role != models.RoleOwner {
		return nil, ErrInvalidRole
	}

	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Email:    req.Email,
		Password: string(hash),
		Name:     req.Name,
		Role:     req.Role,
	}
	switch req.Role {
	case models.RoleOwner:
		user.PharmacyName = req.PharmacyName
		user.Address = req.Address
		user.Phone = req.Phone
	case models.RolePharmacist:
		// Pharmacists always enter the verification queue.
		user.VerificationStatus = models.VerificationPending
		user.LicenseNumber = req.LicenseNumber
		user.YearsExperience = req.YearsExperience
		user.Bio = req.Bio
		if len(req.Specialties) > 0 {
			if b, err := json.Marshal(req.Specialties); err == nil {
				user.Specialties = datatypes.JSON(b)
			}
		}
	}

	if err := s.db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.generateTokenPair(&user)
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	// OAuth-only accounts have no password and cannot log in with one.
	if user.Password == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.generateTokenPair(&user)
}

func (s *AuthService) Refresh(req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	tokenHash := hashToken(req.RefreshToken)

	var stored models.RefreshToken
	if err := s.db.Where("token_hash = ? AND revoked = false", tokenHash).First(&stored).Error; err != nil {
		return nil, ErrInvalidToken
	}

	if time.Now().After(stored.ExpiresAt) {
		s.db.Model(&stored).Update("revoked", true)
		return nil, ErrInvalidToken
	}

	s.db.Model(&stored).Update("revoked", true)

	var user models.User
	if err := s.db.First(&user, "id = ?", stored.UserID).Error; err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	return s.generateTokenPair(&user)
}

func (s *AuthService) Logout(req *dto.LogoutRequest) error {
	tokenHash := hashToken(req.RefreshToken)
	return s.db.Model(&models.RefreshToken{}).
		Where("token_hash = ?", tokenHash).
		Update("revoked", true).Error
}

// GoogleSignIn verifies a Google identity token, then finds the account by
// google_id, links an existing account by email, or creates a new one with the
// requested role (pharmacist by default).
func (s *AuthService) GoogleSignIn(req *dto.GoogleSignInRequest) (*dto.AuthResponse, error) {
	if req.IDToken == "" {
		return nil, errors.New("identity token is required")
	}

	claims, err := s.googleJWKS.VerifyToken(req.IDToken, s.cfg.GoogleClientID)
	if err != nil {
		slog.Error("google token verification failed", "error", err)
		return nil, fmt.Errorf("failed to verify Google identity token: %w", err)
	}

	googleID := claims.Sub
	email := claims.Email
	if email == "" {
		return nil, errors.New("google token carries no email")
	}

	var user models.User
	err = s.db.Where("google_id = ?", googleID).First(&user).Error
	if err == nil {
		return s.generateTokenPair(&user)
	}

	// Link by email when the account was registered with credentials first.
	if err := s.db.Where("email = ?", email).First(&user).Error; err == nil {
		s.db.Model(&user).Updates(map[string]interface{}{
			"google_id": googleID,
			"image":     claims.Picture,
		})
		user.GoogleID = &googleID
		return s.generateTokenPair(&user)
	}

	role := req.Role
	if role == "" {
		role = models.RolePharmacist
	}
	if role != models.RolePharmacist && role != models.RoleOwner {
		return nil, ErrInvalidRole
	}

	name := claims.Name
	if name == "" {
		name = strings.Split(email, "@")[0]
	}

	user = models.User{
		ID:       uuid.New(),
		Email:    email,
		Password: "",
		Name:     name,
		Role:     role,
		GoogleID: &googleID,
		Image:    claims.Picture,
	}
	if role == models.RolePharmacist {
		user.VerificationStatus = models.VerificationPending
	}
	if err := s.db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create Google user: %w", err)
	}

	return s.generateTokenPair(&user)
}

func (s *AuthService) generateTokenPair(user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateRefreshToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.NewUserResponse(user),
	}, nil
}

func (s *AuthService) generateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":                 user.ID.String(),
		"email":               user.Email,
		"role":                user.Role,
		"verification_status": user.VerificationStatus,
		"iat":                 time.Now().Unix(),
		"exp":                 time.Now().Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) generateRefreshToken(user *models.User) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(raw)

	stored := models.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: hashToken(token),
		ExpiresAt: time.Now().Add(s.cfg.JWTRefreshExpiry),
	}
	if err := s.db.Create(&stored).Error; err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return token, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", sum)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

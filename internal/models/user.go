package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User roles.
const (
	RoleAdmin      = "admin"
	RoleOwner      = "owner"
	RolePharmacist = "pharmacist"
)

// Pharmacist verification lifecycle.
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

// User covers all three roles; owner and pharmacist profile fields are
// populated only for the matching role.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email    string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password string    `gorm:"size:255" json:"-"` // bcrypt hash; empty for OAuth-only accounts
	Name     string    `gorm:"not null;size:255" json:"name"`
	Role     string    `gorm:"size:20;not null;index" json:"role"`
	GoogleID *string   `gorm:"size:255;uniqueIndex" json:"-"`
	Image    string    `gorm:"size:512" json:"image,omitempty"`

	// Pharmacist only; starts at "pending", mutated only by admin action.
	VerificationStatus string `gorm:"size:20;index" json:"verification_status,omitempty"`

	// Owner profile.
	PharmacyName string `gorm:"size:255" json:"pharmacy_name,omitempty"`
	Address      string `gorm:"size:500" json:"address,omitempty"`
	Phone        string `gorm:"size:50" json:"phone,omitempty"`

	// Pharmacist profile.
	LicenseNumber   string         `gorm:"size:100" json:"license_number,omitempty"`
	YearsExperience int            `json:"years_experience,omitempty"`
	Specialties     datatypes.JSON `json:"specialties,omitempty"`
	Bio             string         `gorm:"size:2000" json:"bio,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

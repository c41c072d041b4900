package dto

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/locumconnect/locum-backend/internal/models"
)

// UserResponse is the only serialized form of a User that leaves the API.
// The password hash never appears here.
type UserResponse struct {
	ID                 uuid.UUID `json:"id"`
	Email              string    `json:"email"`
	Name               string    `json:"name"`
	Role               string    `json:"role"`
	Image              string    `json:"image,omitempty"`
	VerificationStatus string    `json:"verification_status,omitempty"`
	PharmacyName       string    `json:"pharmacy_name,omitempty"`
	Address            string    `json:"address,omitempty"`
	Phone              string    `json:"phone,omitempty"`
	LicenseNumber      string    `json:"license_number,omitempty"`
	YearsExperience    int       `json:"years_experience,omitempty"`
	Specialties        []string  `json:"specialties,omitempty"`
	Bio                string    `json:"bio,omitempty"`
	CreatedAt          string    `json:"created_at"`
}

func NewUserResponse(u *models.User) UserResponse {
	var specialties []string
	if len(u.Specialties) > 0 {
		_ = json.Unmarshal(u.Specialties, &specialties)
	}
	return UserResponse{
		ID:                 u.ID,
		Email:              u.Email,
		Name:               u.Name,
		Role:               u.Role,
		Image:              u.Image,
		VerificationStatus: u.VerificationStatus,
		PharmacyName:       u.PharmacyName,
		Address:            u.Address,
		Phone:              u.Phone,
		LicenseNumber:      u.LicenseNumber,
		YearsExperience:    u.YearsExperience,
		Specialties:        specialties,
		Bio:                u.Bio,
		CreatedAt:          u.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

func NewUserResponseList(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}

type SetVerificationRequest struct {
	VerificationStatus string `json:"verification_status"`
}

type AdminStatsResponse struct {
	TotalPharmacists     int64 `json:"total_pharmacists"`
	PendingVerifications int64 `json:"pending_verifications"`
	VerifiedPharmacists  int64 `json:"verified_pharmacists"`
	TotalOwners          int64 `json:"total_owners"`
	TotalShifts          int64 `json:"total_shifts"`
	OpenShifts           int64 `json:"open_shifts"`
}

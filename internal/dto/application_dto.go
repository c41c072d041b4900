package dto

import (
	"github.com/google/uuid"
	"github.com/locumconnect/locum-backend/internal/models"
)

type CreateApplicationRequest struct {
	ShiftID uuid.UUID `json:"shift_id"`
	Message string    `json:"message,omitempty"`
}

type UpdateApplicationRequest struct {
	Status string `json:"status"` // approved, rejected or withdrawn
}

// ApplicationResponse enriches the application row with its shift and the
// sanitized pharmacist record, matching what dashboards need in one call.
type ApplicationResponse struct {
	ID           uuid.UUID      `json:"id"`
	ShiftID      uuid.UUID      `json:"shift_id"`
	PharmacistID uuid.UUID      `json:"pharmacist_id"`
	Status       string         `json:"status"`
	Message      string         `json:"message,omitempty"`
	AppliedAt    string         `json:"applied_at"`
	Shift        *ShiftResponse `json:"shift,omitempty"`
	Pharmacist   *UserResponse  `json:"pharmacist,omitempty"`
}

func NewApplicationResponse(a *models.Application, shift *models.Shift, pharmacist *models.User) ApplicationResponse {
	resp := ApplicationResponse{
		ID:           a.ID,
		ShiftID:      a.ShiftID,
		PharmacistID: a.PharmacistID,
		Status:       a.Status,
		Message:      a.Message,
		AppliedAt:    a.AppliedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
	if shift != nil {
		s := NewShiftResponse(shift)
		resp.Shift = &s
	}
	if pharmacist != nil {
		u := NewUserResponse(pharmacist)
		resp.Pharmacist = &u
	}
	return resp
}

package dto

import (
	"github.com/locumconnect/locum-backend/internal/models"
	"github.com/locumconnect/locum-backend/internal/pricing"
)

type CreateShiftRequest struct {
	Location     string   `json:"location"`
	StartDate    string   `json:"start_date"` // YYYY-MM-DD
	EndDate      string   `json:"end_date"`   // YYYY-MM-DD
	StartTime    string   `json:"start_time"` // HH:MM
	EndTime      string   `json:"end_time"`   // HH:MM
	HoursPerDay  int      `json:"hours_per_day"`
	HourlyRate   float64  `json:"hourly_rate"`
	Description  string   `json:"description,omitempty"`
	Requirements []string `json:"requirements,omitempty"`
}

type ApproveShiftRequest struct {
	AdminNotes   string  `json:"admin_notes,omitempty"`
	OverrideRate float64 `json:"override_rate,omitempty"`
}

type RejectShiftRequest struct {
	AdminNotes string `json:"admin_notes"`
}

// ShiftResponse adds the platform-fee figures to the stored row. The hourly
// rate is what the pharmacist earns; the owner cost includes the markup.
type ShiftResponse struct {
	models.Shift
	OwnerHourlyCost float64 `json:"owner_hourly_cost"`
	TotalEarnings   float64 `json:"total_earnings"`
	TotalOwnerCost  float64 `json:"total_owner_cost"`
}

func NewShiftResponse(s *models.Shift) ShiftResponse {
	return ShiftResponse{
		Shift:           *s,
		OwnerHourlyCost: pricing.OwnerCost(s.HourlyRate),
		TotalEarnings:   pricing.TotalEarnings(s.HourlyRate, s.TotalHours),
		TotalOwnerCost:  pricing.TotalCost(s.HourlyRate, s.TotalHours),
	}
}

func NewShiftResponseList(shifts []models.Shift) []ShiftResponse {
	out := make([]ShiftResponse, 0, len(shifts))
	for i := range shifts {
		out = append(out, NewShiftResponse(&shifts[i]))
	}
	return out
}

// ShiftFilters are conjunctive and all optional; a zero value means no
// constraint, not "match empty".
type ShiftFilters struct {
	MinRate     float64
	MaxRate     float64
	MinDuration int
	MaxDuration int
	Location    string
	StartDate   string
	EndDate     string
}

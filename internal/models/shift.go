package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Shift lifecycle. New shifts always enter at pending_review; only an admin
// moves them to open or rejected. Filled happens solely through application
// approval. Filled, rejected and cancelled are terminal.
const (
	ShiftPendingReview = "pending_review"
	ShiftOpen          = "open"
	ShiftFilled        = "filled"
	ShiftRejected      = "rejected"
	ShiftCancelled     = "cancelled"
)

// Shift is a staffing opportunity posted by a pharmacy owner.
type Shift struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`

	// Copied from the owner record at creation time so listings survive later
	// profile edits.
	PharmacyName string `gorm:"size:255" json:"pharmacy_name"`
	Location     string `gorm:"not null;size:500" json:"location"`

	// Calendar dates as YYYY-MM-DD, times as HH:MM.
	StartDate string `gorm:"not null;size:10;index" json:"start_date"`
	EndDate   string `gorm:"not null;size:10" json:"end_date"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	HoursPerDay int     `json:"hours_per_day"`
	HourlyRate  float64 `gorm:"not null" json:"hourly_rate"` // pharmacist-facing rate
	TotalHours  int     `json:"total_hours"`                 // hours_per_day x inclusive day count, fixed at creation

	Description  string         `gorm:"size:2000" json:"description,omitempty"`
	Requirements datatypes.JSON `json:"requirements,omitempty"`

	Status     string `gorm:"size:20;not null;index" json:"status"`
	AdminNotes string `gorm:"size:1000" json:"admin_notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

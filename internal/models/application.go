package models

import (
	"time"

	"github.com/google/uuid"
)

// Application lifecycle. Created at pending; approval fills the shift and
// rejects competing pending applications in the same transaction. No
// transition leads out of approved, rejected or withdrawn.
const (
	ApplicationPending   = "pending"
	ApplicationApproved  = "approved"
	ApplicationRejected  = "rejected"
	ApplicationWithdrawn = "withdrawn"
)

// Application is a pharmacist's request to work a shift. The composite unique
// index enforces at most one application per pharmacist per shift.
type Application struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ShiftID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_shift_pharmacist" json:"shift_id"`
	PharmacistID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_shift_pharmacist;index" json:"pharmacist_id"`
	Status       string    `gorm:"size:20;not null;index" json:"status"`
	Message      string    `gorm:"size:2000" json:"message,omitempty"`
	AppliedAt    time.Time `gorm:"not null" json:"applied_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Shift      Shift `gorm:"foreignKey:ShiftID;constraint:OnDelete:RESTRICT" json:"-"`
	Pharmacist User  `gorm:"foreignKey:PharmacistID" json:"-"`
}

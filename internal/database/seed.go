package database

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/locumconnect/locum-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// SeedDemoData inserts demo accounts and shifts for local development. It is
// a no-op when any user already exists.
func SeedDemoData() error {
	var count int64
	if err := DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash := func(pw string) string {
		h, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		return string(h)
	}

	admin := models.User{
		ID:       uuid.New(),
		Email:    "admin@locumconnect.com",
		Password: hash("admin-demo-123"),
		Name:     "System Admin",
		Role:     models.RoleAdmin,
	}
	owner := models.User{
		ID:           uuid.New(),
		Email:        "owner1@pharmacy.com",
		Password:     hash("owner-demo-123"),
		Name:         "John's Pharmacy",
		Role:         models.RoleOwner,
		PharmacyName: "John's Community Pharmacy",
		Address:      "123 Main Street, Boston, MA 02101",
		Phone:        "(617) 555-0101",
	}
	pharmacist := models.User{
		ID:                 uuid.New(),
		Email:              "pharmacist1@email.com",
		Password:           hash("pharm-demo-123"),
		Name:               "Dr. Sarah Johnson",
		Role:               models.RolePharmacist,
		VerificationStatus: models.VerificationVerified,
		LicenseNumber:      "MA-RPH-12345",
		YearsExperience:    8,
		Specialties:        datatypes.JSON([]byte(`["Retail","Compounding"]`)),
		Bio:                "Experienced retail pharmacist with a focus on patient care.",
	}

	if err := DB.Create([]*models.User{&admin, &owner, &pharmacist}).Error; err != nil {
		return err
	}

	shifts := []models.Shift{
		{
			ID:           uuid.New(),
			OwnerID:      owner.ID,
			PharmacyName: owner.PharmacyName,
			Location:     owner.Address,
			StartDate:    "2026-02-10",
			EndDate:      "2026-02-10",
			StartTime:    "09:00",
			EndTime:      "17:00",
			HoursPerDay:  8,
			HourlyRate:   60,
			TotalHours:   8,
			Description:  "Regular retail shift. Must be comfortable with high-volume dispensing.",
			Requirements: datatypes.JSON([]byte(`["Retail experience","State license"]`)),
			Status:       models.ShiftOpen,
		},
		{
			ID:           uuid.New(),
			OwnerID:      owner.ID,
			PharmacyName: owner.PharmacyName,
			Location:     owner.Address,
			StartDate:    "2026-02-15",
			EndDate:      "2026-02-17",
			StartTime:    "08:00",
			EndTime:      "16:00",
			HoursPerDay:  8,
			HourlyRate:   65,
			TotalHours:   24,
			Description:  "Weekend coverage needed. Three consecutive days.",
			Requirements: datatypes.JSON([]byte(`["Weekend availability","State license"]`)),
			Status:       models.ShiftOpen,
		},
	}
	if err := DB.Create(&shifts).Error; err != nil {
		return err
	}

	slog.Info("demo data seeded", "users", 3, "shifts", len(shifts))
	return nil
}

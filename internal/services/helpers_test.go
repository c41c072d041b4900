package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/locumconnect/locum-backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database per test. The shared-cache
// name keeps the database alive across the connections gorm pools.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Shift{},
		&models.Application{},
		&models.RefreshToken{},
	))
	return db
}

func createOwner(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	owner := &models.User{
		ID:           uuid.New(),
		Email:        fmt.Sprintf("owner-%s@pharmacy.test", uuid.NewString()[:8]),
		Name:         "Test Owner",
		Role:         models.RoleOwner,
		PharmacyName: "Test Pharmacy",
		Address:      "1 Test Street, Boston, MA",
	}
	require.NoError(t, db.Create(owner).Error)
	return owner
}

func createPharmacist(t *testing.T, db *gorm.DB, verification string) *models.User {
	t.Helper()
	pharmacist := &models.User{
		ID:                 uuid.New(),
		Email:              fmt.Sprintf("pharm-%s@test.test", uuid.NewString()[:8]),
		Name:               "Test Pharmacist",
		Role:               models.RolePharmacist,
		VerificationStatus: verification,
	}
	require.NoError(t, db.Create(pharmacist).Error)
	return pharmacist
}

func createShift(t *testing.T, db *gorm.DB, ownerID uuid.UUID, status string, rate float64) *models.Shift {
	t.Helper()
	shift := &models.Shift{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		PharmacyName: "Test Pharmacy",
		Location:     "1 Test Street, Boston, MA",
		StartDate:    "2026-03-01",
		EndDate:      "2026-03-01",
		StartTime:    "09:00",
		EndTime:      "17:00",
		HoursPerDay:  8,
		HourlyRate:   rate,
		TotalHours:   8,
		Status:       status,
	}
	require.NoError(t, db.Create(shift).Error)
	return shift
}

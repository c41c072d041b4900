package services

import (
	"testing"

	"github.com/locumconnect/locum-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetVerification(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	pharmacist := createPharmacist(t, db, models.VerificationPending)

	verified, err := svc.SetVerification(pharmacist.ID, models.VerificationVerified)
	require.NoError(t, err)
	assert.Equal(t, models.VerificationVerified, verified.VerificationStatus)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", pharmacist.ID).Error)
	assert.Equal(t, models.VerificationVerified, stored.VerificationStatus)
}

func TestSetVerificationRejectsUnknownStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	pharmacist := createPharmacist(t, db, models.VerificationPending)

	_, err := svc.SetVerification(pharmacist.ID, "maybe")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestSetVerificationAppliesToPharmacistsOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	owner := createOwner(t, db)

	_, err := svc.SetVerification(owner.ID, models.VerificationVerified)
	assert.ErrorIs(t, err, ErrNotAPharmacist)
}

func TestListFiltersByRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	createOwner(t, db)
	createPharmacist(t, db, models.VerificationPending)
	createPharmacist(t, db, models.VerificationVerified)

	pharmacists, err := svc.List(models.RolePharmacist)
	require.NoError(t, err)
	assert.Len(t, pharmacists, 2)

	all, err := svc.List("")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

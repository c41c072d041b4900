package services

import (
	"testing"

	"github.com/locumconnect/locum-backend/internal/dto"
	"github.com/locumconnect/locum-backend/internal/models"
	"github.com/locumconnect/locum-backend/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyRequiresVerifiedPharmacist(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db, notify.NewConsole())
	owner := createOwner(t, db)
	shift := createShift(t, db, owner.ID, models.ShiftOpen, 60)
	pending := createPharmacist(t, db, models.VerificationPending)

	_, err := svc.Apply(pending.ID, &dto.CreateApplicationRequest{ShiftID: shift.ID})
	assert.ErrorIs(t, err, ErrPharmacistNotVerified)
}

func TestApplyRejectsDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db, notify.NewConsole())
	owner := createOwner(t, db)
	shift := createShift(t, db, owner.ID, models.ShiftOpen, 60)
	pharmacist := createPharmacist(t, db, models.VerificationVerified)

	first, err := svc.Apply(pharmacist.ID, &dto.CreateApplicationRequest{ShiftID: shift.ID, Message: "interested"})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationPending, first.Status)

	_, err = svc.Apply(pharmacist.ID, &dto.CreateApplicationRequest{ShiftID: shift.ID})
	assert.ErrorIs(t, err, ErrAlreadyApplied)

	var count int64
	require.NoError(t, db.Model(&models.Application{}).
		Where("shift_id = ? AND pharmacist_id = ?", shift.ID, pharmacist.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestApproveFillsShiftAndRejectsCompetitors(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db, notify.NewConsole())
	owner := createOwner(t, db)
	shift := createShift(t, db, owner.ID, models.ShiftOpen, 60)

	winner := createPharmacist(t, db, models.VerificationVerified)
	loser := createPharmacist(t, db, models.VerificationVerified)

	winnerApp, err := svc.Apply(winner.ID, &dto.CreateApplicationRequest{ShiftID: shift.ID})
	require.NoError(t, err)
	loserApp, err := svc.Apply(loser.ID, &dto.CreateApplicationRequest{ShiftID: shift.ID})
	require.NoError(t, err)

	approved, err := svc.Approve(winnerApp.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationApproved, approved.Status)

	var reloadedShift models.Shift
	require.NoError(t, db.First(&reloadedShift, "id = ?", shift.ID).Error)
	assert.Equal(t, models.ShiftFilled, reloadedShift.Status)

	var reloadedLoser models.Application
	require.NoError(t, db.First(&reloadedLoser, "id = ?", loserApp.ID).Error)
	assert.Equal(t, models.ApplicationRejected, reloadedLoser.Status)
}

func TestApproveFailsWhenShiftNotOpen(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db, notify.NewConsole())
	owner := createOwner(t, db)
	shift := createShift(t, db, owner.ID, models.ShiftPendingReview, 60)
	pharmacist := createPharmacist(t, db, models.VerificationVerified)

	application, err := svc.Apply(pharmacist.ID, &dto.CreateApplicationRequest{ShiftID: shift.ID})
	require.NoError(t, err)

	_, err = svc.Approve(application.ID)
	assert.ErrorIs(t, err, ErrShiftNotOpen)

	// The failed approval must leave the application untouched.
	reloaded, err := svc.GetByID(application.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationPending, reloaded.Status)
}

func TestApproveIsNotRepeatable(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db, notify.NewConsole())
	owner := createOwner(t, db)
	shift := createShift(t, db, owner.ID, models.ShiftOpen, 60)
	pharmacist := createPharmacist(t, db, models.VerificationVerified)

	application, err := svc.Apply(pharmacist.ID, &dto.CreateApplicationRequest{ShiftID: shift.ID})
	require.NoError(t, err)

	_, err = svc.Approve(application.ID)
	require.NoError(t, err)

	_, err = svc.Approve(application.ID)
	assert.ErrorIs(t, err, ErrApplicationNotPending)
}

func TestRejectSettlesPendingOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db, notify.NewConsole())
	owner := createOwner(t, db)
	shift := createShift(t, db, owner.ID, models.ShiftOpen, 60)
	pharmacist := createPharmacist(t, db, models.VerificationVerified)

	application, err := svc.Apply(pharmacist.ID, &dto.CreateApplicationRequest{ShiftID: shift.ID})
	require.NoError(t, err)

	rejected, err := svc.Reject(application.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationRejected, rejected.Status)

	_, err = svc.Reject(application.ID)
	assert.ErrorIs(t, err, ErrApplicationNotPending)

	// Rejecting one application never touches the shift.
	var reloadedShift models.Shift
	require.NoError(t, db.First(&reloadedShift, "id = ?", shift.ID).Error)
	assert.Equal(t, models.ShiftOpen, reloadedShift.Status)
}

func TestWithdrawBelongsToApplicant(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db, notify.NewConsole())
	owner := createOwner(t, db)
	shift := createShift(t, db, owner.ID, models.ShiftOpen, 60)
	pharmacist := createPharmacist(t, db, models.VerificationVerified)
	other := createPharmacist(t, db, models.VerificationVerified)

	application, err := svc.Apply(pharmacist.ID, &dto.CreateApplicationRequest{ShiftID: shift.ID})
	require.NoError(t, err)

	_, err = svc.Withdraw(application.ID, other.ID)
	assert.ErrorIs(t, err, ErrNotApplicant)

	withdrawn, err := svc.Withdraw(application.ID, pharmacist.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationWithdrawn, withdrawn.Status)
}

func TestListByOwnerJoinsThroughShifts(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db, notify.NewConsole())

	owner := createOwner(t, db)
	otherOwner := createOwner(t, db)
	ownShift := createShift(t, db, owner.ID, models.ShiftOpen, 60)
	otherShift := createShift(t, db, otherOwner.ID, models.ShiftOpen, 70)
	pharmacist := createPharmacist(t, db, models.VerificationVerified)

	_, err := svc.Apply(pharmacist.ID, &dto.CreateApplicationRequest{ShiftID: ownShift.ID})
	require.NoError(t, err)
	_, err = svc.Apply(pharmacist.ID, &dto.CreateApplicationRequest{ShiftID: otherShift.ID})
	require.NoError(t, err)

	applications, err := svc.ListByOwner(owner.ID)
	require.NoError(t, err)
	require.Len(t, applications, 1)
	assert.Equal(t, ownShift.ID, applications[0].ShiftID)
}

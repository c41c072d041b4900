package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/locumconnect/locum-backend/internal/dto"
	"github.com/locumconnect/locum-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalHours(t *testing.T) {
	tests := []struct {
		name        string
		startDate   string
		endDate     string
		hoursPerDay int
		want        int
		wantErr     error
	}{
		{name: "single day", startDate: "2026-02-10", endDate: "2026-02-10", hoursPerDay: 8, want: 8},
		{name: "three days inclusive", startDate: "2026-02-15", endDate: "2026-02-17", hoursPerDay: 8, want: 24},
		{name: "across month boundary", startDate: "2026-02-27", endDate: "2026-03-02", hoursPerDay: 6, want: 24},
		{name: "inverted range", startDate: "2026-02-17", endDate: "2026-02-15", hoursPerDay: 8, wantErr: ErrInvalidDateRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TotalHours(tt.startDate, tt.endDate, tt.hoursPerDay)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTotalHoursRejectsMalformedDates(t *testing.T) {
	_, err := TotalHours("02/10/2026", "2026-02-10", 8)
	assert.Error(t, err)
}

func TestCreateShiftForcesPendingReview(t *testing.T) {
	db := newTestDB(t)
	svc := NewShiftService(db)
	owner := createOwner(t, db)

	shift, err := svc.Create(owner.ID, &dto.CreateShiftRequest{
		Location:    "456 Oak Avenue, Cambridge, MA",
		StartDate:   "2026-02-15",
		EndDate:     "2026-02-17",
		StartTime:   "08:00",
		EndTime:     "16:00",
		HoursPerDay: 8,
		HourlyRate:  65,
	})
	require.NoError(t, err)

	assert.Equal(t, models.ShiftPendingReview, shift.Status)
	assert.Equal(t, 24, shift.TotalHours)
	assert.Equal(t, owner.PharmacyName, shift.PharmacyName)
}

func TestCreateShiftFallsBackToOwnerName(t *testing.T) {
	db := newTestDB(t)
	svc := NewShiftService(db)

	owner := &models.User{
		ID:    uuid.New(),
		Email: "solo@pharmacy.test",
		Name:  "Solo Owner",
		Role:  models.RoleOwner,
	}
	require.NoError(t, db.Create(owner).Error)

	shift, err := svc.Create(owner.ID, &dto.CreateShiftRequest{
		Location:    "Somewhere",
		StartDate:   "2026-02-10",
		EndDate:     "2026-02-10",
		HoursPerDay: 8,
		HourlyRate:  60,
	})
	require.NoError(t, err)
	assert.Equal(t, "Solo Owner", shift.PharmacyName)
}

func TestCreateShiftValidatesRequiredFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewShiftService(db)
	owner := createOwner(t, db)

	_, err := svc.Create(owner.ID, &dto.CreateShiftRequest{
		StartDate: "2026-02-10",
		EndDate:   "2026-02-10",
	})
	assert.ErrorIs(t, err, ErrMissingShiftFields)
}

func TestApproveShift(t *testing.T) {
	db := newTestDB(t)
	svc := NewShiftService(db)
	owner := createOwner(t, db)
	shift := createShift(t, db, owner.ID, models.ShiftPendingReview, 60)

	approved, err := svc.Approve(shift.ID, "looks good", 0)
	require.NoError(t, err)

	assert.Equal(t, models.ShiftOpen, approved.Status)
	assert.Equal(t, "looks good", approved.AdminNotes)
	assert.Equal(t, 60.0, approved.HourlyRate)
}

func TestApproveShiftWithRateOverride(t *testing.T) {
	db := newTestDB(t)
	svc := NewShiftService(db)
	owner := createOwner(t, db)
	shift := createShift(t, db, owner.ID, models.ShiftPendingReview, 60)

	approved, err := svc.Approve(shift.ID, "", 72.5)
	require.NoError(t, err)
	assert.Equal(t, 72.5, approved.HourlyRate)
}

func TestApproveRejectsNonPendingShift(t *testing.T) {
	db := newTestDB(t)
	svc := NewShiftService(db)
	owner := createOwner(t, db)
	shift := createShift(t, db, owner.ID, models.ShiftOpen, 60)

	_, err := svc.Approve(shift.ID, "", 0)
	assert.ErrorIs(t, err, ErrShiftNotReviewable)
}

func TestRejectShiftRequiresNotes(t *testing.T) {
	db := newTestDB(t)
	svc := NewShiftService(db)
	owner := createOwner(t, db)
	shift := createShift(t, db, owner.ID, models.ShiftPendingReview, 60)

	_, err := svc.Reject(shift.ID, "")
	assert.ErrorIs(t, err, ErrNotesRequired)

	rejected, err := svc.Reject(shift.ID, "license mismatch")
	require.NoError(t, err)
	assert.Equal(t, models.ShiftRejected, rejected.Status)
	assert.Equal(t, "license mismatch", rejected.AdminNotes)
}

func TestCancelShiftOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewShiftService(db)
	owner := createOwner(t, db)
	stranger := createOwner(t, db)
	shift := createShift(t, db, owner.ID, models.ShiftOpen, 60)

	_, err := svc.Cancel(shift.ID, stranger.ID)
	assert.ErrorIs(t, err, ErrNotShiftOwner)

	cancelled, err := svc.Cancel(shift.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ShiftCancelled, cancelled.Status)
}

func TestCancelRejectsTerminalShift(t *testing.T) {
	db := newTestDB(t)
	svc := NewShiftService(db)
	owner := createOwner(t, db)
	shift := createShift(t, db, owner.ID, models.ShiftFilled, 60)

	_, err := svc.Cancel(shift.ID, owner.ID)
	assert.ErrorIs(t, err, ErrShiftNotCancelable)
}

func TestSearchFiltersAreConjunctive(t *testing.T) {
	db := newTestDB(t)
	svc := NewShiftService(db)
	owner := createOwner(t, db)

	boston := createShift(t, db, owner.ID, models.ShiftOpen, 60)

	expensive := createShift(t, db, owner.ID, models.ShiftOpen, 75)
	require.NoError(t, db.Model(expensive).Update("location", "Cambridge, MA").Error)

	// Same location and rate as the match, but not open yet.
	createShift(t, db, owner.ID, models.ShiftPendingReview, 60)

	results, err := svc.Search(dto.ShiftFilters{
		MinRate:  50,
		MaxRate:  70,
		Location: "boston",
	})
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, boston.ID, results[0].ID)
}

func TestSearchWithoutFiltersReturnsAllOpen(t *testing.T) {
	db := newTestDB(t)
	svc := NewShiftService(db)
	owner := createOwner(t, db)

	createShift(t, db, owner.ID, models.ShiftOpen, 60)
	createShift(t, db, owner.ID, models.ShiftOpen, 75)
	createShift(t, db, owner.ID, models.ShiftCancelled, 60)

	results, err := svc.Search(dto.ShiftFilters{})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

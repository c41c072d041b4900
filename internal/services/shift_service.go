package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/locumconnect/locum-backend/internal/dto"
	"github.com/locumconnect/locum-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrShiftNotFound      = errors.New("shift not found")
	ErrMissingShiftFields = errors.New("start date, end date and location are required")
	ErrInvalidDateRange   = errors.New("end date must not precede start date")
	ErrNotesRequired      = errors.New("admin notes are required when rejecting a shift")
	ErrShiftNotReviewable = errors.New("shift is not pending review")
	ErrShiftNotCancelable = errors.New("shift can no longer be cancelled")
	ErrNotShiftOwner      = errors.New("shift belongs to a different owner")
)

const dateLayout = "2006-01-02"

// ShiftService owns the shift posting lifecycle: owner intake, admin review
// and the open-shift search used by pharmacists.
type ShiftService struct {
	db *gorm.DB
}

func NewShiftService(db *gorm.DB) *ShiftService {
	return &ShiftService{db: db}
}

// TotalHours multiplies hours per day by the inclusive day count of the
// range. It is computed once at creation and never re-derived.
func TotalHours(startDate, endDate string, hoursPerDay int) (int, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return 0, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return 0, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}
	if end.Before(start) {
		return 0, ErrInvalidDateRange
	}
	days := int(end.Sub(start).Hours()/24) + 1
	return days * hoursPerDay, nil
}

// Create stores a new posting for the given owner. The pharmacy name is
// copied from the owner record and the status is forced to pending_review no
// matter what the caller sends.
func (s *ShiftService) Create(ownerID uuid.UUID, req *dto.CreateShiftRequest) (*models.Shift, error) {
	if req.StartDate == "" || req.EndDate == "" || req.Location == "" {
		return nil, ErrMissingShiftFields
	}

	totalHours, err := TotalHours(req.StartDate, req.EndDate, req.HoursPerDay)
	if err != nil {
		return nil, err
	}

	var owner models.User
	if err := s.db.First(&owner, "id = ?", ownerID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	pharmacyName := owner.PharmacyName
	if pharmacyName == "" {
		pharmacyName = owner.Name
	}

	shift := models.Shift{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		PharmacyName: pharmacyName,
		Location:     req.Location,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		HoursPerDay:  req.HoursPerDay,
		HourlyRate:   req.HourlyRate,
		TotalHours:   totalHours,
		Description:  req.Description,
		Status:       models.ShiftPendingReview,
	}
	if len(req.Requirements) > 0 {
		if b, err := json.Marshal(req.Requirements); err == nil {
			shift.Requirements = datatypes.JSON(b)
		}
	}

	if err := s.db.Create(&shift).Error; err != nil {
		return nil, fmt.Errorf("failed to create shift: %w", err)
	}
	return &shift, nil
}

func (s *ShiftService) GetByID(id uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	if err := s.db.First(&shift, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		return nil, err
	}
	return &shift, nil
}

func (s *ShiftService) ListByOwner(ownerID uuid.UUID) ([]models.Shift, error) {
	var shifts []models.Shift
	if err := s.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&shifts).Error; err != nil {
		return nil, err
	}
	return shifts, nil
}

// ListAll is the admin review queue view; every status is included.
func (s *ShiftService) ListAll() ([]models.Shift, error) {
	var shifts []models.Shift
	if err := s.db.Order("created_at DESC").Find(&shifts).Error; err != nil {
		return nil, err
	}
	return shifts, nil
}

// Approve opens a pending_review shift. A positive override replaces the
// posted hourly rate at approval time.
func (s *ShiftService) Approve(id uuid.UUID, adminNotes string, overrideRate float64) (*models.Shift, error) {
	shift, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shift.Status != models.ShiftPendingReview {
		return nil, ErrShiftNotReviewable
	}

	updates := map[string]interface{}{
		"status":      models.ShiftOpen,
		"admin_notes": adminNotes,
	}
	if overrideRate > 0 {
		updates["hourly_rate"] = overrideRate
	}
	if err := s.db.Model(shift).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Reject closes a pending_review shift; a reason is mandatory.
func (s *ShiftService) Reject(id uuid.UUID, adminNotes string) (*models.Shift, error) {
	if adminNotes == "" {
		return nil, ErrNotesRequired
	}

	shift, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shift.Status != models.ShiftPendingReview {
		return nil, ErrShiftNotReviewable
	}

	if err := s.db.Model(shift).Updates(map[string]interface{}{
		"status":      models.ShiftRejected,
		"admin_notes": adminNotes,
	}).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Cancel lets the posting owner withdraw a shift that has not reached a
// terminal state.
func (s *ShiftService) Cancel(id, ownerID uuid.UUID) (*models.Shift, error) {
	shift, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shift.OwnerID != ownerID {
		return nil, ErrNotShiftOwner
	}
	if shift.Status != models.ShiftPendingReview && shift.Status != models.ShiftOpen {
		return nil, ErrShiftNotCancelable
	}

	if err := s.db.Model(shift).Update("status", models.ShiftCancelled).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Search returns open shifts matching every supplied filter. Absent filters
// impose no constraint.
func (s *ShiftService) Search(filters dto.ShiftFilters) ([]models.Shift, error) {
	q := s.db.Where("status = ?", models.ShiftOpen)

	if filters.MinRate > 0 {
		q = q.Where("hourly_rate >= ?", filters.MinRate)
	}
	if filters.MaxRate > 0 {
		q = q.Where("hourly_rate <= ?", filters.MaxRate)
	}
	if filters.MinDuration > 0 {
		q = q.Where("total_hours >= ?", filters.MinDuration)
	}
	if filters.MaxDuration > 0 {
		q = q.Where("total_hours <= ?", filters.MaxDuration)
	}
	if filters.Location != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filters.Location)+"%")
	}
	if filters.StartDate != "" {
		q = q.Where("start_date >= ?", filters.StartDate)
	}
	if filters.EndDate != "" {
		q = q.Where("end_date <= ?", filters.EndDate)
	}

	var shifts []models.Shift
	if err := q.Order("start_date ASC").Find(&shifts).Error; err != nil {
		return nil, err
	}
	return shifts, nil
}

package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/locumconnect/locum-backend/internal/dto"
	"github.com/locumconnect/locum-backend/internal/models"
	"github.com/locumconnect/locum-backend/internal/notify"
	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound   = errors.New("application not found")
	ErrAlreadyApplied        = errors.New("already applied to this shift")
	ErrPharmacistNotVerified = errors.New("pharmacist is not verified")
	ErrShiftNotOpen          = errors.New("shift is no longer open")
	ErrApplicationNotPending = errors.New("application is not pending")
	ErrNotApplicant          = errors.New("application belongs to a different pharmacist")
	ErrInvalidTransition     = errors.New("unsupported application status")
)

// ApplicationService owns the application lifecycle, including the compound
// approval transaction that fills the shift and rejects competitors.
type ApplicationService struct {
	db       *gorm.DB
	notifier notify.Notifier
}

func NewApplicationService(db *gorm.DB, notifier notify.Notifier) *ApplicationService {
	return &ApplicationService{db: db, notifier: notifier}
}

// Apply records a verified pharmacist's application to a shift. The composite
// unique index backs the duplicate check against racing inserts.
func (s *ApplicationService) Apply(pharmacistID uuid.UUID, req *dto.CreateApplicationRequest) (*models.Application, error) {
	var pharmacist models.User
	if err := s.db.First(&pharmacist, "id = ?", pharmacistID).Error; err != nil {
		return nil, ErrUserNotFound
	}
	if pharmacist.Role != models.RolePharmacist || pharmacist.VerificationStatus != models.VerificationVerified {
		return nil, ErrPharmacistNotVerified
	}

	var shift models.Shift
	if err := s.db.First(&shift, "id = ?", req.ShiftID).Error; err != nil {
		return nil, ErrShiftNotFound
	}

	var existing models.Application
	err := s.db.Where("shift_id = ? AND pharmacist_id = ?", req.ShiftID, pharmacistID).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyApplied
	}

	application := models.Application{
		ID:           uuid.New(),
		ShiftID:      req.ShiftID,
		PharmacistID: pharmacistID,
		Status:       models.ApplicationPending,
		Message:      req.Message,
		AppliedAt:    time.Now().UTC(),
	}
	if err := s.db.Create(&application).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyApplied
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return &application, nil
}

func (s *ApplicationService) GetByID(id uuid.UUID) (*models.Application, error) {
	var application models.Application
	if err := s.db.First(&application, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (s *ApplicationService) ListByShift(shiftID uuid.UUID) ([]models.Application, error) {
	var applications []models.Application
	if err := s.db.Where("shift_id = ?", shiftID).Order("applied_at ASC").Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (s *ApplicationService) ListByPharmacist(pharmacistID uuid.UUID) ([]models.Application, error) {
	var applications []models.Application
	if err := s.db.Where("pharmacist_id = ?", pharmacistID).Order("applied_at DESC").Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

// ListByOwner returns every application against the owner's shifts, joined
// through the shifts table.
func (s *ApplicationService) ListByOwner(ownerID uuid.UUID) ([]models.Application, error) {
	var applications []models.Application
	err := s.db.
		Joins("JOIN shifts ON shifts.id = applications.shift_id").
		Where("shifts.owner_id = ?", ownerID).
		Order("applications.applied_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (s *ApplicationService) ListByStatus(status string) ([]models.Application, error) {
	var applications []models.Application
	if err := s.db.Where("status = ?", status).Order("applied_at DESC").Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

// Approve fills the shift and settles all competing applications in a single
// transaction. The conditional open->filled update elects exactly one winner
// when two approvals race on the same shift: the second one finds zero
// affected rows and fails with ErrShiftNotOpen.
func (s *ApplicationService) Approve(id uuid.UUID) (*models.Application, error) {
	var approved models.Application

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var application models.Application
		if err := tx.First(&application, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrApplicationNotFound
			}
			return err
		}
		if application.Status != models.ApplicationPending {
			return ErrApplicationNotPending
		}

		res := tx.Model(&models.Shift{}).
			Where("id = ? AND status = ?", application.ShiftID, models.ShiftOpen).
			Update("status", models.ShiftFilled)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrShiftNotOpen
		}

		if err := tx.Model(&application).Update("status", models.ApplicationApproved).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Application{}).
			Where("shift_id = ? AND id <> ? AND status = ?", application.ShiftID, application.ID, models.ApplicationPending).
			Update("status", models.ApplicationRejected).Error; err != nil {
			return err
		}

		application.Status = models.ApplicationApproved
		approved = application
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Best-effort confirmation; a delivery failure never unwinds the approval.
	go s.sendConfirmation(&approved)

	return &approved, nil
}

// Reject settles a single pending application with no side effects.
func (s *ApplicationService) Reject(id uuid.UUID) (*models.Application, error) {
	return s.settle(id, models.ApplicationRejected)
}

// Withdraw lets the applicant retract a pending application.
func (s *ApplicationService) Withdraw(id, pharmacistID uuid.UUID) (*models.Application, error) {
	application, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if application.PharmacistID != pharmacistID {
		return nil, ErrNotApplicant
	}
	return s.settle(id, models.ApplicationWithdrawn)
}

func (s *ApplicationService) settle(id uuid.UUID, status string) (*models.Application, error) {
	application, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if application.Status != models.ApplicationPending {
		return nil, ErrApplicationNotPending
	}
	if err := s.db.Model(application).Update("status", status).Error; err != nil {
		return nil, err
	}
	application.Status = status
	return application, nil
}

func (s *ApplicationService) sendConfirmation(application *models.Application) {
	var shift models.Shift
	if err := s.db.First(&shift, "id = ?", application.ShiftID).Error; err != nil {
		slog.Error("confirmation lookup failed", "error", err, "shift_id", application.ShiftID)
		return
	}
	var pharmacist models.User
	if err := s.db.First(&pharmacist, "id = ?", application.PharmacistID).Error; err != nil {
		slog.Error("confirmation lookup failed", "error", err, "user_id", application.PharmacistID.String())
		return
	}

	if err := s.notifier.ShiftConfirmed(&shift, &pharmacist); err != nil {
		slog.Error("shift confirmation notification failed",
			"error", err,
			"shift_id", shift.ID,
			"user_id", pharmacist.ID.String(),
		)
	}
}

package services

import (
	"github.com/locumconnect/locum-backend/internal/dto"
	"github.com/locumconnect/locum-backend/internal/models"
	"gorm.io/gorm"
)

// StatsService computes the admin dashboard tallies. Counts are recomputed on
// every call; nothing is cached.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

func (s *StatsService) AdminStats() (*dto.AdminStatsResponse, error) {
	stats := &dto.AdminStatsResponse{}

	counts := []struct {
		dest  *int64
		model interface{}
		query string
		args  []interface{}
	}{
		{&stats.TotalPharmacists, &models.User{}, "role = ?", []interface{}{models.RolePharmacist}},
		{&stats.PendingVerifications, &models.User{}, "role = ? AND verification_status = ?", []interface{}{models.RolePharmacist, models.VerificationPending}},
		{&stats.VerifiedPharmacists, &models.User{}, "role = ? AND verification_status = ?", []interface{}{models.RolePharmacist, models.VerificationVerified}},
		{&stats.TotalOwners, &models.User{}, "role = ?", []interface{}{models.RoleOwner}},
		{&stats.TotalShifts, &models.Shift{}, "", nil},
		{&stats.OpenShifts, &models.Shift{}, "status = ?", []interface{}{models.ShiftOpen}},
	}

	for _, c := range counts {
		q := s.db.Model(c.model)
		if c.query != "" {
			q = q.Where(c.query, c.args...)
		}
		if err := q.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	return stats, nil
}

// Package reminder runs the daily job that notifies pharmacists about
// approved shifts starting the same day.
package reminder

import (
	"log/slog"
	"time"

	"github.com/locumconnect/locum-backend/internal/models"
	"github.com/locumconnect/locum-backend/internal/notify"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

type Scheduler struct {
	db       *gorm.DB
	notifier notify.Notifier
	cron     *cron.Cron
}

func New(db *gorm.DB, notifier notify.Notifier) *Scheduler {
	return &Scheduler{
		db:       db,
		notifier: notifier,
		cron:     cron.New(cron.WithLocation(time.UTC)),
	}
}

// Start schedules the reminder run with a cron expression ("0 7 * * *" by
// default) and begins ticking.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.Run); err != nil {
		return err
	}
	s.cron.Start()
	slog.Info("reminder scheduler started", "spec", spec)
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// Run sends a reminder for every approved application whose shift starts
// today. Failures are logged per recipient; the run continues.
func (s *Scheduler) Run() {
	today := time.Now().UTC().Format("2006-01-02")

	var applications []models.Application
	err := s.db.
		Joins("JOIN shifts ON shifts.id = applications.shift_id").
		Where("applications.status = ? AND shifts.start_date = ?", models.ApplicationApproved, today).
		Find(&applications).Error
	if err != nil {
		slog.Error("reminder query failed", "error", err)
		return
	}

	sent := 0
	for i := range applications {
		app := &applications[i]

		var shift models.Shift
		if err := s.db.First(&shift, "id = ?", app.ShiftID).Error; err != nil {
			slog.Error("reminder shift lookup failed", "error", err, "shift_id", app.ShiftID)
			continue
		}
		var pharmacist models.User
		if err := s.db.First(&pharmacist, "id = ?", app.PharmacistID).Error; err != nil {
			slog.Error("reminder pharmacist lookup failed", "error", err, "user_id", app.PharmacistID.String())
			continue
		}

		if err := s.notifier.ShiftReminder(&shift, &pharmacist); err != nil {
			slog.Error("shift reminder failed", "error", err, "to", pharmacist.Email, "shift_id", shift.ID)
			continue
		}
		sent++
	}

	slog.Info("reminder run completed", "date", today, "matched", len(applications), "sent", sent)
}

// Package notify delivers best-effort notifications to pharmacists. Delivery
// failures are logged by callers and never surfaced as request errors.
package notify

import (
	"fmt"
	"log/slog"

	"github.com/locumconnect/locum-backend/internal/models"
)

// Notifier abstracts the delivery channel so SMTP can be swapped in without
// touching the services.
type Notifier interface {
	// ShiftConfirmed tells a pharmacist their application was approved.
	ShiftConfirmed(shift *models.Shift, pharmacist *models.User) error
	// ShiftReminder reminds a pharmacist about a shift starting today.
	ShiftReminder(shift *models.Shift, pharmacist *models.User) error
}

// ConsoleNotifier logs the would-be message; the default when SMTP is not
// configured.
type ConsoleNotifier struct{}

func NewConsole() *ConsoleNotifier {
	return &ConsoleNotifier{}
}

func (n *ConsoleNotifier) ShiftConfirmed(shift *models.Shift, pharmacist *models.User) error {
	slog.Info("notification (console)",
		"kind", "shift_confirmed",
		"to", pharmacist.Email,
		"subject", confirmationSubject(shift),
		"shift_id", shift.ID,
	)
	return nil
}

func (n *ConsoleNotifier) ShiftReminder(shift *models.Shift, pharmacist *models.User) error {
	slog.Info("notification (console)",
		"kind", "shift_reminder",
		"to", pharmacist.Email,
		"subject", reminderSubject(shift),
		"shift_id", shift.ID,
	)
	return nil
}

func confirmationSubject(shift *models.Shift) string {
	return fmt.Sprintf("Shift Confirmed - %s", shift.PharmacyName)
}

func reminderSubject(shift *models.Shift) string {
	return fmt.Sprintf("Reminder: shift today at %s", shift.PharmacyName)
}

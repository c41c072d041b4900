package notify

import (
	"fmt"
	"strconv"

	"github.com/locumconnect/locum-backend/internal/models"
	"gopkg.in/gomail.v2"
)

// SMTPNotifier sends HTML mail through a configured SMTP relay.
type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTP(host, port, user, pass, from string) (*SMTPNotifier, error) {
	p, err := strconv.Atoi(port)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP port %q: %w", port, err)
	}
	return &SMTPNotifier{
		dialer: gomail.NewDialer(host, p, user, pass),
		from:   from,
	}, nil
}

func (n *SMTPNotifier) ShiftConfirmed(shift *models.Shift, pharmacist *models.User) error {
	body := fmt.Sprintf(
		`<p>Hi %s,</p>
<p>Your application has been <strong>approved</strong> for the following shift:</p>
<ul>
<li><strong>Pharmacy:</strong> %s</li>
<li><strong>Location:</strong> %s</li>
<li><strong>Dates:</strong> %s to %s</li>
<li><strong>Time:</strong> %s - %s</li>
<li><strong>Rate:</strong> $%.2f/hr</li>
<li><strong>Total hours:</strong> %d</li>
</ul>
<p>If you have any questions, please contact the pharmacy directly.</p>`,
		pharmacist.Name, shift.PharmacyName, shift.Location,
		shift.StartDate, shift.EndDate, shift.StartTime, shift.EndTime,
		shift.HourlyRate, shift.TotalHours,
	)
	return n.send(pharmacist.Email, confirmationSubject(shift), body)
}

func (n *SMTPNotifier) ShiftReminder(shift *models.Shift, pharmacist *models.User) error {
	body := fmt.Sprintf(
		`<p>Hi %s,</p>
<p>A reminder that your shift at <strong>%s</strong> starts today at %s.</p>
<p><strong>Location:</strong> %s</p>`,
		pharmacist.Name, shift.PharmacyName, shift.StartTime, shift.Location,
	)
	return n.send(pharmacist.Email, reminderSubject(shift), body)
}

func (n *SMTPNotifier) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)
	return n.dialer.DialAndSend(m)
}

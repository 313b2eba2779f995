package notification

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/black-sheep-marketing/blacksheep-calendar/models"
)

// Service sends transactional mail to demo-call attendees.
type Service interface {
	SendBookingConfirmation(booking models.Booking) error
	SendBookingReminder(booking models.Booking) error
}

// DefaultNotificationService delivers through plain SMTP. It speaks to
// unauthenticated relays (Mailpit in development) as well as real ones.
type DefaultNotificationService struct {
	addr string
	from string
}

func NewDefaultNotificationService(host, port, from string) *DefaultNotificationService {
	host = strings.TrimSpace(host)
	port = strings.TrimSpace(port)
	from = strings.TrimSpace(from)
	if from == "" {
		from = "bookings@blacksheepmarketing.com"
	}
	return &DefaultNotificationService{
		addr: fmt.Sprintf("%s:%s", host, port),
		from: from,
	}
}

// SendBookingConfirmation mails the attendee their slot details and, when
// the calendar event has already been created, the conferencing link.
func (s *DefaultNotificationService) SendBookingConfirmation(booking models.Booking) error {
	subject := fmt.Sprintf("Your demo call is confirmed for %s", booking.DisplayDate)
	msg := buildMessage(s.from, booking.Email, subject, confirmationBody(booking))
	if err := smtp.SendMail(s.addr, nil, s.from, []string{booking.Email}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send confirmation to %s: %w", booking.Email, err)
	}
	return nil
}

// SendBookingReminder nudges the attendee shortly before the call starts.
func (s *DefaultNotificationService) SendBookingReminder(booking models.Booking) error {
	subject := fmt.Sprintf("Reminder: your demo call starts at %s", booking.DisplayTime)
	msg := buildMessage(s.from, booking.Email, subject, reminderBody(booking))
	if err := smtp.SendMail(s.addr, nil, s.from, []string{booking.Email}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send reminder to %s: %w", booking.Email, err)
	}
	return nil
}

func confirmationBody(booking models.Booking) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", booking.Name)
	fmt.Fprintf(&b, "Your demo call with Black Sheep Marketing is booked for %s at %s.\n\n",
		booking.DisplayDate, booking.DisplayTime)
	if booking.MeetLink != "" {
		fmt.Fprintf(&b, "Join here: %s\n\n", booking.MeetLink)
	} else {
		b.WriteString("A calendar invite with the meeting link will follow shortly.\n\n")
	}
	b.WriteString("Need to reschedule? Just reply to this email.\n\nThe Black Sheep team\n")
	return b.String()
}

func reminderBody(booking models.Booking) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", booking.Name)
	fmt.Fprintf(&b, "Quick reminder that your demo call with Black Sheep Marketing starts at %s.\n\n",
		booking.DisplayTime)
	if booking.MeetLink != "" {
		fmt.Fprintf(&b, "Join here: %s\n\n", booking.MeetLink)
	}
	b.WriteString("See you soon,\nThe Black Sheep team\n")
	return b.String()
}

func buildMessage(from, to, subject, body string) string {
	// Minimal RFC 5322 message; enough for Mailpit and most SMTP relays.
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from,
		to,
		subject,
		body,
	)
}

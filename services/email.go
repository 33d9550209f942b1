package services

import (
	"fmt"
	"log"

	"github.com/resend/resend-go/v2"
)

// EmailSender is the transport the mailer writes through. The Resend
// implementation is used in production; tests substitute a recording stub.
type EmailSender interface {
	Send(to, subject, html string) error
}

// ResendSender delivers through the Resend transactional email API.
type ResendSender struct {
	client *resend.Client
	from   string
}

func NewResendSender(apiKey, from string) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (s *ResendSender) Send(to, subject, html string) error {
	_, err := s.client.Emails.Send(&resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	return err
}

// BookingEmailData carries everything the three booking notification
// templates need.
type BookingEmailData struct {
	BookingID     uint
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	CleanerName   string
	CleanerEmail  string
	CityName      string
	PreferredDate string
	Message       string
}

// BookingMailer formats and sends the booking notification fan-out:
// customer confirmation, admin alert and, when a specific cleaner with a
// known email was requested, a cleaner alert. Every failure is logged and
// swallowed; a persisted booking never fails because of email.
type BookingMailer struct {
	sender     EmailSender
	adminEmail string
	baseURL    string
}

func NewBookingMailer(sender EmailSender, adminEmail, baseURL string) *BookingMailer {
	return &BookingMailer{sender: sender, adminEmail: adminEmail, baseURL: baseURL}
}

// SendBookingNotifications is best-effort by contract: it is called after the
// booking transaction committed and must not propagate errors to the caller.
func (m *BookingMailer) SendBookingNotifications(data BookingEmailData) {
	if m == nil || m.sender == nil {
		return
	}

	if data.CustomerEmail != "" {
		m.send(data.CustomerEmail,
			"✅ Je aanvraag is ontvangen - CleanMorocco",
			customerConfirmationHTML(data))
	}

	if m.adminEmail != "" {
		m.send(m.adminEmail,
			fmt.Sprintf("🆕 Nieuwe booking aanvraag #%d", data.BookingID),
			adminAlertHTML(data))
	}

	if data.CleanerEmail != "" {
		m.send(data.CleanerEmail,
			fmt.Sprintf("💼 Nieuwe klant aanvraag voor %s", data.CleanerName),
			cleanerAlertHTML(data))
	}
}

func (m *BookingMailer) send(to, subject, html string) {
	if err := m.sender.Send(to, subject, html); err != nil {
		log.Printf("email to %s failed: %v", to, err)
	}
}

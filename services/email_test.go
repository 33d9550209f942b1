package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingSender struct {
	sent []struct {
		to      string
		subject string
		html    string
	}
	err error
}

func (r *recordingSender) Send(to, subject, html string) error {
	r.sent = append(r.sent, struct {
		to      string
		subject string
		html    string
	}{to, subject, html})
	return r.err
}

func sampleData() BookingEmailData {
	return BookingEmailData{
		BookingID:     42,
		CustomerName:  "Jan Jansen",
		CustomerEmail: "jan@example.com",
		CustomerPhone: "+31612345678",
		CityName:      "Marrakech",
		PreferredDate: "2025-06-01",
	}
}

func TestSendBookingNotificationsWithoutCleaner(t *testing.T) {
	sender := &recordingSender{}
	mailer := NewBookingMailer(sender, "admin@cleanmorocco.com", "")

	mailer.SendBookingNotifications(sampleData())

	assert.Len(t, sender.sent, 2)
	assert.Equal(t, "jan@example.com", sender.sent[0].to)
	assert.Contains(t, sender.sent[0].subject, "Je aanvraag is ontvangen")
	assert.Contains(t, sender.sent[0].html, "Jan Jansen")
	assert.Equal(t, "admin@cleanmorocco.com", sender.sent[1].to)
	assert.Contains(t, sender.sent[1].subject, "#42")
}

func TestSendBookingNotificationsWithCleaner(t *testing.T) {
	sender := &recordingSender{}
	mailer := NewBookingMailer(sender, "admin@cleanmorocco.com", "")

	data := sampleData()
	data.CleanerName = "Atlas Shine"
	data.CleanerEmail = "atlas@cleanmorocco.com"
	mailer.SendBookingNotifications(data)

	assert.Len(t, sender.sent, 3)
	assert.Equal(t, "atlas@cleanmorocco.com", sender.sent[2].to)
	assert.Contains(t, sender.sent[2].subject, "Atlas Shine")
}

func TestSendBookingNotificationsSwallowsFailures(t *testing.T) {
	sender := &recordingSender{err: errors.New("provider down")}
	mailer := NewBookingMailer(sender, "admin@cleanmorocco.com", "")

	// must not panic or propagate; all three attempts are still made
	data := sampleData()
	data.CleanerName = "Atlas Shine"
	data.CleanerEmail = "atlas@cleanmorocco.com"
	mailer.SendBookingNotifications(data)
	assert.Len(t, sender.sent, 3)
}

func TestSendBookingNotificationsNilSender(t *testing.T) {
	mailer := NewBookingMailer(nil, "admin@cleanmorocco.com", "")
	mailer.SendBookingNotifications(sampleData())

	var nilMailer *BookingMailer
	nilMailer.SendBookingNotifications(sampleData())
}

func TestTemplatesEscapeUserInput(t *testing.T) {
	data := sampleData()
	data.CustomerName = `<script>alert("x")</script>`
	body := customerConfirmationHTML(data)
	assert.False(t, strings.Contains(body, "<script>"))
}

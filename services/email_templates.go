package services

import (
	"fmt"
	"html"
)

// The HTML bodies stay close to the copy customers already receive; only
// dynamic values change. User-supplied strings are escaped before
// interpolation.

func customerConfirmationHTML(data BookingEmailData) string {
	details := fmt.Sprintf("<p><strong>Aanvraag ID:</strong> #%d</p>", data.BookingID)
	if data.CleanerName != "" {
		details += fmt.Sprintf("<p><strong>Schoonmaker:</strong> %s</p>", html.EscapeString(data.CleanerName))
	}
	if data.CityName != "" {
		details += fmt.Sprintf("<p><strong>Locatie:</strong> %s</p>", html.EscapeString(data.CityName))
	}
	if data.PreferredDate != "" {
		details += fmt.Sprintf("<p><strong>Gewenste datum:</strong> %s</p>", html.EscapeString(data.PreferredDate))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: #2563eb; color: white; padding: 30px; border-radius: 10px 10px 0 0; text-align: center;">
    <h1 style="margin: 0;">CleanMorocco</h1>
    <p style="margin: 10px 0 0;">Professionele schoonmaakdiensten in Marokko</p>
  </div>
  <div style="background: #f8f9fa; padding: 30px; border-radius: 0 0 10px 10px;">
    <h2 style="color: #2563eb;">Hallo %s! 👋</h2>
    <p>We hebben je aanvraag voor een schoonmaker ontvangen en ons team gaat meteen aan de slag.</p>
    <div style="background: white; padding: 20px; border-radius: 8px; border-left: 4px solid #2563eb;">
      <h3 style="color: #2563eb;">📋 Jouw Aanvraag Details:</h3>
      %s
    </div>
    <p>Je hoort binnen <strong>2 uur</strong> van ons.</p>
    <p>Met vriendelijke groet,<br><strong>Team CleanMorocco</strong></p>
  </div>
</body>
</html>`, html.EscapeString(data.CustomerName), details)
}

func adminAlertHTML(data BookingEmailData) string {
	cleaner := data.CleanerName
	if cleaner == "" {
		cleaner = "Geen specifieke voorkeur"
	}
	city := data.CityName
	if city == "" {
		city = "Ongespecificeerd"
	}
	date := data.PreferredDate
	if date == "" {
		date = "Flexibel"
	}
	message := data.Message
	if message == "" {
		message = "Geen bericht"
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <h1 style="color: #2563eb;">🆕 Nieuwe Booking Aanvraag</h1>
  <div style="background: #f8f9fa; padding: 20px; border-radius: 8px;">
    <h2>Klant Informatie:</h2>
    <p><strong>Naam:</strong> %s</p>
    <p><strong>Email:</strong> %s</p>
    <p><strong>Telefoon:</strong> %s</p>
  </div>
  <div style="background: #fff; padding: 20px; border: 1px solid #e5e7eb; border-radius: 8px;">
    <h2>Booking Details:</h2>
    <p><strong>Booking ID:</strong> #%d</p>
    <p><strong>Gewenste Schoonmaker:</strong> %s</p>
    <p><strong>Stad:</strong> %s</p>
    <p><strong>Gewenste Datum:</strong> %s</p>
    <p><strong>Bericht:</strong><br>%s</p>
  </div>
  <p><strong>⚡ Actie vereist:</strong> Neem binnen 2 uur contact op met de klant!</p>
</body>
</html>`,
		html.EscapeString(data.CustomerName),
		html.EscapeString(data.CustomerEmail),
		html.EscapeString(data.CustomerPhone),
		data.BookingID,
		html.EscapeString(cleaner),
		html.EscapeString(city),
		html.EscapeString(date),
		html.EscapeString(message))
}

func cleanerAlertHTML(data BookingEmailData) string {
	date := data.PreferredDate
	if date == "" {
		date = "Flexibel"
	}
	message := data.Message
	if message == "" {
		message = "Geen specifieke wensen"
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <h1 style="color: #2563eb;">💼 Nieuwe Klant Aanvraag voor jou!</h1>
  <p>Hallo %s,</p>
  <p>Een klant heeft specifiek naar jou gevraagd voor schoonmaakwerk.</p>
  <div style="background: #f8f9fa; padding: 20px; border-radius: 8px;">
    <h2>Klant Details:</h2>
    <p><strong>Naam:</strong> %s</p>
    <p><strong>Booking ID:</strong> #%d</p>
    <p><strong>Gewenste Datum:</strong> %s</p>
    <p><strong>Bericht van klant:</strong><br>%s</p>
  </div>
  <p>Onze klantenservice neemt contact met je op om de details door te nemen.</p>
  <p>Team CleanMorocco</p>
</body>
</html>`,
		html.EscapeString(data.CleanerName),
		html.EscapeString(data.CustomerName),
		data.BookingID,
		html.EscapeString(date),
		html.EscapeString(message))
}

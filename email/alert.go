package email

import (
	"fmt"
	"html/template"
	"time"

	"github.com/resend/resend-go/v2"

	"booking-ops/model"
)

type alertData struct {
	Booking   model.Booking
	CSVLine   string
	Timestamp string
}

// SendLedgerFailureAlert mails the owner the complete booking after the
// spreadsheet write gave up, so the row can be entered by hand. The payment
// is already captured at this point; this mail is the recovery path.
func SendLedgerFailureAlert(b model.Booking) error {
	html, err := render(alertTmpl, alertData{
		Booking:   b,
		CSVLine:   b.CSVLine(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	_, err = Send(&resend.SendEmailRequest{
		From:    fromAddress,
		To:      []string{ownerAddress},
		Subject: fmt.Sprintf("🚨 URGENT: Sheet write failed - %s - %s", b.GuestName, b.CheckIn),
		Html:    html,
	})
	return err
}

var alertTmpl = template.Must(template.New("alert").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>
    body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; color: #1a1a1a; line-height: 1.6; max-width: 600px; margin: 0 auto; padding: 20px; }
    .alert { background: #fef2f2; border: 2px solid #dc2626; padding: 20px; margin-bottom: 20px; }
    .alert h1 { color: #dc2626; margin: 0 0 10px 0; font-size: 18px; }
    table { width: 100%; border-collapse: collapse; margin: 20px 0; }
    th, td { text-align: left; padding: 10px; border-bottom: 1px solid #e5e5e5; }
    th { font-size: 11px; text-transform: uppercase; letter-spacing: 0.1em; color: #6b6b6b; width: 140px; }
    .copy-data { background: #f5f5f5; padding: 15px; font-family: monospace; font-size: 12px; white-space: pre-wrap; margin-top: 20px; }
  </style>
</head>
<body>
  <div class="alert">
    <h1>⚠️ SHEET WRITE FAILED - ACTION REQUIRED</h1>
    <p>A booking payment was received but failed to write to Google Sheets. Add this booking manually.</p>
  </div>

  <table>
    <tr><th>Booking ID</th><td><strong>{{.Booking.BookingID}}</strong></td></tr>
    <tr><th>Guest Name</th><td>{{.Booking.GuestName}}</td></tr>
    <tr><th>Email</th><td><a href="mailto:{{.Booking.Email}}">{{.Booking.Email}}</a></td></tr>
    <tr><th>Phone</th><td>{{.Booking.Phone}}</td></tr>
    <tr><th>Property</th><td>{{.Booking.Property}}</td></tr>
    <tr><th>Room</th><td>{{.Booking.Accommodation}}</td></tr>
    <tr><th>Check-in</th><td><strong>{{.Booking.CheckIn}}</strong></td></tr>
    <tr><th>Check-out</th><td><strong>{{.Booking.CheckOut}}</strong></td></tr>
    <tr><th>Nights</th><td>{{.Booking.Nights}}</td></tr>
    <tr><th>Guests</th><td>{{.Booking.Guests}}</td></tr>
    <tr><th>Total</th><td><strong>{{.Booking.TotalPrice}}</strong></td></tr>
    <tr><th>PayPal Order ID</th><td>{{.Booking.PayPalOrderID}}</td></tr>
    <tr><th>Remarks</th><td>{{if .Booking.Remarks}}{{.Booking.Remarks}}{{else}}-{{end}}</td></tr>
  </table>

  <p><strong>Timestamp:</strong> {{.Timestamp}}</p>

  <div class="copy-data"><strong>CSV format (for copy/paste):</strong>
{{.CSVLine}}</div>
</body>
</html>
`))

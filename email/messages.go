package email

import (
	"fmt"
	"html/template"
	"log"
	"sync"

	"github.com/resend/resend-go/v2"

	"booking-ops/model"
)

// Result is the outcome of one message send. Failures are plain values at
// this boundary: callers log and move on, nothing propagates to the guest.
type Result struct {
	Success bool
	Skipped bool
	ID      string
	Err     error
}

// DispatchResult pairs the two notification outcomes of a booking.
type DispatchResult struct {
	Guest Result
	Owner Result
}

// SendBookingEmails fires the guest confirmation and the owner notification
// concurrently. Each send fails on its own; neither outcome affects the
// other or the booking response. The guest send is skipped, not failed,
// when the record carries no email address.
func SendBookingEmails(b model.Booking) DispatchResult {
	var res DispatchResult
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		res.Owner = SendOwnerNotification(b)
	}()

	if b.Email == "" {
		res.Guest = Result{Skipped: true}
	} else {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res.Guest = SendGuestConfirmation(b)
		}()
	}

	wg.Wait()
	return res
}

type bookingEmailData struct {
	Booking  model.Booking
	Content  propertyContent
	CheckIn  string
	CheckOut string
}

// SendGuestConfirmation mails the guest their stay summary and arrival
// instructions for the booked property.
func SendGuestConfirmation(b model.Booking) Result {
	content := contentFor(b.Property)
	html, err := render(guestTmpl, bookingEmailData{
		Booking:  b,
		Content:  content,
		CheckIn:  formatDate(b.CheckIn),
		CheckOut: formatDate(b.CheckOut),
	})
	if err != nil {
		log.Printf("guest confirmation for %s not rendered: %v", b.BookingID, err)
		return Result{Err: err}
	}

	id, err := Send(&resend.SendEmailRequest{
		From:    fromAddress,
		To:      []string{b.Email},
		Bcc:     []string{ownerAddress},
		Subject: fmt.Sprintf("Your reservation at %s / %s to %s", content.Name, formatDate(b.CheckIn), formatDate(b.CheckOut)),
		Html:    html,
	})
	if err != nil {
		log.Printf("guest confirmation for %s failed: %v", b.BookingID, err)
		return Result{Err: err}
	}
	return Result{Success: true, ID: id}
}

// SendOwnerNotification tells the owner a paid booking just landed.
func SendOwnerNotification(b model.Booking) Result {
	html, err := render(ownerTmpl, bookingEmailData{
		Booking:  b,
		Content:  contentFor(b.Property),
		CheckIn:  formatDate(b.CheckIn),
		CheckOut: formatDate(b.CheckOut),
	})
	if err != nil {
		log.Printf("owner notification for %s not rendered: %v", b.BookingID, err)
		return Result{Err: err}
	}

	id, err := Send(&resend.SendEmailRequest{
		From:    fromAddress,
		To:      []string{ownerAddress},
		Subject: fmt.Sprintf("💰 New Booking: %s - %s - %s", b.GuestName, b.TotalPrice, b.Accommodation),
		Html:    html,
	})
	if err != nil {
		log.Printf("owner notification for %s failed: %v", b.BookingID, err)
		return Result{Err: err}
	}
	return Result{Success: true, ID: id}
}

var guestTmpl = template.Must(template.New("guest").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>
    body { font-family: Georgia, serif; color: #1a1a1a; line-height: 1.8; max-width: 600px; margin: 0 auto; padding: 20px; font-size: 15px; }
    h2 { font-size: 16px; font-weight: bold; margin: 30px 0 15px 0; }
    p { margin: 0 0 15px 0; }
    .signature { margin-top: 40px; padding-top: 20px; border-top: 1px solid #e5e5e5; font-size: 13px; color: #666; }
    .signature a { color: #666; }
  </style>
</head>
<body>
  <p>Dear {{.Booking.FirstName}},</p>

  <p>{{.Content.Subtitle}}</p>

  <h2>Your Stay</h2>

  <p>
    <strong>Check-in:</strong> {{.CheckIn}} from {{.Content.CheckInTime}}<br>
    <strong>Check-out:</strong> {{.CheckOut}} by {{.Content.CheckOutTime}}<br>
    <strong>Room:</strong> {{.Booking.Accommodation}}<br>
    <strong>Guests:</strong> {{.Booking.Guests}}<br>
    <strong>Total Paid:</strong> {{.Booking.TotalPrice}} (including city taxes)
  </p>

  <p>When you are ready, please confirm your estimated arrival time with Zahra via WhatsApp: <strong>+212 6 19 11 20 08</strong></p>

  <p>This ensures a calm and relaxed check-in. Zahra will send you the directions and, if you prefer, she will arrange for our night watchman to meet you at a nearby landmark.</p>

  <h2>Getting Here</h2>

  {{.Content.Directions}}

  <h2>Breakfast</h2>

  <p>Served each morning in the courtyard, 8:30–10:30 AM. If you have any dietary needs or allergies, please let us know.</p>

  <p>If you need anything or have any questions, please do not hesitate to ask Zahra.</p>

  <p>We look forward to welcoming you soon.</p>

  <div class="signature">
    <p>
      Jacqueline<br>
      <strong>STAY:</strong> <a href="https://riaddisiena.com">riaddisiena.com</a> | <strong>EXPLORE:</strong> <a href="https://slowmorocco.com">slowmorocco.com</a>
    </p>
  </div>
</body>
</html>
`))

var ownerTmpl = template.Must(template.New("owner").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>
    body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; color: #1a1a1a; line-height: 1.6; max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #1a1a1a; color: #fff; padding: 20px; text-align: center; }
    .header h1 { margin: 0; font-size: 18px; font-weight: normal; }
    .highlight { background: #f0f7f0; padding: 15px; margin: 15px 0; border-left: 4px solid #4a5043; }
    table { width: 100%; border-collapse: collapse; margin: 20px 0; }
    th, td { text-align: left; padding: 10px; border-bottom: 1px solid #e5e5e5; }
    th { font-size: 11px; text-transform: uppercase; letter-spacing: 0.1em; color: #6b6b6b; }
    .amount { font-size: 24px; font-weight: bold; color: #4a5043; }
    .btn { display: inline-block; padding: 12px 24px; background: #1a1a1a; color: #fff; text-decoration: none; font-size: 12px; text-transform: uppercase; letter-spacing: 0.1em; }
  </style>
</head>
<body>
  <div class="header">
    <h1>🎉 NEW BOOKING</h1>
  </div>

  <div class="highlight">
    <strong>{{.Booking.GuestName}}</strong> just booked <strong>{{.Booking.Accommodation}}</strong> at <strong>{{.Booking.Property}}</strong>
  </div>

  <p class="amount">{{.Booking.TotalPrice}}</p>

  <table>
    <tr><th>Booking ID</th><td>{{.Booking.BookingID}}</td></tr>
    <tr><th>Guest</th><td>{{.Booking.GuestName}}</td></tr>
    <tr><th>Email</th><td><a href="mailto:{{.Booking.Email}}">{{.Booking.Email}}</a></td></tr>
    {{if .Booking.Phone}}<tr><th>Phone</th><td>{{.Booking.Phone}}</td></tr>{{end}}
    <tr><th>Property</th><td>{{.Booking.Property}}</td></tr>
    <tr><th>Accommodation</th><td>{{.Booking.Accommodation}}</td></tr>
    <tr><th>Check-in</th><td>{{.CheckIn}}</td></tr>
    <tr><th>Check-out</th><td>{{.CheckOut}}</td></tr>
    <tr><th>Nights</th><td>{{.Booking.Nights}}</td></tr>
    <tr><th>Guests</th><td>{{.Booking.Guests}}</td></tr>
    <tr><th>Total</th><td><strong>{{.Booking.TotalPrice}}</strong></td></tr>
    {{if .Booking.PayPalOrderID}}<tr><th>PayPal Order</th><td>{{.Booking.PayPalOrderID}}</td></tr>{{end}}
    {{if .Booking.Remarks}}<tr><th>Message</th><td>{{.Booking.Remarks}}</td></tr>{{end}}
  </table>

  <a href="https://riaddisiena.com/admin/bookings" class="btn">View in Admin</a>
</body>
</html>
`))

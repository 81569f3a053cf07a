package email

import (
	"fmt"
	"html/template"
	"log"

	"github.com/resend/resend-go/v2"
)

// PreArrival is the input for the pre-arrival mail the ops team triggers a
// few days before check-in.
type PreArrival struct {
	BookingID            string `json:"bookingId"`
	FirstName            string `json:"firstName"`
	Email                string `json:"email"`
	CheckIn              string `json:"checkIn"`
	CheckOut             string `json:"checkOut"`
	Room                 string `json:"room"`
	ArrivalTimeConfirmed bool   `json:"arrivalTimeConfirmed"`
	ConfirmedTime        string `json:"confirmedTime"`
}

type preArrivalData struct {
	PreArrival
	CheckInLong  string
	CheckOutLong string
	FormURL      string
}

// SendPreArrival mails arrival logistics to the guest, either confirming
// the time they gave us or asking them to pick one.
func SendPreArrival(p PreArrival) Result {
	html, err := render(preArrivalTmpl, preArrivalData{
		PreArrival:   p,
		CheckInLong:  formatDate(p.CheckIn),
		CheckOutLong: formatDate(p.CheckOut),
		FormURL:      "https://ops.riaddisiena.com/arrival?id=" + p.BookingID,
	})
	if err != nil {
		log.Printf("pre-arrival email for %s not rendered: %v", p.BookingID, err)
		return Result{Err: err}
	}

	subject := "Action needed: Confirm your arrival time"
	if p.ArrivalTimeConfirmed && p.ConfirmedTime != "" {
		subject = fmt.Sprintf("Preparing for your arrival on %s", formatDate(p.CheckIn))
	}

	id, err := Send(&resend.SendEmailRequest{
		From:    fromAddress,
		To:      []string{p.Email},
		Bcc:     []string{ownerAddress},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		log.Printf("pre-arrival email for %s failed: %v", p.BookingID, err)
		return Result{Err: err}
	}
	return Result{Success: true, ID: id}
}

var preArrivalTmpl = template.Must(template.New("prearrival").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>
    body { font-family: Georgia, serif; color: #1a1a1a; line-height: 1.7; max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { text-align: center; padding: 30px 0; border-bottom: 1px solid #e5e5e5; }
    .logo { font-size: 24px; letter-spacing: 0.2em; }
    h1 { font-size: 24px; font-weight: normal; margin-bottom: 10px; }
    .subtitle { color: #6b6b6b; font-size: 14px; margin-bottom: 30px; }
    .summary { background: #faf8f5; padding: 20px; margin: 20px 0; }
    .summary-row { display: flex; justify-content: space-between; padding: 6px 0; }
    .summary-label { color: #6b6b6b; font-size: 13px; }
    .action-box { background: #1a1a1a; padding: 25px; margin: 25px 0; text-align: center; }
    .action-box h2 { color: #ffffff; font-size: 16px; font-weight: normal; margin: 0 0 10px 0; }
    .action-box p { color: #cccccc; font-size: 14px; margin: 0 0 20px 0; }
    .btn { display: inline-block; padding: 14px 32px; background: #ffffff; color: #1a1a1a; text-decoration: none; font-size: 13px; text-transform: uppercase; letter-spacing: 0.1em; }
    .confirmed-box { background: #f0f7f0; padding: 20px; margin: 25px 0; text-align: center; }
    .confirmed-time { font-size: 20px; }
    .section { margin: 30px 0; }
    .section h3 { font-size: 12px; text-transform: uppercase; letter-spacing: 0.15em; color: #6b6b6b; margin-bottom: 15px; font-weight: normal; }
    .footer { text-align: center; padding: 30px 0; border-top: 1px solid #e5e5e5; color: #6b6b6b; font-size: 12px; }
  </style>
</head>
<body>
  <div class="header"><div class="logo">RIAD DI SIENA</div></div>

  <h1>Preparing for your arrival</h1>
  <p class="subtitle">Your stay is approaching. Here's everything you need for a smooth arrival.</p>

  <div class="summary">
    <div class="summary-row"><span class="summary-label">Check-in</span><span>{{.CheckInLong}} from 3:00 PM</span></div>
    <div class="summary-row"><span class="summary-label">Check-out</span><span>{{.CheckOutLong}} by 11:00 AM</span></div>
    <div class="summary-row"><span class="summary-label">Room</span><span>{{.Room}}</span></div>
    <div class="summary-row"><span class="summary-label">Reference</span><span>{{.BookingID}}</span></div>
  </div>

  {{if and .ArrivalTimeConfirmed .ConfirmedTime}}
  <div class="confirmed-box">
    <span class="summary-label">Your arrival time</span><br>
    <span class="confirmed-time">{{.ConfirmedTime}}</span>
    <p style="margin-top: 10px; font-size: 13px; color: #6b6b6b;">We'll be ready for you. If plans change, just reply to this email.</p>
  </div>
  {{else}}
  <div class="action-box">
    <h2>Please confirm your arrival time</h2>
    <p>We haven't received your arrival time yet. This helps us prepare for you.</p>
    <a href="{{.FormURL}}" class="btn">Confirm Arrival Time</a>
  </div>
  {{end}}

  <div class="section">
    <h3>Step-by-step directions</h3>
    <p><strong>1. Tell your driver: Café Medina Rouge.</strong> It faces the Koutoubia Mosque, near Parking Bennani. All taxi drivers know it.</p>
    <p><strong>2. Enter the alley beside the café.</strong> Walk straight for about 100 meters (2 minutes).</p>
    <p><strong>3. Look for our door: 35–37 Derb Fhal Zefriti.</strong> A wooden door on your left. Knock or ring the bell — we'll be waiting.</p>
    <p style="font-size: 14px; color: #6b6b6b;">If you arrive after 5:00 PM, we'll send you self-check-in instructions with a door code.</p>
  </div>

  <div class="section">
    <h3>Airport Transfer</h3>
    <p>We can arrange a private driver for 200 MAD (about €18). Just let Zahra know.</p>
  </div>

  <div class="section">
    <h3>Contact</h3>
    <p><strong>Zahra</strong> (WhatsApp): +212 6 19 11 20 08<br>
    <span style="color: #6b6b6b; font-size: 14px;">Available 8:00 AM – 5:00 PM</span></p>
  </div>

  <p style="margin-top: 30px;">Safe travels. We'll see you soon.</p>
  <p>Warmly,<br>The Riad</p>

  <div class="footer">
    <p>Riad di Siena · 35–37 Derb Fhal Zefriti · Marrakech Medina</p>
    <p>riaddisiena.com</p>
  </div>
</body>
</html>
`))

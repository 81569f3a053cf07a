package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"

	"booking-ops/email"
	"booking-ops/model"
)

// Routes are registered directly instead of through the router package to
// avoid an import cycle with these in-package tests.
func newTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/bookings", CreateBooking)
	app.Get("/api/bookings", GetBookings)
	return app
}

type mailbox struct {
	mu   sync.Mutex
	sent []*resend.SendEmailRequest
}

func (m *mailbox) send(p *resend.SendEmailRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, p)
	return "msg_test", nil
}

func (m *mailbox) subjects() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, p := range m.sent {
		out = append(out, p.Subject)
	}
	return out
}

func (m *mailbox) countSubjectsContaining(substr string) int {
	n := 0
	for _, s := range m.subjects() {
		if strings.Contains(s, substr) {
			n++
		}
	}
	return n
}

// withStubs swaps the ledger and mail seams for the duration of one test.
func withStubs(t *testing.T, appendFn func(model.Booking) (bool, error)) *mailbox {
	t.Helper()

	origAppend := appendToLedger
	origDelay := ledgerBaseDelay
	origSend := email.Send

	mb := &mailbox{}
	appendToLedger = appendFn
	ledgerBaseDelay = time.Millisecond
	email.Send = mb.send

	t.Cleanup(func() {
		appendToLedger = origAppend
		ledgerBaseDelay = origDelay
		email.Send = origSend
	})
	return mb
}

func completedPayload() map[string]interface{} {
	return map[string]interface{}{
		"firstName":     "Ana",
		"lastName":      "Lopez",
		"email":         "ana@example.com",
		"phone":         "+34 600 000 000",
		"room":          "Tresor Cache",
		"checkIn":       "2026-04-06",
		"checkOut":      "2026-04-10",
		"nights":        4,
		"guests":        2,
		"total":         440,
		"paypalOrderId": "8XY12345AB",
		"paypalStatus":  "COMPLETED",
	}
}

func postBooking(t *testing.T, app *fiber.App, payload interface{}) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	req, _ := http.NewRequest("POST", "/api/bookings", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req, -1)
	assert.NoError(t, err)
	return res
}

type bookingResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingId"`
	Message   string `json:"message"`
	Error     string `json:"error"`
}

func decodeBooking(t *testing.T, res *http.Response) bookingResponse {
	t.Helper()
	var out bookingResponse
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	return out
}

func TestCreateBookingHappyPath(t *testing.T) {
	calls := 0
	mb := withStubs(t, func(b model.Booking) (bool, error) {
		calls++
		return true, nil
	})

	res := postBooking(t, newTestApp(), completedPayload())

	assert.Equal(t, 200, res.StatusCode)
	body := decodeBooking(t, res)
	assert.True(t, body.Success)
	assert.True(t, strings.HasPrefix(body.BookingID, "RDS-"))
	assert.Equal(t, "Booking confirmed", body.Message)

	assert.Equal(t, 1, calls)
	assert.Len(t, mb.sent, 2, "guest confirmation and owner notification")
	assert.Zero(t, mb.countSubjectsContaining("URGENT"))
}

func TestCreateBookingLedgerRecoversOnSecondAttempt(t *testing.T) {
	calls := 0
	mb := withStubs(t, func(b model.Booking) (bool, error) {
		calls++
		if calls == 1 {
			return false, errors.New("sheets api unavailable")
		}
		return true, nil
	})

	res := postBooking(t, newTestApp(), completedPayload())

	assert.Equal(t, 200, res.StatusCode)
	assert.True(t, decodeBooking(t, res).Success)
	assert.Equal(t, 2, calls)
	assert.Zero(t, mb.countSubjectsContaining("URGENT"), "no escalation after recovery")
	assert.Len(t, mb.sent, 2)
}

func TestCreateBookingLedgerExhaustionEscalates(t *testing.T) {
	calls := 0
	mb := withStubs(t, func(b model.Booking) (bool, error) {
		calls++
		return false, errors.New("sheets api unavailable")
	})

	res := postBooking(t, newTestApp(), completedPayload())

	// Payment was captured, so the caller still sees success.
	assert.Equal(t, 200, res.StatusCode)
	body := decodeBooking(t, res)
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.BookingID)

	assert.Equal(t, 3, calls, "bounded retries")
	assert.Equal(t, 1, mb.countSubjectsContaining("URGENT"), "exactly one escalation")
	assert.Len(t, mb.sent, 3, "escalation plus both notifications")
}

func TestCreateBookingFalseAppendIsRetryable(t *testing.T) {
	calls := 0
	withStubs(t, func(b model.Booking) (bool, error) {
		calls++
		return false, nil
	})

	res := postBooking(t, newTestApp(), completedPayload())

	assert.Equal(t, 200, res.StatusCode)
	assert.Equal(t, 3, calls)
}

func TestCreateBookingSkipsGuestEmailWhenAbsent(t *testing.T) {
	mb := withStubs(t, func(b model.Booking) (bool, error) { return true, nil })

	payload := completedPayload()
	delete(payload, "email")
	res := postBooking(t, newTestApp(), payload)

	assert.Equal(t, 200, res.StatusCode)
	assert.Len(t, mb.sent, 1, "owner notification only")
	assert.Equal(t, 1, mb.countSubjectsContaining("New Booking"))
}

func TestCreateBookingRejectsIncompletePayment(t *testing.T) {
	mb := withStubs(t, func(b model.Booking) (bool, error) {
		t.Error("ledger must not be written for incomplete payments")
		return false, nil
	})

	payload := completedPayload()
	payload["paypalStatus"] = "PENDING"
	res := postBooking(t, newTestApp(), payload)

	assert.Equal(t, 400, res.StatusCode)
	body := decodeBooking(t, res)
	assert.False(t, body.Success)
	assert.Equal(t, "Payment not completed", body.Error)
	assert.Empty(t, mb.sent, "no notifications for incomplete payments")
}

func TestCreateBookingMalformedBody(t *testing.T) {
	withStubs(t, func(b model.Booking) (bool, error) {
		t.Error("ledger must not be written for malformed bodies")
		return false, nil
	})

	req, _ := http.NewRequest("POST", "/api/bookings", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	res, err := newTestApp().Test(req, -1)
	assert.NoError(t, err)

	assert.Equal(t, 500, res.StatusCode)
}

func TestCreateBookingDuplicateSubmissionsMintNewIDs(t *testing.T) {
	withStubs(t, func(b model.Booking) (bool, error) { return true, nil })
	app := newTestApp()

	first := decodeBooking(t, postBooking(t, app, completedPayload()))
	second := decodeBooking(t, postBooking(t, app, completedPayload()))

	// Duplicate submissions are not deduplicated; each gets a fresh id and
	// a fresh ledger row.
	assert.NotEqual(t, first.BookingID, second.BookingID)
}

func TestGetBookingsPointsAtOpsDashboard(t *testing.T) {
	req, _ := http.NewRequest("GET", "/api/bookings", nil)
	res, err := newTestApp().Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)

	var body map[string]string
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Contains(t, body["message"], "ops.riaddisiena.com")
}

package model

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultProperty is assumed when the inbound payload names no property.
const DefaultProperty = "Riad di Siena"

// PaymentCompleted is the only upstream payment status that produces a
// booking. Anything else is rejected before any side effect runs.
const PaymentCompleted = "COMPLETED"

var ErrPaymentNotCompleted = errors.New("payment not completed")

// BookingRequest is the raw webhook payload. Old booking forms still send
// the legacy fields (name, roomPreference) alongside nothing else, so every
// field here is optional.
type BookingRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`

	CheckIn  string  `json:"checkIn"`
	CheckOut string  `json:"checkOut"`
	Nights   int     `json:"nights"`
	Guests   int     `json:"guests"`
	Adults   int     `json:"adults"`
	Children int     `json:"children"`
	Total    float64 `json:"total"`

	Room         string `json:"room"`
	RoomID       string `json:"roomId"`
	Property     string `json:"property"`
	Tent         string `json:"tent"`
	TentID       string `json:"tentId"`
	TentLevel    string `json:"tentLevel"`
	Experience   string `json:"experience"`
	ExperienceID string `json:"experienceId"`

	PayPalOrderID string `json:"paypalOrderId"`
	PayPalStatus  string `json:"paypalStatus"`

	// Legacy fields from old forms.
	Name           string `json:"name"`
	RoomPreference string `json:"roomPreference"`
}

// Booking is the canonical record of a confirmed paid stay. It is built
// once per request and never mutated afterwards.
type Booking struct {
	BookingID     string  `json:"booking_id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	GuestName     string  `json:"guest_name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Property      string  `json:"property"`
	Accommodation string  `json:"room_type"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	Nights        int     `json:"nights"`
	Guests        int     `json:"guests_count"`
	Total         float64 `json:"total"`
	TotalPrice    string  `json:"total_price"`
	PayPalOrderID string  `json:"paypal_order_id"`
	Remarks       string  `json:"remarks"`
}

// Normalize maps the loosely-typed payload onto a canonical booking. Legacy
// aliases resolve through a fixed precedence order; zero-ish numeric fields
// take the business default of 1. A payment status other than COMPLETED
// rejects the request before a record exists.
func Normalize(req BookingRequest) (Booking, error) {
	if req.PayPalStatus != PaymentCompleted {
		return Booking{}, ErrPaymentNotCompleted
	}

	first, last := resolveName(req)

	property := req.Property
	if property == "" {
		property = DefaultProperty
	}

	nights := req.Nights
	if nights <= 0 {
		nights = 1
	}
	guests := req.Guests
	if guests <= 0 {
		guests = req.Adults
	}
	if guests <= 0 {
		guests = 1
	}

	return Booking{
		BookingID:     NewBookingID(),
		FirstName:     first,
		LastName:      last,
		GuestName:     strings.TrimSpace(first + " " + last),
		Email:         req.Email,
		Phone:         req.Phone,
		Property:      property,
		Accommodation: resolveAccommodation(req),
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		Nights:        nights,
		Guests:        guests,
		Total:         req.Total,
		TotalPrice:    FormatPrice(req.Total),
		PayPalOrderID: req.PayPalOrderID,
		Remarks:       req.Message,
	}, nil
}

// NewBookingID mints a fresh display key. Resubmitting the same payload
// produces a new id and a new ledger row; there is no server-side dedup.
func NewBookingID() string {
	short := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return "RDS-" + time.Now().UTC().Format("20060102") + "-" + short
}

func resolveName(req BookingRequest) (string, string) {
	first := req.FirstName
	last := req.LastName

	var legacy []string
	if req.Name != "" {
		legacy = strings.Fields(req.Name)
	}
	if first == "" && len(legacy) > 0 {
		first = legacy[0]
	}
	if last == "" && len(legacy) > 1 {
		last = strings.Join(legacy[1:], " ")
	}
	return first, last
}

// Accommodation precedence: room > tent > experience > legacy roomPreference.
func resolveAccommodation(req BookingRequest) string {
	switch {
	case req.Room != "":
		return req.Room
	case req.Tent != "":
		return req.Tent
	case req.Experience != "":
		return req.Experience
	case req.RoomPreference != "":
		return req.RoomPreference
	}
	return ""
}

// FormatPrice renders the euro amount the way the ops sheet stores it.
func FormatPrice(total float64) string {
	return "€" + strconv.FormatFloat(total, 'f', -1, 64)
}

// SheetRow lays the booking out in the Master_Guests column order. Columns
// the webhook cannot know (channel fees, payout state) stay blank or
// "pending" for the ops team.
func (b Booking) SheetRow() []interface{} {
	return []interface{}{
		b.BookingID,
		"Website",
		"confirmed",
		b.FirstName,
		b.LastName,
		b.Email,
		b.Phone,
		"", "",
		b.Property,
		b.Accommodation,
		b.CheckIn,
		b.CheckOut,
		b.Nights,
		b.Guests,
		"", "",
		b.TotalPrice,
		"",
		b.Remarks,
		"", "",
		"pending",
		"", "",
		"pending",
		"PayPal: " + b.PayPalOrderID,
		time.Now().UTC().Format(time.RFC3339),
	}
}

// CSVLine is the same row as SheetRow in copy-pasteable form, embedded in
// the failure alert so a human can re-enter the booking by hand.
func (b Booking) CSVLine() string {
	quote := func(s string) string {
		if s == "" {
			return ""
		}
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	fields := []string{
		b.BookingID,
		"Website",
		"confirmed",
		b.FirstName,
		b.LastName,
		b.Email,
		b.Phone,
		"", "",
		quote(b.Property),
		quote(b.Accommodation),
		b.CheckIn,
		b.CheckOut,
		strconv.Itoa(b.Nights),
		strconv.Itoa(b.Guests),
		"", "",
		quote(b.TotalPrice),
		"",
		quote(b.Remarks),
		"", "",
		"pending",
		"", "",
		"pending",
		"PayPal: " + b.PayPalOrderID,
		time.Now().UTC().Format(time.RFC3339),
	}
	return strings.Join(fields, ",")
}

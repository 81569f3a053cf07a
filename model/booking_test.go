package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func completedRequest() BookingRequest {
	return BookingRequest{
		FirstName:     "Ana",
		LastName:      "Lopez",
		Email:         "ana@example.com",
		Room:          "Tresor Cache",
		CheckIn:       "2026-04-06",
		CheckOut:      "2026-04-10",
		Nights:        4,
		Guests:        2,
		Total:         440,
		PayPalOrderID: "8XY12345AB",
		PayPalStatus:  PaymentCompleted,
	}
}

func TestNormalizeRejectsIncompletePayment(t *testing.T) {
	for _, status := range []string{"", "PENDING", "FAILED", "completed"} {
		req := completedRequest()
		req.PayPalStatus = status

		_, err := Normalize(req)
		assert.ErrorIs(t, err, ErrPaymentNotCompleted, "status %q", status)
	}
}

func TestNormalizeLegacyNameSplit(t *testing.T) {
	req := completedRequest()
	req.FirstName = ""
	req.LastName = ""
	req.Name = "Ana Maria Lopez"

	b, err := Normalize(req)
	assert.NoError(t, err)
	assert.Equal(t, "Ana", b.FirstName)
	assert.Equal(t, "Maria Lopez", b.LastName)
	assert.Equal(t, "Ana Maria Lopez", b.GuestName)
}

func TestNormalizeAccommodationPrecedence(t *testing.T) {
	tests := []struct {
		description string
		req         func(r *BookingRequest)
		expected    string
	}{
		{"room wins over tent", func(r *BookingRequest) {
			r.Room = "Tresor Cache"
			r.Tent = "Dune Suite"
		}, "Tresor Cache"},
		{"tent wins over experience", func(r *BookingRequest) {
			r.Room = ""
			r.Tent = "Dune Suite"
			r.Experience = "Camel Trek"
		}, "Dune Suite"},
		{"experience wins over legacy preference", func(r *BookingRequest) {
			r.Room = ""
			r.Experience = "Camel Trek"
			r.RoomPreference = "Any"
		}, "Camel Trek"},
		{"legacy preference as last resort", func(r *BookingRequest) {
			r.Room = ""
			r.RoomPreference = "Any"
		}, "Any"},
		{"empty when nothing given", func(r *BookingRequest) {
			r.Room = ""
		}, ""},
	}

	for _, test := range tests {
		req := completedRequest()
		test.req(&req)

		b, err := Normalize(req)
		assert.NoError(t, err)
		assert.Equalf(t, test.expected, b.Accommodation, test.description)
	}
}

func TestNormalizeDefaults(t *testing.T) {
	req := BookingRequest{PayPalStatus: PaymentCompleted}

	b, err := Normalize(req)
	assert.NoError(t, err)
	assert.Equal(t, DefaultProperty, b.Property)
	assert.Equal(t, 1, b.Nights)
	assert.Equal(t, 1, b.Guests)
	assert.Equal(t, "€0", b.TotalPrice)
	assert.Equal(t, "", b.GuestName)
}

func TestNormalizeGuestsFallsBackToAdults(t *testing.T) {
	req := completedRequest()
	req.Guests = 0
	req.Adults = 3

	b, err := Normalize(req)
	assert.NoError(t, err)
	assert.Equal(t, 3, b.Guests)
}

func TestNormalizeMintsUniqueBookingIDs(t *testing.T) {
	// Resubmitting an identical payload creates a new row on purpose;
	// there is no server-side dedup.
	first, err := Normalize(completedRequest())
	assert.NoError(t, err)
	second, err := Normalize(completedRequest())
	assert.NoError(t, err)

	assert.True(t, strings.HasPrefix(first.BookingID, "RDS-"))
	assert.NotEqual(t, first.BookingID, second.BookingID)
}

func TestCSVLineCarriesTheFullRecord(t *testing.T) {
	b, err := Normalize(completedRequest())
	assert.NoError(t, err)

	line := b.CSVLine()
	assert.Contains(t, line, b.BookingID)
	assert.Contains(t, line, "Website,confirmed,Ana,Lopez,ana@example.com")
	assert.Contains(t, line, `"Tresor Cache"`)
	assert.Contains(t, line, "PayPal: 8XY12345AB")
	assert.Equal(t, len(b.SheetRow()), len(strings.Split(line, ",")),
		"CSV line and sheet row must have the same column count")
}

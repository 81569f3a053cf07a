package handlers

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"booking-ops/email"
	"booking-ops/errors"
	"booking-ops/ledger"
	"booking-ops/model"
	"booking-ops/retry"
)

// Ledger retry policy. Three attempts with 1s/2s pauses keeps the webhook
// under PayPal's response deadline while riding out short Sheets outages.
var (
	ledgerMaxAttempts = 3
	ledgerBaseDelay   = time.Second
)

// appendToLedger is a seam for handler tests.
var appendToLedger = ledger.AppendBooking

// CreateBooking handles the payment webhook. Once the payment is confirmed
// the caller gets a success response no matter how bookkeeping went: a
// spreadsheet write that exhausts its retries is escalated to the owner by
// mail, and notification failures are logged and swallowed.
func CreateBooking(c *fiber.Ctx) error {
	req := new(model.BookingRequest)
	if err := c.BodyParser(req); err != nil {
		// TODO: a malformed body should probably answer 400; kept at 500
		// until the payment widget's error handling is reviewed.
		bookingsReceived.WithLabelValues("error").Inc()
		return errors.RaiseInternalServerError(c, fmt.Sprintf("cannot parse booking payload: %v", err))
	}

	booking, err := model.Normalize(*req)
	if err != nil {
		bookingsReceived.WithLabelValues("payment_incomplete").Inc()
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success":      false,
			"error":        "Payment not completed",
			"paypalStatus": req.PayPalStatus})
	}

	outcome := retry.WithBackoff(func() (bool, error) {
		ok, appendErr := appendToLedger(booking)
		if appendErr != nil {
			return false, appendErr
		}
		if !ok {
			return false, fmt.Errorf("sheet append returned false")
		}
		return true, nil
	}, ledgerMaxAttempts, ledgerBaseDelay)
	ledgerAttempts.Add(float64(outcome.Attempts))

	if outcome.Success {
		log.Printf("booking %s written to sheet on attempt %d", booking.BookingID, outcome.Attempts)
	} else {
		ledgerFailures.Inc()
		log.Printf("booking %s failed to reach the sheet after %d attempts: %v",
			booking.BookingID, outcome.Attempts, outcome.LastErr)
		if alertErr := email.SendLedgerFailureAlert(booking); alertErr != nil {
			log.Printf("failure alert for booking %s not sent: %v", booking.BookingID, alertErr)
			emailsSent.WithLabelValues("alert", "failed").Inc()
		} else {
			emailsSent.WithLabelValues("alert", "sent").Inc()
		}
	}

	dispatch := email.SendBookingEmails(booking)
	recordEmail("guest", dispatch.Guest)
	recordEmail("owner", dispatch.Owner)

	bookingsReceived.WithLabelValues("confirmed").Inc()
	return c.JSON(fiber.Map{
		"success":   true,
		"bookingId": booking.BookingID,
		"message":   "Booking confirmed"})
}

// GetBookings points at the ops dashboard; booking data lives in the sheet.
func GetBookings(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "View bookings at ops.riaddisiena.com"})
}

func GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"booking-ops/email"
	"booking-ops/errors"
	"booking-ops/model"
)

// testBooking mirrors a real confirmed payment so the whole pipeline can be
// exercised against the live sheet and mailbox.
func testBooking() model.Booking {
	return model.Booking{
		BookingID:     model.NewBookingID(),
		FirstName:     "Test",
		LastName:      "Guest",
		GuestName:     "Test Guest",
		Email:         ownerTestAddress,
		Phone:         "+1 555 000 0000",
		Property:      model.DefaultProperty,
		Accommodation: "Test Room",
		CheckIn:       "2026-05-01",
		CheckOut:      "2026-05-03",
		Nights:        2,
		Guests:        2,
		Total:         200,
		TotalPrice:    model.FormatPrice(200),
		PayPalOrderID: "TEST-PAYPAL-ORDER",
		Remarks:       "This is a test booking - DELETE THIS ROW",
	}
}

const ownerTestAddress = "happy@riaddisiena.com"

// SendTestEmail delivers the sample guest confirmation to the owner mailbox.
func SendTestEmail(c *fiber.Ctx) error {
	b := testBooking()
	b.FirstName = "Chris"
	b.LastName = "Test"
	b.GuestName = "Chris Test"
	b.Accommodation = "Tresor Cache"
	b.CheckIn = "2026-04-06"
	b.CheckOut = "2026-04-10"
	b.Nights = 4
	b.Total = 440
	b.TotalPrice = model.FormatPrice(440)

	res := email.SendGuestConfirmation(b)
	if !res.Success {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("failed to send test email: %v", res.Err))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Test booking confirmation email sent to " + ownerTestAddress})
}

// RunFullBookingTest drives the exact flow a paid booking takes, with a
// clearly marked test record: one sheet append, then both emails. Each step
// reports its own outcome so a broken credential shows up precisely.
func RunFullBookingTest(c *fiber.Ctx) error {
	type step struct {
		Step    string `json:"step"`
		Success bool   `json:"success"`
		Error   string `json:"error,omitempty"`
	}

	b := testBooking()
	var steps []step

	ok, err := appendToLedger(b)
	sheetStep := step{Step: "1. Write to OPS sheet", Success: ok && err == nil}
	if err != nil {
		sheetStep.Error = err.Error()
	} else if !ok {
		sheetStep.Error = "sheet append returned false"
	}
	steps = append(steps, sheetStep)

	dispatch := email.SendBookingEmails(b)
	ownerStep := step{Step: "2a. Owner notification email", Success: dispatch.Owner.Success}
	if dispatch.Owner.Err != nil {
		ownerStep.Error = dispatch.Owner.Err.Error()
	}
	guestStep := step{Step: "2b. Guest confirmation email", Success: dispatch.Guest.Success}
	if dispatch.Guest.Err != nil {
		guestStep.Error = dispatch.Guest.Err.Error()
	}
	steps = append(steps, ownerStep, guestStep)

	allSuccess := true
	for _, s := range steps {
		if !s.Success {
			allSuccess = false
		}
	}

	return c.JSON(fiber.Map{
		"success":   allSuccess,
		"bookingId": b.BookingID,
		"results":   steps,
		"note":      "Delete the test row from Master_Guests after verifying"})
}

// SendPreArrival triggers the pre-arrival email for an upcoming stay.
func SendPreArrival(c *fiber.Ctx) error {
	req := new(email.PreArrival)
	if err := c.BodyParser(req); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("cannot parse pre-arrival request: %v", err))
	}
	if req.BookingID == "" || req.Email == "" {
		return errors.RaiseBadRequestError(c, "bookingId and email are required")
	}

	res := email.SendPreArrival(*req)
	recordEmail("pre_arrival", res)
	if !res.Success {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("pre-arrival email not sent: %v", res.Err))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Pre-arrival email sent for " + req.BookingID})
}

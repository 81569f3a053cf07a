// Package ledger appends confirmed bookings to the operations spreadsheet.
package ledger

import (
	"context"
	"fmt"
	"os"
	"sync"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"booking-ops/config"
	"booking-ops/model"
)

// Rows land below the header of the sheet the ops team works from.
const bookingsRange = "Master_Guests!A:A"

var (
	initOnce sync.Once
	service  *sheets.Service
	sheetID  string
	initErr  error
)

// getService builds the Sheets client on first use and reuses the handle
// for the process lifetime. Missing configuration surfaces as an error on
// every call rather than a startup crash, so the booking flow can still
// escalate.
func getService() (*sheets.Service, string, error) {
	initOnce.Do(func() {
		sheetID, initErr = config.GetSecret("OPS_SHEET_ID")
		if initErr != nil {
			return
		}
		credsFile, err := config.GetSecret("GOOGLE_CREDENTIALS_FILE")
		if err != nil {
			initErr = err
			return
		}
		raw, err := os.ReadFile(credsFile)
		if err != nil {
			initErr = fmt.Errorf("cannot read google credentials: %v", err)
			return
		}
		jwtConfig, err := google.JWTConfigFromJSON(raw, sheets.SpreadsheetsScope)
		if err != nil {
			initErr = fmt.Errorf("cannot parse google credentials: %v", err)
			return
		}
		ctx := context.Background()
		service, initErr = sheets.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	})
	return service, sheetID, initErr
}

// AppendBooking adds one row for the booking and reports whether the API
// acknowledged it. A false return without error means the call went through
// but no row was written; callers treat both shapes as retryable.
func AppendBooking(b model.Booking) (bool, error) {
	srv, id, err := getService()
	if err != nil {
		return false, err
	}

	values := &sheets.ValueRange{Values: [][]interface{}{b.SheetRow()}}
	resp, err := srv.Spreadsheets.Values.Append(id, bookingsRange, values).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Do()
	if err != nil {
		return false, err
	}

	return resp.Updates != nil && resp.Updates.UpdatedRows > 0, nil
}

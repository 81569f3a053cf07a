// Package email sends guest, owner and operator mail through Resend.
package email

import (
	"sync"

	"github.com/resend/resend-go/v2"

	"booking-ops/config"
)

const (
	fromAddress  = "Riad di Siena <operations@mail.riaddisiena.com>"
	ownerAddress = "happy@riaddisiena.com"
)

var (
	clientOnce sync.Once
	client     *resend.Client
	clientErr  error
)

// getClient builds the Resend client on first use; the same handle serves
// every send for the process lifetime. A missing API key fails every send
// with the same error instead of crashing startup.
func getClient() (*resend.Client, error) {
	clientOnce.Do(func() {
		key, err := config.GetSecret("RESEND_API_KEY")
		if err != nil {
			clientErr = err
			return
		}
		client = resend.NewClient(key)
	})
	return client, clientErr
}

// Send delivers one message and reports the provider message id. It is a
// package variable so tests can capture outbound mail.
var Send = func(params *resend.SendEmailRequest) (string, error) {
	c, err := getClient()
	if err != nil {
		return "", err
	}
	sent, err := c.Emails.Send(params)
	if err != nil {
		return "", err
	}
	return sent.Id, nil
}

package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"booking-ops/email"
)

var (
	bookingsReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "booking_requests_total",
		Help: "Inbound booking webhooks by outcome",
	}, []string{"outcome"})

	ledgerAttempts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ledger_append_attempts_total",
		Help: "Spreadsheet append attempts, retries included",
	})

	ledgerFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ledger_append_failures_total",
		Help: "Bookings that never reached the spreadsheet",
	})

	emailsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "emails_total",
		Help: "Outbound emails by kind and outcome",
	}, []string{"kind", "outcome"})
)

func recordEmail(kind string, r email.Result) {
	switch {
	case r.Skipped:
	case r.Success:
		emailsSent.WithLabelValues(kind, "sent").Inc()
	default:
		emailsSent.WithLabelValues(kind, "failed").Inc()
	}
}

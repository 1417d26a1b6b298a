package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Submissions counts sale submissions by outcome (success, rejected, error).
var Submissions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pos_sale_submissions_total",
	Help: "Sale submissions grouped by outcome",
}, []string{"outcome"})

// ReceiptsPrinted counts printed receipts by result.
var ReceiptsPrinted = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pos_receipts_printed_total",
	Help: "Receipts sent to the printer grouped by result",
}, []string{"result"})

// Outcome labels for Submissions.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

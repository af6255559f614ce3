package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPayment_Reconcile(t *testing.T) {
	created := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	now := created.Add(time.Hour)

	tests := []struct {
		name        string
		status      PaymentStatus
		gateway     string
		wantOutcome ReconcileOutcome
		wantStatus  PaymentStatus
		wantTxn     string
		wantDate    time.Time
	}{
		{"pending success", PaymentPending, "SUCCESS", OutcomeConfirmed, PaymentConfirmed, "tx1", now},
		{"pending failure", PaymentPending, "FAILED", OutcomeCancelled, PaymentCancelled, "tx1", created},
		{"confirmed success is idempotent", PaymentConfirmed, "SUCCESS", OutcomeAlreadyConfirmed, PaymentConfirmed, "tx0", created},
		{"confirmed is terminal", PaymentConfirmed, "FAILED", OutcomeAlreadyConfirmed, PaymentConfirmed, "tx0", created},
		{"cancelled then success", PaymentCancelled, "SUCCESS", OutcomeConfirmed, PaymentConfirmed, "tx1", now},
		{"status is case sensitive", PaymentPending, "success", OutcomeCancelled, PaymentCancelled, "tx1", created},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Payment{Status: tt.status, TransactionID: "tx0", PaymentDate: created}

			got := p.Reconcile("tx1", tt.gateway, now)

			assert.Equal(t, tt.wantOutcome, got)
			assert.Equal(t, tt.wantStatus, p.Status)
			assert.Equal(t, tt.wantTxn, p.TransactionID)
			assert.Equal(t, tt.wantDate, p.PaymentDate)
		})
	}
}

func TestSeatsFor(t *testing.T) {
	assert.Equal(t, 1, SeatsFor(0))
	assert.Equal(t, 1, SeatsFor(1))
	assert.Equal(t, 4, SeatsFor(4))
}

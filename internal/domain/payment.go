package domain

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentConfirmed PaymentStatus = "CONFIRMED"
	PaymentCancelled PaymentStatus = "CANCELLED"
)

// GatewaySuccess is the only webhook status that confirms a payment.
const GatewaySuccess = "SUCCESS"

type Payment struct {
	ID            uint          `json:"paymentId"`
	BookingID     uint          `json:"bookingId"`
	Amount        float64       `json:"amount"`
	PaymentMethod string        `json:"paymentMethod"`
	TransactionID string        `json:"transactionId,omitempty"`
	PaymentDate   time.Time     `json:"paymentDate"`
	Status        PaymentStatus `json:"paymentStatus"`
}

type ReconcileOutcome string

const (
	OutcomeConfirmed        ReconcileOutcome = "confirmed"
	OutcomeCancelled        ReconcileOutcome = "cancelled"
	OutcomeAlreadyConfirmed ReconcileOutcome = "already_confirmed"
)

// Reconcile applies a gateway callback. CONFIRMED is terminal: any later
// callback, successful or not, leaves the payment untouched.
func (p *Payment) Reconcile(gatewayTxnID, gatewayStatus string, now time.Time) ReconcileOutcome {
	if p.Status == PaymentConfirmed {
		return OutcomeAlreadyConfirmed
	}

	p.TransactionID = gatewayTxnID
	if gatewayStatus == GatewaySuccess {
		p.Status = PaymentConfirmed
		p.PaymentDate = now

		return OutcomeConfirmed
	}
	p.Status = PaymentCancelled

	return OutcomeCancelled
}

// PaymentConfirmedEvent is published once a payment reaches CONFIRMED.
type PaymentConfirmedEvent struct {
	PaymentID     uint      `json:"paymentId"`
	BookingID     uint      `json:"bookingId"`
	TransactionID string    `json:"transactionId"`
	Amount        float64   `json:"amount"`
	ConfirmedAt   time.Time `json:"confirmedAt"`
}

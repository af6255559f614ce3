package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreatePaymentRequest struct {
	BookingID     uint    `json:"bookingId"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
}

// Validate leaves the amount to the payment service, which owns that rule.
func (req *CreatePaymentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.BookingID, validation.Required),
		validation.Field(&req.PaymentMethod, validation.Required, validation.Length(1, 50)),
	)
}

// WebhookRequest is the payment gateway callback body. Failed callbacks may
// arrive without a gateway transaction id.
type WebhookRequest struct {
	PaymentID    uint   `json:"our_payment_id"`
	GatewayTxnID string `json:"gateway_txn_id"`
	Status       string `json:"status"`
}

func (req *WebhookRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.PaymentID, validation.Required),
		validation.Field(&req.GatewayTxnID, validation.Length(0, 255)),
		validation.Field(&req.Status, validation.Required),
	)
}

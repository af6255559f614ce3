package response

type WebhookResponse struct {
	OK            bool   `json:"ok"`
	PaymentStatus string `json:"paymentStatus,omitempty"`
	Message       string `json:"message,omitempty"`
}

package v1_test

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/dharma-pro/temple-booking/internal/api/handler/v1"
	"github.com/dharma-pro/temple-booking/internal/config"
	"github.com/dharma-pro/temple-booking/internal/domain"
	"github.com/dharma-pro/temple-booking/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakePayments struct {
	calls   int
	outcome domain.ReconcileOutcome
	err     error
}

func (f *fakePayments) CreatePayment(context.Context, uint, float64, string) (domain.Payment, error) {
	return domain.Payment{}, nil
}

func (f *fakePayments) ProcessWebhook(context.Context, uint, string, string) (service.WebhookResult, error) {
	f.calls++
	if f.err != nil {
		return service.WebhookResult{}, f.err
	}

	return service.WebhookResult{Outcome: f.outcome}, nil
}

func (f *fakePayments) GetPayment(context.Context, uint) (domain.Payment, error) {
	return domain.Payment{}, f.err
}

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)

	return hex.EncodeToString(mac.Sum(nil))
}

func TestHandleWebhook(t *testing.T) {
	body := []byte(`{"our_payment_id":1,"gateway_txn_id":"tx1","status":"SUCCESS"}`)

	tests := []struct {
		name      string
		secret    string
		body      []byte
		signature string
		svc       *fakePayments
		wantCode  int
		wantBody  string
		wantCalls int
	}{
		{
			name:      "unsigned without secret",
			body:      body,
			svc:       &fakePayments{outcome: domain.OutcomeConfirmed},
			wantCode:  http.StatusOK,
			wantBody:  `{"ok":true,"paymentStatus":"confirmed"}`,
			wantCalls: 1,
		},
		{
			name:      "valid signature",
			secret:    "s3cret",
			body:      body,
			signature: sign("s3cret", body),
			svc:       &fakePayments{outcome: domain.OutcomeCancelled},
			wantCode:  http.StatusOK,
			wantBody:  `{"ok":true,"paymentStatus":"cancelled"}`,
			wantCalls: 1,
		},
		{
			name:      "already confirmed",
			body:      body,
			svc:       &fakePayments{outcome: domain.OutcomeAlreadyConfirmed},
			wantCode:  http.StatusOK,
			wantBody:  `{"ok":true,"message":"Already confirmed"}`,
			wantCalls: 1,
		},
		{
			name:      "signature from another secret",
			secret:    "s3cret",
			body:      body,
			signature: sign("other", body),
			svc:       &fakePayments{},
			wantCode:  http.StatusUnauthorized,
		},
		{
			name:     "missing signature",
			secret:   "s3cret",
			body:     body,
			svc:      &fakePayments{},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:      "malformed signature",
			secret:    "s3cret",
			body:      body,
			signature: "zz",
			svc:       &fakePayments{},
			wantCode:  http.StatusUnauthorized,
		},
		{
			name:     "invalid json",
			body:     []byte(`{`),
			svc:      &fakePayments{},
			wantCode: http.StatusBadRequest,
		},
		{
			name:      "failed callback without transaction id",
			body:      []byte(`{"our_payment_id":1,"status":"FAILED"}`),
			svc:       &fakePayments{outcome: domain.OutcomeCancelled},
			wantCode:  http.StatusOK,
			wantBody:  `{"ok":true,"paymentStatus":"cancelled"}`,
			wantCalls: 1,
		},
		{
			name:     "missing status",
			body:     []byte(`{"our_payment_id":1,"gateway_txn_id":"tx1"}`),
			svc:      &fakePayments{},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "missing fields",
			body:     []byte(`{"our_payment_id":1}`),
			svc:      &fakePayments{},
			wantCode: http.StatusBadRequest,
		},
		{
			name:      "unknown payment",
			body:      body,
			svc:       &fakePayments{err: service.ErrPaymentNotFound},
			wantCode:  http.StatusNotFound,
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := v1.NewPaymentHandler(&config.PaymentConfig{WebhookSecret: tt.secret}, tt.svc)
			router := gin.New()
			router.POST("/payment/webhook", h.HandleWebhook)

			req := httptest.NewRequest(http.MethodPost, "/payment/webhook", bytes.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			if tt.signature != "" {
				req.Header.Set("X-Gateway-Signature", tt.signature)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tt.wantCode, w.Code, w.Body.String())
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
			assert.Equal(t, tt.wantCalls, tt.svc.calls)
		})
	}
}

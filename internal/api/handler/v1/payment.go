package v1

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dharma-pro/temple-booking/internal/api/handler/v1/request"
	"github.com/dharma-pro/temple-booking/internal/api/handler/v1/response"
	"github.com/dharma-pro/temple-booking/internal/config"
	"github.com/dharma-pro/temple-booking/internal/domain"
	"github.com/dharma-pro/temple-booking/internal/service"
)

const signatureHeader = "X-Gateway-Signature"

var (
	errBadSignature = errors.New("invalid gateway signature")
)

type PaymentService interface {
	CreatePayment(ctx context.Context, bookingID uint, amount float64, method string) (domain.Payment, error)
	ProcessWebhook(ctx context.Context, paymentID uint, gatewayTxnID, status string) (service.WebhookResult, error)
	GetPayment(ctx context.Context, id uint) (domain.Payment, error)
}

type PaymentHandler struct {
	conf *config.PaymentConfig
	svc  PaymentService
}

func NewPaymentHandler(conf *config.PaymentConfig, svc PaymentService) *PaymentHandler {
	return &PaymentHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleCreatePayment godoc
// @Summary      Create a pending payment for a booking
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request   body      request.CreatePaymentRequest true "request body"
// @Success      201      {object}   domain.Payment
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /payment/create [post]
func (h *PaymentHandler) HandleCreatePayment(ctx *gin.Context) {
	var req request.CreatePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	payment, err := h.svc.CreatePayment(ctx.Request.Context(), req.BookingID, req.Amount, req.PaymentMethod)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotFound):
			response.RenderErr(ctx, response.ErrNotFound(service.ErrBookingNotFound))
		case errors.Is(err, service.ErrInvalidAmount):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidAmount))
		case errors.Is(err, service.ErrPaymentExists):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrPaymentExists))
		default:
			err = fmt.Errorf("v1.HandleCreatePayment -> h.svc.CreatePayment -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, payment)
}

// HandleWebhook godoc
// @Summary      Payment gateway callback
// @Description  SUCCESS confirms the payment, any other status cancels it. Confirmed payments are never changed again.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request   body      request.WebhookRequest true "request body"
// @Param        X-Gateway-Signature header string false "hex HMAC-SHA256 of the body, required when a webhook secret is configured"
// @Success      200      {object}   response.WebhookResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /payment/webhook [post]
func (h *PaymentHandler) HandleWebhook(ctx *gin.Context) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if h.conf.WebhookSecret != "" && !validSignature(h.conf.WebhookSecret, body, ctx.GetHeader(signatureHeader)) {
		response.RenderErr(ctx, response.ErrUnauthorized(errBadSignature))
		return
	}

	var req request.WebhookRequest
	if err = json.Unmarshal(body, &req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	result, err := h.svc.ProcessWebhook(ctx.Request.Context(), req.PaymentID, req.GatewayTxnID, req.Status)
	if err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrPaymentNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleWebhook -> h.svc.ProcessWebhook -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if result.Outcome == domain.OutcomeAlreadyConfirmed {
		ctx.JSON(http.StatusOK, response.WebhookResponse{OK: true, Message: "Already confirmed"})
		return
	}

	ctx.JSON(http.StatusOK, response.WebhookResponse{OK: true, PaymentStatus: string(result.Outcome)})
}

func validSignature(secret string, body []byte, signature string) bool {
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)

	return hmac.Equal(got, mac.Sum(nil))
}

// HandleGetPayment godoc
// @Summary      Get a payment
// @Tags         payments
// @Produce      json
// @Param        paymentID path      int  true  "Payment ID"
// @Success      200      {object}   domain.Payment
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /payment/{paymentID} [get]
func (h *PaymentHandler) HandleGetPayment(ctx *gin.Context) {
	id, err := pathID(ctx, "paymentID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	payment, err := h.svc.GetPayment(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrPaymentNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleGetPayment -> h.svc.GetPayment -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, payment)
}

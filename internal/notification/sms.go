package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/dharma-pro/temple-booking/internal/config"
	"github.com/dharma-pro/temple-booking/internal/domain"
)

type SMSLogRepository interface {
	Create(ctx context.Context, log domain.SMSLog) (domain.SMSLog, error)
}

// SMSClient posts {mobile, message} to the gateway and records every attempt
// in the sms log. Without a gateway URL each attempt is logged as SKIPPED.
type SMSClient struct {
	url    string
	client *http.Client
	logs   SMSLogRepository
}

func NewSMSClient(conf *config.SMSConfig, logs SMSLogRepository) *SMSClient {
	return &SMSClient{
		url:    conf.URL,
		client: &http.Client{Timeout: conf.Timeout},
		logs:   logs,
	}
}

type smsPayload struct {
	Mobile  string `json:"mobile"`
	Message string `json:"message"`
}

func (c *SMSClient) Send(ctx context.Context, userID *uint, mobileNumber, message string) error {
	status := domain.SMSSent
	err := c.deliver(ctx, mobileNumber, message)
	switch {
	case c.url == "":
		status = domain.SMSSkipped
	case err != nil:
		status = domain.SMSFailed
	}

	_, logErr := c.logs.Create(ctx, domain.SMSLog{
		UserID:       userID,
		MobileNumber: mobileNumber,
		Message:      message,
		Status:       status,
		CreatedAt:    time.Now(),
	})
	if logErr != nil {
		zap.L().Error("sms log not stored", zap.String("mobile_number", mobileNumber), zap.Error(logErr))
	}

	return err
}

func (c *SMSClient) deliver(ctx context.Context, mobileNumber, message string) error {
	if c.url == "" {
		zap.L().Info("sms gateway not configured, message skipped", zap.String("mobile_number", mobileNumber))
		return nil
	}
	if mobileNumber == "" {
		return fmt.Errorf("no mobile number to deliver to")
	}

	body, err := json.Marshal(smsPayload{Mobile: mobileNumber, Message: message})
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("c.client.Do -> %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sms gateway responded %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
	}

	zap.L().Debug("sms delivered", zap.String("mobile_number", mobileNumber))

	return nil
}

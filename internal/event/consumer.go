package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/dharma-pro/temple-booking/internal/config"
	"github.com/dharma-pro/temple-booking/internal/domain"
)

const maxBackoff = 30 * time.Second

type PaymentConfirmedHandler func(ctx context.Context, event domain.PaymentConfirmedEvent) error

type Consumer struct {
	url         string
	queue       string
	dialTimeout time.Duration
	prefetch    int
	handle      PaymentConfirmedHandler
}

func NewConsumer(conf *config.RabbitMQConfig, handle PaymentConfirmedHandler) *Consumer {
	return &Consumer{
		url:         conf.URL,
		queue:       conf.Queue,
		dialTimeout: conf.DialTimeout,
		prefetch:    50,
		handle:      handle,
	}
}

// Run consumes until ctx is cancelled, reconnecting with exponential backoff.
func (c *Consumer) Run(ctx context.Context) error {
	backoff := time.Second
	for {
		conn, err := dial(c.url, c.dialTimeout)
		if err != nil {
			zap.L().Warn("broker dial failed", zap.Error(err), zap.Duration("retry_in", backoff))
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			backoff = min(backoff*2, maxBackoff)
			continue
		}
		backoff = time.Second

		err = c.consume(ctx, conn)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		zap.L().Warn("consume loop ended, reconnecting", zap.Error(err))
		if !sleep(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func (c *Consumer) consume(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("conn.Channel -> %w", err)
	}
	defer ch.Close()

	if err = ch.Qos(c.prefetch, 0, false); err != nil {
		zap.L().Warn("set qos failed", zap.Error(err))
	}
	if err = declare(ch, c.queue); err != nil {
		return err
	}

	deliveries, err := ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("ch.Consume -> %w", err)
	}

	zap.L().Info("consuming", zap.String("queue", c.queue))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			c.dispatch(ctx, d)
		}
	}
}

// dispatch rejects failed messages without requeue so a poison message
// cannot spin the consumer.
func (c *Consumer) dispatch(ctx context.Context, d amqp.Delivery) {
	if err := c.HandleBody(ctx, d.Body); err != nil {
		zap.L().Error("payment.confirmed handling failed", zap.String("message_id", d.MessageId), zap.Error(err))
		_ = d.Nack(false, false)
		return
	}
	_ = d.Ack(false)
}

func (c *Consumer) HandleBody(ctx context.Context, body []byte) error {
	var ev domain.PaymentConfirmedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("json.Unmarshal -> %w", err)
	}

	zap.L().Info("payment confirmed",
		zap.Uint("payment_id", ev.PaymentID),
		zap.Uint("booking_id", ev.BookingID),
		zap.String("transaction_id", ev.TransactionID),
		zap.Float64("amount", ev.Amount),
		zap.Time("confirmed_at", ev.ConfirmedAt),
	)

	return c.handle(ctx, ev)
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

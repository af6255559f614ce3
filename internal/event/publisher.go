package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/dharma-pro/temple-booking/internal/config"
	"github.com/dharma-pro/temple-booking/internal/domain"
)

const defaultDialTimeout = 2 * time.Second

// dial bounds both the TCP connect and the AMQP handshake; amqp.Dial alone
// waits up to 30s on an unreachable broker.
func dial(url string, timeout time.Duration) (*amqp.Connection, error) {
	if timeout <= 0 {
		timeout = defaultDialTimeout
	}

	return amqp.DialConfig(url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(timeout),
	})
}

// Publisher sends payment events to a durable queue on the default exchange.
// It dials per message; confirmations are rare enough that a pooled
// connection would mostly sit idle.
type Publisher struct {
	url         string
	queue       string
	dialTimeout time.Duration
}

func NewPublisher(conf *config.RabbitMQConfig) *Publisher {
	return &Publisher{
		url:         conf.URL,
		queue:       conf.Queue,
		dialTimeout: conf.DialTimeout,
	}
}

func (p *Publisher) PublishPaymentConfirmed(ctx context.Context, event domain.PaymentConfirmedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}

	conn, err := dial(p.url, p.dialTimeout)
	if err != nil {
		return fmt.Errorf("dial -> %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("conn.Channel -> %w", err)
	}
	defer ch.Close()

	if err = declare(ch, p.queue); err != nil {
		return err
	}

	err = ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		Type:         "payment.confirmed",
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("ch.PublishWithContext -> %w", err)
	}

	return nil
}

func declare(ch *amqp.Channel, queue string) error {
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("ch.QueueDeclare -> %w", err)
	}

	return nil
}

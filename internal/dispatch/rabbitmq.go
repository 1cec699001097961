// Package dispatch hands delivery tasks to the external message transport.
// The engine only learns sent/failed; rendering the task into a chat or push
// message is the consumer's job.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/codeGROOVE-dev/retry"
	amqp "github.com/rabbitmq/amqp091-go"

	"outage_notifier/internal/domain"
)

type Config struct {
	URL          string
	Exchange     string
	RoutingKey   string
	QueueName    string
	PublishTries int
}

// RabbitMQ publishes delivery tasks to a durable queue.
type RabbitMQ struct {
	conn         *amqp.Connection
	channel      *amqp.Channel
	exchange     string
	routingKey   string
	publishTries int
	logger       *slog.Logger
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:         conn,
		channel:      ch,
		exchange:     cfg.Exchange,
		routingKey:   cfg.RoutingKey,
		publishTries: cfg.PublishTries,
		logger:       logger,
	}, nil
}

// Dispatch publishes one delivery task. Transient broker errors get a few
// in-call retries; a returned error means the scheduler records the attempt
// as failed and retries on a later pass with backoff.
func (r *RabbitMQ) Dispatch(ctx context.Context, task domain.DeliveryTask) error {
	body, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("marshal task: %w", err)
	}

	err = retry.Do(
		func() error {
			return r.channel.PublishWithContext(
				ctx,
				r.exchange,
				r.routingKey,
				false,
				false,
				amqp.Publishing{
					DeliveryMode: amqp.Persistent,
					ContentType:  "application/json",
					Body:         body,
					Timestamp:    time.Now(),
				},
			)
		},
		retry.Attempts(uint(r.publishTries)),
		retry.Delay(200*time.Millisecond),
		retry.MaxDelay(2*time.Second),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			r.logger.Warn("publish retry", "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		return fmt.Errorf("publish task: %w", err)
	}

	r.logger.Debug("dispatched delivery task",
		"subscriber_id", task.SubscriberID,
		"announcement_id", task.AnnouncementID,
	)

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}

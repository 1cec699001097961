// Package intake consumes raw announcement records the external scrapers
// publish. Fetched records stay unacked until the ingest pass commits the
// batch, so a crash mid-pass requeues them; the ingest fingerprint gate
// absorbs the redelivery. A record that fails to decode is acked away with
// a log line so one bad scrape cannot wedge the queue.
package intake

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"outage_notifier/internal/domain"
)

type Config struct {
	URL       string
	QueueName string
}

// RabbitMQ drains scraped announcements from a durable queue.
type RabbitMQ struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	lastTag uint64
	pending bool
	logger  *slog.Logger
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

	if _, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare intake queue: %w", err)
	}

	logger.Info("connected to intake queue", "queue", cfg.QueueName)

	return &RabbitMQ{
		conn:    conn,
		channel: ch,
		queue:   cfg.QueueName,
		logger:  logger,
	}, nil
}

func (r *RabbitMQ) Name() string { return "rabbitmq:" + r.queue }

// Fetch pulls up to max pending records off the queue. The records stay
// unacked until Commit; a malformed one is acked immediately since it can
// never succeed.
func (r *RabbitMQ) Fetch(ctx context.Context, max int) ([]domain.RawAnnouncement, error) {
	var out []domain.RawAnnouncement
	for len(out) < max {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		msg, ok, err := r.channel.Get(r.queue, false)
		if err != nil {
			return out, fmt.Errorf("get from %s: %w", r.queue, err)
		}
		if !ok {
			break
		}

		var raw domain.RawAnnouncement
		if err := json.Unmarshal(msg.Body, &raw); err != nil {
			r.logger.Error("malformed intake record", "error", err)
			_ = msg.Ack(false)
			continue
		}

		r.lastTag = msg.DeliveryTag
		r.pending = true
		out = append(out, raw)
	}
	return out, nil
}

// Commit acks every record handed out since the last commit.
func (r *RabbitMQ) Commit(ctx context.Context) error {
	if !r.pending {
		return nil
	}
	if err := r.channel.Ack(r.lastTag, true); err != nil {
		return fmt.Errorf("ack batch: %w", err)
	}
	r.pending = false
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

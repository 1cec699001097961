//go:build integration

package intake

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"outage_notifier/internal/domain"
)

type IntakeIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *IntakeIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *IntakeIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestIntakeIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntakeIntegrationSuite))
}

func (s *IntakeIntegrationSuite) publish(queue string, body []byte) {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	_, err = ch.QueueDeclare(queue, true, false, false, false, nil)
	s.Require().NoError(err)

	err = ch.PublishWithContext(s.ctx, "", queue, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	s.Require().NoError(err)
}

func (s *IntakeIntegrationSuite) TestFetch_DrainsQueue() {
	queue := "test-intake-drain"

	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	raw := domain.RawAnnouncement{
		Source:       domain.SourceWater,
		Kind:         domain.KindPlanned,
		StartAt:      start,
		EndAt:        start.Add(4 * time.Hour),
		SourceRef:    "veolia/1",
		OriginalText: "original",
	}
	body, err := json.Marshal(raw)
	s.Require().NoError(err)
	s.publish(queue, body)

	src, err := NewRabbitMQ(Config{URL: s.amqpURL, QueueName: queue}, s.logger)
	s.Require().NoError(err)
	defer src.Close()

	records, err := src.Fetch(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal("veolia/1", records[0].SourceRef)
	s.Equal(domain.SourceWater, records[0].Source)
	s.Require().NoError(src.Commit(s.ctx))

	// The batch is confirmed; a second fetch finds nothing.
	records, err = src.Fetch(s.ctx, 10)
	s.Require().NoError(err)
	s.Empty(records)
}

func (s *IntakeIntegrationSuite) TestFetch_UncommittedRecordIsRedelivered() {
	queue := "test-intake-redeliver"

	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	body, err := json.Marshal(domain.RawAnnouncement{
		Source:       domain.SourceWater,
		Kind:         domain.KindPlanned,
		StartAt:      start,
		EndAt:        start.Add(2 * time.Hour),
		SourceRef:    "veolia/9",
		OriginalText: "original",
	})
	s.Require().NoError(err)
	s.publish(queue, body)

	src, err := NewRabbitMQ(Config{URL: s.amqpURL, QueueName: queue}, s.logger)
	s.Require().NoError(err)

	records, err := src.Fetch(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(records, 1)

	// No commit: closing the channel requeues the record.
	s.Require().NoError(src.Close())

	src, err = NewRabbitMQ(Config{URL: s.amqpURL, QueueName: queue}, s.logger)
	s.Require().NoError(err)
	defer src.Close()

	records, err = src.Fetch(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(records, 1, "an unconfirmed record must come back")
	s.Equal("veolia/9", records[0].SourceRef)

	s.Require().NoError(src.Commit(s.ctx))

	records, err = src.Fetch(s.ctx, 10)
	s.Require().NoError(err)
	s.Empty(records, "a confirmed record must not come back")
}

func (s *IntakeIntegrationSuite) TestFetch_MalformedRecordIsAckedAway() {
	queue := "test-intake-malformed"

	s.publish(queue, []byte("{not json"))

	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	good, err := json.Marshal(domain.RawAnnouncement{
		Source:       domain.SourceGas,
		Kind:         domain.KindEmergency,
		StartAt:      start,
		EndAt:        start.Add(time.Hour),
		SourceRef:    "gazprom/2",
		OriginalText: "original",
	})
	s.Require().NoError(err)
	s.publish(queue, good)

	src, err := NewRabbitMQ(Config{URL: s.amqpURL, QueueName: queue}, s.logger)
	s.Require().NoError(err)

	records, err := src.Fetch(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(records, 1, "the bad record must not wedge the queue")
	s.Equal("gazprom/2", records[0].SourceRef)
	s.Require().NoError(src.Commit(s.ctx))
	s.Require().NoError(src.Close())

	// The malformed record was acked away, not requeued.
	src, err = NewRabbitMQ(Config{URL: s.amqpURL, QueueName: queue}, s.logger)
	s.Require().NoError(err)
	defer src.Close()

	records, err = src.Fetch(s.ctx, 10)
	s.Require().NoError(err)
	s.Empty(records)
}

func (s *IntakeIntegrationSuite) TestFetch_RespectsMax() {
	queue := "test-intake-max"

	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		body, err := json.Marshal(domain.RawAnnouncement{
			Source:       domain.SourceElectric,
			Kind:         domain.KindPlanned,
			StartAt:      start,
			EndAt:        start.Add(time.Hour),
			SourceRef:    "ena/" + string(rune('a'+i)),
			OriginalText: "original",
		})
		s.Require().NoError(err)
		s.publish(queue, body)
	}

	src, err := NewRabbitMQ(Config{URL: s.amqpURL, QueueName: queue}, s.logger)
	s.Require().NoError(err)
	defer src.Close()

	records, err := src.Fetch(s.ctx, 2)
	s.Require().NoError(err)
	s.Len(records, 2)
	s.Require().NoError(src.Commit(s.ctx))

	records, err = src.Fetch(s.ctx, 10)
	s.Require().NoError(err)
	s.Len(records, 1)
	s.Require().NoError(src.Commit(s.ctx))
}

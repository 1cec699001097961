package domain

import "time"

// NotificationStatus is the delivery state of one (subscriber, announcement)
// pair.
type NotificationStatus string

const (
	StatusPending           NotificationStatus = "pending"
	StatusSent              NotificationStatus = "sent"
	StatusFailed            NotificationStatus = "failed"
	StatusPermanentlyFailed NotificationStatus = "permanently_failed"
)

// NotificationRecord is the idempotency and delivery-state row for one
// (subscriber, announcement) pair. Its existence is the dedup guard.
type NotificationRecord struct {
	SubscriberID   int64              `db:"subscriber_id"`
	AnnouncementID int64              `db:"announcement_id"`
	Status         NotificationStatus `db:"status"`
	Attempts       int                `db:"attempts"`
	LastAttemptAt  *time.Time         `db:"last_attempt_at"`
	NextRetryAt    *time.Time         `db:"next_retry_at"`
	CreatedAt      time.Time          `db:"created_at"`
}

// CandidatePair is a matcher output awaiting scheduling.
type CandidatePair struct {
	SubscriberID   int64
	AnnouncementID int64
}

// DeliveryTask is what the scheduler hands to the dispatcher.
type DeliveryTask struct {
	SubscriberID    int64  `json:"subscriber_id"`
	AnnouncementID  int64  `json:"announcement_id"`
	RenderedMessage string `json:"rendered_message"`
	Silent          bool   `json:"silent"`
}

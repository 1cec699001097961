package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"outage_notifier/internal/domain"
)

type NotificationStore struct {
	db *sqlx.DB
}

func NewNotificationStore(db *sqlx.DB) *NotificationStore {
	return &NotificationStore{db: db}
}

// ExistingPairs returns, for one subscriber, which of the given
// announcements already have a record of any status.
func (s *NotificationStore) ExistingPairs(ctx context.Context, subscriberID int64, announcementIDs []int64) (map[int64]struct{}, error) {
	if len(announcementIDs) == 0 {
		return map[int64]struct{}{}, nil
	}

	var ids []int64
	err := s.db.SelectContext(ctx, &ids, `
		SELECT announcement_id FROM notification_records
		WHERE subscriber_id = $1 AND announcement_id = ANY($2)`,
		subscriberID, pq.Array(announcementIDs))
	if err != nil {
		return nil, fmt.Errorf("existing pairs: %w", err)
	}

	out := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out, nil
}

// ClaimPending inserts a pending record for the pair. The primary key on
// (subscriber_id, announcement_id) makes this the at-most-once gate:
// claimed=false means another worker owns or already handled the pair.
func (s *NotificationStore) ClaimPending(ctx context.Context, subscriberID, announcementID int64, now time.Time) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO notification_records (subscriber_id, announcement_id, status, attempts, created_at)
		VALUES ($1, $2, 'pending', 0, $3)
		ON CONFLICT (subscriber_id, announcement_id) DO NOTHING`,
		subscriberID, announcementID, now)
	if err != nil {
		return false, fmt.Errorf("claim pending: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ClaimRetry flips a failed record back to pending, but only if it is still
// failed; the compare-and-set keeps concurrent retry workers off the same
// pair.
func (s *NotificationStore) ClaimRetry(ctx context.Context, subscriberID, announcementID int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE notification_records SET status = 'pending'
		WHERE subscriber_id = $1 AND announcement_id = $2 AND status = 'failed'`,
		subscriberID, announcementID)
	if err != nil {
		return false, fmt.Errorf("claim retry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *NotificationStore) MarkSent(ctx context.Context, subscriberID, announcementID int64, now time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE notification_records
		SET status = 'sent', attempts = attempts + 1, last_attempt_at = $3, next_retry_at = NULL
		WHERE subscriber_id = $1 AND announcement_id = $2`,
		subscriberID, announcementID, now)
	if err != nil {
		return fmt.Errorf("mark sent: %w", err)
	}
	return nil
}

// MarkFailed records a failed attempt. With nextRetry set the record stays
// retryable; permanent exhausts it for good.
func (s *NotificationStore) MarkFailed(ctx context.Context, subscriberID, announcementID int64, now time.Time, nextRetry *time.Time, permanent bool) error {
	status := domain.StatusFailed
	if permanent {
		status = domain.StatusPermanentlyFailed
	}
	_, err := s.db.ExecContext(ctx, `
		UPDATE notification_records
		SET status = $3, attempts = attempts + 1, last_attempt_at = $4, next_retry_at = $5
		WHERE subscriber_id = $1 AND announcement_id = $2`,
		subscriberID, announcementID, status, now, nextRetry)
	if err != nil {
		return fmt.Errorf("mark failed: %w", err)
	}
	return nil
}

// ListRetryable returns failed records whose backoff has elapsed.
func (s *NotificationStore) ListRetryable(ctx context.Context, now time.Time, limit int) ([]domain.NotificationRecord, error) {
	var recs []domain.NotificationRecord
	query := `
		SELECT subscriber_id, announcement_id, status, attempts, last_attempt_at, next_retry_at, created_at
		FROM notification_records
		WHERE status = 'failed' AND next_retry_at IS NOT NULL AND next_retry_at <= $1
		ORDER BY next_retry_at
		LIMIT $2`

	if err := s.db.SelectContext(ctx, &recs, query, now, limit); err != nil {
		return nil, fmt.Errorf("list retryable: %w", err)
	}
	return recs, nil
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"outage_notifier/internal/domain"
)

type SubscriberStore struct {
	db *sqlx.DB
}

func NewSubscriberStore(db *sqlx.DB) *SubscriberStore {
	return &SubscriberStore{db: db}
}

func (s *SubscriberStore) Get(ctx context.Context, id int64) (*domain.Subscriber, error) {
	var sub domain.Subscriber
	query := `
		SELECT id, locale, tier, cadence_seconds, sound_enabled, silent_enabled,
		       quiet_start_min, quiet_end_min, created_at, last_active_at, last_checked_at
		FROM subscribers
		WHERE id = $1`

	err := s.db.GetContext(ctx, &sub, query, id)
	if err == sql.ErrNoRows {
		return nil, domain.ErrSubscriberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get subscriber: %w", err)
	}
	return &sub, nil
}

// Upsert creates the subscriber on first contact and refreshes
// last_active_at afterwards, preserving settings.
func (s *SubscriberStore) Upsert(ctx context.Context, id int64, locale string) error {
	query := `
		INSERT INTO subscribers (id, locale, last_active_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (id) DO UPDATE SET last_active_at = NOW()`

	if _, err := s.db.ExecContext(ctx, query, id, locale); err != nil {
		return fmt.Errorf("upsert subscriber: %w", err)
	}
	return nil
}

func (s *SubscriberStore) UpdateLocale(ctx context.Context, id int64, locale string) error {
	return s.exec(ctx, `UPDATE subscribers SET locale = $1, last_active_at = NOW() WHERE id = $2`, locale, id)
}

func (s *SubscriberStore) UpdateCadence(ctx context.Context, id int64, cadenceSeconds int) error {
	return s.exec(ctx, `UPDATE subscribers SET cadence_seconds = $1, last_active_at = NOW() WHERE id = $2`, cadenceSeconds, id)
}

func (s *SubscriberStore) UpdateQuietWindow(ctx context.Context, id int64, startMin, endMin int) error {
	return s.exec(ctx,
		`UPDATE subscribers SET quiet_start_min = $1, quiet_end_min = $2, last_active_at = NOW() WHERE id = $3`,
		startMin, endMin, id)
}

func (s *SubscriberStore) UpdateToggles(ctx context.Context, id int64, soundEnabled, silentEnabled bool) error {
	return s.exec(ctx,
		`UPDATE subscribers SET sound_enabled = $1, silent_enabled = $2, last_active_at = NOW() WHERE id = $3`,
		soundEnabled, silentEnabled, id)
}

func (s *SubscriberStore) Delete(ctx context.Context, id int64) error {
	return s.exec(ctx, `DELETE FROM subscribers WHERE id = $1`, id)
}

// ListDue returns subscribers whose cadence has elapsed since their last
// scheduling check. Cadence gates how often a subscriber is considered, not
// whether a due notification is sent.
func (s *SubscriberStore) ListDue(ctx context.Context, now time.Time) ([]domain.Subscriber, error) {
	var subs []domain.Subscriber
	query := `
		SELECT id, locale, tier, cadence_seconds, sound_enabled, silent_enabled,
		       quiet_start_min, quiet_end_min, created_at, last_active_at, last_checked_at
		FROM subscribers
		WHERE last_checked_at + make_interval(secs => cadence_seconds) <= $1
		ORDER BY id`

	if err := s.db.SelectContext(ctx, &subs, query, now); err != nil {
		return nil, fmt.Errorf("list due subscribers: %w", err)
	}
	return subs, nil
}

func (s *SubscriberStore) MarkChecked(ctx context.Context, ids []int64, now time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	return s.exec(ctx, `UPDATE subscribers SET last_checked_at = $1 WHERE id = ANY($2)`, now, pq.Array(ids))
}

func (s *SubscriberStore) exec(ctx context.Context, query string, args ...interface{}) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrSubscriberNotFound
	}
	return nil
}

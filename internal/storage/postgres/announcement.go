package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"outage_notifier/internal/domain"
)

type AnnouncementStore struct {
	db *sqlx.DB
}

func NewAnnouncementStore(db *sqlx.DB) *AnnouncementStore {
	return &AnnouncementStore{db: db}
}

// InsertIfAbsent records the announcement unless its fingerprint already
// exists. The unique constraint is the concurrency control: a worker that
// loses the insert race gets created=false and the existing id, which it
// must treat as success.
func (s *AnnouncementStore) InsertIfAbsent(ctx context.Context, a *domain.Announcement, unresolved []string) (int64, bool, error) {
	query := `
		INSERT INTO announcements (
			source, kind, published_at, start_at, end_at, reason,
			source_ref, original_text, fingerprint, unresolved_descriptors
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (fingerprint) DO NOTHING
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		a.Source, a.Kind, a.PublishedAt, a.StartAt, a.EndAt, a.Reason,
		a.SourceRef, a.OriginalText, a.Fingerprint, pq.Array(unresolved),
	).Scan(&id)

	if err == sql.ErrNoRows {
		err = sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &id,
			`SELECT id FROM announcements WHERE fingerprint = $1`, a.Fingerprint)
		if err != nil {
			return 0, false, fmt.Errorf("lookup duplicate announcement: %w", err)
		}
		return id, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("insert announcement: %w", err)
	}
	return id, true, nil
}

// LinkPlaces associates the announcement with its target nodes.
func (s *AnnouncementStore) LinkPlaces(ctx context.Context, announcementID int64, placeIDs []int64) error {
	if len(placeIDs) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO announcement_place_links (announcement_id, place_id) VALUES ")
	args := make([]interface{}, 0, len(placeIDs)+1)
	args = append(args, announcementID)

	for i, placeID := range placeIDs {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "($1, $%d)", i+2)
		args = append(args, placeID)
	}
	sb.WriteString(" ON CONFLICT DO NOTHING")

	if _, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("link places: %w", err)
	}
	return nil
}

func (s *AnnouncementStore) LinkedPlaceIDs(ctx context.Context, announcementID int64) ([]int64, error) {
	var ids []int64
	err := s.db.SelectContext(ctx, &ids,
		`SELECT place_id FROM announcement_place_links WHERE announcement_id = $1 ORDER BY place_id`,
		announcementID)
	if err != nil {
		return nil, fmt.Errorf("linked place ids: %w", err)
	}
	return ids, nil
}

// ListCurrent returns announcements whose outage window has not ended and
// that were ingested after the cutoff. The scheduling pass matches against
// these.
func (s *AnnouncementStore) ListCurrent(ctx context.Context, now, createdAfter time.Time) ([]domain.Announcement, error) {
	var anns []domain.Announcement
	query := `
		SELECT id, source, kind, published_at, start_at, end_at, reason,
		       source_ref, original_text, fingerprint, created_at
		FROM announcements
		WHERE end_at >= $1 AND created_at >= $2
		ORDER BY id`

	if err := s.db.SelectContext(ctx, &anns, query, now, createdAfter); err != nil {
		return nil, fmt.Errorf("list current announcements: %w", err)
	}
	return anns, nil
}

func (s *AnnouncementStore) GetByID(ctx context.Context, id int64) (*domain.Announcement, error) {
	var a domain.Announcement
	query := `
		SELECT id, source, kind, published_at, start_at, end_at, reason,
		       source_ref, original_text, fingerprint, created_at
		FROM announcements
		WHERE id = $1`

	if err := s.db.GetContext(ctx, &a, query, id); err != nil {
		return nil, fmt.Errorf("get announcement: %w", err)
	}
	return &a, nil
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"outage_notifier/internal/domain"
)

type AddressStore struct {
	db *sqlx.DB
}

func NewAddressStore(db *sqlx.DB) *AddressStore {
	return &AddressStore{db: db}
}

// GetOrCreate returns the address for (place, house number), creating it if
// absent. Two partial unique indexes cover the with-house and street-only
// shapes, so the insert is race-safe either way and tracking the same
// street twice lands on one row.
func (s *AddressStore) GetOrCreate(ctx context.Context, placeID int64, houseNumber, postalCode *string) (int64, error) {
	query := `
		INSERT INTO addresses (place_id, house_number, postal_code)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query, placeID, houseNumber, postalCode).Scan(&id)
	if err == sql.ErrNoRows {
		err = sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &id,
			`SELECT id FROM addresses
			 WHERE place_id = $1 AND house_number IS NOT DISTINCT FROM $2 AND raw_address IS NULL`,
			placeID, houseNumber)
	}
	if err != nil {
		return 0, fmt.Errorf("get or create address: %w", err)
	}
	return id, nil
}

// CreateUnresolved stores an address as raw text only, for later manual
// linking. Not an error path: resolution below threshold is a valid
// degraded result.
func (s *AddressStore) CreateUnresolved(ctx context.Context, rawText string) (int64, error) {
	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx,
		`INSERT INTO addresses (raw_address) VALUES ($1) RETURNING id`,
		rawText).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create unresolved address: %w", err)
	}
	return id, nil
}

// Track links a subscriber to an address. Returns false when the link
// already exists.
func (s *AddressStore) Track(ctx context.Context, subscriberID, addressID int64) (bool, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		INSERT INTO tracked_addresses (subscriber_id, address_id)
		VALUES ($1, $2)
		ON CONFLICT (subscriber_id, address_id) DO NOTHING`,
		subscriberID, addressID)
	if err != nil {
		return false, fmt.Errorf("track address: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Untrack removes one tracked address, scoped to the owner. Returns false
// when nothing was removed.
func (s *AddressStore) Untrack(ctx context.Context, subscriberID, trackedID int64) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM tracked_addresses WHERE id = $1 AND subscriber_id = $2`,
		trackedID, subscriberID)
	if err != nil {
		return false, fmt.Errorf("untrack address: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *AddressStore) ListTracked(ctx context.Context, subscriberID int64) ([]domain.TrackedAddress, error) {
	var tracked []domain.TrackedAddress
	err := s.db.SelectContext(ctx, &tracked, `
		SELECT id, subscriber_id, address_id, created_at
		FROM tracked_addresses
		WHERE subscriber_id = $1
		ORDER BY created_at`,
		subscriberID)
	if err != nil {
		return nil, fmt.Errorf("list tracked addresses: %w", err)
	}
	return tracked, nil
}

// TrackedByPlaceIDs returns every (subscriber, address, place) triple whose
// address sits on one of the given nodes. This is the matcher's membership
// probe against the affected set.
func (s *AddressStore) TrackedByPlaceIDs(ctx context.Context, placeIDs []int64) ([]domain.TrackedPlace, error) {
	if len(placeIDs) == 0 {
		return nil, nil
	}

	var rows []domain.TrackedPlace
	err := s.db.SelectContext(ctx, &rows, `
		SELECT t.subscriber_id, t.address_id, a.place_id
		FROM tracked_addresses t
		INNER JOIN addresses a ON a.id = t.address_id
		WHERE a.place_id = ANY($1)
		ORDER BY t.subscriber_id, t.address_id`,
		pq.Array(placeIDs))
	if err != nil {
		return nil, fmt.Errorf("tracked by place ids: %w", err)
	}
	return rows, nil
}

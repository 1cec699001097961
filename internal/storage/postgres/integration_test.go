//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"outage_notifier/internal/domain"
	"outage_notifier/testdata/utils"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_init.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM notification_records")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM announcement_place_links")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM announcements")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM tracked_addresses")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM addresses")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM subscribers")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM place_nodes")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) insertPlace(id int64, parentID *int64, kind domain.PlaceKind, nameEn string) {
	store := NewPlaceStore(s.db)
	err := store.Insert(s.ctx, &domain.PlaceNode{
		ID: id, ParentID: parentID, Kind: kind, NameEn: nameEn,
	})
	s.Require().NoError(err)
}

func (s *PostgresIntegrationSuite) insertSubscriber(id int64) {
	store := NewSubscriberStore(s.db)
	s.Require().NoError(store.Upsert(s.ctx, id, "en"))
}

func (s *PostgresIntegrationSuite) testAnnouncement(ref string) *domain.Announcement {
	start := time.Now().Add(time.Hour).Truncate(time.Microsecond)
	end := start.Add(4 * time.Hour)
	return &domain.Announcement{
		Source:       domain.SourceWater,
		Kind:         domain.KindPlanned,
		StartAt:      start,
		EndAt:        end,
		Reason:       "maintenance",
		SourceRef:    ref,
		OriginalText: "original text",
		Fingerprint:  domain.Fingerprint(ref, start, end, "original text"),
	}
}

func (s *PostgresIntegrationSuite) TestPlaceStore_InsertAndGetAll() {
	s.insertPlace(1, nil, domain.KindRegion, "Lori")
	s.insertPlace(2, utils.Ptr(int64(1)), domain.KindLocality, "Vanadzor")

	store := NewPlaceStore(s.db)
	nodes, err := store.GetAll(s.ctx)
	s.NoError(err)
	s.Len(nodes, 2)
}

func (s *PostgresIntegrationSuite) TestPlaceStore_InsertRejectsReusedID() {
	s.insertPlace(1, nil, domain.KindStreet, "Abovyan")

	store := NewPlaceStore(s.db)
	err := store.Insert(s.ctx, &domain.PlaceNode{ID: 1, Kind: domain.KindStreet, NameEn: "Other"})
	s.ErrorIs(err, domain.ErrDuplicateNode)
}

func (s *PostgresIntegrationSuite) TestPlaceStore_Similarity() {
	s.insertPlace(1, nil, domain.KindStreet, "Abovyan")
	s.insertPlace(2, nil, domain.KindStreet, "Baghramyan")

	store := NewPlaceStore(s.db)
	hits, err := store.Similarity(s.ctx, "abovyan", nil, 5)
	s.Require().NoError(err)
	s.Require().NotEmpty(hits)

	s.Equal(int64(1), hits[0].Node.ID)
	s.Greater(hits[0].Score, 0.9)
}

func (s *PostgresIntegrationSuite) TestPlaceStore_SimilarityKindFilter() {
	s.insertPlace(1, nil, domain.KindRegion, "Abovyan")
	s.insertPlace(2, nil, domain.KindStreet, "Abovyan")

	store := NewPlaceStore(s.db)
	hits, err := store.Similarity(s.ctx, "abovyan", []domain.PlaceKind{domain.KindStreet}, 5)
	s.Require().NoError(err)
	s.Require().Len(hits, 1)
	s.Equal(int64(2), hits[0].Node.ID)
}

func (s *PostgresIntegrationSuite) TestPlaceStore_DeleteCascades() {
	s.insertPlace(1, nil, domain.KindLocality, "Vanadzor")
	s.insertPlace(2, utils.Ptr(int64(1)), domain.KindStreet, "Abovyan")

	addresses := NewAddressStore(s.db)
	_, err := addresses.GetOrCreate(s.ctx, 2, utils.Ptr("12"), nil)
	s.Require().NoError(err)

	store := NewPlaceStore(s.db)
	s.Require().NoError(store.DeleteByIDs(s.ctx, []int64{1, 2}))

	var count int
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM addresses"))
	s.Equal(0, count, "addresses under a removed node must cascade away")
}

func (s *PostgresIntegrationSuite) TestAddressStore_GetOrCreate_Idempotent() {
	s.insertPlace(1, nil, domain.KindStreet, "Abovyan")

	store := NewAddressStore(s.db)
	id1, err := store.GetOrCreate(s.ctx, 1, utils.Ptr("12"), nil)
	s.Require().NoError(err)

	id2, err := store.GetOrCreate(s.ctx, 1, utils.Ptr("12"), nil)
	s.Require().NoError(err)
	s.Equal(id1, id2)

	var count int
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM addresses"))
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestAddressStore_GetOrCreate_StreetOnlyIsIdempotent() {
	s.insertPlace(1, nil, domain.KindStreet, "Abovyan")
	s.insertSubscriber(100)

	store := NewAddressStore(s.db)
	id1, err := store.GetOrCreate(s.ctx, 1, nil, nil)
	s.Require().NoError(err)

	// Tracking a whole street twice must land on the same row.
	id2, err := store.GetOrCreate(s.ctx, 1, nil, nil)
	s.Require().NoError(err)
	s.Equal(id1, id2)

	var count int
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM addresses"))
	s.Equal(1, count)

	created, err := store.Track(s.ctx, 100, id1)
	s.Require().NoError(err)
	s.True(created)

	created, err = store.Track(s.ctx, 100, id2)
	s.Require().NoError(err)
	s.False(created, "the second track must hit the existing link")
}

func (s *PostgresIntegrationSuite) TestAddressStore_TrackUntrack() {
	s.insertPlace(1, nil, domain.KindStreet, "Abovyan")
	s.insertSubscriber(100)

	store := NewAddressStore(s.db)
	addrID, err := store.GetOrCreate(s.ctx, 1, nil, nil)
	s.Require().NoError(err)

	created, err := store.Track(s.ctx, 100, addrID)
	s.NoError(err)
	s.True(created)

	created, err = store.Track(s.ctx, 100, addrID)
	s.NoError(err)
	s.False(created, "duplicate track must report the existing link")

	tracked, err := store.ListTracked(s.ctx, 100)
	s.Require().NoError(err)
	s.Require().Len(tracked, 1)

	removed, err := store.Untrack(s.ctx, 100, tracked[0].ID)
	s.NoError(err)
	s.True(removed)

	removed, err = store.Untrack(s.ctx, 100, tracked[0].ID)
	s.NoError(err)
	s.False(removed)
}

func (s *PostgresIntegrationSuite) TestAddressStore_TrackedByPlaceIDs() {
	s.insertPlace(1, nil, domain.KindStreet, "Abovyan")
	s.insertPlace(2, nil, domain.KindStreet, "Baghramyan")
	s.insertSubscriber(100)
	s.insertSubscriber(200)

	store := NewAddressStore(s.db)
	addr1, err := store.GetOrCreate(s.ctx, 1, nil, nil)
	s.Require().NoError(err)
	addr2, err := store.GetOrCreate(s.ctx, 2, nil, nil)
	s.Require().NoError(err)

	_, err = store.Track(s.ctx, 100, addr1)
	s.Require().NoError(err)
	_, err = store.Track(s.ctx, 200, addr2)
	s.Require().NoError(err)

	rows, err := store.TrackedByPlaceIDs(s.ctx, []int64{1})
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal(int64(100), rows[0].SubscriberID)
	s.Equal(int64(1), rows[0].PlaceID)
}

func (s *PostgresIntegrationSuite) TestSubscriberStore_UpsertDefaults() {
	store := NewSubscriberStore(s.db)
	s.Require().NoError(store.Upsert(s.ctx, 100, "hy"))

	sub, err := store.Get(s.ctx, 100)
	s.Require().NoError(err)

	s.Equal("hy", sub.Locale)
	s.Equal(domain.TierFree, sub.Tier)
	s.Equal(21600, sub.CadenceSeconds)
	s.Equal(1380, sub.QuietStartMin)
	s.Equal(420, sub.QuietEndMin)
	s.True(sub.SoundEnabled)
	s.False(sub.SilentEnabled)
}

func (s *PostgresIntegrationSuite) TestSubscriberStore_UpsertPreservesSettings() {
	store := NewSubscriberStore(s.db)
	s.Require().NoError(store.Upsert(s.ctx, 100, "hy"))
	s.Require().NoError(store.UpdateQuietWindow(s.ctx, 100, 600, 800))

	// A returning subscriber keeps their settings.
	s.Require().NoError(store.Upsert(s.ctx, 100, "en"))

	sub, err := store.Get(s.ctx, 100)
	s.Require().NoError(err)
	s.Equal("hy", sub.Locale)
	s.Equal(600, sub.QuietStartMin)
}

func (s *PostgresIntegrationSuite) TestSubscriberStore_UpdateMissing() {
	store := NewSubscriberStore(s.db)
	err := store.UpdateCadence(s.ctx, 999, 3600)
	s.ErrorIs(err, domain.ErrSubscriberNotFound)
}

func (s *PostgresIntegrationSuite) TestSubscriberStore_DeleteCascades() {
	s.insertPlace(1, nil, domain.KindStreet, "Abovyan")
	s.insertSubscriber(100)

	addresses := NewAddressStore(s.db)
	addrID, err := addresses.GetOrCreate(s.ctx, 1, nil, nil)
	s.Require().NoError(err)
	_, err = addresses.Track(s.ctx, 100, addrID)
	s.Require().NoError(err)

	store := NewSubscriberStore(s.db)
	s.Require().NoError(store.Delete(s.ctx, 100))

	_, err = store.Get(s.ctx, 100)
	s.ErrorIs(err, domain.ErrSubscriberNotFound)

	var count int
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM tracked_addresses"))
	s.Equal(0, count, "tracked addresses go with the subscriber")

	s.ErrorIs(store.Delete(s.ctx, 100), domain.ErrSubscriberNotFound)
}

func (s *PostgresIntegrationSuite) TestSubscriberStore_ListDueAndMarkChecked() {
	store := NewSubscriberStore(s.db)
	s.Require().NoError(store.Upsert(s.ctx, 100, "en"))

	now := time.Now().Truncate(time.Microsecond)

	// Fresh subscribers default last_checked_at to epoch, so they are due.
	due, err := store.ListDue(s.ctx, now)
	s.Require().NoError(err)
	s.Require().Len(due, 1)
	s.Equal(int64(100), due[0].ID)

	s.Require().NoError(store.MarkChecked(s.ctx, []int64{100}, now))

	due, err = store.ListDue(s.ctx, now)
	s.Require().NoError(err)
	s.Empty(due)

	// Due again once the cadence elapses.
	due, err = store.ListDue(s.ctx, now.Add(7*time.Hour))
	s.Require().NoError(err)
	s.Len(due, 1)
}

func (s *PostgresIntegrationSuite) TestAnnouncementStore_InsertIfAbsent_FingerprintGate() {
	store := NewAnnouncementStore(s.db)
	ann := s.testAnnouncement("veolia/1")

	id1, created, err := store.InsertIfAbsent(s.ctx, ann, nil)
	s.Require().NoError(err)
	s.True(created)

	id2, created, err := store.InsertIfAbsent(s.ctx, s.testAnnouncement("veolia/1"), nil)
	s.Require().NoError(err)
	s.False(created)
	s.Equal(id1, id2)

	var count int
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM announcements"))
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestAnnouncementStore_LinkPlaces() {
	s.insertPlace(1, nil, domain.KindStreet, "Abovyan")
	s.insertPlace(2, nil, domain.KindStreet, "Baghramyan")

	store := NewAnnouncementStore(s.db)
	id, _, err := store.InsertIfAbsent(s.ctx, s.testAnnouncement("veolia/1"), nil)
	s.Require().NoError(err)

	s.Require().NoError(store.LinkPlaces(s.ctx, id, []int64{2, 1}))
	// Relinking the same places is a no-op.
	s.Require().NoError(store.LinkPlaces(s.ctx, id, []int64{1}))

	ids, err := store.LinkedPlaceIDs(s.ctx, id)
	s.Require().NoError(err)
	s.Equal([]int64{1, 2}, ids)
}

func (s *PostgresIntegrationSuite) TestAnnouncementStore_ListCurrent() {
	store := NewAnnouncementStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	current := s.testAnnouncement("veolia/current")
	_, _, err := store.InsertIfAbsent(s.ctx, current, nil)
	s.Require().NoError(err)

	ended := s.testAnnouncement("veolia/ended")
	ended.StartAt = now.Add(-6 * time.Hour)
	ended.EndAt = now.Add(-2 * time.Hour)
	ended.Fingerprint = domain.Fingerprint(ended.SourceRef, ended.StartAt, ended.EndAt, ended.OriginalText)
	_, _, err = store.InsertIfAbsent(s.ctx, ended, nil)
	s.Require().NoError(err)

	anns, err := store.ListCurrent(s.ctx, now, now.AddDate(0, 0, -7))
	s.Require().NoError(err)
	s.Require().Len(anns, 1)
	s.Equal("veolia/current", anns[0].SourceRef)
}

func (s *PostgresIntegrationSuite) TestNotificationStore_ClaimPending_ConcurrentWorkers() {
	s.insertSubscriber(100)

	annStore := NewAnnouncementStore(s.db)
	annID, _, err := annStore.InsertIfAbsent(s.ctx, s.testAnnouncement("veolia/1"), nil)
	s.Require().NoError(err)

	store := NewNotificationStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	const workers = 8
	var wg sync.WaitGroup
	claims := make(chan bool, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			claimed, err := store.ClaimPending(s.ctx, 100, annID, now)
			s.NoError(err)
			claims <- claimed
		}()
	}
	wg.Wait()
	close(claims)

	won := 0
	for claimed := range claims {
		if claimed {
			won++
		}
	}
	s.Equal(1, won, "the primary key admits exactly one claim per pair")
}

func (s *PostgresIntegrationSuite) TestNotificationStore_RetryLifecycle() {
	s.insertSubscriber(100)

	annStore := NewAnnouncementStore(s.db)
	annID, _, err := annStore.InsertIfAbsent(s.ctx, s.testAnnouncement("veolia/1"), nil)
	s.Require().NoError(err)

	store := NewNotificationStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	claimed, err := store.ClaimPending(s.ctx, 100, annID, now)
	s.Require().NoError(err)
	s.Require().True(claimed)

	retryAt := now.Add(-time.Minute) // already elapsed
	s.Require().NoError(store.MarkFailed(s.ctx, 100, annID, now, &retryAt, false))

	recs, err := store.ListRetryable(s.ctx, now, 10)
	s.Require().NoError(err)
	s.Require().Len(recs, 1)
	s.Equal(domain.StatusFailed, recs[0].Status)
	s.Equal(1, recs[0].Attempts)

	// The compare-and-set admits one retry worker.
	claimed, err = store.ClaimRetry(s.ctx, 100, annID)
	s.NoError(err)
	s.True(claimed)

	claimed, err = store.ClaimRetry(s.ctx, 100, annID)
	s.NoError(err)
	s.False(claimed, "an already claimed record must not be claimed again")

	s.Require().NoError(store.MarkSent(s.ctx, 100, annID, now))

	recs, err = store.ListRetryable(s.ctx, now.Add(time.Hour), 10)
	s.Require().NoError(err)
	s.Empty(recs)
}

func (s *PostgresIntegrationSuite) TestNotificationStore_PermanentFailureLeavesRetryQueue() {
	s.insertSubscriber(100)

	annStore := NewAnnouncementStore(s.db)
	annID, _, err := annStore.InsertIfAbsent(s.ctx, s.testAnnouncement("veolia/1"), nil)
	s.Require().NoError(err)

	store := NewNotificationStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	claimed, err := store.ClaimPending(s.ctx, 100, annID, now)
	s.Require().NoError(err)
	s.Require().True(claimed)

	s.Require().NoError(store.MarkFailed(s.ctx, 100, annID, now, nil, true))

	recs, err := store.ListRetryable(s.ctx, now.Add(time.Hour), 10)
	s.Require().NoError(err)
	s.Empty(recs)

	var status string
	s.NoError(s.db.GetContext(s.ctx, &status,
		"SELECT status FROM notification_records WHERE subscriber_id = $1 AND announcement_id = $2", 100, annID))
	s.Equal("permanently_failed", status)
}

func (s *PostgresIntegrationSuite) TestTransaction_RollsBackAnnouncementAndLinks() {
	s.insertPlace(1, nil, domain.KindStreet, "Abovyan")

	tm := NewTransactionManager(s.db)
	store := NewAnnouncementStore(s.db)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		id, _, err := store.InsertIfAbsent(ctx, s.testAnnouncement("veolia/tx"), nil)
		if err != nil {
			return err
		}
		if err := store.LinkPlaces(ctx, id, []int64{1}); err != nil {
			return err
		}
		return context.Canceled
	})
	s.Error(err)

	var count int
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM announcements"))
	s.Equal(0, count)
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM announcement_place_links"))
	s.Equal(0, count)
}

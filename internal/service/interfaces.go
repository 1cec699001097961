package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"outage_notifier/internal/domain"
)

// SimilaritySearcher is the abstract scoring capability the resolver ranks
// on. The trigram technique behind it is substitutable.
type SimilaritySearcher interface {
	Similarity(ctx context.Context, query string, kinds []domain.PlaceKind, limit int) ([]domain.ScoredPlace, error)
}

type PlaceStore interface {
	GetAll(ctx context.Context) ([]domain.PlaceNode, error)
}

type AddressStore interface {
	GetOrCreate(ctx context.Context, placeID int64, houseNumber, postalCode *string) (int64, error)
	CreateUnresolved(ctx context.Context, rawText string) (int64, error)
	Track(ctx context.Context, subscriberID, addressID int64) (bool, error)
	Untrack(ctx context.Context, subscriberID, trackedID int64) (bool, error)
	ListTracked(ctx context.Context, subscriberID int64) ([]domain.TrackedAddress, error)
}

type TrackedPlaceFinder interface {
	TrackedByPlaceIDs(ctx context.Context, placeIDs []int64) ([]domain.TrackedPlace, error)
}

type AnnouncementStore interface {
	InsertIfAbsent(ctx context.Context, a *domain.Announcement, unresolved []string) (int64, bool, error)
	LinkPlaces(ctx context.Context, announcementID int64, placeIDs []int64) error
	LinkedPlaceIDs(ctx context.Context, announcementID int64) ([]int64, error)
	ListCurrent(ctx context.Context, now, createdAfter time.Time) ([]domain.Announcement, error)
	GetByID(ctx context.Context, id int64) (*domain.Announcement, error)
}

type SubscriberStore interface {
	Get(ctx context.Context, id int64) (*domain.Subscriber, error)
	Upsert(ctx context.Context, id int64, locale string) error
	UpdateLocale(ctx context.Context, id int64, locale string) error
	UpdateCadence(ctx context.Context, id int64, cadenceSeconds int) error
	UpdateQuietWindow(ctx context.Context, id int64, startMin, endMin int) error
	UpdateToggles(ctx context.Context, id int64, soundEnabled, silentEnabled bool) error
	Delete(ctx context.Context, id int64) error
	ListDue(ctx context.Context, now time.Time) ([]domain.Subscriber, error)
	MarkChecked(ctx context.Context, ids []int64, now time.Time) error
}

type NotificationStore interface {
	ExistingPairs(ctx context.Context, subscriberID int64, announcementIDs []int64) (map[int64]struct{}, error)
	ClaimPending(ctx context.Context, subscriberID, announcementID int64, now time.Time) (bool, error)
	ClaimRetry(ctx context.Context, subscriberID, announcementID int64) (bool, error)
	MarkSent(ctx context.Context, subscriberID, announcementID int64, now time.Time) error
	MarkFailed(ctx context.Context, subscriberID, announcementID int64, now time.Time, nextRetry *time.Time, permanent bool) error
	ListRetryable(ctx context.Context, now time.Time, limit int) ([]domain.NotificationRecord, error)
}

// Dispatcher hands a delivery task to the external transport. The call must
// be wrapped with a timeout by the caller.
type Dispatcher interface {
	Dispatch(ctx context.Context, task domain.DeliveryTask) error
	Close() error
}

// RawSource is the scraper boundary: it yields already-scraped raw
// announcement records. Fetched records stay owned by the source until
// Commit confirms the batch was processed; uncommitted records are
// redelivered on a later fetch.
type RawSource interface {
	Name() string
	Fetch(ctx context.Context, max int) ([]domain.RawAnnouncement, error)
	Commit(ctx context.Context) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

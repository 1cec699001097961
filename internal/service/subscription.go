package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"outage_notifier/internal/domain"
	"outage_notifier/internal/hierarchy"
)

const minutesPerDay = 24 * 60

// SubscriptionService is the command-interface boundary: subscriber
// settings and tracked addresses. Address text goes through the same
// resolver ingestion uses, so both sides agree on what a descriptor means.
type SubscriptionService struct {
	subscribers SubscriberStore
	addresses   AddressStore
	places      PlaceStore
	resolver    *Resolver
	logger      *slog.Logger
}

func NewSubscriptionService(subscribers SubscriberStore, addresses AddressStore, places PlaceStore, resolver *Resolver, logger *slog.Logger) *SubscriptionService {
	return &SubscriptionService{
		subscribers: subscribers,
		addresses:   addresses,
		places:      places,
		resolver:    resolver,
		logger:      logger.With("component", "subscription"),
	}
}

func (s *SubscriptionService) Register(ctx context.Context, id int64, locale string) error {
	if err := s.subscribers.Upsert(ctx, id, locale); err != nil {
		return fmt.Errorf("register subscriber %d: %w", id, err)
	}
	return nil
}

func (s *SubscriptionService) SetLocale(ctx context.Context, id int64, locale string) error {
	return s.subscribers.UpdateLocale(ctx, id, locale)
}

// SetCadence updates the polling cadence, bounded below by the
// subscriber's tier.
func (s *SubscriptionService) SetCadence(ctx context.Context, id int64, cadence time.Duration) error {
	sub, err := s.subscribers.Get(ctx, id)
	if err != nil {
		return err
	}
	if !sub.Tier.Allows(cadence) {
		return fmt.Errorf("tier %s: %w", sub.Tier, domain.ErrCadenceNotAllowed)
	}
	return s.subscribers.UpdateCadence(ctx, id, int(cadence/time.Second))
}

func (s *SubscriptionService) SetQuietWindow(ctx context.Context, id int64, startMin, endMin int) error {
	if startMin < 0 || startMin >= minutesPerDay || endMin < 0 || endMin >= minutesPerDay {
		return fmt.Errorf("quiet window out of range: %d-%d", startMin, endMin)
	}
	return s.subscribers.UpdateQuietWindow(ctx, id, startMin, endMin)
}

func (s *SubscriptionService) SetToggles(ctx context.Context, id int64, soundEnabled, silentEnabled bool) error {
	return s.subscribers.UpdateToggles(ctx, id, soundEnabled, silentEnabled)
}

// TrackResult reports either a created tracked address or, when no
// candidate cleared the threshold, ranked suggestions for the user to
// confirm.
type TrackResult struct {
	Tracked     bool
	AddressID   int64
	Place       domain.PlaceNode
	Suggestions []domain.Candidate
}

// TrackAddress resolves the user's address text and tracks it when the top
// candidate clears the auto-accept threshold. Otherwise the candidates come
// back as suggestions and nothing is linked.
func (s *SubscriptionService) TrackAddress(ctx context.Context, subscriberID int64, text string, houseNumber *string) (*TrackResult, error) {
	candidates, err := s.resolver.Resolve(ctx, text, "")
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", text, err)
	}

	if len(candidates) == 0 || !candidates[0].Accepted {
		s.annotatePaths(ctx, subscriberID, candidates)
		return &TrackResult{Suggestions: candidates}, nil
	}

	return s.track(ctx, subscriberID, candidates[0].Node, houseNumber)
}

// annotatePaths fills each suggestion's ancestor path in the subscriber's
// locale, so the user can tell apart same-named streets before confirming.
// Suggestions stay usable without paths when the hierarchy is unavailable.
func (s *SubscriptionService) annotatePaths(ctx context.Context, subscriberID int64, candidates []domain.Candidate) {
	if len(candidates) == 0 {
		return
	}

	locale := "en"
	if sub, err := s.subscribers.Get(ctx, subscriberID); err == nil {
		locale = sub.Locale
	}

	nodes, err := s.places.GetAll(ctx)
	if err != nil {
		s.logger.Warn("suggestion paths unavailable", "error", err)
		return
	}
	forest, err := hierarchy.FromNodes(nodes)
	if err != nil {
		s.logger.Warn("suggestion paths unavailable", "error", err)
		return
	}

	for i := range candidates {
		chain, err := forest.Ancestors(candidates[i].Node.ID)
		if err != nil {
			continue
		}
		path := make([]string, 0, len(chain)+1)
		for j := len(chain) - 1; j >= 0; j-- {
			if n, ok := forest.Node(chain[j]); ok {
				path = append(path, n.DisplayName(locale))
			}
		}
		candidates[i].Path = append(path, candidates[i].Node.DisplayName(locale))
	}
}

// ConfirmTrack tracks a suggestion the user explicitly confirmed.
func (s *SubscriptionService) ConfirmTrack(ctx context.Context, subscriberID int64, place domain.PlaceNode, houseNumber *string) (*TrackResult, error) {
	return s.track(ctx, subscriberID, place, houseNumber)
}

func (s *SubscriptionService) track(ctx context.Context, subscriberID int64, place domain.PlaceNode, houseNumber *string) (*TrackResult, error) {
	addrID, err := s.addresses.GetOrCreate(ctx, place.ID, houseNumber, nil)
	if err != nil {
		return nil, fmt.Errorf("address for place %d: %w", place.ID, err)
	}

	created, err := s.addresses.Track(ctx, subscriberID, addrID)
	if err != nil {
		return nil, fmt.Errorf("track address %d: %w", addrID, err)
	}
	if !created {
		return nil, domain.ErrAlreadyTracked
	}

	s.logger.Info("address tracked", "subscriber_id", subscriberID, "address_id", addrID, "place_id", place.ID)
	return &TrackResult{Tracked: true, AddressID: addrID, Place: place}, nil
}

// TrackUnresolved stores the address as raw text and tracks it when the
// user declines every suggestion. The row waits for manual linking; until
// then it matches nothing, which is the degraded result, not an error.
func (s *SubscriptionService) TrackUnresolved(ctx context.Context, subscriberID int64, rawText string) (*TrackResult, error) {
	addrID, err := s.addresses.CreateUnresolved(ctx, rawText)
	if err != nil {
		return nil, fmt.Errorf("store unresolved address: %w", err)
	}

	created, err := s.addresses.Track(ctx, subscriberID, addrID)
	if err != nil {
		return nil, fmt.Errorf("track address %d: %w", addrID, err)
	}
	if !created {
		return nil, domain.ErrAlreadyTracked
	}

	s.logger.Info("unresolved address tracked", "subscriber_id", subscriberID, "address_id", addrID)
	return &TrackResult{Tracked: true, AddressID: addrID}, nil
}

// Unregister removes the subscriber; tracked addresses and notification
// records go with them through the store cascades.
func (s *SubscriptionService) Unregister(ctx context.Context, id int64) error {
	if err := s.subscribers.Delete(ctx, id); err != nil {
		return fmt.Errorf("unregister subscriber %d: %w", id, err)
	}
	s.logger.Info("subscriber removed", "subscriber_id", id)
	return nil
}

func (s *SubscriptionService) UntrackAddress(ctx context.Context, subscriberID, trackedID int64) error {
	removed, err := s.addresses.Untrack(ctx, subscriberID, trackedID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("tracked address %d not found for subscriber %d", trackedID, subscriberID)
	}
	return nil
}

func (s *SubscriptionService) ListTracked(ctx context.Context, subscriberID int64) ([]domain.TrackedAddress, error) {
	return s.addresses.ListTracked(ctx, subscriberID)
}

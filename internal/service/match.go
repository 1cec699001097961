package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"outage_notifier/internal/domain"
	"outage_notifier/internal/hierarchy"
)

// Matcher computes which subscribers an announcement affects. The affected
// set is the full descendant closure of the announcement's target nodes, so
// membership of a tracked address's node in that set is the complete check:
// a street tracked under a region-level announcement is covered because the
// street is in the region's closure. No separate ancestor probe is run; a
// second path would produce duplicate matches.
type Matcher struct {
	places  PlaceStore
	tracked TrackedPlaceFinder
	logger  *slog.Logger
}

func NewMatcher(places PlaceStore, tracked TrackedPlaceFinder, logger *slog.Logger) *Matcher {
	return &Matcher{
		places:  places,
		tracked: tracked,
		logger:  logger.With("component", "matcher"),
	}
}

// LoadForest rebuilds the in-memory hierarchy from the store.
func (m *Matcher) LoadForest(ctx context.Context) (*hierarchy.Forest, error) {
	nodes, err := m.places.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load place nodes: %w", err)
	}
	forest, err := hierarchy.FromNodes(nodes)
	if err != nil {
		return nil, fmt.Errorf("build forest: %w", err)
	}
	return forest, nil
}

// AffectedSet returns the sorted descendant closure over the targets.
// Corrupt subtrees (cycles, unknown targets) are logged and skipped; the
// rest of the closure survives.
func (m *Matcher) AffectedSet(forest *hierarchy.Forest, announcementID int64, targets []int64) []int64 {
	set, errs := forest.AffectedSet(targets)
	for _, err := range errs {
		m.logger.Error("affected-set traversal aborted for subtree",
			"announcement_id", announcementID,
			"error", err,
		)
	}

	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Match returns the deduplicated (subscriber, announcement) pairs the
// announcement requires. A subscriber matched through several tracked
// addresses, or through several announcement targets, yields one pair.
func (m *Matcher) Match(ctx context.Context, forest *hierarchy.Forest, announcementID int64, targets []int64) ([]domain.CandidatePair, error) {
	affected := m.AffectedSet(forest, announcementID, targets)
	if len(affected) == 0 {
		return nil, nil
	}

	rows, err := m.tracked.TrackedByPlaceIDs(ctx, affected)
	if err != nil {
		return nil, fmt.Errorf("find tracked addresses: %w", err)
	}

	seen := make(map[int64]struct{}, len(rows))
	var pairs []domain.CandidatePair
	for _, row := range rows {
		if _, dup := seen[row.SubscriberID]; dup {
			continue
		}
		seen[row.SubscriberID] = struct{}{}
		pairs = append(pairs, domain.CandidatePair{
			SubscriberID:   row.SubscriberID,
			AnnouncementID: announcementID,
		})
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].SubscriberID < pairs[j].SubscriberID })
	return pairs, nil
}

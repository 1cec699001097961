package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"outage_notifier/internal/domain"
	"outage_notifier/internal/observability"
)

// IngestReport is the ingestor's answer to the scraper: success (new or
// duplicate) plus any place descriptors that failed to resolve. Unresolved
// descriptors are a partial failure, not an error.
type IngestReport struct {
	AnnouncementID int64
	Duplicate      bool
	LinkedPlaces   []int64
	Unresolved     []string
}

// Ingestor deduplicates scraped announcements by content fingerprint and
// links them into the hierarchy.
type Ingestor struct {
	announcements AnnouncementStore
	resolver      *Resolver
	txManager     TransactionManager
	metrics       *observability.Metrics
	logger        *slog.Logger
}

func NewIngestor(
	announcements AnnouncementStore,
	resolver *Resolver,
	txManager TransactionManager,
	metrics *observability.Metrics,
	logger *slog.Logger,
) *Ingestor {
	return &Ingestor{
		announcements: announcements,
		resolver:      resolver,
		txManager:     txManager,
		metrics:       metrics,
		logger:        logger.With("component", "ingestor"),
	}
}

// Ingest records one raw announcement. Re-ingesting an unchanged item is an
// idempotent no-op: the fingerprint gate absorbs both repeated scrapes and
// concurrent workers racing on the same item.
func (i *Ingestor) Ingest(ctx context.Context, raw domain.RawAnnouncement) (*IngestReport, error) {
	if err := raw.Validate(); err != nil {
		return nil, fmt.Errorf("reject announcement from %s: %w", raw.SourceRef, err)
	}

	ann := &domain.Announcement{
		Source:       raw.Source,
		Kind:         raw.Kind,
		PublishedAt:  raw.PublishedAt,
		StartAt:      raw.StartAt,
		EndAt:        raw.EndAt,
		Reason:       raw.Reason,
		SourceRef:    raw.SourceRef,
		OriginalText: raw.OriginalText,
		Fingerprint:  domain.Fingerprint(raw.SourceRef, raw.StartAt, raw.EndAt, raw.OriginalText),
	}

	placeIDs, unresolved := i.resolvePlaces(ctx, raw.PlaceDescriptors)

	report := &IngestReport{LinkedPlaces: placeIDs, Unresolved: unresolved}
	err := i.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		id, created, err := i.announcements.InsertIfAbsent(txCtx, ann, unresolved)
		if err != nil {
			return fmt.Errorf("insert announcement: %w", err)
		}
		report.AnnouncementID = id
		report.Duplicate = !created
		if !created {
			// Lost the race or re-scraped: someone already stored it,
			// links included.
			report.LinkedPlaces = nil
			return nil
		}
		if err := i.announcements.LinkPlaces(txCtx, id, placeIDs); err != nil {
			return fmt.Errorf("link places: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if report.Duplicate {
		i.metrics.DuplicateAnnouncements.Inc()
		i.logger.Debug("duplicate announcement skipped", "fingerprint", ann.Fingerprint)
	} else {
		i.metrics.AnnouncementsIngested.Inc()
		i.metrics.UnresolvedDescriptors.Add(float64(len(unresolved)))
		i.logger.Info("announcement ingested",
			"id", report.AnnouncementID,
			"source", ann.Source,
			"kind", ann.Kind,
			"linked_places", len(report.LinkedPlaces),
			"unresolved", len(unresolved),
		)
	}

	return report, nil
}

// resolvePlaces resolves each descriptor scoped by its kind hint. Accepted
// candidates become links; descriptors without an accepted candidate stay in
// the original text for manual review and do not block the rest.
func (i *Ingestor) resolvePlaces(ctx context.Context, descriptors []domain.PlaceDescriptor) ([]int64, []string) {
	idSet := make(map[int64]struct{})
	var unresolved []string

	for _, d := range descriptors {
		candidates, err := i.resolver.Resolve(ctx, d.Text, d.KindHint)
		if err != nil {
			i.logger.Warn("place resolution failed", "text", d.Text, "error", err)
			unresolved = append(unresolved, d.Text)
			continue
		}
		if len(candidates) == 0 || !candidates[0].Accepted {
			unresolved = append(unresolved, d.Text)
			continue
		}
		idSet[candidates[0].Node.ID] = struct{}{}
	}

	ids := make([]int64, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	return ids, unresolved
}

// IngestRunner drains every raw source on each scheduler tick. Sources run
// concurrently; the fingerprint gate keeps overlapping workers safe.
type IngestRunner struct {
	sources      []RawSource
	ingestor     *Ingestor
	maxPerSource int
	logger       *slog.Logger
}

func NewIngestRunner(sources []RawSource, ingestor *Ingestor, maxPerSource int, logger *slog.Logger) *IngestRunner {
	return &IngestRunner{
		sources:      sources,
		ingestor:     ingestor,
		maxPerSource: maxPerSource,
		logger:       logger.With("component", "ingest_runner"),
	}
}

func (r *IngestRunner) Name() string { return "ingest" }

func (r *IngestRunner) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, src := range r.sources {
		g.Go(func() error {
			raws, err := src.Fetch(gctx, r.maxPerSource)
			if err != nil {
				return fmt.Errorf("fetch from %s: %w", src.Name(), err)
			}
			for _, raw := range raws {
				if _, err := r.ingestor.Ingest(gctx, raw); err != nil {
					// A bad record must not block the rest of the batch.
					r.logger.Error("ingest failed",
						"source", src.Name(),
						"source_ref", raw.SourceRef,
						"error", err,
					)
				}
			}
			if err := src.Commit(gctx); err != nil {
				// Uncommitted records come back on the next pass; the
				// fingerprint gate absorbs the replay.
				r.logger.Error("commit failed", "source", src.Name(), "error", err)
			}
			return nil
		})
	}
	return g.Wait()
}

package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"outage_notifier/internal/config"
	"outage_notifier/internal/domain"
	"outage_notifier/internal/observability"
)

const retryBatchLimit = 200

// NotifyService is the scheduling pass: it matches current announcements
// against due subscribers, applies delivery policy, claims the
// (subscriber, announcement) record and hands tasks to the dispatcher. The
// record's primary key is the only synchronization between concurrent
// passes.
type NotifyService struct {
	subscribers   SubscriberStore
	announcements AnnouncementStore
	notifications NotificationStore
	matcher       *Matcher
	renderer      *Renderer
	dispatcher    Dispatcher
	clock         clockwork.Clock
	cfg           config.NotifyConfig
	metrics       *observability.Metrics
	logger        *slog.Logger
}

func NewNotifyService(
	subscribers SubscriberStore,
	announcements AnnouncementStore,
	notifications NotificationStore,
	matcher *Matcher,
	renderer *Renderer,
	dispatcher Dispatcher,
	clock clockwork.Clock,
	cfg config.NotifyConfig,
	metrics *observability.Metrics,
	logger *slog.Logger,
) *NotifyService {
	return &NotifyService{
		subscribers:   subscribers,
		announcements: announcements,
		notifications: notifications,
		matcher:       matcher,
		renderer:      renderer,
		dispatcher:    dispatcher,
		clock:         clock,
		cfg:           cfg,
		metrics:       metrics,
		logger:        logger.With("component", "notify"),
	}
}

func (s *NotifyService) Name() string { return "notify" }

// Run executes one scheduling pass: fresh candidates first, then the
// failed-record retry sweep.
func (s *NotifyService) Run(ctx context.Context) error {
	if err := s.runCandidates(ctx); err != nil {
		return err
	}
	return s.runRetries(ctx)
}

func (s *NotifyService) runCandidates(ctx context.Context) error {
	now := s.clock.Now()

	due, err := s.subscribers.ListDue(ctx, now)
	if err != nil {
		return fmt.Errorf("list due subscribers: %w", err)
	}
	if len(due) == 0 {
		return nil
	}

	forest, err := s.matcher.LoadForest(ctx)
	if err != nil {
		return err
	}

	cutoff := now.AddDate(0, 0, -s.cfg.LookbackDays)
	anns, err := s.announcements.ListCurrent(ctx, now, cutoff)
	if err != nil {
		return fmt.Errorf("list current announcements: %w", err)
	}

	annByID := make(map[int64]*domain.Announcement, len(anns))
	candidates := make(map[int64][]int64) // subscriber id -> announcement ids
	for idx := range anns {
		ann := &anns[idx]
		annByID[ann.ID] = ann

		targets, err := s.announcements.LinkedPlaceIDs(ctx, ann.ID)
		if err != nil {
			return fmt.Errorf("announcement %d targets: %w", ann.ID, err)
		}
		pairs, err := s.matcher.Match(ctx, forest, ann.ID, targets)
		if err != nil {
			return fmt.Errorf("match announcement %d: %w", ann.ID, err)
		}
		s.metrics.PairsMatched.Add(float64(len(pairs)))
		for _, p := range pairs {
			candidates[p.SubscriberID] = append(candidates[p.SubscriberID], p.AnnouncementID)
		}
	}

	var checked []int64
	for idx := range due {
		sub := &due[idx]
		deferred, err := s.scheduleSubscriber(ctx, sub, candidates[sub.ID], annByID, now)
		if err != nil {
			s.logger.Error("scheduling subscriber failed", "subscriber_id", sub.ID, "error", err)
			continue
		}
		// A deferred subscriber stays due so the next pass retries the
		// quiet-hours pairs instead of waiting a full cadence.
		if !deferred {
			checked = append(checked, sub.ID)
		}
	}

	if err := s.subscribers.MarkChecked(ctx, checked, now); err != nil {
		return fmt.Errorf("mark checked: %w", err)
	}
	return nil
}

// scheduleSubscriber runs the filtering pipeline for one subscriber's
// candidate announcements. Returns whether any pair was deferred by quiet
// hours.
func (s *NotifyService) scheduleSubscriber(
	ctx context.Context,
	sub *domain.Subscriber,
	annIDs []int64,
	annByID map[int64]*domain.Announcement,
	now time.Time,
) (bool, error) {
	if len(annIDs) == 0 {
		return false, nil
	}

	existing, err := s.notifications.ExistingPairs(ctx, sub.ID, annIDs)
	if err != nil {
		return false, fmt.Errorf("existing pairs: %w", err)
	}

	deferred := false
	for _, annID := range annIDs {
		if _, sent := existing[annID]; sent {
			continue
		}
		if sub.SilentEnabled {
			continue
		}
		if sub.InQuietHours(now) {
			s.metrics.NotificationsDeferred.Inc()
			deferred = true
			continue
		}

		claimed, err := s.notifications.ClaimPending(ctx, sub.ID, annID, now)
		if err != nil {
			return deferred, fmt.Errorf("claim pair (%d, %d): %w", sub.ID, annID, err)
		}
		if !claimed {
			// Another worker owns or already handled this pair.
			continue
		}

		s.dispatchPair(ctx, sub, annByID[annID], 0)
	}
	return deferred, nil
}

// runRetries re-dispatches failed records whose backoff elapsed. Exhausting
// the attempt budget marks the pair permanently failed and logs it for
// operator visibility; it is never silently dropped.
func (s *NotifyService) runRetries(ctx context.Context) error {
	now := s.clock.Now()

	recs, err := s.notifications.ListRetryable(ctx, now, retryBatchLimit)
	if err != nil {
		return fmt.Errorf("list retryable: %w", err)
	}

	for _, rec := range recs {
		sub, err := s.subscribers.Get(ctx, rec.SubscriberID)
		if err != nil {
			s.logger.Error("retry lookup failed", "subscriber_id", rec.SubscriberID, "error", err)
			continue
		}
		if sub.SilentEnabled || sub.InQuietHours(now) {
			continue
		}

		ann, err := s.announcements.GetByID(ctx, rec.AnnouncementID)
		if err != nil {
			s.logger.Error("retry lookup failed", "announcement_id", rec.AnnouncementID, "error", err)
			continue
		}

		claimed, err := s.notifications.ClaimRetry(ctx, rec.SubscriberID, rec.AnnouncementID)
		if err != nil {
			s.logger.Error("claim retry failed", "subscriber_id", rec.SubscriberID, "error", err)
			continue
		}
		if !claimed {
			continue
		}

		s.dispatchPair(ctx, sub, ann, rec.Attempts)
	}
	return nil
}

// dispatchPair hands one claimed pair to the dispatcher and commits the
// outcome. priorAttempts counts attempts already recorded for the pair.
func (s *NotifyService) dispatchPair(ctx context.Context, sub *domain.Subscriber, ann *domain.Announcement, priorAttempts int) {
	task := domain.DeliveryTask{
		SubscriberID:    sub.ID,
		AnnouncementID:  ann.ID,
		RenderedMessage: s.renderer.Render(sub.Locale, ann),
		Silent:          !sub.SoundEnabled,
	}

	dctx, cancel := context.WithTimeout(ctx, s.cfg.DispatchTimeout)
	start := s.clock.Now()
	err := s.dispatcher.Dispatch(dctx, task)
	cancel()
	s.metrics.DispatchDuration.Observe(s.clock.Since(start).Seconds())

	now := s.clock.Now()
	if err == nil {
		if err := s.notifications.MarkSent(ctx, sub.ID, ann.ID, now); err != nil {
			s.logger.Error("mark sent failed", "subscriber_id", sub.ID, "announcement_id", ann.ID, "error", err)
		}
		s.metrics.NotificationsSent.Inc()
		return
	}

	attempts := priorAttempts + 1
	permanent := attempts >= s.cfg.MaxAttempts
	var nextRetry *time.Time
	if !permanent {
		t := now.Add(s.backoff(attempts))
		nextRetry = &t
	}

	if markErr := s.notifications.MarkFailed(ctx, sub.ID, ann.ID, now, nextRetry, permanent); markErr != nil {
		s.logger.Error("mark failed failed", "subscriber_id", sub.ID, "announcement_id", ann.ID, "error", markErr)
	}

	if permanent {
		s.metrics.NotificationsExhausted.Inc()
		s.logger.Error("delivery permanently failed",
			"subscriber_id", sub.ID,
			"announcement_id", ann.ID,
			"attempts", attempts,
			"error", err,
		)
	} else {
		s.metrics.NotificationsFailed.Inc()
		s.logger.Warn("delivery failed, will retry",
			"subscriber_id", sub.ID,
			"announcement_id", ann.ID,
			"attempt", attempts,
			"next_retry", nextRetry,
			"error", err,
		)
	}
}

// backoff doubles per attempt from the initial value, capped at the
// configured maximum.
func (s *NotifyService) backoff(attempts int) time.Duration {
	d := s.cfg.InitialBackoff
	for i := 1; i < attempts; i++ {
		d *= 2
		if d >= s.cfg.MaxBackoff {
			return s.cfg.MaxBackoff
		}
	}
	if d > s.cfg.MaxBackoff {
		return s.cfg.MaxBackoff
	}
	return d
}

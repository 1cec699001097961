package domain

import "time"

// Tier is a subscription level. Higher tiers unlock faster polling cadences.
type Tier string

const (
	TierFree    Tier = "Free"
	TierBasic   Tier = "Basic"
	TierPremium Tier = "Premium"
	TierUltra   Tier = "Ultra"
)

// MinCadence returns the fastest polling cadence the tier allows.
func (t Tier) MinCadence() time.Duration {
	switch t {
	case TierUltra:
		return 15 * time.Minute
	case TierPremium:
		return 30 * time.Minute
	case TierBasic:
		return time.Hour
	default:
		return 6 * time.Hour
	}
}

// Allows reports whether the tier permits the given cadence.
func (t Tier) Allows(cadence time.Duration) bool {
	return cadence >= t.MinCadence()
}

// Subscriber holds per-user delivery policy. Quiet hours are minutes of day;
// the window may wrap past midnight (the default 23:00-07:00 does).
type Subscriber struct {
	ID             int64     `db:"id"`
	Locale         string    `db:"locale"`
	Tier           Tier      `db:"tier"`
	CadenceSeconds int       `db:"cadence_seconds"`
	SoundEnabled   bool      `db:"sound_enabled"`
	SilentEnabled  bool      `db:"silent_enabled"`
	QuietStartMin  int       `db:"quiet_start_min"`
	QuietEndMin    int       `db:"quiet_end_min"`
	CreatedAt      time.Time `db:"created_at"`
	LastActiveAt   time.Time `db:"last_active_at"`
	LastCheckedAt  time.Time `db:"last_checked_at"`
}

// Cadence returns the polling cadence as a duration.
func (s Subscriber) Cadence() time.Duration {
	return time.Duration(s.CadenceSeconds) * time.Second
}

// InQuietHours reports whether t falls inside the subscriber's quiet-hours
// window. The start minute is inside the window, the end minute is not.
// An empty window (start == end) never matches.
func (s Subscriber) InQuietHours(t time.Time) bool {
	m := t.Hour()*60 + t.Minute()
	start, end := s.QuietStartMin, s.QuietEndMin
	switch {
	case start == end:
		return false
	case start < end:
		return m >= start && m < end
	default: // wraps past midnight
		return m >= start || m < end
	}
}

package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// OutageSource identifies the utility a provider announcement concerns.
type OutageSource string

const (
	SourceWater    OutageSource = "water"
	SourceGas      OutageSource = "gas"
	SourceElectric OutageSource = "electric"
)

// OutageKind distinguishes planned maintenance from emergency outages.
type OutageKind string

const (
	KindPlanned   OutageKind = "planned"
	KindEmergency OutageKind = "emergency"
)

// PlaceDescriptor is a raw place reference inside a scraped announcement.
// KindHint scopes resolution: region-level text must resolve to a region
// node, not a street. Empty hint searches all kinds.
type PlaceDescriptor struct {
	Text     string    `json:"text"`
	KindHint PlaceKind `json:"kind_hint,omitempty"`
}

// RawAnnouncement is the scraper-facing intake record.
type RawAnnouncement struct {
	Source           OutageSource      `json:"source_category"`
	Kind             OutageKind        `json:"kind"`
	PublishedAt      *time.Time        `json:"publication_time,omitempty"`
	StartAt          time.Time         `json:"start_time"`
	EndAt            time.Time         `json:"end_time"`
	Reason           string            `json:"reason"`
	SourceRef        string            `json:"source_reference"`
	OriginalText     string            `json:"original_text"`
	PlaceDescriptors []PlaceDescriptor `json:"place_descriptors"`
}

// Announcement is an ingested outage announcement. Append-only after
// creation; Fingerprint is unique and is the sole defense against
// re-ingesting the same scraped item.
type Announcement struct {
	ID           int64        `db:"id"`
	Source       OutageSource `db:"source"`
	Kind         OutageKind   `db:"kind"`
	PublishedAt  *time.Time   `db:"published_at"`
	StartAt      time.Time    `db:"start_at"`
	EndAt        time.Time    `db:"end_at"`
	Reason       string       `db:"reason"`
	SourceRef    string       `db:"source_ref"`
	OriginalText string       `db:"original_text"`
	Fingerprint  string       `db:"fingerprint"`
	CreatedAt    time.Time    `db:"created_at"`
}

// Fingerprint derives the announcement dedup key. Repeated scrapes of an
// unchanged announcement must fingerprint identically, so the inputs are
// normalized: timestamps to UTC RFC 3339, text whitespace collapsed.
func Fingerprint(sourceRef string, start, end time.Time, originalText string) string {
	h := sha256.New()
	h.Write([]byte(sourceRef))
	h.Write([]byte{'|'})
	h.Write([]byte(start.UTC().Format(time.RFC3339)))
	h.Write([]byte{'|'})
	h.Write([]byte(end.UTC().Format(time.RFC3339)))
	h.Write([]byte{'|'})
	h.Write([]byte(strings.Join(strings.Fields(originalText), " ")))
	return hex.EncodeToString(h.Sum(nil))
}

// Validate checks invariants enforced at ingestion.
func (r RawAnnouncement) Validate() error {
	if r.EndAt.Before(r.StartAt) {
		return ErrInvalidWindow
	}
	return nil
}

package domain

import "time"

// Address is a concrete location beneath a PlaceNode. When resolution
// confidence was too low to link a node, PlaceID is nil and RawAddress keeps
// the original text for later manual reconciliation.
type Address struct {
	ID          int64     `db:"id"`
	PlaceID     *int64    `db:"place_id"`
	HouseNumber *string   `db:"house_number"`
	PostalCode  *string   `db:"postal_code"`
	RawAddress  *string   `db:"raw_address"`
	CreatedAt   time.Time `db:"created_at"`
}

// TrackedAddress links a subscriber to one Address. A subscriber cannot track
// the same address twice.
type TrackedAddress struct {
	ID           int64     `db:"id"`
	SubscriberID int64     `db:"subscriber_id"`
	AddressID    int64     `db:"address_id"`
	CreatedAt    time.Time `db:"created_at"`
}

// TrackedPlace is the matcher's view of a tracked address: who tracks it and
// which hierarchy node it sits under.
type TrackedPlace struct {
	SubscriberID int64 `db:"subscriber_id"`
	AddressID    int64 `db:"address_id"`
	PlaceID      int64 `db:"place_id"`
}

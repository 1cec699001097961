package domain

import "errors"

var (
	// ErrInvalidWindow rejects announcements whose outage window ends before
	// it starts.
	ErrInvalidWindow = errors.New("outage window ends before it starts")

	// ErrDuplicateNode rejects hierarchy inserts that reuse an existing node id.
	ErrDuplicateNode = errors.New("duplicate hierarchy node id")

	// ErrCycleDetected reports corrupt hierarchy data encountered during
	// traversal. Fatal for the offending subtree only.
	ErrCycleDetected = errors.New("cycle detected in hierarchy")

	// ErrUnknownNode reports a traversal starting from an id that is not in
	// the forest.
	ErrUnknownNode = errors.New("unknown hierarchy node")

	// ErrAlreadyTracked reports an attempt to track the same address twice
	// for one subscriber.
	ErrAlreadyTracked = errors.New("address already tracked")

	// ErrCadenceNotAllowed reports a polling cadence faster than the
	// subscriber's tier permits.
	ErrCadenceNotAllowed = errors.New("cadence below tier minimum")

	// ErrSubscriberNotFound reports a lookup for an unknown subscriber.
	ErrSubscriberNotFound = errors.New("subscriber not found")
)

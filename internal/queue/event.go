// Package queue defines the message payloads exchanged over the broker and
// the background consumer that drains them.
package queue

// VehicleEvent is published after every successful vehicle mutation. It
// carries enough for downstream consumers (the activity feed, cache
// invalidation) without re-reading the store. Key and Value are only set
// for field updates; Actor is the role that performed the change.
type VehicleEvent struct {
	Action    string `json:"action"` // "created", "updated", "deleted"
	VehicleID string `json:"vehicle_id"`
	Key       string `json:"key,omitempty"`
	Value     any    `json:"value,omitempty"`
	Actor     string `json:"actor,omitempty"`
	At        string `json:"at"` // RFC 3339 UTC
}

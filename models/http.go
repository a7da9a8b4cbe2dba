package models

import "time"

// StateResponse is the payload of GET /api/state: the stored document plus
// the server-side metadata of its record.
type StateResponse struct {
	Data      *StateDocument `json:"data"`
	Version   string         `json:"version"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// StateUpsertRequest is the payload of PUT /api/state.
//
// BaseUpdatedAt optionally carries the server timestamp the client observed
// in its read-before-write guard. The server records it for diagnostics but
// does not enforce it: only one authorized device is expected to write at a
// time, so the narrow read-then-write window is an accepted limitation.
type StateUpsertRequest struct {
	Data          *StateDocument `json:"data"`
	Version       string         `json:"version"`
	BaseUpdatedAt *time.Time     `json:"base_updated_at,omitempty"`
}

// StateUpsertResponse confirms a successful upsert with the new
// server-side timestamp.
type StateUpsertResponse struct {
	UpdatedAt time.Time `json:"updated_at"`
}

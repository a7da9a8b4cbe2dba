package models

import "time"

// Session is the agent's persisted authentication state: who is logged in
// on this device and the bearer token to use for remote operations.
type Session struct {
	UserID int64     `json:"user_id"`
	Token  string    `json:"token"`
	At     time.Time `json:"at"`
}

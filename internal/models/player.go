package models

import "time"

// Player is a roster entry owned by a coach. The identity is the
// store-assigned id, not the name.
type Player struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Password  string    `json:"password"` // Shared secret, stored as-is.
	CoachID   string    `json:"coachId"`
	CreatedAt time.Time `json:"createdAt"`
}

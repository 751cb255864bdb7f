package models

import "time"

// Favourite marks that a user has flagged a board. It is a non-owning
// relation: deleting the board removes its favourites, deleting a favourite
// never affects the board. At most one favourite exists per
// (user_id, board_id) pair, enforced by a unique index.
type Favourite struct {
	ID        string    `json:"id" db:"id"`
	OrgID     string    `json:"org_id" db:"org_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	BoardID   string    `json:"board_id" db:"board_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

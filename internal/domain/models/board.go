package models

import "time"

// Board is a whiteboard document record.
//
// AuthorID and AuthorName are captured from the creator's identity at
// creation time; AuthorName is a snapshot, not a live reference to the
// identity provider. ImageURL is picked from the placeholder palette at
// creation and never changes afterwards.
type Board struct {
	ID         string    `json:"id" db:"id"`
	OrgID      string    `json:"org_id" db:"org_id"`
	Title      string    `json:"title" db:"title"`
	AuthorID   string    `json:"author_id" db:"author_id"`
	AuthorName string    `json:"author_name" db:"author_name"`
	ImageURL   string    `json:"image_url" db:"image_url"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// BoardSummary is a Board annotated with the viewing user's favourite flag,
// used by org-scoped listings.
type BoardSummary struct {
	Board
	IsFavourite bool `json:"is_favourite"`
}

// BoardListOptions filters an org-scoped board listing.
type BoardListOptions struct {
	OrgID          string // required
	ViewerID       string // user the IsFavourite annotation is computed for
	Search         string // optional title substring filter
	FavouritesOnly bool   // only boards the viewer has favourited
}

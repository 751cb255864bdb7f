package services

import (
	"context"

	"boardhub/internal/domain/models"
)

// CreateBoardRequest represents a request to create a board
type CreateBoardRequest struct {
	OrgID string `json:"org_id"`
	Title string `json:"title"`
}

// UpdateBoardRequest represents a request to rename a board
type UpdateBoardRequest struct {
	Title string `json:"title"`
}

// FavouriteBoardRequest represents a request to favourite a board
type FavouriteBoardRequest struct {
	OrgID string `json:"org_id"`
}

// BoardService defines the board and favourite operations exposed to callers.
//
// Every call takes the resolved identity as an explicit parameter; nil means
// the caller is unauthenticated. Authorization decisions (ownership, identity
// presence) are made here, never in the repositories.
type BoardService interface {
	// Create creates a board owned by the identity and returns its ID.
	// The board's image is picked uniformly at random from the placeholder
	// palette. Title is stored verbatim; rename validation applies only to
	// Update.
	Create(ctx context.Context, ident *models.Identity, req *CreateBoardRequest) (string, error)

	// Update renames a board. Only the author may rename; the title is
	// trimmed and must be 1-60 characters after trimming.
	Update(ctx context.Context, ident *models.Identity, id string, req *UpdateBoardRequest) (*models.Board, error)

	// Remove deletes a board and, atomically with it, every favourite that
	// references it. Only the author may remove.
	Remove(ctx context.Context, ident *models.Identity, id string) error

	// Favourite flags the board for the identity. At most one favourite may
	// exist per (user, board) pair. Returns the board unchanged.
	Favourite(ctx context.Context, ident *models.Identity, id string, req *FavouriteBoardRequest) (*models.Board, error)

	// Unfavourite removes the identity's favourite of the board.
	// Returns the board unchanged.
	Unfavourite(ctx context.Context, ident *models.Identity, id string) (*models.Board, error)

	// Get retrieves a board by ID. No authorization check: any caller who
	// holds a board ID may read it.
	Get(ctx context.Context, id string) (*models.Board, error)

	// List retrieves an org's boards for the identity, newest first, with
	// optional title search and favourites-only filtering.
	List(ctx context.Context, ident *models.Identity, opts models.BoardListOptions) ([]models.BoardSummary, error)
}

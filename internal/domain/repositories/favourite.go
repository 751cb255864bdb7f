package repositories

import (
	"context"

	"boardhub/internal/domain/models"
)

// FavouriteRepository defines data access operations for the favourite
// relation. The backing store enforces uniqueness of (user_id, board_id) at
// insert time, so two racing Create calls for the same pair cannot both
// succeed.
type FavouriteRepository interface {
	// Create inserts a new favourite and fills in its generated ID.
	// Returns a ConflictError if the (user, board) pair already exists.
	Create(ctx context.Context, fav *models.Favourite) error

	// Delete removes a single favourite by ID
	Delete(ctx context.Context, id string) error

	// GetByUserAndBoard retrieves the favourite for a (user, board) pair
	GetByUserAndBoard(ctx context.Context, userID, boardID string) (*models.Favourite, error)

	// ListByBoard retrieves every favourite referencing a board
	ListByBoard(ctx context.Context, boardID string) ([]models.Favourite, error)

	// DeleteByBoard removes every favourite referencing a board.
	// Called inside the board-removal transaction.
	DeleteByBoard(ctx context.Context, boardID string) error
}

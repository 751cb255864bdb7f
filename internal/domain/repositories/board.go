package repositories

import (
	"context"

	"boardhub/internal/domain/models"
)

// BoardRepository defines data access operations for boards
type BoardRepository interface {
	// Create inserts a new board and fills in its generated ID and timestamps
	Create(ctx context.Context, board *models.Board) error

	// GetByID retrieves a board by ID
	GetByID(ctx context.Context, id string) (*models.Board, error)

	// List retrieves an org's boards, newest first, annotated with the
	// viewer's favourite flag
	List(ctx context.Context, opts models.BoardListOptions) ([]models.BoardSummary, error)

	// UpdateTitle patches the board's title and refreshes updated_at,
	// leaving every other field untouched
	UpdateTitle(ctx context.Context, board *models.Board) error

	// Delete removes a board
	Delete(ctx context.Context, id string) error
}

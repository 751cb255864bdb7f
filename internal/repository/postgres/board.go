package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"boardhub/internal/domain"
	"boardhub/internal/domain/models"
	"boardhub/internal/domain/repositories"
)

// PostgresBoardRepository implements the BoardRepository interface
type PostgresBoardRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewBoardRepository creates a new board repository
func NewBoardRepository(config *RepositoryConfig) repositories.BoardRepository {
	return &PostgresBoardRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a new board
func (r *PostgresBoardRepository) Create(ctx context.Context, board *models.Board) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (org_id, title, author_id, author_name, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, r.tables.Boards)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		board.OrgID,
		board.Title,
		board.AuthorID,
		board.AuthorName,
		board.ImageURL,
	).Scan(&board.ID, &board.CreatedAt, &board.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create board: %w", err)
	}

	return nil
}

// GetByID retrieves a board by ID
func (r *PostgresBoardRepository) GetByID(ctx context.Context, id string) (*models.Board, error) {
	query := fmt.Sprintf(`
		SELECT id, org_id, title, author_id, author_name, image_url, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Boards)

	var board models.Board
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&board.ID,
		&board.OrgID,
		&board.Title,
		&board.AuthorID,
		&board.AuthorName,
		&board.ImageURL,
		&board.CreatedAt,
		&board.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("board %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get board: %w", err)
	}

	return &board, nil
}

// List retrieves an org's boards, newest first, with the viewer's favourite
// flag computed by a join against the favourites table.
func (r *PostgresBoardRepository) List(ctx context.Context, opts models.BoardListOptions) ([]models.BoardSummary, error) {
	join := "LEFT"
	if opts.FavouritesOnly {
		// Inner join drops boards the viewer has not favourited
		join = "INNER"
	}

	query := fmt.Sprintf(`
		SELECT b.id, b.org_id, b.title, b.author_id, b.author_name, b.image_url,
		       b.created_at, b.updated_at, f.id IS NOT NULL AS is_favourite
		FROM %s b
		%s JOIN %s f ON f.board_id = b.id AND f.user_id = $2
		WHERE b.org_id = $1 AND ($3 = '' OR b.title ILIKE '%%' || $3 || '%%')
		ORDER BY b.created_at DESC
	`, r.tables.Boards, join, r.tables.Favourites)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, opts.OrgID, opts.ViewerID, opts.Search)
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	defer rows.Close()

	var boards []models.BoardSummary
	for rows.Next() {
		var b models.BoardSummary
		err := rows.Scan(
			&b.ID,
			&b.OrgID,
			&b.Title,
			&b.AuthorID,
			&b.AuthorName,
			&b.ImageURL,
			&b.CreatedAt,
			&b.UpdatedAt,
			&b.IsFavourite,
		)
		if err != nil {
			return nil, fmt.Errorf("scan board: %w", err)
		}
		boards = append(boards, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate boards: %w", err)
	}

	if boards == nil {
		boards = []models.BoardSummary{}
	}

	return boards, nil
}

// UpdateTitle patches the board's title and refreshes updated_at
func (r *PostgresBoardRepository) UpdateTitle(ctx context.Context, board *models.Board) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, updated_at = now()
		WHERE id = $2
		RETURNING updated_at
	`, r.tables.Boards)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, board.Title, board.ID).Scan(&board.UpdatedAt)

	if err != nil {
		if IsPgNoRowsError(err) {
			return fmt.Errorf("board %s: %w", board.ID, domain.ErrNotFound)
		}
		return fmt.Errorf("update board title: %w", err)
	}

	return nil
}

// Delete removes a board
func (r *PostgresBoardRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
	`, r.tables.Boards)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete board: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("board %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

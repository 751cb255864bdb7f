package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"boardhub/internal/domain"
	"boardhub/internal/domain/models"
	"boardhub/internal/domain/repositories"
)

// PostgresFavouriteRepository implements the FavouriteRepository interface
type PostgresFavouriteRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewFavouriteRepository creates a new favourite repository
func NewFavouriteRepository(config *RepositoryConfig) repositories.FavouriteRepository {
	return &PostgresFavouriteRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a new favourite. The unique index on (user_id, board_id)
// rejects a second favourite for the same pair even when two calls race past
// the service-level existence check.
func (r *PostgresFavouriteRepository) Create(ctx context.Context, fav *models.Favourite) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (org_id, user_id, board_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, r.tables.Favourites)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		fav.OrgID,
		fav.UserID,
		fav.BoardID,
	).Scan(&fav.ID, &fav.CreatedAt)

	if err != nil {
		if IsPgDuplicateError(err) {
			existingID, queryErr := r.getExistingFavouriteID(ctx, fav.UserID, fav.BoardID)
			if queryErr != nil {
				return fmt.Errorf("board already favourited: %w", domain.ErrConflict)
			}
			return &domain.ConflictError{
				Message:      "board already favourited",
				ResourceType: "favourite",
				ResourceID:   existingID,
			}
		}
		if IsPgForeignKeyError(err) {
			// Board was removed between the service's existence check and
			// this insert; the cascade transaction won.
			return fmt.Errorf("board %s: %w", fav.BoardID, domain.ErrNotFound)
		}
		return fmt.Errorf("create favourite: %w", err)
	}

	return nil
}

// Delete removes a single favourite by ID
func (r *PostgresFavouriteRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
	`, r.tables.Favourites)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete favourite: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("favourite %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// GetByUserAndBoard retrieves the favourite for a (user, board) pair
func (r *PostgresFavouriteRepository) GetByUserAndBoard(ctx context.Context, userID, boardID string) (*models.Favourite, error) {
	query := fmt.Sprintf(`
		SELECT id, org_id, user_id, board_id, created_at
		FROM %s
		WHERE user_id = $1 AND board_id = $2
	`, r.tables.Favourites)

	var fav models.Favourite
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, userID, boardID).Scan(
		&fav.ID,
		&fav.OrgID,
		&fav.UserID,
		&fav.BoardID,
		&fav.CreatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("favourite for board %s: %w", boardID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get favourite: %w", err)
	}

	return &fav, nil
}

// ListByBoard retrieves every favourite referencing a board
func (r *PostgresFavouriteRepository) ListByBoard(ctx context.Context, boardID string) ([]models.Favourite, error) {
	query := fmt.Sprintf(`
		SELECT id, org_id, user_id, board_id, created_at
		FROM %s
		WHERE board_id = $1
	`, r.tables.Favourites)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, boardID)
	if err != nil {
		return nil, fmt.Errorf("list favourites: %w", err)
	}
	defer rows.Close()

	var favs []models.Favourite
	for rows.Next() {
		var fav models.Favourite
		err := rows.Scan(
			&fav.ID,
			&fav.OrgID,
			&fav.UserID,
			&fav.BoardID,
			&fav.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan favourite: %w", err)
		}
		favs = append(favs, fav)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate favourites: %w", err)
	}

	return favs, nil
}

// DeleteByBoard removes every favourite referencing a board
func (r *PostgresFavouriteRepository) DeleteByBoard(ctx context.Context, boardID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE board_id = $1
	`, r.tables.Favourites)

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, boardID); err != nil {
		return fmt.Errorf("delete favourites for board: %w", err)
	}

	return nil
}

// getExistingFavouriteID looks up the favourite that caused a duplicate
// insert so the conflict error can carry its ID.
func (r *PostgresFavouriteRepository) getExistingFavouriteID(ctx context.Context, userID, boardID string) (string, error) {
	query := fmt.Sprintf(`
		SELECT id
		FROM %s
		WHERE user_id = $1 AND board_id = $2
	`, r.tables.Favourites)

	var id string
	executor := GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query, userID, boardID).Scan(&id); err != nil {
		return "", fmt.Errorf("get existing favourite ID: %w", err)
	}

	return id, nil
}

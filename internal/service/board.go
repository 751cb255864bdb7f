package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"boardhub/internal/assets"
	"boardhub/internal/config"
	"boardhub/internal/domain"
	"boardhub/internal/domain/models"
	"boardhub/internal/domain/repositories"
	"boardhub/internal/domain/services"
)

// fallbackAuthorName is stored when the identity provider supplies no
// display name for the creator.
const fallbackAuthorName = "Unknown User"

// boardService implements the BoardService interface
type boardService struct {
	boardRepo repositories.BoardRepository
	favRepo   repositories.FavouriteRepository
	txManager repositories.TransactionManager
	palette   *assets.Palette
	intn      func(n int) int
	logger    *slog.Logger
}

// NewBoardService creates a new board service. intn supplies the randomness
// for placeholder image selection and must return a value in [0, n); pass
// rand.IntN in production and a fixed function in tests.
func NewBoardService(
	boardRepo repositories.BoardRepository,
	favRepo repositories.FavouriteRepository,
	txManager repositories.TransactionManager,
	palette *assets.Palette,
	intn func(n int) int,
	logger *slog.Logger,
) services.BoardService {
	return &boardService{
		boardRepo: boardRepo,
		favRepo:   favRepo,
		txManager: txManager,
		palette:   palette,
		intn:      intn,
		logger:    logger,
	}
}

// Create creates a board owned by the identity.
//
// Title and org ID are stored verbatim: the trim/length rules apply only to
// Update, matching the observed contract of the original mutation set.
func (s *boardService) Create(ctx context.Context, ident *models.Identity, req *services.CreateBoardRequest) (string, error) {
	if ident == nil {
		return "", fmt.Errorf("create board: %w", domain.ErrUnauthorized)
	}

	authorName := ident.DisplayName
	if authorName == "" {
		authorName = fallbackAuthorName
	}

	board := &models.Board{
		OrgID:      req.OrgID,
		Title:      req.Title,
		AuthorID:   ident.SubjectID,
		AuthorName: authorName,
		ImageURL:   s.palette.Pick(s.intn),
	}

	if err := s.boardRepo.Create(ctx, board); err != nil {
		return "", err
	}

	s.logger.Info("board created",
		"id", board.ID,
		"org_id", board.OrgID,
		"author_id", board.AuthorID,
	)

	return board.ID, nil
}

// Update renames a board. Only the author may rename it.
func (s *boardService) Update(ctx context.Context, ident *models.Identity, id string, req *services.UpdateBoardRequest) (*models.Board, error) {
	if ident == nil {
		return nil, fmt.Errorf("update board: %w", domain.ErrUnauthorized)
	}

	board, err := s.boardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if board.AuthorID != ident.SubjectID {
		return nil, fmt.Errorf("only the author may update board %s: %w", id, domain.ErrForbidden)
	}

	title := strings.TrimSpace(req.Title)
	if err := validateTitle(title); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	board.Title = title
	if err := s.boardRepo.UpdateTitle(ctx, board); err != nil {
		return nil, err
	}

	s.logger.Info("board renamed",
		"id", board.ID,
		"title", board.Title,
		"user_id", ident.SubjectID,
	)

	return board, nil
}

// Remove deletes a board together with every favourite referencing it.
// Both deletions run in one transaction so no reader observes a favourite
// pointing at a deleted board, or the reverse.
func (s *boardService) Remove(ctx context.Context, ident *models.Identity, id string) error {
	if ident == nil {
		return fmt.Errorf("remove board: %w", domain.ErrUnauthorized)
	}

	board, err := s.boardRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if board.AuthorID != ident.SubjectID {
		return fmt.Errorf("only the author may remove board %s: %w", id, domain.ErrForbidden)
	}

	err = s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		if err := s.favRepo.DeleteByBoard(ctx, id); err != nil {
			return err
		}
		return s.boardRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("board removed",
		"id", id,
		"user_id", ident.SubjectID,
	)

	return nil
}

// Favourite flags the board for the identity
func (s *boardService) Favourite(ctx context.Context, ident *models.Identity, id string, req *services.FavouriteBoardRequest) (*models.Board, error) {
	if ident == nil {
		return nil, fmt.Errorf("favourite board: %w", domain.ErrUnauthorized)
	}

	board, err := s.boardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing, err := s.favRepo.GetByUserAndBoard(ctx, ident.SubjectID, board.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.ConflictError{
			Message:      "board already favourited",
			ResourceType: "favourite",
			ResourceID:   existing.ID,
		}
	}

	// The repository's unique (user_id, board_id) index still rejects the
	// insert if another call slipped in after the check above.
	fav := &models.Favourite{
		OrgID:   req.OrgID,
		UserID:  ident.SubjectID,
		BoardID: board.ID,
	}
	if err := s.favRepo.Create(ctx, fav); err != nil {
		return nil, err
	}

	s.logger.Info("board favourited",
		"board_id", board.ID,
		"user_id", ident.SubjectID,
	)

	return board, nil
}

// Unfavourite removes the identity's favourite of the board
func (s *boardService) Unfavourite(ctx context.Context, ident *models.Identity, id string) (*models.Board, error) {
	if ident == nil {
		return nil, fmt.Errorf("unfavourite board: %w", domain.ErrUnauthorized)
	}

	board, err := s.boardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fav, err := s.favRepo.GetByUserAndBoard(ctx, ident.SubjectID, board.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("board %s is not favourited: %w", id, domain.ErrConflict)
		}
		return nil, err
	}

	if err := s.favRepo.Delete(ctx, fav.ID); err != nil {
		return nil, err
	}

	s.logger.Info("board unfavourited",
		"board_id", board.ID,
		"user_id", ident.SubjectID,
	)

	return board, nil
}

// Get retrieves a board by ID. Deliberately unauthenticated: any caller who
// holds a board ID may read it.
func (s *boardService) Get(ctx context.Context, id string) (*models.Board, error) {
	return s.boardRepo.GetByID(ctx, id)
}

// List retrieves an org's boards for the identity
func (s *boardService) List(ctx context.Context, ident *models.Identity, opts models.BoardListOptions) ([]models.BoardSummary, error) {
	if ident == nil {
		return nil, fmt.Errorf("list boards: %w", domain.ErrUnauthorized)
	}

	if err := validation.Validate(opts.OrgID, validation.Required.Error("org_id is required")); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	opts.ViewerID = ident.SubjectID
	return s.boardRepo.List(ctx, opts)
}

// validateTitle validates an already-trimmed board title
func validateTitle(title string) error {
	return validation.Validate(title,
		validation.Required.Error("title is required"),
		validation.RuneLength(1, config.MaxBoardTitleLength).Error(
			fmt.Sprintf("title cannot be longer than %d characters", config.MaxBoardTitleLength)),
	)
}

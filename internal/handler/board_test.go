package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"boardhub/internal/domain"
	"boardhub/internal/domain/models"
	"boardhub/internal/domain/services"
	"boardhub/internal/httputil"
)

const boardID = "5f0c2a5e-9d95-4f0b-8a57-0f5e0a9c1b2d"

// stubBoardService lets each test pin the behaviour of a single operation
type stubBoardService struct {
	createFn      func(ctx context.Context, ident *models.Identity, req *services.CreateBoardRequest) (string, error)
	updateFn      func(ctx context.Context, ident *models.Identity, id string, req *services.UpdateBoardRequest) (*models.Board, error)
	removeFn      func(ctx context.Context, ident *models.Identity, id string) error
	favouriteFn   func(ctx context.Context, ident *models.Identity, id string, req *services.FavouriteBoardRequest) (*models.Board, error)
	unfavouriteFn func(ctx context.Context, ident *models.Identity, id string) (*models.Board, error)
	getFn         func(ctx context.Context, id string) (*models.Board, error)
	listFn        func(ctx context.Context, ident *models.Identity, opts models.BoardListOptions) ([]models.BoardSummary, error)
}

func (s *stubBoardService) Create(ctx context.Context, ident *models.Identity, req *services.CreateBoardRequest) (string, error) {
	return s.createFn(ctx, ident, req)
}

func (s *stubBoardService) Update(ctx context.Context, ident *models.Identity, id string, req *services.UpdateBoardRequest) (*models.Board, error) {
	return s.updateFn(ctx, ident, id, req)
}

func (s *stubBoardService) Remove(ctx context.Context, ident *models.Identity, id string) error {
	return s.removeFn(ctx, ident, id)
}

func (s *stubBoardService) Favourite(ctx context.Context, ident *models.Identity, id string, req *services.FavouriteBoardRequest) (*models.Board, error) {
	return s.favouriteFn(ctx, ident, id, req)
}

func (s *stubBoardService) Unfavourite(ctx context.Context, ident *models.Identity, id string) (*models.Board, error) {
	return s.unfavouriteFn(ctx, ident, id)
}

func (s *stubBoardService) Get(ctx context.Context, id string) (*models.Board, error) {
	return s.getFn(ctx, id)
}

func (s *stubBoardService) List(ctx context.Context, ident *models.Identity, opts models.BoardListOptions) ([]models.BoardSummary, error) {
	return s.listFn(ctx, ident, opts)
}

func newTestMux(svc services.BoardService) *http.ServeMux {
	h := NewBoardHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/boards", h.CreateBoard)
	mux.HandleFunc("GET /api/boards", h.ListBoards)
	mux.HandleFunc("GET /api/boards/{id}", h.GetBoard)
	mux.HandleFunc("PATCH /api/boards/{id}", h.UpdateBoard)
	mux.HandleFunc("DELETE /api/boards/{id}", h.DeleteBoard)
	mux.HandleFunc("POST /api/boards/{id}/favourite", h.FavouriteBoard)
	mux.HandleFunc("DELETE /api/boards/{id}/favourite", h.UnfavouriteBoard)
	return mux
}

func doRequest(mux *http.ServeMux, method, path, body string, ident *models.Identity) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if ident != nil {
		req = httputil.WithIdentity(req, ident)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestCreateBoard(t *testing.T) {
	svc := &stubBoardService{
		createFn: func(ctx context.Context, ident *models.Identity, req *services.CreateBoardRequest) (string, error) {
			if ident == nil {
				return "", fmt.Errorf("create board: %w", domain.ErrUnauthorized)
			}
			if req.OrgID != "org-a" || req.Title != "Roadmap" {
				t.Errorf("request = %+v, want org-a/Roadmap", req)
			}
			return boardID, nil
		},
	}
	mux := newTestMux(svc)

	rec := doRequest(mux, http.MethodPost, "/api/boards",
		`{"org_id":"org-a","title":"Roadmap"}`, &models.Identity{SubjectID: "u1"})

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp["id"] != boardID {
		t.Errorf("id = %q, want %q", resp["id"], boardID)
	}
}

func TestCreateBoardUnauthenticated(t *testing.T) {
	svc := &stubBoardService{
		createFn: func(ctx context.Context, ident *models.Identity, req *services.CreateBoardRequest) (string, error) {
			return "", fmt.Errorf("create board: %w", domain.ErrUnauthorized)
		},
	}
	rec := doRequest(newTestMux(svc), http.MethodPost, "/api/boards", `{"org_id":"o","title":"t"}`, nil)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
}

func TestCreateBoardBadJSON(t *testing.T) {
	svc := &stubBoardService{}
	rec := doRequest(newTestMux(svc), http.MethodPost, "/api/boards", `{not json`, &models.Identity{SubjectID: "u1"})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestGetBoard(t *testing.T) {
	svc := &stubBoardService{
		getFn: func(ctx context.Context, id string) (*models.Board, error) {
			if id != boardID {
				t.Errorf("id = %q, want %q", id, boardID)
			}
			return &models.Board{ID: id, Title: "Roadmap"}, nil
		},
	}
	rec := doRequest(newTestMux(svc), http.MethodGet, "/api/boards/"+boardID, "", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var board models.Board
	if err := json.Unmarshal(rec.Body.Bytes(), &board); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if board.Title != "Roadmap" {
		t.Errorf("Title = %q, want Roadmap", board.Title)
	}
}

func TestGetBoardInvalidID(t *testing.T) {
	svc := &stubBoardService{
		getFn: func(ctx context.Context, id string) (*models.Board, error) {
			t.Error("service called with invalid ID")
			return nil, nil
		},
	}
	rec := doRequest(newTestMux(svc), http.MethodGet, "/api/boards/not-a-uuid", "", nil)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", fmt.Errorf("board: %w", domain.ErrNotFound), http.StatusNotFound},
		{"forbidden", fmt.Errorf("board: %w", domain.ErrForbidden), http.StatusForbidden},
		{"unauthorized", fmt.Errorf("board: %w", domain.ErrUnauthorized), http.StatusUnauthorized},
		{"validation", fmt.Errorf("%w: title is required", domain.ErrValidation), http.StatusBadRequest},
		{"conflict sentinel", fmt.Errorf("not favourited: %w", domain.ErrConflict), http.StatusConflict},
		{"conflict struct", &domain.ConflictError{Message: "board already favourited", ResourceType: "favourite", ResourceID: "fav-1"}, http.StatusConflict},
		{"unexpected", fmt.Errorf("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubBoardService{
				updateFn: func(ctx context.Context, ident *models.Identity, id string, req *services.UpdateBoardRequest) (*models.Board, error) {
					return nil, tt.err
				},
			}
			rec := doRequest(newTestMux(svc), http.MethodPatch, "/api/boards/"+boardID,
				`{"title":"x"}`, &models.Identity{SubjectID: "u1"})

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestDeleteBoard(t *testing.T) {
	svc := &stubBoardService{
		removeFn: func(ctx context.Context, ident *models.Identity, id string) error {
			return nil
		},
	}
	rec := doRequest(newTestMux(svc), http.MethodDelete, "/api/boards/"+boardID, "", &models.Identity{SubjectID: "u1"})

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}

func TestFavouriteRoutes(t *testing.T) {
	board := &models.Board{ID: boardID, Title: "Roadmap"}
	svc := &stubBoardService{
		favouriteFn: func(ctx context.Context, ident *models.Identity, id string, req *services.FavouriteBoardRequest) (*models.Board, error) {
			if req.OrgID != "org-a" {
				t.Errorf("OrgID = %q, want org-a", req.OrgID)
			}
			return board, nil
		},
		unfavouriteFn: func(ctx context.Context, ident *models.Identity, id string) (*models.Board, error) {
			return board, nil
		},
	}
	mux := newTestMux(svc)
	ident := &models.Identity{SubjectID: "u1"}

	rec := doRequest(mux, http.MethodPost, "/api/boards/"+boardID+"/favourite", `{"org_id":"org-a"}`, ident)
	if rec.Code != http.StatusOK {
		t.Errorf("favourite status = %d, want %d", rec.Code, http.StatusOK)
	}

	rec = doRequest(mux, http.MethodDelete, "/api/boards/"+boardID+"/favourite", "", ident)
	if rec.Code != http.StatusOK {
		t.Errorf("unfavourite status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestListBoards(t *testing.T) {
	svc := &stubBoardService{
		listFn: func(ctx context.Context, ident *models.Identity, opts models.BoardListOptions) ([]models.BoardSummary, error) {
			if opts.OrgID != "org-a" || opts.Search != "road" || !opts.FavouritesOnly {
				t.Errorf("opts = %+v, want org-a/road/favourites", opts)
			}
			return []models.BoardSummary{
				{Board: models.Board{ID: boardID, Title: "Roadmap"}, IsFavourite: true},
			}, nil
		},
	}
	rec := doRequest(newTestMux(svc), http.MethodGet,
		"/api/boards?org_id=org-a&search=road&favourites=true", "", &models.Identity{SubjectID: "u1"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var boards []models.BoardSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &boards); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(boards) != 1 || !boards[0].IsFavourite {
		t.Errorf("boards = %+v, want one favourited board", boards)
	}
}

package handler

import (
	"log/slog"
	"net/http"

	"boardhub/internal/domain/models"
	"boardhub/internal/domain/services"
	"boardhub/internal/httputil"
)

// BoardHandler handles board HTTP requests
type BoardHandler struct {
	boardService services.BoardService
	logger       *slog.Logger
}

// NewBoardHandler creates a new board handler
func NewBoardHandler(boardService services.BoardService, logger *slog.Logger) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
		logger:       logger,
	}
}

// CreateBoard creates a new board
// POST /api/boards
func (h *BoardHandler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	ident := httputil.GetIdentity(r)

	var req services.CreateBoardRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.boardService.Create(r.Context(), ident, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// ListBoards lists an org's boards for the caller
// GET /api/boards?org_id=...&search=...&favourites=true
func (h *BoardHandler) ListBoards(w http.ResponseWriter, r *http.Request) {
	ident := httputil.GetIdentity(r)

	opts := models.BoardListOptions{
		OrgID:          r.URL.Query().Get("org_id"),
		Search:         r.URL.Query().Get("search"),
		FavouritesOnly: r.URL.Query().Get("favourites") == "true",
	}

	boards, err := h.boardService.List(r.Context(), ident, opts)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, boards)
}

// GetBoard retrieves a board by ID
// GET /api/boards/{id}
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid board ID")
		return
	}

	board, err := h.boardService.Get(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, board)
}

// UpdateBoard renames a board
// PATCH /api/boards/{id}
func (h *BoardHandler) UpdateBoard(w http.ResponseWriter, r *http.Request) {
	ident := httputil.GetIdentity(r)

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid board ID")
		return
	}

	var req services.UpdateBoardRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	board, err := h.boardService.Update(r.Context(), ident, id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, board)
}

// DeleteBoard removes a board and its favourites
// DELETE /api/boards/{id}
func (h *BoardHandler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	ident := httputil.GetIdentity(r)

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid board ID")
		return
	}

	if err := h.boardService.Remove(r.Context(), ident, id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// FavouriteBoard flags a board for the caller
// POST /api/boards/{id}/favourite
func (h *BoardHandler) FavouriteBoard(w http.ResponseWriter, r *http.Request) {
	ident := httputil.GetIdentity(r)

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid board ID")
		return
	}

	var req services.FavouriteBoardRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	board, err := h.boardService.Favourite(r.Context(), ident, id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, board)
}

// UnfavouriteBoard removes the caller's favourite of a board
// DELETE /api/boards/{id}/favourite
func (h *BoardHandler) UnfavouriteBoard(w http.ResponseWriter, r *http.Request) {
	ident := httputil.GetIdentity(r)

	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid board ID")
		return
	}

	board, err := h.boardService.Unfavourite(r.Context(), ident, id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, board)
}

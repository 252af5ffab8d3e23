package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-team-manager/internal/usecase"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	players, err := h.playerService.ListPlayers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	if len(players) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID, err := parsePlayerID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.GetPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req createPlayerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.playerService.CreatePlayer(ctx, usecase.CreatePlayerInput{
		Name:         req.PlayerName,
		Position:     req.Position,
		JerseyNumber: req.JerseyNumber,
		GoalsScored:  req.GoalsScored,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "jersey_number", req.JerseyNumber, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Location", "/api/players/"+strconv.FormatInt(created.ID, 10))
	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(created))
}

func (h *Handler) PatchPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PatchPlayer")
	defer span.End()

	playerID, err := parsePlayerID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req patchPlayerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, changed, err := h.playerService.UpdatePlayer(ctx, playerID, usecase.PatchPlayerInput{
		Name:         req.PlayerName,
		Position:     req.Position,
		JerseyNumber: req.JerseyNumber,
		GoalsScored:  req.GoalsScored,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "patch player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !changed {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	playerID, err := parsePlayerID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	deleted, err := h.playerService.DeletePlayer(ctx, playerID)
	if err != nil {
		h.logger.ErrorContext(ctx, "delete player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !deleted {
		writeError(ctx, w, fmt.Errorf("%w: player with ID %d not found", usecase.ErrNotFound, playerID))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, messageDTO{Message: "Player deleted successfully."})
}

func parsePlayerID(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.PathValue("playerID"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: player id must be an integer, got %q", usecase.ErrInvalidInput, raw)
	}
	return id, nil
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/techub/rps/internal/api/request"
	"github.com/techub/rps/internal/api/response"
	"github.com/techub/rps/internal/model"
	"github.com/techub/rps/internal/services/game"
)

// GameHandler handles game endpoints
type GameHandler struct {
	gameService *game.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameService *game.Service) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

// Play handles POST /api/v1/game/play
func (h *GameHandler) Play(w http.ResponseWriter, r *http.Request) {
	var req request.PlayGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	rec, err := h.gameService.Play(r.Context(), req.Username, model.Hand(req.PlayerHand))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(rec))
}

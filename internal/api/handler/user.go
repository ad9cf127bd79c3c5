package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/techub/rps/internal/api/request"
	"github.com/techub/rps/internal/api/response"
	"github.com/techub/rps/internal/services/registration"
	"github.com/techub/rps/internal/services/stats"
)

// UserHandler handles user registration and statistics endpoints
type UserHandler struct {
	registrationService *registration.Service
	statsService        *stats.Service
}

// NewUserHandler creates a new user handler
func NewUserHandler(registrationService *registration.Service, statsService *stats.Service) *UserHandler {
	return &UserHandler{
		registrationService: registrationService,
		statsService:        statsService,
	}
}

// Register handles POST /api/v1/users/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	user, err := h.registrationService.Register(r.Context(), req.Username)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.UserFromModel(user))
}

// Statistics handles GET /api/v1/users/{username}/statistics
func (h *UserHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	st, err := h.statsService.Get(r.Context(), username)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UserStatisticsFromModel(st))
}

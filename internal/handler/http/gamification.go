package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/echal/gembira-sub001/internal/domain/gamification"
	"github.com/echal/gembira-sub001/internal/handler/http/response"
)

type GamificationHandler interface {
	Leaderboard(w http.ResponseWriter, r *http.Request)
	GetMyXp(w http.ResponseWriter, r *http.Request)
	GetEmployeeXp(w http.ResponseWriter, r *http.Request)
	LevelDistribution(w http.ResponseWriter, r *http.Request)
	Overview(w http.ResponseWriter, r *http.Request)
}

type gamificationHandlerImpl struct {
	gamificationService gamification.GamificationService
}

func NewGamificationHandler(gamificationService gamification.GamificationService) GamificationHandler {
	return &gamificationHandlerImpl{
		gamificationService: gamificationService,
	}
}

// Leaderboard implements GamificationHandler.
func (h *gamificationHandlerImpl) Leaderboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.gamificationService.GetMonthlyLeaderboard(r.Context(), r.URL.Query().Get("period"), queryInt(r, "limit"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyXp implements GamificationHandler.
func (h *gamificationHandlerImpl) GetMyXp(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := claimedEmployeeID(r)
	if !ok {
		response.Unauthorized(w, "employee_id claim is missing or invalid")
		return
	}

	result, err := h.gamificationService.GetCumulativeXp(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployeeXp implements GamificationHandler.
func (h *gamificationHandlerImpl) GetEmployeeXp(w http.ResponseWriter, r *http.Request) {
	result, err := h.gamificationService.GetCumulativeXp(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// LevelDistribution implements GamificationHandler.
func (h *gamificationHandlerImpl) LevelDistribution(w http.ResponseWriter, r *http.Request) {
	result, err := h.gamificationService.GetLevelDistribution(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Overview implements GamificationHandler.
func (h *gamificationHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	result, err := h.gamificationService.GetOverview(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

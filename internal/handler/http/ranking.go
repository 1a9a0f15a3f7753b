package http

import (
	"net/http"

	"github.com/echal/gembira-sub001/internal/domain/ranking"
	"github.com/echal/gembira-sub001/internal/handler/http/response"
)

type RankingHandler interface {
	Daily(w http.ResponseWriter, r *http.Request)
	Monthly(w http.ResponseWriter, r *http.Request)
	Units(w http.ResponseWriter, r *http.Request)
}

type rankingHandlerImpl struct {
	rankingService ranking.RankingService
}

func NewRankingHandler(rankingService ranking.RankingService) RankingHandler {
	return &rankingHandlerImpl{
		rankingService: rankingService,
	}
}

// Daily implements RankingHandler.
func (h *rankingHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	result, err := h.rankingService.GetDailyRanking(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Monthly implements RankingHandler.
func (h *rankingHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	result, err := h.rankingService.GetMonthlyRanking(r.Context(), r.URL.Query().Get("period"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Units implements RankingHandler.
func (h *rankingHandlerImpl) Units(w http.ResponseWriter, r *http.Request) {
	result, err := h.rankingService.GetUnitRanking(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

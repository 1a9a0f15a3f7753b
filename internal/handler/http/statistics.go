package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/echal/gembira-sub001/internal/domain/statistics"
	"github.com/echal/gembira-sub001/internal/handler/http/response"
)

type StatisticsHandler interface {
	GetPercentage(w http.ResponseWriter, r *http.Request)
	GetMyPercentage(w http.ResponseWriter, r *http.Request)
	GetOverview(w http.ResponseWriter, r *http.Request)
	GetMyOverview(w http.ResponseWriter, r *http.Request)
}

type statisticsHandlerImpl struct {
	statisticsService statistics.StatisticsService
}

func NewStatisticsHandler(statisticsService statistics.StatisticsService) StatisticsHandler {
	return &statisticsHandlerImpl{
		statisticsService: statisticsService,
	}
}

func claimedEmployeeID(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	employeeID, ok := claims["employee_id"].(string)
	return employeeID, ok && employeeID != ""
}

func (h *statisticsHandlerImpl) percentage(w http.ResponseWriter, r *http.Request, employeeID string) {
	year := queryInt(r, "year")
	month := queryInt(r, "month")

	var result statistics.PercentageResult
	var err error
	if r.URL.Query().Get("simple") == "true" {
		result, err = h.statisticsService.GetAttendancePercentageSimple(r.Context(), employeeID, year, month)
	} else {
		result, err = h.statisticsService.GetAttendancePercentage(r.Context(), employeeID, year, month)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetPercentage implements StatisticsHandler.
func (h *statisticsHandlerImpl) GetPercentage(w http.ResponseWriter, r *http.Request) {
	h.percentage(w, r, chi.URLParam(r, "employeeID"))
}

// GetMyPercentage implements StatisticsHandler.
func (h *statisticsHandlerImpl) GetMyPercentage(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := claimedEmployeeID(r)
	if !ok {
		response.Unauthorized(w, "employee_id claim is missing or invalid")
		return
	}
	h.percentage(w, r, employeeID)
}

func (h *statisticsHandlerImpl) overview(w http.ResponseWriter, r *http.Request, employeeID string) {
	result, err := h.statisticsService.GetMonthlyOverview(r.Context(), employeeID, r.URL.Query().Get("period"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetOverview implements StatisticsHandler.
func (h *statisticsHandlerImpl) GetOverview(w http.ResponseWriter, r *http.Request) {
	h.overview(w, r, chi.URLParam(r, "employeeID"))
}

// GetMyOverview implements StatisticsHandler.
func (h *statisticsHandlerImpl) GetMyOverview(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := claimedEmployeeID(r)
	if !ok {
		response.Unauthorized(w, "employee_id claim is missing or invalid")
		return
	}
	h.overview(w, r, employeeID)
}

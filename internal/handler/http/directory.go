package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/echal/gembira-sub001/internal/handler/http/response"
	"github.com/echal/gembira-sub001/internal/service/directory"
)

type DirectoryHandler interface {
	GetEmployee(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
	ListUnits(w http.ResponseWriter, r *http.Request)
}

type directoryHandlerImpl struct {
	directoryService directory.DirectoryService
}

func NewDirectoryHandler(directoryService directory.DirectoryService) DirectoryHandler {
	return &directoryHandlerImpl{
		directoryService: directoryService,
	}
}

// GetEmployee implements DirectoryHandler.
func (h *directoryHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	result, err := h.directoryService.GetEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListEmployees implements DirectoryHandler.
func (h *directoryHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	result, err := h.directoryService.ListEmployees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListUnits implements DirectoryHandler.
func (h *directoryHandlerImpl) ListUnits(w http.ResponseWriter, r *http.Request) {
	result, err := h.directoryService.ListUnits(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

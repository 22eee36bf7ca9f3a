package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/petroshift/station-backend/internal/dto"
	"github.com/petroshift/station-backend/internal/models"
	"github.com/petroshift/station-backend/internal/response"
)

type ReadingsService interface {
	Today(ctx context.Context, attendantName string) (models.DailyReadings, error)
	SetField(ctx context.Context, attendantName, field, value string) error
	Reconciliation(ctx context.Context, attendantName string) (dto.Reconciliation, error)
}

type readingsHandlers struct {
	ResponseHandler response.ResponseHandler
	ReadingsSvc     ReadingsService
}

func NewReadingsHandlers(deps *Deps) *readingsHandlers {
	return &readingsHandlers{
		ResponseHandler: deps.ResponseHandler,
		ReadingsSvc:     deps.ReadingsSvc,
	}
}

func (h *readingsHandlers) ReadingsRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{attendantName}", h.GetTodayReadings)
	r.Get("/{attendantName}/reconciliation", h.GetReconciliation)
	r.Put("/{attendantName}/{field}", h.UpdateReadingField)
	return r
}

func (h *readingsHandlers) GetTodayReadings(w http.ResponseWriter, r *http.Request) {
	attendantName := chi.URLParam(r, "attendantName")
	readings, err := h.ReadingsSvc.Today(r.Context(), attendantName)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, readings)
}

func (h *readingsHandlers) UpdateReadingField(w http.ResponseWriter, r *http.Request) {
	attendantName := chi.URLParam(r, "attendantName")
	field := chi.URLParam(r, "field")

	var req dto.ReadingUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	if err := h.ReadingsSvc.SetField(r.Context(), attendantName, field, req.Value); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *readingsHandlers) GetReconciliation(w http.ResponseWriter, r *http.Request) {
	attendantName := chi.URLParam(r, "attendantName")
	rec, err := h.ReadingsSvc.Reconciliation(r.Context(), attendantName)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, rec)
}

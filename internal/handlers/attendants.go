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

type AttendantService interface {
	List(ctx context.Context) ([]models.Attendant, error)
	Add(ctx context.Context, name string) (*models.Attendant, error)
	Delete(ctx context.Context, id string) error
}

type attendantHandlers struct {
	ResponseHandler response.ResponseHandler
	AttendantSvc    AttendantService
}

func NewAttendantHandlers(deps *Deps) *attendantHandlers {
	return &attendantHandlers{
		ResponseHandler: deps.ResponseHandler,
		AttendantSvc:    deps.AttendantSvc,
	}
}

func (h *attendantHandlers) AttendantRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListAttendants)
	r.Post("/", h.AddAttendant)
	r.Delete("/{attendantID}", h.DeleteAttendant)
	return r
}

func (h *attendantHandlers) ListAttendants(w http.ResponseWriter, r *http.Request) {
	attendants, err := h.AttendantSvc.List(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, attendants)
}

func (h *attendantHandlers) AddAttendant(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAttendantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	attendant, err := h.AttendantSvc.Add(r.Context(), req.Name)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, attendant)
}

func (h *attendantHandlers) DeleteAttendant(w http.ResponseWriter, r *http.Request) {
	attendantID := chi.URLParam(r, "attendantID")
	if err := h.AttendantSvc.Delete(r.Context(), attendantID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

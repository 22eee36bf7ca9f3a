package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/petroshift/station-backend/internal/dto"
	"github.com/petroshift/station-backend/internal/response"
)

type ShiftService interface {
	EndShift(ctx context.Context) (dto.ShiftResult, error)
	Reset(ctx context.Context) (dto.ShiftResult, error)
}

type shiftHandlers struct {
	ResponseHandler response.ResponseHandler
	ShiftSvc        ShiftService
	Passcode        func(http.Handler) http.Handler
}

func NewShiftHandlers(deps *Deps) *shiftHandlers {
	return &shiftHandlers{
		ResponseHandler: deps.ResponseHandler,
		ShiftSvc:        deps.ShiftSvc,
		Passcode:        deps.Passcode,
	}
}

// ShiftRoutes are all destructive and sit behind the passcode guard.
func (h *shiftHandlers) ShiftRoutes() chi.Router {
	r := chi.NewRouter()
	r.Use(h.Passcode)
	r.Post("/end", h.EndShift)
	r.Post("/reset", h.Reset)
	return r
}

func (h *shiftHandlers) EndShift(w http.ResponseWriter, r *http.Request) {
	result, err := h.ShiftSvc.EndShift(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

func (h *shiftHandlers) Reset(w http.ResponseWriter, r *http.Request) {
	result, err := h.ShiftSvc.Reset(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

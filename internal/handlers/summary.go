package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/petroshift/station-backend/internal/dto"
	"github.com/petroshift/station-backend/internal/response"
)

type SummaryService interface {
	Summary(ctx context.Context) (dto.SummaryResponse, error)
}

type summaryHandlers struct {
	ResponseHandler response.ResponseHandler
	SummarySvc      SummaryService
}

func NewSummaryHandlers(deps *Deps) *summaryHandlers {
	return &summaryHandlers{
		ResponseHandler: deps.ResponseHandler,
		SummarySvc:      deps.SummarySvc,
	}
}

func (h *summaryHandlers) SummaryRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetSummary)
	return r
}

func (h *summaryHandlers) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.SummarySvc.Summary(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, summary)
}

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

type SettingsService interface {
	GetOrCreate(ctx context.Context) (models.Settings, error)
	Update(ctx context.Context, req dto.UpdateSettingsRequest) (models.Settings, error)
}

type settingsHandlers struct {
	ResponseHandler response.ResponseHandler
	SettingsSvc     SettingsService
}

func NewSettingsHandlers(deps *Deps) *settingsHandlers {
	return &settingsHandlers{
		ResponseHandler: deps.ResponseHandler,
		SettingsSvc:     deps.SettingsSvc,
	}
}

func (h *settingsHandlers) SettingsRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetSettings)
	r.Put("/", h.UpdateSettings)
	return r
}

// GetSettings reads the settings, creating the defaults on first read.
func (h *settingsHandlers) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.SettingsSvc.GetOrCreate(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, settings)
}

func (h *settingsHandlers) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	settings, err := h.SettingsSvc.Update(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, settings)
}

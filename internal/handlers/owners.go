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

type OwnerService interface {
	List(ctx context.Context) ([]models.Owner, error)
	Add(ctx context.Context, req dto.CreateOwnerRequest) (*models.Owner, error)
	Update(ctx context.Context, id string, req dto.UpdateOwnerRequest) (*models.Owner, error)
	Delete(ctx context.Context, id string) error
	RegisterVehicle(ctx context.Context, ownerID string, req dto.RegisterVehicleRequest) (*models.Owner, error)
	RemoveVehicle(ctx context.Context, ownerID, number string) (*models.Owner, error)
	Resolve(ctx context.Context, vehicleNumber string) (dto.OwnerResolution, error)
}

type ownerHandlers struct {
	ResponseHandler response.ResponseHandler
	OwnerSvc        OwnerService
}

func NewOwnerHandlers(deps *Deps) *ownerHandlers {
	return &ownerHandlers{
		ResponseHandler: deps.ResponseHandler,
		OwnerSvc:        deps.OwnerSvc,
	}
}

func (h *ownerHandlers) OwnerRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListOwners)
	r.Post("/", h.AddOwner)
	r.Get("/resolve", h.ResolveVehicle) // must be before /{ownerID}
	r.Put("/{ownerID}", h.UpdateOwner)
	r.Delete("/{ownerID}", h.DeleteOwner)
	r.Post("/{ownerID}/vehicles", h.RegisterVehicle)
	r.Delete("/{ownerID}/vehicles/{number}", h.RemoveVehicle)
	return r
}

func (h *ownerHandlers) ListOwners(w http.ResponseWriter, r *http.Request) {
	owners, err := h.OwnerSvc.List(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, owners)
}

func (h *ownerHandlers) AddOwner(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOwnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	owner, err := h.OwnerSvc.Add(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, owner)
}

func (h *ownerHandlers) UpdateOwner(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, "ownerID")
	var req dto.UpdateOwnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	owner, err := h.OwnerSvc.Update(r.Context(), ownerID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, owner)
}

func (h *ownerHandlers) DeleteOwner(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, "ownerID")
	if err := h.OwnerSvc.Delete(r.Context(), ownerID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *ownerHandlers) RegisterVehicle(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, "ownerID")
	var req dto.RegisterVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	owner, err := h.OwnerSvc.RegisterVehicle(r.Context(), ownerID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, owner)
}

func (h *ownerHandlers) RemoveVehicle(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, "ownerID")
	number := chi.URLParam(r, "number")
	owner, err := h.OwnerSvc.RemoveVehicle(r.Context(), ownerID, number)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, owner)
}

// ResolveVehicle answers the entry flow's live owner lookup.
func (h *ownerHandlers) ResolveVehicle(w http.ResponseWriter, r *http.Request) {
	resolution, err := h.OwnerSvc.Resolve(r.Context(), r.URL.Query().Get("vehicleNumber"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resolution)
}

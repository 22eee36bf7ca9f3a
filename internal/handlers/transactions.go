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

type TransactionService interface {
	Query(ctx context.Context, criteria dto.FilterCriteria) ([]models.Transaction, error)
	RecordSale(ctx context.Context, req dto.CreateSaleRequest) (*models.Transaction, error)
	UpdateSale(ctx context.Context, id string, req dto.CreateSaleRequest) (*models.Transaction, error)
	RecordDeposit(ctx context.Context, req dto.DepositRequest) (*models.Transaction, error)
}

type transactionHandlers struct {
	ResponseHandler response.ResponseHandler
	TransactionSvc  TransactionService
}

func NewTransactionHandlers(deps *Deps) *transactionHandlers {
	return &transactionHandlers{
		ResponseHandler: deps.ResponseHandler,
		TransactionSvc:  deps.TransactionSvc,
	}
}

func (h *transactionHandlers) TransactionRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListTransactions)
	r.Post("/", h.RecordSale)
	r.Put("/{transactionID}", h.UpdateSale)
	return r
}

func (h *transactionHandlers) DepositRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.RecordDeposit)
	return r
}

// ListTransactions returns the ledger newest-first, narrowed by the query
// filters. Repeated user and paymentMode params are combined as a set.
func (h *transactionHandlers) ListTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	criteria := dto.FilterCriteria{
		Users:      q["user"],
		FuelType:   q.Get("fuelType"),
		SearchText: q.Get("search"),
	}
	for _, mode := range q["paymentMode"] {
		criteria.PaymentModes = append(criteria.PaymentModes, models.PaymentMode(mode))
	}

	txs, err := h.TransactionSvc.Query(r.Context(), criteria)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, txs)
}

func (h *transactionHandlers) RecordSale(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	tx, err := h.TransactionSvc.RecordSale(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, tx)
}

func (h *transactionHandlers) UpdateSale(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transactionID")
	var req dto.CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	tx, err := h.TransactionSvc.UpdateSale(r.Context(), transactionID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, tx)
}

func (h *transactionHandlers) RecordDeposit(w http.ResponseWriter, r *http.Request) {
	var req dto.DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	tx, err := h.TransactionSvc.RecordDeposit(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, tx)
}

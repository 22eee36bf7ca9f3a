package services

import (
	"strings"

	"github.com/petroshift/station-backend/internal/dto"
	"github.com/petroshift/station-backend/internal/models"
)

// Filter narrows a transaction snapshot by the given criteria, preserving
// the snapshot's relative order (the store delivers newest-first and nothing
// downstream may re-sort).
//
// A fuel-type criterion other than "all", or any payment-mode criterion,
// restricts on Sale-only attributes: Deposit records are then excluded
// outright even when they match the user or search criteria. Deposits have
// no fuel type or payment mode to filter on, so a narrowed view is a
// sales-only view.
func Filter(txs []models.Transaction, c dto.FilterCriteria) []models.Transaction {
	salesOnly := (c.FuelType != "" && c.FuelType != dto.FuelTypeAll) || len(c.PaymentModes) > 0
	search := strings.ToLower(c.SearchText)

	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if salesOnly && tx.Type != models.TransactionSale {
			continue
		}
		if len(c.Users) > 0 && !matchUser(c.Users, tx.UserName) {
			continue
		}
		if c.FuelType != "" && c.FuelType != dto.FuelTypeAll && string(tx.FuelType) != c.FuelType {
			continue
		}
		if len(c.PaymentModes) > 0 && !matchMode(c.PaymentModes, tx.PaymentMode) {
			continue
		}
		if search != "" && !matchSearch(&tx, search) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

func matchUser(users []string, name string) bool {
	if name == "" {
		return false
	}
	for _, u := range users {
		if u == name {
			return true
		}
	}
	return false
}

func matchMode(modes []models.PaymentMode, mode models.PaymentMode) bool {
	if mode == "" {
		return false
	}
	for _, m := range modes {
		if m == mode {
			return true
		}
	}
	return false
}

func matchSearch(tx *models.Transaction, search string) bool {
	return strings.Contains(strings.ToLower(tx.VehicleNumber), search) ||
		strings.Contains(strings.ToLower(tx.VehicleOwner), search)
}

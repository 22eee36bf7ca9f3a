package dto

import "github.com/petroshift/station-backend/internal/models"

// FuelTypeAll disables fuel-type narrowing.
const FuelTypeAll = "all"

// FilterCriteria narrows a transaction snapshot. Empty slices and strings
// mean "no restriction"; Users and PaymentModes are OR-matched. A FuelType
// other than "all" or a non-empty PaymentModes list restricts on Sale-only
// attributes and therefore excludes Deposit records outright.
type FilterCriteria struct {
	Users        []string             `json:"users"`
	FuelType     string               `json:"fuelType"`
	PaymentModes []models.PaymentMode `json:"paymentModes"`
	SearchText   string               `json:"searchText"`
}

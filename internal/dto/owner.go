package dto

import "github.com/petroshift/station-backend/internal/models"

type CreateOwnerRequest struct {
	Name string `json:"name"`
}

type UpdateOwnerRequest struct {
	Name     string           `json:"name"`
	Vehicles []models.Vehicle `json:"vehicles"`
}

type RegisterVehicleRequest struct {
	Number string `json:"number"`
	Type   string `json:"type"`
}

// OwnerResolution is the outcome of looking a vehicle number up in the
// owner registry. Exactly one of three shapes comes back: a match
// (OwnerName + VehicleType), the Unknown state (OwnerName "Unknown"), or
// the gallon sentinel (RequiresOwnerSelection true, everything else empty).
type OwnerResolution struct {
	OwnerName              string             `json:"ownerName,omitempty"`
	VehicleType            models.VehicleType `json:"vehicleType,omitempty"`
	RequiresOwnerSelection bool               `json:"requiresOwnerSelection,omitempty"`
}

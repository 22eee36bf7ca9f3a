package services

import (
	"strings"

	"github.com/petroshift/station-backend/internal/dto"
	"github.com/petroshift/station-backend/internal/models"
)

const (
	// GallonNumber is the sentinel vehicle number for bulk partner sales
	// not tied to a registered vehicle. It is stored literally on the
	// transaction.
	GallonNumber = "GALLON"

	// UnknownOwner marks a vehicle number with no registry match. This is a
	// valid, persistable state, not an error.
	UnknownOwner = "Unknown"
)

// ResolveOwner looks a vehicle number up across every owner's vehicle list.
// Matching is exact after trimming, case-insensitive. The first match in
// registry order wins: per-owner uniqueness is enforced at registration but
// cross-owner duplicates are not, so the first registrant takes the
// attribution.
//
// The gallon sentinel (any casing of "GALLON") bypasses the lookup entirely
// and asks the caller to pick a partner explicitly.
func ResolveOwner(vehicleNumber string, owners []models.Owner) dto.OwnerResolution {
	needle := strings.TrimSpace(vehicleNumber)
	if strings.EqualFold(needle, GallonNumber) {
		return dto.OwnerResolution{RequiresOwnerSelection: true}
	}

	needle = strings.ToLower(needle)
	for _, owner := range owners {
		for _, v := range owner.Vehicles {
			if strings.ToLower(v.Number) == needle {
				return dto.OwnerResolution{OwnerName: owner.Name, VehicleType: v.Type}
			}
		}
	}

	return dto.OwnerResolution{OwnerName: UnknownOwner}
}

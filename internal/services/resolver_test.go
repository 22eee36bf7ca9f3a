package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/petroshift/station-backend/internal/dto"
	"github.com/petroshift/station-backend/internal/models"
)

func resolverOwners() []models.Owner {
	return []models.Owner{
		{ID: "o1", Name: "Rohan Sharma", Vehicles: []models.Vehicle{{Number: "MH12AB1234", Type: models.VehicleCar}}},
		{ID: "o2", Name: "Priya Verma", Vehicles: []models.Vehicle{{Number: "DL01CD5678", Type: models.VehicleBike}}},
		{ID: "o3", Name: "Suresh Kumar", Vehicles: []models.Vehicle{{Number: "MH12AB1234", Type: models.VehicleTruck}}},
	}
}

func TestResolveOwnerExactMatch(t *testing.T) {
	got := ResolveOwner("DL01CD5678", resolverOwners())
	assert.Equal(t, dto.OwnerResolution{OwnerName: "Priya Verma", VehicleType: models.VehicleBike}, got)
}

func TestResolveOwnerTrimsAndIgnoresCase(t *testing.T) {
	got := ResolveOwner("  mh12ab1234 ", resolverOwners())
	assert.Equal(t, "Rohan Sharma", got.OwnerName)
	assert.Equal(t, models.VehicleCar, got.VehicleType)
}

func TestResolveOwnerFirstRegistrantWins(t *testing.T) {
	// o1 and o3 both hold MH12AB1234; registry order decides.
	got := ResolveOwner("MH12AB1234", resolverOwners())
	assert.Equal(t, "Rohan Sharma", got.OwnerName)
}

func TestResolveOwnerGallonSentinel(t *testing.T) {
	for _, raw := range []string{"GALLON", "gallon", " Gallon "} {
		got := ResolveOwner(raw, resolverOwners())
		assert.True(t, got.RequiresOwnerSelection, raw)
		assert.Empty(t, got.OwnerName, raw)
	}
}

func TestResolveOwnerNoMatch(t *testing.T) {
	got := ResolveOwner("KA99ZZ0000", resolverOwners())
	assert.Equal(t, UnknownOwner, got.OwnerName)
	assert.False(t, got.RequiresOwnerSelection)
}

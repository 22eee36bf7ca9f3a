package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petroshift/station-backend/internal/dto"
	"github.com/petroshift/station-backend/internal/models"
	"github.com/petroshift/station-backend/pkg/helpers"
)

func TestSettingsGetOrCreateSeedsDefaults(t *testing.T) {
	store := &fakeSettingsStore{}
	svc := NewSettingsService(store)

	settings, err := svc.GetOrCreate(helpers.TestCtx())
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings, settings)
	assert.Equal(t, 1, store.setCount, "defaults are written on first read")

	// Second read hits the stored document, no extra write.
	settings, err = svc.GetOrCreate(helpers.TestCtx())
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings, settings)
	assert.Equal(t, 1, store.setCount)
}

func TestSettingsGetOrCreateKeepsExisting(t *testing.T) {
	existing := models.Settings{PetrolRate: 111, DieselRate: 99, AdvanceCash: 7000}
	store := &fakeSettingsStore{settings: &existing}
	svc := NewSettingsService(store)

	settings, err := svc.GetOrCreate(helpers.TestCtx())
	require.NoError(t, err)
	assert.Equal(t, existing, settings)
	assert.Equal(t, 0, store.setCount)
}

func TestSettingsUpdateParsesLeniently(t *testing.T) {
	store := &fakeSettingsStore{}
	svc := NewSettingsService(store)

	settings, err := svc.Update(helpers.TestCtx(), dto.UpdateSettingsRequest{
		PetrolRate:  " 105.5 ",
		DieselRate:  "not a number",
		AdvanceCash: "6000",
	})
	require.NoError(t, err)
	assert.Equal(t, models.Settings{PetrolRate: 105.5, DieselRate: 0, AdvanceCash: 6000}, settings)
	require.NotNil(t, store.settings)
	assert.Equal(t, settings, *store.settings)
}

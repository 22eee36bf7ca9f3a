package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petroshift/station-backend/internal/errs"
	"github.com/petroshift/station-backend/internal/models"
	"github.com/petroshift/station-backend/pkg/helpers"
)

func TestAttendantAddGeneratesAvatar(t *testing.T) {
	store := &fakeAttendantStore{}
	svc := NewAttendantService(store)

	attendant, err := svc.Add(helpers.TestCtx(), "  Ravi  ")
	require.NoError(t, err)
	assert.NotEmpty(t, attendant.ID)
	assert.Equal(t, "Ravi", attendant.Name)
	assert.Equal(t, "https://picsum.photos/seed/ravi/100/100", attendant.AvatarURL)
}

func TestAttendantAddRequiresName(t *testing.T) {
	svc := NewAttendantService(&fakeAttendantStore{})
	_, err := svc.Add(helpers.TestCtx(), "   ")
	var ve *errs.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestAttendantDelete(t *testing.T) {
	store := &fakeAttendantStore{attendants: []models.Attendant{{ID: "a1", Name: "Ankit"}}}
	svc := NewAttendantService(store)

	require.NoError(t, svc.Delete(helpers.TestCtx(), "a1"))
	assert.Empty(t, store.attendants)
}

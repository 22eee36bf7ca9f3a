package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petroshift/station-backend/internal/errs"
	"github.com/petroshift/station-backend/internal/models"
	"github.com/petroshift/station-backend/pkg/helpers"
)

func newShiftFixture() (*shiftService, *fakeTransactionStore, *fakeReadingsStore, *fakeOwnerStore, *fakeAttendantStore, *fakeSeeder) {
	txs := &fakeTransactionStore{txs: []models.Transaction{{ID: "tx-1", Type: models.TransactionSale}}}
	readings := newFakeReadingsStore()
	owners := &fakeOwnerStore{owners: []models.Owner{{ID: "o1", Name: "Rohan Sharma"}}}
	attendants := &fakeAttendantStore{attendants: []models.Attendant{
		{ID: "a1", Name: "Ankit"},
		{ID: "a2", Name: "Ashmit"},
	}}
	seed := &fakeSeeder{}
	return NewShiftService(txs, readings, owners, attendants, seed), txs, readings, owners, attendants, seed
}

func TestEndShiftClearsLedgerThenReadings(t *testing.T) {
	svc, txs, readings, owners, attendants, _ := newShiftFixture()

	result, err := svc.EndShift(helpers.TestCtx())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"clear transactions",
		"clear readings for Ankit",
		"clear readings for Ashmit",
	}, result.Completed)
	assert.Empty(t, txs.txs)
	assert.Equal(t, []string{"Ankit", "Ashmit"}, readings.cleared)

	// Registries survive a shift end.
	assert.Len(t, owners.owners, 1)
	assert.Len(t, attendants.attendants, 2)
}

func TestEndShiftReportsFailingStep(t *testing.T) {
	svc, txs, readings, _, _, _ := newShiftFixture()
	readings.clearErrFor = "Ashmit"
	readings.clearErr = errors.New("firestore unavailable")

	result, err := svc.EndShift(helpers.TestCtx())

	var se *errs.StepError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "clear readings for Ashmit", se.Step)

	// Earlier steps are not rolled back.
	assert.Empty(t, txs.txs)
	assert.Equal(t, []string{"clear transactions", "clear readings for Ankit"}, result.Completed)
}

func TestResetClearsRegistriesAndReseeds(t *testing.T) {
	svc, _, _, owners, attendants, seed := newShiftFixture()

	result, err := svc.Reset(helpers.TestCtx())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"clear transactions",
		"clear readings for Ankit",
		"clear readings for Ashmit",
		"clear owners",
		"clear attendants",
		"seed defaults",
	}, result.Completed)
	assert.Empty(t, owners.owners)
	assert.Empty(t, attendants.attendants)
	assert.True(t, seed.seeded)
}

func TestResetStopsAtFailedSeed(t *testing.T) {
	svc, _, _, _, _, seed := newShiftFixture()
	seed.err = errors.New("firestore unavailable")

	result, err := svc.Reset(helpers.TestCtx())

	var se *errs.StepError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "seed defaults", se.Step)
	assert.Contains(t, result.Completed, "clear attendants")
}

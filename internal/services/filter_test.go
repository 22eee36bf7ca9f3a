package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/petroshift/station-backend/internal/dto"
	"github.com/petroshift/station-backend/internal/models"
)

func filterFixture() []models.Transaction {
	return []models.Transaction{
		{ID: "1", Type: models.TransactionSale, UserName: "Ankit", FuelType: models.FuelPetrol, PaymentMode: models.PaymentCash},
		{ID: "2", Type: models.TransactionDeposit, UserName: "Ankit", FuelAmount: 500},
		{ID: "3", Type: models.TransactionSale, UserName: "Ashmit", FuelType: models.FuelDiesel, PaymentMode: models.PaymentBill,
			VehicleNumber: "MH12AB1234", VehicleOwner: "Rohan Sharma"},
		{ID: "4", Type: models.TransactionSale, UserName: "Ankit", FuelType: models.FuelPetrol, PaymentMode: models.PaymentPaytm},
	}
}

func ids(txs []models.Transaction) []string {
	out := make([]string, len(txs))
	for i, tx := range txs {
		out[i] = tx.ID
	}
	return out
}

func TestFilterEmptyCriteriaIsIdentity(t *testing.T) {
	txs := filterFixture()
	assert.Equal(t, ids(txs), ids(Filter(txs, dto.FilterCriteria{})))
	assert.Equal(t, ids(txs), ids(Filter(txs, dto.FilterCriteria{FuelType: dto.FuelTypeAll})))
}

func TestFilterByUserKeepsDeposits(t *testing.T) {
	got := Filter(filterFixture(), dto.FilterCriteria{Users: []string{"Ankit"}})
	assert.Equal(t, []string{"1", "2", "4"}, ids(got), "a user filter alone keeps that user's deposits")
}

func TestFilterFuelTypeExcludesDeposits(t *testing.T) {
	got := Filter(filterFixture(), dto.FilterCriteria{Users: []string{"Ankit"}, FuelType: "petrol"})
	assert.Equal(t, []string{"1", "4"}, ids(got), "a fuel filter drops deposits even when the user matches")
}

func TestFilterPaymentModeExcludesDeposits(t *testing.T) {
	got := Filter(filterFixture(), dto.FilterCriteria{PaymentModes: []models.PaymentMode{models.PaymentCash, models.PaymentPaytm}})
	assert.Equal(t, []string{"1", "4"}, ids(got))
}

func TestFilterSearchMatchesVehicleAndOwner(t *testing.T) {
	txs := filterFixture()

	byNumber := Filter(txs, dto.FilterCriteria{SearchText: "mh12"})
	assert.Equal(t, []string{"3"}, ids(byNumber), "vehicle number match, case-insensitive")

	byOwner := Filter(txs, dto.FilterCriteria{SearchText: "ROHAN"})
	assert.Equal(t, []string{"3"}, ids(byOwner), "owner name match, case-insensitive")

	none := Filter(txs, dto.FilterCriteria{SearchText: "zzz"})
	assert.Empty(t, ids(none))
}

func TestFilterSearchAloneDropsDeposits(t *testing.T) {
	// A deposit has no vehicle fields, so any non-empty search excludes it
	// even without a sales-only criterion.
	got := Filter(filterFixture(), dto.FilterCriteria{SearchText: "a"})
	for _, tx := range got {
		assert.Equal(t, models.TransactionSale, tx.Type)
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	got := Filter(filterFixture(), dto.FilterCriteria{FuelType: dto.FuelTypeAll, Users: []string{"Ankit", "Ashmit"}})
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(got))
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petroshift/station-backend/internal/models"
)

func entrySettings() models.Settings {
	return models.Settings{PetrolRate: 100, DieselRate: 90, AdvanceCash: 5000}
}

func TestEntryFormAmountDerivesVolume(t *testing.T) {
	form := NewEntryForm(entrySettings(), nil)
	require.NoError(t, form.SelectFuel("petrol"))
	require.NoError(t, form.SelectForm("amount"))
	require.NoError(t, form.EnterValue("500"))
	require.NoError(t, form.SelectPayment("cash"))
	require.NoError(t, form.EnterAmountPaid("600"))

	tx, err := form.Build()
	require.NoError(t, err)

	assert.Equal(t, models.TransactionSale, tx.Type)
	assert.Equal(t, models.FuelPetrol, tx.FuelType)
	assert.Equal(t, 500.0, tx.FuelAmount)
	assert.Equal(t, 5.0, tx.FuelVolume)
	assert.Equal(t, 600.0, tx.AmountPaid)
	require.NotNil(t, tx.ChangeReturned)
	assert.Equal(t, 100.0, *tx.ChangeReturned)
}

func TestEntryFormVolumeDerivesAmount(t *testing.T) {
	form := NewEntryForm(entrySettings(), nil)
	require.NoError(t, form.SelectFuel("diesel"))
	require.NoError(t, form.SelectForm("volume"))
	require.NoError(t, form.EnterValue("10"))
	require.NoError(t, form.SelectPayment("paytm"))
	require.NoError(t, form.EnterAmountPaid("900"))

	tx, err := form.Build()
	require.NoError(t, err)

	assert.Equal(t, 900.0, tx.FuelAmount)
	assert.Equal(t, 10.0, tx.FuelVolume)
	require.NotNil(t, tx.ChangeReturned)
	assert.Equal(t, 0.0, *tx.ChangeReturned)
}

func TestEntryFormNegativeChangeMeansDue(t *testing.T) {
	form := NewEntryForm(entrySettings(), nil)
	require.NoError(t, form.SelectFuel("petrol"))
	require.NoError(t, form.SelectForm("amount"))
	require.NoError(t, form.EnterValue("500"))
	require.NoError(t, form.SelectPayment("cash"))
	require.NoError(t, form.EnterAmountPaid("400"))

	tx, err := form.Build()
	require.NoError(t, err)
	require.NotNil(t, tx.ChangeReturned)
	assert.Equal(t, -100.0, *tx.ChangeReturned)
}

func TestEntryFormLenientAmountPaid(t *testing.T) {
	form := NewEntryForm(entrySettings(), nil)
	require.NoError(t, form.SelectFuel("petrol"))
	require.NoError(t, form.SelectForm("amount"))
	require.NoError(t, form.EnterValue("500"))
	require.NoError(t, form.SelectPayment("cash"))
	require.NoError(t, form.EnterAmountPaid("lots"))

	tx, err := form.Build()
	require.NoError(t, err)
	assert.Equal(t, 0.0, tx.AmountPaid, "non-numeric paid amount stores zero")
	assert.Nil(t, tx.ChangeReturned, "no change without a parsable paid amount")
}

func TestEntryFormStepMessages(t *testing.T) {
	form := NewEntryForm(entrySettings(), nil)

	err := form.SelectFuel("kerosene")
	assert.EqualError(t, err, "Please select a fuel type.")
	require.NoError(t, form.SelectFuel("petrol"))

	err = form.SelectForm("weight")
	assert.EqualError(t, err, "Please select amount or volume.")
	require.NoError(t, form.SelectForm("amount"))

	err = form.EnterValue("-5")
	assert.EqualError(t, err, "Please enter a valid amount or volume.")
	err = form.EnterValue("abc")
	assert.EqualError(t, err, "Please enter a valid amount or volume.")
	require.NoError(t, form.EnterValue("100"))

	err = form.SelectPayment("cheque")
	assert.EqualError(t, err, "Please select a payment mode.")
	require.NoError(t, form.SelectPayment("cash"))

	err = form.EnterAmountPaid("   ")
	assert.EqualError(t, err, "Please enter amount paid by customer.")
}

func TestEntryFormGuardsOutOfOrderSteps(t *testing.T) {
	form := NewEntryForm(entrySettings(), nil)

	err := form.EnterValue("100")
	assert.EqualError(t, err, "Please select a fuel type.")

	_, err = form.Build()
	assert.EqualError(t, err, "Please select a fuel type.")
}

func TestEntryFormBillWithKnownVehicle(t *testing.T) {
	owners := resolverOwners()
	form := NewEntryForm(entrySettings(), owners)
	require.NoError(t, form.SelectFuel("petrol"))
	require.NoError(t, form.SelectForm("amount"))
	require.NoError(t, form.EnterValue("1000"))
	require.NoError(t, form.SelectPayment("bill"))
	require.NoError(t, form.EnterBillDetails(" mh12ab1234 ", ""))

	tx, err := form.Build()
	require.NoError(t, err)
	assert.Equal(t, "MH12AB1234", tx.VehicleNumber, "stored uppercased")
	assert.Equal(t, "Rohan Sharma", tx.VehicleOwner)
	assert.Equal(t, models.VehicleCar, tx.VehicleType)
	assert.Equal(t, 0.0, tx.AmountPaid, "bill sales carry no paid amount")
	assert.Nil(t, tx.ChangeReturned)
}

func TestEntryFormBillWithUnknownVehicle(t *testing.T) {
	form := NewEntryForm(entrySettings(), resolverOwners())
	require.NoError(t, form.SelectFuel("petrol"))
	require.NoError(t, form.SelectForm("amount"))
	require.NoError(t, form.EnterValue("1000"))
	require.NoError(t, form.SelectPayment("bill"))
	require.NoError(t, form.EnterBillDetails("ka99zz0000", ""))

	tx, err := form.Build()
	require.NoError(t, err)
	assert.Equal(t, "KA99ZZ0000", tx.VehicleNumber)
	assert.Empty(t, tx.VehicleOwner, "unmatched numbers stay unattributed")
	assert.Empty(t, tx.VehicleType)
}

func TestEntryFormBillRequiresVehicleNumber(t *testing.T) {
	form := NewEntryForm(entrySettings(), nil)
	require.NoError(t, form.SelectFuel("petrol"))
	require.NoError(t, form.SelectForm("amount"))
	require.NoError(t, form.EnterValue("1000"))
	require.NoError(t, form.SelectPayment("bill"))

	err := form.EnterBillDetails("   ", "")
	assert.EqualError(t, err, `Please enter a vehicle number or "Gallon" for bill payments.`)
}

func TestEntryFormGallonSale(t *testing.T) {
	owners := resolverOwners()
	form := NewEntryForm(entrySettings(), owners)
	require.NoError(t, form.SelectFuel("diesel"))
	require.NoError(t, form.SelectForm("volume"))
	require.NoError(t, form.EnterValue("20"))
	require.NoError(t, form.SelectPayment("bill"))

	err := form.EnterBillDetails("gallon", "")
	assert.EqualError(t, err, "Please select a partner for the Gallon sale.")

	err = form.EnterBillDetails("Gallon", "o2")
	require.NoError(t, err)

	tx, err := form.Build()
	require.NoError(t, err)
	assert.Equal(t, GallonNumber, tx.VehicleNumber)
	assert.Equal(t, "Priya Verma", tx.VehicleOwner)
	assert.Empty(t, tx.VehicleType, "gallon sales are not tied to a vehicle")
}

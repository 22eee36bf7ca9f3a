package services

import (
	"strconv"
	"strings"

	"github.com/petroshift/station-backend/internal/errs"
	"github.com/petroshift/station-backend/internal/models"
	"github.com/petroshift/station-backend/pkg/helpers"
)

// Fuel forms accepted by the entry flow. Attendants enter either the rupee
// amount or the liter volume; the other side is derived from the configured
// rate.
const (
	FormAmount = "amount"
	FormVolume = "volume"
)

type entryState int

const (
	stateSelectFuel entryState = iota
	stateSelectForm
	stateEnterValue
	stateSelectPayment
	stateEnterPaid
	stateBillDetails
	stateReady
)

// stepMessages are shown verbatim to the attendant. The client renders them
// unchanged, so the wording is part of the contract.
var stepMessages = map[entryState]string{
	stateSelectFuel:    "Please select a fuel type.",
	stateSelectForm:    "Please select amount or volume.",
	stateEnterValue:    "Please enter a valid amount or volume.",
	stateSelectPayment: "Please select a payment mode.",
	stateEnterPaid:     "Please enter amount paid by customer.",
	stateBillDetails:   "Please enter a vehicle number or \"Gallon\" for bill payments.",
}

// EntryForm walks a sale through the steps of the entry flow:
//
//	SelectFuel -> SelectForm -> EnterValue -> SelectPayment
//	    -> EnterAmountPaid (cash/paytm/card)  -> Build
//	    -> EnterBillDetails (bill)            -> Build
//
// Each step is guarded; calling a step out of order or with invalid input
// returns a validation error naming the step still pending. The zero value
// is not usable, construct with NewEntryForm.
type EntryForm struct {
	settings models.Settings
	owners   []models.Owner

	state entryState

	fuelType   models.FuelType
	fuelForm   string
	fuelAmount float64
	fuelVolume float64
	mode       models.PaymentMode

	amountPaid     float64
	changeReturned *float64

	vehicleNumber string
	vehicleOwner  string
	vehicleType   models.VehicleType
}

func NewEntryForm(settings models.Settings, owners []models.Owner) *EntryForm {
	return &EntryForm{settings: settings, owners: owners, state: stateSelectFuel}
}

// pending converts the current state into the user-facing error for the step
// that still needs input.
func (f *EntryForm) pending() error {
	return errs.NewValidationError(stepMessages[f.state])
}

func (f *EntryForm) SelectFuel(fuelType string) error {
	if f.state != stateSelectFuel {
		return f.pending()
	}
	switch models.FuelType(fuelType) {
	case models.FuelPetrol, models.FuelDiesel:
		f.fuelType = models.FuelType(fuelType)
		f.state = stateSelectForm
		return nil
	}
	return f.pending()
}

func (f *EntryForm) SelectForm(form string) error {
	if f.state != stateSelectForm {
		return f.pending()
	}
	if form != FormAmount && form != FormVolume {
		return f.pending()
	}
	f.fuelForm = form
	f.state = stateEnterValue
	return nil
}

// EnterValue accepts the raw text the attendant typed. The rate for the
// selected fuel converts between amount and volume; a value that does not
// parse to a positive number keeps the form at this step.
func (f *EntryForm) EnterValue(raw string) error {
	if f.state != stateEnterValue {
		return f.pending()
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v <= 0 {
		return f.pending()
	}

	rate := f.settings.PetrolRate
	if f.fuelType == models.FuelDiesel {
		rate = f.settings.DieselRate
	}
	if rate <= 0 {
		return f.pending()
	}

	if f.fuelForm == FormAmount {
		f.fuelAmount = v
		f.fuelVolume = v / rate
	} else {
		f.fuelAmount = v * rate
		f.fuelVolume = v
	}
	f.state = stateSelectPayment
	return nil
}

func (f *EntryForm) SelectPayment(mode string) error {
	if f.state != stateSelectPayment {
		return f.pending()
	}
	switch models.PaymentMode(mode) {
	case models.PaymentBill:
		f.mode = models.PaymentBill
		f.state = stateBillDetails
		return nil
	case models.PaymentCash, models.PaymentPaytm, models.PaymentCard:
		f.mode = models.PaymentMode(mode)
		f.state = stateEnterPaid
		return nil
	}
	return f.pending()
}

// EnterAmountPaid records what the customer handed over. The field is
// required but parses leniently: non-numeric input stores zero and skips the
// change calculation.
func (f *EntryForm) EnterAmountPaid(raw string) error {
	if f.state != stateEnterPaid {
		return f.pending()
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return f.pending()
	}
	if paid, err := strconv.ParseFloat(trimmed, 64); err == nil {
		f.amountPaid = paid
		f.changeReturned = helpers.Ptr(paid - f.fuelAmount)
	}
	f.state = stateReady
	return nil
}

// EnterBillDetails finishes a bill sale. A literal "Gallon" (any casing)
// marks a bulk partner sale and requires gallonOwnerID to name the partner;
// any other number is stored uppercased with the owner registry's verdict
// attached. An unmatched number is still a valid sale, just unattributed.
func (f *EntryForm) EnterBillDetails(vehicleNumber, gallonOwnerID string) error {
	if f.state != stateBillDetails {
		return f.pending()
	}
	trimmed := strings.TrimSpace(vehicleNumber)
	if trimmed == "" {
		return f.pending()
	}

	if strings.EqualFold(trimmed, GallonNumber) {
		owner, ok := findOwnerByID(f.owners, gallonOwnerID)
		if !ok {
			return errs.NewValidationError("Please select a partner for the Gallon sale.")
		}
		f.vehicleNumber = GallonNumber
		f.vehicleOwner = owner.Name
		f.state = stateReady
		return nil
	}

	res := ResolveOwner(trimmed, f.owners)
	f.vehicleNumber = strings.ToUpper(trimmed)
	if res.OwnerName != UnknownOwner {
		f.vehicleOwner = res.OwnerName
		f.vehicleType = res.VehicleType
	}
	f.state = stateReady
	return nil
}

// Build yields the validated sale. Timestamp and attendant attribution are
// the caller's responsibility.
func (f *EntryForm) Build() (models.Transaction, error) {
	if f.state != stateReady {
		return models.Transaction{}, f.pending()
	}

	tx := models.Transaction{
		Type:        models.TransactionSale,
		FuelType:    f.fuelType,
		FuelAmount:  f.fuelAmount,
		FuelVolume:  f.fuelVolume,
		PaymentMode: f.mode,
	}

	if f.mode == models.PaymentBill {
		tx.VehicleNumber = f.vehicleNumber
		tx.VehicleOwner = f.vehicleOwner
		tx.VehicleType = f.vehicleType
	} else {
		tx.AmountPaid = f.amountPaid
		tx.ChangeReturned = f.changeReturned
	}
	return tx, nil
}

func findOwnerByID(owners []models.Owner, id string) (models.Owner, bool) {
	if id == "" {
		return models.Owner{}, false
	}
	for _, o := range owners {
		if o.ID == id {
			return o, true
		}
	}
	return models.Owner{}, false
}

package models

// Settings is the singleton station configuration. Rates are currency per
// liter and feed both sale entry math and reconciliation; AdvanceCash is the
// day-opening float handed to every attendant.
type Settings struct {
	PetrolRate  float64 `firestore:"petrolRate" json:"petrolRate"`
	DieselRate  float64 `firestore:"dieselRate" json:"dieselRate"`
	AdvanceCash float64 `firestore:"advanceCash" json:"advanceCash"`
}

package dto

// UpdateSettingsRequest replaces the station settings. Fields are text and
// parse leniently to zero, matching the tolerant numeric entry everywhere
// else in the system.
type UpdateSettingsRequest struct {
	PetrolRate  string `json:"petrolRate"`
	DieselRate  string `json:"dieselRate"`
	AdvanceCash string `json:"advanceCash"`
}

package dto

// Summary is the output of the aggregation engine: derived shift metrics
// for one attendant, or for the whole station when AttendantName is empty.
type Summary struct {
	AttendantName    string  `json:"attendantName,omitempty"`
	PetrolVolume     float64 `json:"petrolVolume"`
	DieselVolume     float64 `json:"dieselVolume"`
	CashFromSales    float64 `json:"cashFromSales"`
	CashDeposited    float64 `json:"cashDeposited"`
	CashInHand       float64 `json:"cashInHand"`
	TransactionCount int     `json:"transactionCount"`
	PaytmTotal       float64 `json:"paytmTotal"`
}

// AttendantSummary is one per-attendant card.
type AttendantSummary struct {
	Summary
	AvatarURL string `json:"avatarUrl"`
}

type SummaryResponse struct {
	Total      Summary            `json:"total"`
	Attendants []AttendantSummary `json:"attendants"`
}

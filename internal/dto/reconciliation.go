package dto

// Reconciliation compares meter-derived expected revenue against recorded
// transaction revenue for one attendant and day. A positive Difference means
// more was recorded than the meters account for. Warnings carries meter
// anomalies (end below start) that the clamped sold volumes would otherwise
// hide.
type Reconciliation struct {
	AttendantName string   `json:"attendantName"`
	Date          string   `json:"date"`
	PetrolSold    float64  `json:"petrolSold"`
	DieselSold    float64  `json:"dieselSold"`
	ExpectedSales float64  `json:"expectedSales"`
	RecordedSales float64  `json:"recordedSales"`
	Difference    float64  `json:"difference"`
	Reconciled    bool     `json:"reconciled"`
	Warnings      []string `json:"warnings,omitempty"`
}

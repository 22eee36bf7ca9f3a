package dto

// CreateSaleRequest carries one sale through the entry flow. Numeric fields
// arrive as text and parse leniently (unparsable input counts as zero, which
// the validation step then rejects as "not a valid amount").
type CreateSaleRequest struct {
	UserName      string `json:"userName"`
	FuelType      string `json:"fuelType"`
	FuelForm      string `json:"fuelForm"` // "amount" or "volume"
	Value         string `json:"value"`
	PaymentMode   string `json:"paymentMode"`
	AmountPaid    string `json:"amountPaid"`    // non-bill modes
	VehicleNumber string `json:"vehicleNumber"` // bill mode; "GALLON" triggers the partner flow
	GallonOwnerID string `json:"gallonOwnerId"` // bill mode, gallon sales only
}

type DepositRequest struct {
	UserName string `json:"userName"`
	Amount   string `json:"amount"`
}

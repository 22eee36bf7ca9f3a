package models

type TransactionType string

const (
	TransactionSale    TransactionType = "sale"
	TransactionDeposit TransactionType = "deposit"
)

type FuelType string

const (
	FuelPetrol FuelType = "petrol"
	FuelDiesel FuelType = "diesel"
)

type PaymentMode string

const (
	PaymentCash  PaymentMode = "cash"
	PaymentPaytm PaymentMode = "paytm"
	PaymentCard  PaymentMode = "card"
	PaymentBill  PaymentMode = "bill"
)

// Transaction is one immutable financial event. For a Sale, FuelAmount is
// the amount charged; for a Deposit it is the cash handed to the office and
// the Sale-only fields stay empty. UserName and UserAvatarURL are a value
// snapshot of the attendant taken at write time, never a live reference, so
// history keeps its attribution when an attendant is renamed or removed.
type Transaction struct {
	ID         string          `firestore:"-" json:"id"`
	Timestamp  string          `firestore:"timestamp" json:"timestamp"` // ISO-8601
	Type       TransactionType `firestore:"type" json:"type"`
	FuelAmount float64         `firestore:"fuelAmount" json:"fuelAmount"`

	// Sale only.
	FuelType       FuelType    `firestore:"fuelType,omitempty" json:"fuelType,omitempty"`
	FuelVolume     float64     `firestore:"fuelVolume,omitempty" json:"fuelVolume,omitempty"` // liters, derived from FuelAmount / rate
	PaymentMode    PaymentMode `firestore:"paymentMode,omitempty" json:"paymentMode,omitempty"`
	AmountPaid     float64     `firestore:"amountPaid,omitempty" json:"amountPaid,omitempty"`
	ChangeReturned *float64    `firestore:"changeReturned,omitempty" json:"changeReturned,omitempty"` // negative means the customer still owes
	VehicleNumber  string      `firestore:"vehicleNumber,omitempty" json:"vehicleNumber,omitempty"`
	VehicleOwner   string      `firestore:"vehicleOwner,omitempty" json:"vehicleOwner,omitempty"`
	VehicleType    VehicleType `firestore:"vehicleType,omitempty" json:"vehicleType,omitempty"`

	// Attribution snapshot.
	UserName      string `firestore:"userName,omitempty" json:"userName,omitempty"`
	UserAvatarURL string `firestore:"userAvatarUrl,omitempty" json:"userAvatarUrl,omitempty"`
}

func (t *Transaction) IsSale() bool { return t.Type == TransactionSale }

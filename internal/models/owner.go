package models

type VehicleType string

const (
	VehicleCar     VehicleType = "car"
	VehicleBike    VehicleType = "bike"
	VehicleBus     VehicleType = "bus"
	VehicleTruck   VehicleType = "truck"
	VehicleTractor VehicleType = "tractor"
	VehiclePickup  VehicleType = "pickup"
	VehicleLoader  VehicleType = "loader"
	VehicleOther   VehicleType = "other"
)

// VehicleTypes lists every valid vehicle category.
var VehicleTypes = []VehicleType{
	VehicleCar, VehicleBike, VehicleBus, VehicleTruck,
	VehicleTractor, VehiclePickup, VehicleLoader, VehicleOther,
}

func ValidVehicleType(t VehicleType) bool {
	for _, v := range VehicleTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Vehicle numbers are stored uppercase and are unique within one owner's
// list. Nothing enforces uniqueness across owners; resolution is
// first-registrant-wins.
type Vehicle struct {
	Number string      `firestore:"number" json:"number"`
	Type   VehicleType `firestore:"type" json:"type"`
}

// Owner is a billing partner whose vehicles can be fueled on account.
type Owner struct {
	ID       string    `firestore:"-" json:"id"`
	Name     string    `firestore:"name" json:"name"`
	Vehicles []Vehicle `firestore:"vehicles" json:"vehicles"`
}

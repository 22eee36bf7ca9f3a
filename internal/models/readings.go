package models

// DailyReadings holds the four raw meter values for one attendant on one
// calendar day. Values are free text so a partially filled form can be
// saved; parsing happens at reconciliation time.
type DailyReadings struct {
	Petrol2PM  string `firestore:"petrol2pm" json:"petrol2pm"`
	Petrol10PM string `firestore:"petrol10pm" json:"petrol10pm"`
	Diesel2PM  string `firestore:"diesel2pm" json:"diesel2pm"`
	Diesel10PM string `firestore:"diesel10pm" json:"diesel10pm"`
}

// ReadingFields are the persistable field names of DailyReadings, as they
// appear in the store and in per-field update requests.
var ReadingFields = []string{"petrol2pm", "petrol10pm", "diesel2pm", "diesel10pm"}

func ValidReadingField(field string) bool {
	for _, f := range ReadingFields {
		if f == field {
			return true
		}
	}
	return false
}

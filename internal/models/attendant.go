package models

// Attendant is a pump operator, the unit of shift accounting. Deleting an
// attendant does not touch already-recorded transactions.
type Attendant struct {
	ID        string `firestore:"-" json:"id"`
	Name      string `firestore:"name" json:"name"`
	AvatarURL string `firestore:"avatarUrl" json:"avatarUrl"`
}

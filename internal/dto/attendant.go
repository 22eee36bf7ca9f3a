package dto

type CreateAttendantRequest struct {
	Name string `json:"name"`
}

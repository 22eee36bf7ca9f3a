package dto

type ReadingUpdateRequest struct {
	Value string `json:"value"`
}

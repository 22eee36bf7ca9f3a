package dto

// ShiftResult reports a best-effort multi-step bulk operation. Completed
// lists the steps that ran before any failure; steps are never rolled back.
type ShiftResult struct {
	Completed []string `json:"completed"`
}

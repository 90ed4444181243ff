package dto

// MessageResponse is the generic `{"message": ...}` body used by simple
// mutations and by the error middleware.
type MessageResponse struct {
	Message string `json:"message"`
}

// DeleteResponse reports a completed delete plus any file-cleanup warnings.
// Warnings never fail the delete; they are surfaced for the operator.
type DeleteResponse struct {
	Message  string   `json:"message"`
	ID       int64    `json:"id,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

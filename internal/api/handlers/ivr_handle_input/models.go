package ivr_handle_input

// HandleInputRequest HTTP request model
type HandleInputRequest struct {
	CallID string `json:"callId"`
	Digit  string `json:"digit"`
}

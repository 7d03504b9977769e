package ivr_start_call

// StartCallRequest HTTP request model
type StartCallRequest struct {
	CallerPhone string `json:"callerPhone"`
}

package api

// SubmitResponse is returned when an action is accepted for execution.
type SubmitResponse struct {
	CommandID string `json:"command_id"`
	Action    string `json:"action"`
	AgentID   string `json:"agent_id"`
	Status    string `json:"status"`
}

// ErrorResponse carries an API error message.
type ErrorResponse struct {
	Error string `json:"error"`
}

package models

// QueueActionResponse acknowledges a captured action. The action is
// durable on the device at this point; delivery happens asynchronously.
type QueueActionResponse struct {
	// ID is the local queue identifier assigned to the action.
	ID int64 `json:"id"`

	// Status is the action's state at capture time, normally pending.
	Status ActionStatus `json:"status"`

	// Photos is how many attachments were stored with the action.
	Photos int `json:"photos"`
}

// AcceptedResponse acknowledges a request that starts background work,
// such as a sync trigger. The work's result is observed through status,
// not through this response.
type AcceptedResponse struct {
	Accepted bool `json:"accepted"`
}

// ErrorResponse is the uniform error body of the local control surface.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse reports agent liveness and build identity.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

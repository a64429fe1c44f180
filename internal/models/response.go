package models

// Response is the wire envelope every endpoint answers with
// swagger:model Response
type Response struct {
	// Whether the request succeeded
	// example: true
	Success bool `json:"success"`

	// Human-readable outcome message
	// example: Login successful
	Message string `json:"message"`

	// Endpoint-specific payload, omitted on errors
	Data interface{} `json:"data,omitempty"`
}

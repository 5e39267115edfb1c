// Package dto defines data transfer objects for API requests and responses.
package dto

// Envelope statuses. fail marks client mistakes, error marks server faults.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Envelope is the uniform response wrapper for every endpoint.
type Envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// Success wraps a payload in a success envelope.
func Success(data any) Envelope {
	return Envelope{Status: StatusSuccess, Data: data}
}

// Fail builds a client-error envelope.
func Fail(message string) Envelope {
	return Envelope{Status: StatusFail, Message: message}
}

// Error builds a server-error envelope. The message stays generic; details go
// to the log, never to the client.
func Error(message string) Envelope {
	return Envelope{Status: StatusError, Message: message}
}

package models

import "encoding/json"

// ChatRequest is the inbound request body for the agent relay endpoint.
// Message is the only field and the only thing that is validated.
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// InvocationPayload is the input handed to the upstream compute function.
type InvocationPayload struct {
	Message string `json:"message"`
}

// Encode serializes the payload to the text encoding the upstream function expects
func (p *InvocationPayload) Encode() ([]byte, error) {
	return json.Marshal(p)
}

// InvocationResult is the upstream function's output, relayed verbatim.
// The relay is schema-agnostic, so the value stays opaque JSON.
type InvocationResult = json.RawMessage

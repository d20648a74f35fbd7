package services

import (
	"context"

	"agent-relay-api/internal/models"
)

// AgentService relays chat messages to the upstream compute function
type AgentService interface {
	// Relay validates the message, invokes the configured function with it and
	// returns the function's decoded output verbatim. The call blocks until the
	// function completes; no timeout or retry is applied beyond what ctx carries.
	Relay(ctx context.Context, message string) (models.InvocationResult, error)
}

// FunctionInvoker is the client for the external compute-invocation service.
// It is an opaque request/response RPC: one call in, one payload out.
type FunctionInvoker interface {
	Invoke(ctx context.Context, functionName string, payload []byte) ([]byte, error)
}

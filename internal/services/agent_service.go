package services

import (
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"agent-relay-api/internal/models"
)

// agentService implements AgentService on top of a FunctionInvoker
type agentService struct {
	invoker      FunctionInvoker
	functionName string
	validator    *validator.Validate
	logger       *logrus.Logger
}

// NewAgentService creates a new agent relay service
func NewAgentService(invoker FunctionInvoker, functionName string, logger *logrus.Logger) AgentService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &agentService{
		invoker:      invoker,
		functionName: functionName,
		validator:    validator.New(),
		logger:       logger,
	}
}

// Relay validates the message, invokes the configured compute function with
// {"message": <text>} and relays the function's decoded output unmodified.
func (s *agentService) Relay(ctx context.Context, message string) (models.InvocationResult, error) {
	req := &models.ChatRequest{Message: message}
	if err := s.validator.Struct(req); err != nil {
		return nil, NewValidationError("No message provided")
	}

	payload := &models.InvocationPayload{Message: message}
	encoded, err := payload.Encode()
	if err != nil {
		return nil, NewInvocationError(err)
	}

	s.logger.WithFields(logrus.Fields{
		"function": s.functionName,
	}).Debug("Invoking agent function")

	out, err := s.invoker.Invoke(ctx, s.functionName, encoded)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"function": s.functionName,
			"error":    err.Error(),
		}).Error("Agent function invocation failed")
		return nil, NewInvocationError(err)
	}

	// Decode check only: the result is relayed verbatim, whatever its shape
	var decoded interface{}
	if err := json.Unmarshal(out, &decoded); err != nil {
		s.logger.WithFields(logrus.Fields{
			"function": s.functionName,
			"error":    err.Error(),
		}).Error("Agent function returned undecodable output")
		return nil, NewDecodeError(err)
	}

	return models.InvocationResult(out), nil
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"agent-relay-api/internal/models"
	"agent-relay-api/internal/services"
	"agent-relay-api/pkg/lambda"
)

// AgentHandler handles agent relay HTTP requests
type AgentHandler struct {
	agentService services.AgentService
}

// NewAgentHandler creates a new agent handler
func NewAgentHandler(agentService services.AgentService) *AgentHandler {
	return &AgentHandler{
		agentService: agentService,
	}
}

// @Summary Relay a chat message to the agent function
// @Description Forwards the message to the configured compute function and relays its response verbatim
// @Tags agent
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "Chat message"
// @Success 200 {object} object "Whatever the agent function returned"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/agent [post]
func (h *AgentHandler) RelayMessage(c *gin.Context) {
	var req models.ChatRequest
	// An unparseable body and a missing message are the same thing to the caller
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No message provided"})
		return
	}

	result, err := h.agentService.Relay(c.Request.Context(), req.Message)
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.Data(http.StatusOK, "application/json", result)
}

// HandleRelay is the framework-agnostic variant used by the Lambda entrypoint.
// Same contract as RelayMessage.
func (h *AgentHandler) HandleRelay(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	var chatReq models.ChatRequest
	if err := json.Unmarshal(req.Body, &chatReq); err != nil || chatReq.Message == "" {
		return jsonResponse(http.StatusBadRequest, ErrorResponse{Error: "No message provided"})
	}

	result, err := h.agentService.Relay(ctx, chatReq.Message)
	if err != nil {
		return jsonResponse(statusForError(err), ErrorResponse{Error: err.Error()})
	}

	return &lambda.Response{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       result,
	}, nil
}

func jsonResponse(status int, body interface{}) (*lambda.Response, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	return &lambda.Response{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       encoded,
	}, nil
}

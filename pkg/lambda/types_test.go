package lambda

import (
	"testing"

	"github.com/aws/aws-lambda-go/events"
)

// TestFromAPIGateway verifies event-to-request conversion
func TestFromAPIGateway(t *testing.T) {
	event := events.APIGatewayProxyRequest{
		HTTPMethod:            "POST",
		Path:                  "/api/agent",
		Headers:               map[string]string{"Content-Type": "application/json"},
		QueryStringParameters: map[string]string{"verbose": "1"},
		Body:                  `{"message": "hi"}`,
	}

	req := FromAPIGateway(event)

	if req.Method != "POST" || req.Path != "/api/agent" {
		t.Errorf("Unexpected method/path: %s %s", req.Method, req.Path)
	}
	if string(req.Body) != `{"message": "hi"}` {
		t.Errorf("Unexpected body: %s", req.Body)
	}
	if req.Headers["Content-Type"] != "application/json" {
		t.Error("Headers not carried over")
	}
	if req.QueryParams["verbose"] != "1" {
		t.Error("Query parameters not carried over")
	}
}

// TestToAPIGateway verifies response conversion
func TestToAPIGateway(t *testing.T) {
	resp := &Response{
		StatusCode: 200,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       []byte(`{"reply": "hello"}`),
	}

	out := resp.ToAPIGateway()

	if out.StatusCode != 200 {
		t.Errorf("Expected 200, got %d", out.StatusCode)
	}
	if out.Body != `{"reply": "hello"}` {
		t.Errorf("Unexpected body: %s", out.Body)
	}
	if out.Headers["Content-Type"] != "application/json" {
		t.Error("Headers not carried over")
	}
}

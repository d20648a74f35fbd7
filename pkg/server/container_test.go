package server

import (
	"context"
	"testing"

	"agent-relay-api/internal/config"
)

// stubInvoker satisfies services.FunctionInvoker for wiring tests
type stubInvoker struct{}

func (s *stubInvoker) Invoke(ctx context.Context, functionName string, payload []byte) ([]byte, error) {
	return []byte(`{}`), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Host:        "0.0.0.0",
		Port:        "5000",
		Agent: config.AgentConfig{
			FunctionName: "agent_lambda",
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// TestNewContainerWithInvoker verifies the container wires every dependency
func TestNewContainerWithInvoker(t *testing.T) {
	container := NewContainerWithInvoker(testConfig(), &stubInvoker{})

	if container.Config == nil {
		t.Error("Config is nil")
	}
	if container.Logger == nil {
		t.Error("Logger is nil")
	}
	if container.Invoker == nil {
		t.Error("Invoker is nil")
	}
	if container.AgentService == nil {
		t.Error("AgentService is nil")
	}
	if container.EventLogger == nil {
		t.Error("EventLogger is nil")
	}

	if err := container.Close(); err != nil {
		t.Errorf("Failed to close container: %v", err)
	}
}

// TestContainerLoggerConfig verifies log level and format are applied
func TestContainerLoggerConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	container := NewContainerWithInvoker(cfg, &stubInvoker{})

	if container.Logger.GetLevel().String() != "debug" {
		t.Errorf("Expected debug level, got %s", container.Logger.GetLevel())
	}
}

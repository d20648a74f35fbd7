package config

import "testing"

// TestLoadDefaults verifies the built-in defaults
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Host != "0.0.0.0" {
		t.Errorf("Expected default host 0.0.0.0, got %s", cfg.Host)
	}
	if cfg.Port != "5000" {
		t.Errorf("Expected default port 5000, got %s", cfg.Port)
	}
	if cfg.Agent.FunctionName != "agent_lambda" {
		t.Errorf("Expected default function name agent_lambda, got %s", cfg.Agent.FunctionName)
	}
	if cfg.Addr() != "0.0.0.0:5000" {
		t.Errorf("Unexpected listen address %s", cfg.Addr())
	}
}

// TestLoadEnvOverrides verifies environment variables win over defaults
func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("AGENT_FUNCTION_NAME", "custom_agent")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected port 8080, got %s", cfg.Port)
	}
	if cfg.Agent.FunctionName != "custom_agent" {
		t.Errorf("Expected function name custom_agent, got %s", cfg.Agent.FunctionName)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.Log.Level)
	}
}

// TestGetEnvHelpers verifies the env helper fallbacks
func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_STRING", "value")
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_BOOL", "true")

	if GetEnv("TEST_STRING", "fallback") != "value" {
		t.Error("GetEnv should return the set value")
	}
	if GetEnv("TEST_MISSING", "fallback") != "fallback" {
		t.Error("GetEnv should return the fallback")
	}
	if GetEnvAsInt("TEST_INT", 0) != 42 {
		t.Error("GetEnvAsInt should return the set value")
	}
	if GetEnvAsInt("TEST_MISSING", 7) != 7 {
		t.Error("GetEnvAsInt should return the fallback")
	}
	if !GetEnvAsBool("TEST_BOOL", false) {
		t.Error("GetEnvAsBool should return the set value")
	}
	if GetEnvAsBool("TEST_MISSING", true) != true {
		t.Error("GetEnvAsBool should return the fallback")
	}
}

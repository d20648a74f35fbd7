package server

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"agent-relay-api/internal/config"
	"agent-relay-api/internal/handlers"
	"agent-relay-api/internal/services"
)

// Container holds all application dependencies. Everything in it has
// process-wide lifetime and is constructed exactly once, then passed into
// handlers explicitly; nothing is reached through package-level globals.
type Container struct {
	Config       *config.Config
	Logger       *logrus.Logger
	Invoker      services.FunctionInvoker
	AgentService services.AgentService
	EventLogger  *handlers.EventLogger
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	logger := newLogger(cfg)

	invoker, err := services.NewLambdaInvoker(context.Background(), cfg.Agent.Region)
	if err != nil {
		return nil, fmt.Errorf("failed to create function invoker: %w", err)
	}

	return newContainer(cfg, logger, invoker), nil
}

// NewContainerWithInvoker creates a container around an existing invoker.
// Used by tests to substitute the compute-invocation client.
func NewContainerWithInvoker(cfg *config.Config, invoker services.FunctionInvoker) *Container {
	return newContainer(cfg, newLogger(cfg), invoker)
}

func newContainer(cfg *config.Config, logger *logrus.Logger, invoker services.FunctionInvoker) *Container {
	return &Container{
		Config:       cfg,
		Logger:       logger,
		Invoker:      invoker,
		AgentService: services.NewAgentService(invoker, cfg.Agent.FunctionName, logger),
		EventLogger:  handlers.NewEventLogger(logger),
	}
}

// Close cleans up all resources
func (c *Container) Close() error {
	// No pooled resources are held; invocations share nothing across requests
	return nil
}

func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	}

	if cfg.Log.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger
}

package main

import (
	"context"

	"agent-relay-api/internal/config"
	"agent-relay-api/internal/models"
	"agent-relay-api/pkg/server"

	awslambda "github.com/aws/aws-lambda-go/lambda"
)

var container *server.Container

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	container, err = server.NewContainer(cfg)
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

// handler logs metadata for one pushed notification event. Decode failures
// propagate to the platform, which owns the failure/retry policy.
func handler(ctx context.Context, event models.NotificationEvent) error {
	return container.EventLogger.HandleEvent(ctx, &event)
}

func main() {
	awslambda.Start(handler)
}

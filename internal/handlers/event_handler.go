package handlers

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"agent-relay-api/internal/models"
)

// EventLogger records metadata about notification events pushed by the
// external event-routing service. It has no output channel besides the log.
type EventLogger struct {
	logger *logrus.Logger
}

// NewEventLogger creates a new event logger
func NewEventLogger(logger *logrus.Logger) *EventLogger {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &EventLogger{logger: logger}
}

// HandleEvent logs the event's serialized data payload, subject and event type.
// A payload that fails to decode is returned to the hosting runtime as-is;
// no local recovery or retry happens here.
func (l *EventLogger) HandleEvent(ctx context.Context, event *models.NotificationEvent) error {
	data, err := event.DecodedData()
	if err != nil {
		return err
	}

	serialized, err := json.Marshal(data)
	if err != nil {
		return err
	}

	l.logger.WithField("data", string(serialized)).Info("Event received")
	l.logger.WithField("subject", event.Subject).Info("Event subject")
	l.logger.WithField("event_type", event.EventType).Info("Event type")

	return nil
}

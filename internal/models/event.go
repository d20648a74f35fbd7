package models

import "encoding/json"

// NotificationEvent represents an event pushed by the external event-routing
// service. It is read-only to this system; the data payload has no fixed schema.
type NotificationEvent struct {
	Subject   string          `json:"subject"`
	EventType string          `json:"event_type"`
	Data      json.RawMessage `json:"data"`
}

// DecodedData decodes the event's data payload. An undecodable payload is the
// caller's problem; no recovery happens here.
func (e *NotificationEvent) DecodedData() (interface{}, error) {
	var data interface{}
	if err := json.Unmarshal(e.Data, &data); err != nil {
		return nil, err
	}
	return data, nil
}

package model

import (
	"bytes"
	"encoding/json"

	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/gcsfwd/pkg/domain/types"
)

// InboundEvent is a storage notification payload as handed over by the trigger.
// Recognized keys are name, size, contentType and bucket, either at the top
// level or nested under "data".
type InboundEvent map[string]any

// EventContext is metadata of the event delivery. A nil *EventContext means the
// trigger did not provide any.
type EventContext struct {
	Timestamp string `json:"timestamp"`
	EventID   string `json:"event_id"`
	EventType string `json:"event_type"`
	Resource  string `json:"resource"`
}

// DecodeInboundEvent parses a JSON object. Numbers are kept as json.Number so
// that the size field is forwarded exactly as received.
func DecodeInboundEvent(raw []byte) (InboundEvent, error) {
	var event InboundEvent
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	if err := decoder.Decode(&event); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidInput.Wrap(err), "failed to decode event")
	}
	if event == nil {
		return nil, goerr.Wrap(types.ErrInvalidInput, "event must be a JSON object")
	}

	return event, nil
}

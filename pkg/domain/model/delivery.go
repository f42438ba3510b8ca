package model

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/gcsfwd/pkg/domain/types"
)

// DeliveryKind is the envelope an event arrived in over HTTP.
type DeliveryKind string

const (
	DeliveryPubSubPush DeliveryKind = "pubsub_push"
	DeliveryCloudEvent DeliveryKind = "cloudevent"
	DeliveryBackground DeliveryKind = "background"
	DeliveryRaw        DeliveryKind = "raw"
)

const (
	maxDeliverySize    = 1 << 20
	maxDeliveryLogSize = 1 << 10
)

// Delivery is one HTTP event delivery unwrapped into the event and its context.
// Malformed is set, and Event is nil, when the envelope was read but does not
// carry a JSON object as the event. Raw then holds the head of the offending
// payload.
type Delivery struct {
	Kind      DeliveryKind
	Event     InboundEvent
	Context   *EventContext
	Malformed error
	Raw       []byte
}

// PushMessage is the body of a Pub/Sub push subscription request.
type PushMessage struct {
	Subscription string        `json:"subscription"`
	Message      PubSubMessage `json:"message"`
}

type PubSubMessage struct {
	Data        []byte            `json:"data"`
	Attributes  map[string]string `json:"attributes"`
	MessageID   string            `json:"messageId"`
	PublishTime time.Time         `json:"publishTime"`
}

func (x PubSubMessage) EventContext() *EventContext {
	evCtx := &EventContext{
		Timestamp: x.Attributes["eventTime"],
		EventID:   x.MessageID,
		EventType: x.Attributes["eventType"],
	}
	if evCtx.Timestamp == "" && !x.PublishTime.IsZero() {
		evCtx.Timestamp = x.PublishTime.UTC().Format(time.RFC3339Nano)
	}
	if bucket, object := x.Attributes["bucketId"], x.Attributes["objectId"]; bucket != "" && object != "" {
		evCtx.Resource = fmt.Sprintf("projects/_/buckets/%s/objects/%s", bucket, object)
	}
	return evCtx
}

// NewDelivery reads and unwraps an HTTP event delivery. Recognized envelopes
// are checked in order: Pub/Sub push, CloudEvents binary mode, legacy
// background function envelope ({"data":..., "context":...}). Otherwise the
// whole body is taken as the event without context.
//
// An error is returned only when the body cannot be read or is not JSON. An
// oversized body or an event that is not a JSON object is returned as a
// malformed Delivery so that it is acknowledged rather than redelivered.
func NewDelivery(r *http.Request) (*Delivery, error) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxDeliverySize+1))
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidInput.Wrap(err), "failed to read delivery body")
	}
	if len(raw) > maxDeliverySize {
		err := goerr.Wrap(types.ErrPayloadTooLarge, "delivery body exceeds limit").With("limit", maxDeliverySize)
		return newMalformedDelivery(r.Header, raw, err), nil
	}
	if !json.Valid(raw) {
		return nil, goerr.Wrap(types.ErrInvalidInput, "delivery body is not JSON")
	}

	body, err := DecodeInboundEvent(raw)
	if err != nil {
		return newMalformedDelivery(r.Header, raw, err), nil
	}

	if msg, ok := body["message"].(map[string]any); ok && msg["data"] != nil {
		return newPushDelivery(raw), nil
	}

	if r.Header.Get("Ce-Id") != "" {
		return &Delivery{
			Kind:    DeliveryCloudEvent,
			Event:   body,
			Context: cloudEventContext(r.Header),
		}, nil
	}

	if bgCtx, ok := body["context"].(map[string]any); ok {
		return &Delivery{
			Kind:    DeliveryBackground,
			Event:   body,
			Context: backgroundContext(bgCtx),
		}, nil
	}

	return &Delivery{Kind: DeliveryRaw, Event: body}, nil
}

func newMalformedDelivery(hdr http.Header, raw []byte, err error) *Delivery {
	delivery := &Delivery{Kind: DeliveryRaw, Malformed: err, Raw: truncatePayload(raw)}
	if hdr.Get("Ce-Id") != "" {
		delivery.Kind = DeliveryCloudEvent
		delivery.Context = cloudEventContext(hdr)
	}
	return delivery
}

// truncatePayload keeps the head of a malformed payload for logging.
func truncatePayload(raw []byte) []byte {
	if len(raw) > maxDeliveryLogSize {
		return raw[:maxDeliveryLogSize]
	}
	return raw
}

func newPushDelivery(raw []byte) *Delivery {
	var push PushMessage
	if err := json.Unmarshal(raw, &push); err != nil {
		return &Delivery{
			Kind:      DeliveryPubSubPush,
			Malformed: goerr.Wrap(types.ErrInvalidInput.Wrap(err), "invalid Pub/Sub push message"),
			Raw:       truncatePayload(raw),
		}
	}

	delivery := &Delivery{
		Kind:    DeliveryPubSubPush,
		Context: push.Message.EventContext(),
	}

	event, err := DecodeInboundEvent(push.Message.Data)
	if err != nil {
		delivery.Malformed = goerr.Wrap(err, "invalid data in Pub/Sub push message").
			With("message_id", push.Message.MessageID).
			With("subscription", push.Subscription)
		delivery.Raw = truncatePayload(push.Message.Data)
		return delivery
	}

	delivery.Event = event
	return delivery
}

func cloudEventContext(hdr http.Header) *EventContext {
	resource := hdr.Get("Ce-Source")
	if subject := hdr.Get("Ce-Subject"); subject != "" {
		resource += "/" + subject
	}

	return &EventContext{
		Timestamp: hdr.Get("Ce-Time"),
		EventID:   hdr.Get("Ce-Id"),
		EventType: hdr.Get("Ce-Type"),
		Resource:  resource,
	}
}

func backgroundContext(src map[string]any) *EventContext {
	evCtx := &EventContext{
		Timestamp: stringAttr(src, "timestamp"),
		EventID:   stringAttr(src, "eventId"),
		EventType: stringAttr(src, "eventType"),
	}

	// resource is a string in the legacy format and an object with "name" in
	// the newer one.
	switch v := src["resource"].(type) {
	case string:
		evCtx.Resource = v
	case map[string]any:
		evCtx.Resource = stringAttr(v, "name")
	}

	return evCtx
}

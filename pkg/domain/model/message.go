package model

import (
	"encoding/json"

	"github.com/m-mizutani/goerr"
)

// SentinelTimestamp is used when the event context or its timestamp is absent.
const SentinelTimestamp = "N/A (Context not provided or attribute missing)"

// OutboundMessage is published to the topic as UTF-8 JSON.
type OutboundMessage struct {
	FileName   string `json:"fileName"`
	FileSize   any    `json:"fileSize"`
	FileFormat string `json:"fileFormat"`
	BucketName string `json:"bucketName"`
	Timestamp  string `json:"timestamp"`
}

func NewOutboundMessage(info FileInfo, evCtx *EventContext) OutboundMessage {
	return OutboundMessage{
		FileName:   info.Name,
		FileSize:   info.Size,
		FileFormat: info.ContentType,
		BucketName: info.Bucket,
		Timestamp:  ResolveTimestamp(evCtx),
	}
}

func ResolveTimestamp(evCtx *EventContext) string {
	if evCtx == nil || evCtx.Timestamp == "" {
		return SentinelTimestamp
	}
	return evCtx.Timestamp
}

func (x OutboundMessage) Encode() ([]byte, error) {
	raw, err := json.Marshal(x)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode outbound message").With("msg", x)
	}
	return raw, nil
}

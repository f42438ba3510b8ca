package model_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/gcsfwd/pkg/domain/model"
	"github.com/m-mizutani/gcsfwd/pkg/utils/testutil"
)

func TestResolveTimestamp(t *testing.T) {
	gt.Equal(t, model.ResolveTimestamp(nil), model.SentinelTimestamp)
	gt.Equal(t, model.ResolveTimestamp(&model.EventContext{EventID: "123"}), model.SentinelTimestamp)
	gt.Equal(t, model.ResolveTimestamp(&model.EventContext{Timestamp: "2024-01-01T00:00:00.123Z"}), "2024-01-01T00:00:00.123Z")
}

func TestOutboundMessageEncode(t *testing.T) {
	info := model.FileInfo{
		Name:        "a.csv",
		Size:        json.Number("1024"),
		ContentType: "text/csv",
		Bucket:      "b1",
	}
	msg := model.NewOutboundMessage(info, &model.EventContext{Timestamp: "2024-01-01T00:00:00Z"})
	raw := gt.R1(msg.Encode()).NoError(t)
	gt.Equal(t, string(raw), `{"fileName":"a.csv","fileSize":1024,"fileFormat":"text/csv","bucketName":"b1","timestamp":"2024-01-01T00:00:00Z"}`)

	decoded := testutil.DecodeJSON(t, raw)
	gt.Equal(t, decoded, map[string]any{
		"fileName":   "a.csv",
		"fileSize":   float64(1024),
		"fileFormat": "text/csv",
		"bucketName": "b1",
		"timestamp":  "2024-01-01T00:00:00Z",
	})
}

func TestOutboundMessageEncodeNonASCII(t *testing.T) {
	info := model.FileInfo{
		Name:        "レポート.pdf",
		Size:        "10",
		ContentType: "application/pdf",
		Bucket:      "b1",
	}
	raw := gt.R1(model.NewOutboundMessage(info, nil).Encode()).NoError(t)

	decoded := testutil.DecodeJSON(t, raw)
	gt.Equal(t, decoded["fileName"], any("レポート.pdf"))
	gt.Equal(t, decoded["fileSize"], any("10"))
	gt.Equal(t, decoded["timestamp"], any(model.SentinelTimestamp))
}

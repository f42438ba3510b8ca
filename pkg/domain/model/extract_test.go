package model_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/gcsfwd/pkg/domain/model"
)

func TestExtract(t *testing.T) {
	type testCase struct {
		event       string
		expInfo     model.FileInfo
		expStrategy model.ExtractStrategy
		expOK       bool
		expMissing  []string
	}

	runTest := func(tc testCase) func(t *testing.T) {
		return func(t *testing.T) {
			event := gt.R1(model.DecodeInboundEvent([]byte(tc.event))).NoError(t)
			info, strategy, ok := model.Extract(event)
			gt.Equal(t, strategy, tc.expStrategy)
			gt.Equal(t, ok, tc.expOK)
			gt.Equal(t, info.Missing(), tc.expMissing)
			if tc.expOK {
				gt.Equal(t, info, tc.expInfo)
			}
		}
	}

	t.Run("flat", runTest(testCase{
		event: `{"name":"a.csv","size":1024,"contentType":"text/csv","bucket":"b1"}`,
		expInfo: model.FileInfo{
			Name:        "a.csv",
			Size:        json.Number("1024"),
			ContentType: "text/csv",
			Bucket:      "b1",
		},
		expStrategy: model.StrategyFlat,
		expOK:       true,
	}))

	t.Run("flat with string size", runTest(testCase{
		event: `{"name":"a.csv","size":"1024","contentType":"text/csv","bucket":"b1"}`,
		expInfo: model.FileInfo{
			Name:        "a.csv",
			Size:        "1024",
			ContentType: "text/csv",
			Bucket:      "b1",
		},
		expStrategy: model.StrategyFlat,
		expOK:       true,
	}))

	t.Run("nested", runTest(testCase{
		event: `{"data":{"name":"x.png","size":55,"contentType":"image/png","bucket":"b2"}}`,
		expInfo: model.FileInfo{
			Name:        "x.png",
			Size:        json.Number("55"),
			ContentType: "image/png",
			Bucket:      "b2",
		},
		expStrategy: model.StrategyNested,
		expOK:       true,
	}))

	t.Run("flat wins over nested when complete", runTest(testCase{
		event: `{"name":"a.csv","size":1,"contentType":"text/csv","bucket":"b1","data":{"name":"x.png","size":55,"contentType":"image/png","bucket":"b2"}}`,
		expInfo: model.FileInfo{
			Name:        "a.csv",
			Size:        json.Number("1"),
			ContentType: "text/csv",
			Bucket:      "b1",
		},
		expStrategy: model.StrategyFlat,
		expOK:       true,
	}))

	t.Run("partial nested result replaces partial flat result", runTest(testCase{
		event:       `{"name":"a.csv","size":1,"data":{"contentType":"image/png","bucket":"b2"}}`,
		expStrategy: model.StrategyNested,
		expOK:       false,
		expMissing:  []string{"name", "size"},
	}))

	t.Run("data is not a mapping", runTest(testCase{
		event:       `{"name":"a.csv","data":"payload"}`,
		expStrategy: model.StrategyFlat,
		expOK:       false,
		expMissing:  []string{"size", "contentType", "bucket"},
	}))

	t.Run("falsy values are missing", runTest(testCase{
		event:       `{"name":"","size":0,"contentType":null,"bucket":false}`,
		expStrategy: model.StrategyFlat,
		expOK:       false,
		expMissing:  []string{"name", "size", "contentType", "bucket"},
	}))

	t.Run("non-string name is missing", runTest(testCase{
		event:       `{"name":123,"size":1,"contentType":"text/csv","bucket":"b1"}`,
		expStrategy: model.StrategyFlat,
		expOK:       false,
		expMissing:  []string{"name"},
	}))

	t.Run("truthy values of unexpected types are missing", runTest(testCase{
		event:       `{"name":"a.csv","size":true,"contentType":["text/csv"],"bucket":{"id":"b1"}}`,
		expStrategy: model.StrategyFlat,
		expOK:       false,
		expMissing:  []string{"size", "contentType", "bucket"},
	}))
}

func TestDecodeInboundEventError(t *testing.T) {
	_, err := model.DecodeInboundEvent([]byte("invalid"))
	gt.Error(t, err)
	gt.S(t, err.Error()).Contains("failed to decode event: invalid input: ")
}

func TestDecodeInboundEventRejectsNonObject(t *testing.T) {
	for _, raw := range []string{`[]`, `null`, `"text"`, `invalid`} {
		_, err := model.DecodeInboundEvent([]byte(raw))
		gt.Error(t, err)
	}
}

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"
)

// DecodeJSON decodes src as a JSON object.
func DecodeJSON(t *testing.T, src []byte) map[string]any {
	t.Helper()

	var data map[string]any
	gt.NoError(t, json.Unmarshal(src, &data))
	return data
}

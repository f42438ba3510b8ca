package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gcsfwd/pkg/controller/cli"
	"github.com/m-mizutani/gt"
)

func writeEvent(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "event.json")
	gt.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestForwardWithoutPublisher(t *testing.T) {
	t.Setenv("GCP_PROJECT", "")
	t.Setenv("PUBSUB_TOPIC_ID", "")

	path := writeEvent(t, `{"name":"a.csv","size":1024,"contentType":"text/csv","bucket":"b1"}`)
	gt.NoError(t, cli.Run([]string{"gcsfwd", "forward", "--event", path, "--timestamp", "2024-01-01T00:00:00Z"}))
}

func TestForwardInvalidEvent(t *testing.T) {
	path := writeEvent(t, `not json`)
	gt.Error(t, cli.Run([]string{"gcsfwd", "forward", "--event", path}))
}

func TestForwardMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-file.json")
	gt.Error(t, cli.Run([]string{"gcsfwd", "forward", "--event", path}))
}

func TestInvalidLogLevel(t *testing.T) {
	path := writeEvent(t, `{}`)
	gt.Error(t, cli.Run([]string{"gcsfwd", "--log-level", "verbose", "forward", "--event", path}))
}

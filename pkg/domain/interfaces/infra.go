package interfaces

import (
	"context"

	"github.com/m-mizutani/opac"
)

// Publisher is bound to a single topic. Publish blocks until the backend
// acknowledges the message and returns its ID.
type Publisher interface {
	Publish(ctx context.Context, data []byte) (string, error)
}

type Policy interface {
	Query(ctx context.Context, query string, input, output any, options ...opac.QueryOption) error
}

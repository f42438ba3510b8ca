package pubsub

import (
	"context"

	ps "cloud.google.com/go/pubsub"
	"github.com/m-mizutani/goerr"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client publishes messages to a single Pub/Sub topic.
type Client struct {
	client *ps.Client
	topic  *ps.Topic
}

// New creates a Pub/Sub client bound to projectID and topicID. The topic is
// not looked up, so publishers without pubsub.topics.get permission work.
func New(ctx context.Context, projectID, topicID string, opts ...option.ClientOption) (*Client, error) {
	if projectID == "" {
		return nil, goerr.New("project ID is required")
	}
	if topicID == "" {
		return nil, goerr.New("topic ID is required")
	}

	client, err := ps.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Pub/Sub client").With("project_id", projectID)
	}

	return &Client{
		client: client,
		topic:  client.Topic(topicID),
	}, nil
}

// EmulatorOptions connects to a Pub/Sub emulator or other plaintext endpoint.
func EmulatorOptions(endpoint string) []option.ClientOption {
	return []option.ClientOption{
		option.WithEndpoint(endpoint),
		option.WithoutAuthentication(),
		option.WithGRPCDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
	}
}

// Publish sends data as one message and waits for the server to acknowledge it.
func (x *Client) Publish(ctx context.Context, data []byte) (string, error) {
	result := x.topic.Publish(ctx, &ps.Message{Data: data})
	id, err := result.Get(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "failed to publish message").With("topic", x.topic.String())
	}
	return id, nil
}

// Topic returns the fully qualified topic name.
func (x *Client) Topic() string { return x.topic.String() }

// Close flushes pending messages and releases the connection.
func (x *Client) Close() error {
	x.topic.Stop()
	if err := x.client.Close(); err != nil {
		return goerr.Wrap(err, "failed to close Pub/Sub client")
	}
	return nil
}

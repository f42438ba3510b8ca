package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gcsfwd/pkg/domain/types"
	"github.com/m-mizutani/gcsfwd/pkg/infra/pubsub"
	"github.com/m-mizutani/gcsfwd/pkg/utils/errutil"
	"github.com/m-mizutani/gcsfwd/pkg/utils/logging"
	"github.com/urfave/cli/v2"
	"google.golang.org/api/option"
)

// PubSub is the publisher binding. The binding is formed only when both
// project and topic are given.
type PubSub struct {
	projectID string
	topicID   string
	endpoint  string
}

func (x *PubSub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "project",
			Usage:       "Google Cloud project ID of the Pub/Sub topic",
			EnvVars:     []string{types.EnvProjectID},
			Destination: &x.projectID,
		},
		&cli.StringFlag{
			Name:        "topic",
			Usage:       "Pub/Sub topic ID to publish file attributes to",
			EnvVars:     []string{types.EnvTopicID},
			Destination: &x.topicID,
		},
		&cli.StringFlag{
			Name:        "pubsub-endpoint",
			Usage:       "Pub/Sub endpoint without TLS and authentication, e.g. emulator (localhost:8085)",
			EnvVars:     []string{"GCSFWD_PUBSUB_ENDPOINT"},
			Destination: &x.endpoint,
		},
	}
}

// Configure returns nil when the binding cannot be formed. Missing
// configuration disables publishing for the process lifetime instead of
// stopping it.
func (x *PubSub) Configure(ctx context.Context) *pubsub.Client {
	if x.projectID == "" || x.topicID == "" {
		logging.Default().Warn("Pub/Sub publishing is disabled, both project and topic are required",
			"env", []string{types.EnvProjectID, types.EnvTopicID},
			"pubsub", x,
		)
		return nil
	}

	var opts []option.ClientOption
	if x.endpoint != "" {
		opts = pubsub.EmulatorOptions(x.endpoint)
	}

	client, err := pubsub.New(ctx, x.projectID, x.topicID, opts...)
	if err != nil {
		errutil.Handle(ctx, "Pub/Sub publishing is disabled, failed to create client", err)
		return nil
	}

	logging.Default().Info("Pub/Sub publishing is enabled", "topic", client.Topic())
	return client
}

func (x *PubSub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("project", x.projectID),
		slog.String("topic", x.topicID),
		slog.String("endpoint", x.endpoint),
	)
}

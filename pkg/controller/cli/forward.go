package cli

import (
	"encoding/json"
	"io"
	"os"

	"github.com/m-mizutani/gcsfwd/pkg/controller/cli/config"
	"github.com/m-mizutani/gcsfwd/pkg/domain/model"
	"github.com/m-mizutani/gcsfwd/pkg/usecase"
	"github.com/m-mizutani/gcsfwd/pkg/utils/logging"
	"github.com/m-mizutani/goerr"
	"github.com/urfave/cli/v2"
)

func cmdForward() *cli.Command {
	var (
		eventFile string
		evCtx     model.EventContext

		pubsubCfg config.PubSub
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "event",
			Usage:       "Storage event JSON file. Read from stdin if '-' or not set",
			Aliases:     []string{"e"},
			Destination: &eventFile,
			Value:       "-",
		},
		&cli.StringFlag{
			Name:        "timestamp",
			Usage:       "Event timestamp of the context",
			Destination: &evCtx.Timestamp,
		},
		&cli.StringFlag{
			Name:        "event-id",
			Usage:       "Event ID of the context",
			Destination: &evCtx.EventID,
		},
		&cli.StringFlag{
			Name:        "event-type",
			Usage:       "Event type of the context",
			Destination: &evCtx.EventType,
		},
		&cli.StringFlag{
			Name:        "resource",
			Usage:       "Resource of the context",
			Destination: &evCtx.Resource,
		},
	}
	flags = append(flags, pubsubCfg.Flags()...)

	return &cli.Command{
		Name:    "forward",
		Usage:   "Forward one storage event and print the outcome",
		Aliases: []string{"f"},
		Flags:   flags,

		Action: func(c *cli.Context) error {
			raw, err := readEvent(eventFile)
			if err != nil {
				return err
			}

			event, err := model.DecodeInboundEvent(raw)
			if err != nil {
				return goerr.Wrap(err, "invalid event input").With("file", eventFile)
			}

			// The context is absent unless any of its attributes is given.
			var ctxArg *model.EventContext
			if evCtx != (model.EventContext{}) {
				ctxArg = &evCtx
			}

			var ucOptions []usecase.Option
			if client := pubsubCfg.Configure(c.Context); client != nil {
				defer func() {
					if err := client.Close(); err != nil {
						logging.Default().Warn("failed to close Pub/Sub client", "err", err)
					}
				}()
				ucOptions = append(ucOptions, usecase.WithPublisher(client))
			}

			outcome := usecase.New(ucOptions...).ForwardEvent(c.Context, event, ctxArg)

			encoder := json.NewEncoder(c.App.Writer)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(outcome); err != nil {
				return goerr.Wrap(err, "failed to write outcome")
			}

			return nil
		},
	}
}

func readEvent(path string) ([]byte, error) {
	if path == "-" || path == "" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read event from stdin")
		}
		return raw, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read event file").With("path", path)
	}
	return raw, nil
}

package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/gcsfwd/pkg/controller/cli/config"
	"github.com/m-mizutani/gcsfwd/pkg/controller/server"
	"github.com/m-mizutani/gcsfwd/pkg/usecase"
	"github.com/m-mizutani/gcsfwd/pkg/utils/logging"
	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/opac"
	"github.com/urfave/cli/v2"
)

func cmdServe() *cli.Command {
	var (
		addr          string
		policyFiles   cli.StringSlice
		validateToken bool
		tokenAudience string

		pubsubCfg config.PubSub
		sentryCfg config.Sentry
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address. If not set and PORT is given, listen on :$PORT",
			Aliases:     []string{"a"},
			EnvVars:     []string{"GCSFWD_ADDR"},
			Destination: &addr,
			Value:       "127.0.0.1:8080",
		},
		&cli.StringSliceFlag{
			Name:        "policy-file",
			Usage:       "Auth policy file path (Rego, package auth)",
			Aliases:     []string{"p"},
			EnvVars:     []string{"GCSFWD_POLICY_FILE"},
			Destination: &policyFiles,
		},
		&cli.BoolFlag{
			Name:        "validate-google-id-token",
			Usage:       "Verify Google ID token in Authorization header and pass claims to auth policy",
			EnvVars:     []string{"GCSFWD_VALIDATE_GOOGLE_ID_TOKEN"},
			Destination: &validateToken,
		},
		&cli.StringFlag{
			Name:        "google-id-token-audience",
			Usage:       "Expected audience of Google ID token",
			EnvVars:     []string{"GCSFWD_GOOGLE_ID_TOKEN_AUDIENCE"},
			Destination: &tokenAudience,
		},
	}
	flags = append(flags, pubsubCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Usage:   "Start HTTP server receiving storage events",
		Aliases: []string{"s"},
		Flags:   flags,

		Action: func(c *cli.Context) error {
			if !c.IsSet("addr") {
				if port := os.Getenv("PORT"); port != "" {
					addr = ":" + port
				}
			}

			if err := sentryCfg.Configure(); err != nil {
				return err
			}
			defer sentryCfg.Flush()

			var ucOptions []usecase.Option
			if client := pubsubCfg.Configure(c.Context); client != nil {
				defer func() {
					if err := client.Close(); err != nil {
						logging.Default().Warn("failed to close Pub/Sub client", "err", err)
					}
				}()
				ucOptions = append(ucOptions, usecase.WithPublisher(client))
			}
			uc := usecase.New(ucOptions...)

			var serverOptions []server.Option
			if len(policyFiles.Value()) > 0 {
				policy, err := opac.New(opac.Files(policyFiles.Value()...))
				if err != nil {
					return goerr.Wrap(err, "failed to load policy files").With("files", policyFiles.Value())
				}
				serverOptions = append(serverOptions, server.WithPolicy(policy))
			}
			if validateToken {
				serverOptions = append(serverOptions, server.WithGoogleIDTokenValidation(tokenAudience))
			}

			s := &http.Server{
				Addr:              addr,
				ReadHeaderTimeout: 3 * time.Second,
				Handler:           server.New(uc, serverOptions...),
			}

			errCh := make(chan error, 1)

			go func() {
				logging.Default().Info("Starting server", "addr", addr, "pubsub", &pubsubCfg)
				if err := s.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to listen")
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			select {
			case sig := <-sigCh:
				logging.Default().Info("Shutting down server", "signal", sig)
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := s.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server").With("signal", sig)
				}

			case err := <-errCh:
				return err
			}

			return nil
		},
	}
}

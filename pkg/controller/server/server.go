package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/gcsfwd/pkg/domain/interfaces"
	"github.com/m-mizutani/gcsfwd/pkg/domain/model"
	"github.com/m-mizutani/gcsfwd/pkg/domain/types"
	"github.com/m-mizutani/gcsfwd/pkg/utils/ctxutil"
)

type config struct {
	policy                interfaces.Policy
	validateGoogleIDToken bool
	idTokenAudience       string
}

type Option func(*config)

func WithPolicy(policy interfaces.Policy) Option {
	return func(cfg *config) {
		cfg.policy = policy
	}
}

// WithGoogleIDTokenValidation verifies a bearer Google ID token when present.
// An empty audience skips the audience check.
func WithGoogleIDTokenValidation(audience string) Option {
	return func(cfg *config) {
		cfg.validateGoogleIDToken = true
		cfg.idTokenAudience = audience
	}
}

func New(uc interfaces.UseCases, options ...Option) http.Handler {
	var cfg config
	for _, opt := range options {
		opt(&cfg)
	}

	route := chi.NewRouter()
	route.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK:" + types.AppVersion))
	})
	route.Group(func(r chi.Router) {
		r.Use(logger)
		if cfg.validateGoogleIDToken {
			r.Use(authGoogleIDToken(cfg.idTokenAudience))
		}
		if cfg.policy != nil {
			r.Use(authWithPolicy(cfg.policy))
		}

		r.Post("/", handleEvent(uc))
		r.Post("/event", handleEvent(uc))
	})

	return route
}

func handleError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	var xErr types.Error
	if errors.As(err, &xErr) {
		code = xErr.Code()
	}

	http.Error(w, err.Error(), code)
}

// handleEvent replies 200 for every JSON delivery, including malformed, skipped
// and failed ones, so that the platform does not redeliver the event.
func handleEvent(uc interfaces.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		delivery, err := model.NewDelivery(r)
		if err != nil {
			ctxutil.Logger(ctx).Warn("failed to decode event delivery", "err", err)
			handleError(w, err)
			return
		}

		logger := ctxutil.Logger(ctx).With("delivery", delivery.Kind)
		if delivery.Context != nil {
			logger = logger.With("event_id", delivery.Context.EventID)
		}
		ctx = ctxutil.WithLogger(ctx, logger)

		if delivery.Malformed != nil {
			logger.Warn("Malformed event delivery, skip",
				"err", delivery.Malformed,
				"payload", string(delivery.Raw),
			)
			writeOutcome(ctx, w, model.Outcome{
				Status: model.OutcomeSkipped,
				Reason: model.ReasonMalformedEvent,
			})
			return
		}

		writeOutcome(ctx, w, uc.ForwardEvent(ctx, delivery.Event, delivery.Context))
	}
}

func writeOutcome(ctx context.Context, w http.ResponseWriter, outcome model.Outcome) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(outcome); err != nil {
		ctxutil.Logger(ctx).Warn("failed to write response", "err", err)
	}
}

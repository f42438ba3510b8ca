package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/gcsfwd/pkg/domain/interfaces"
	"github.com/m-mizutani/gcsfwd/pkg/domain/model"
	"github.com/m-mizutani/gcsfwd/pkg/domain/types"
	"github.com/m-mizutani/gcsfwd/pkg/utils/ctxutil"
)

type middlewareFunc func(next http.Handler) http.Handler

const googleJWKSURL = "https://www.googleapis.com/oauth2/v3/certs"

func trimToken(token string) string {
	e := min(len(token), 8)
	return token[:e] + "..."
}

func validateGoogleIDToken(ctx context.Context, authHdr, audience string) (model.GoogleIDToken, error) {
	hdr := strings.SplitN(authHdr, " ", 2)

	// Skip if not Bearer token
	if len(hdr) != 2 || hdr[0] != "Bearer" {
		return nil, nil
	}

	set, err := jwk.Fetch(ctx, googleJWKSURL)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch Google JWK set")
	}

	token, err := jwt.ParseString(hdr[1], jwt.WithKeySet(set))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse JWT token as Google ID Token").With("token", trimToken(hdr[1]))
	}

	if audience != "" {
		if err := jwt.Validate(token, jwt.WithAudience(audience)); err != nil {
			return nil, goerr.Wrap(err, "audience of Google ID Token mismatched").With("audience", audience)
		}
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to convert JWT token to map").With("token", trimToken(hdr[1]))
	}

	return claims, nil
}

// authGoogleIDToken stores verified claims in the context. An invalid or
// missing token is left to the policy to reject.
func authGoogleIDToken(audience string) middlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := validateGoogleIDToken(r.Context(), r.Header.Get("Authorization"), audience)
			if claims == nil {
				if err != nil {
					ctxutil.Logger(r.Context()).Warn("failed to validate Google ID token", "err", err)
				}
				next.ServeHTTP(w, r)
				return
			}

			r = r.WithContext(ctxutil.WithGoogleIDToken(r.Context(), claims))
			next.ServeHTTP(w, r)
		})
	}
}

func authWithPolicy(policy interfaces.Policy) middlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			input := model.AuthQueryInput{
				Method: r.Method,
				Path:   r.URL.Path,
				Header: map[string]string{},
			}

			for key := range r.Header {
				input.Header[key] = r.Header.Get(key)
			}

			if claims := ctxutil.GoogleIDToken(r.Context()); claims != nil {
				input.Auth.Google = claims
			}

			var output model.AuthQueryOutput
			if err := policy.Query(r.Context(), "data.auth", input, &output); err != nil {
				handleError(w, err)
				return
			}
			ctxutil.Logger(r.Context()).Debug("auth query result", "input", input, "output", output)

			if !output.Allow {
				handleError(w, types.ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

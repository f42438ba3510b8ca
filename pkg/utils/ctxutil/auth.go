package ctxutil

import (
	"context"

	"github.com/m-mizutani/gcsfwd/pkg/domain/model"
)

type ctxGoogleIDTokenKey struct{}

func WithGoogleIDToken(ctx context.Context, token model.GoogleIDToken) context.Context {
	return context.WithValue(ctx, ctxGoogleIDTokenKey{}, token)
}

func GoogleIDToken(ctx context.Context) model.GoogleIDToken {
	token, ok := ctx.Value(ctxGoogleIDTokenKey{}).(model.GoogleIDToken)
	if !ok {
		return nil
	}
	return token
}

package errutil

import (
	"context"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/gcsfwd/pkg/utils/ctxutil"
)

// Handle reports err to Sentry (if initialized) and logs it with the goerr
// values and stack trace. It never returns the error to the caller.
func Handle(ctx context.Context, msg string, err error, attrs ...any) {
	var goErr *goerr.Error
	if err != nil {
		goErr = goerr.Unwrap(err)
	}

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("handler", msg)
		if goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(k, v)
			}
		}
	})
	evID := hub.CaptureException(err)

	args := append([]any{
		"error", err,
		"sentry.EventID", evID,
	}, attrs...)
	ctxutil.Logger(ctx).Error(msg, args...)
}

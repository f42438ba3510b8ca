package usecase

import (
	"context"

	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/gcsfwd/pkg/domain/model"
	"github.com/m-mizutani/gcsfwd/pkg/utils/ctxutil"
	"github.com/m-mizutani/gcsfwd/pkg/utils/errutil"
)

// ForwardEvent republishes file attributes of a storage event to the bound
// topic. It never returns an error: missing attributes and a missing publisher
// end as skipped, and any error or panic ends as failed after being logged.
func (x *UseCases) ForwardEvent(ctx context.Context, event model.InboundEvent, evCtx *model.EventContext) (outcome model.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			err := goerr.New("panic while forwarding event").With("recover", r)
			outcome = failed(ctx, model.ReasonInternalError, err, outcome)
		}
	}()

	logger := ctxutil.Logger(ctx)
	logger.Info("Received storage event", "event", event, "context", evCtx)

	info, strategy, ok := model.Extract(event)
	outcome.Strategy = strategy
	if !ok {
		logger.Warn("Missing one or more required file attributes (name, size, contentType, bucket), skip",
			"strategy", strategy,
			"missing", info.Missing(),
			"event", event,
		)
		outcome.Status = model.OutcomeSkipped
		outcome.Reason = model.ReasonMissingFields
		return outcome
	}
	logger.Info("Extracted file attributes", "strategy", strategy, "info", info)

	msg := model.NewOutboundMessage(info, evCtx)
	outcome.Message = &msg

	data, err := msg.Encode()
	if err != nil {
		return failed(ctx, model.ReasonInternalError, err, outcome)
	}

	if x.publisher == nil {
		logger.Warn("Publisher is not configured, skip publishing", "msg", msg)
		outcome.Status = model.OutcomeSkipped
		outcome.Reason = model.ReasonPublisherDisabled
		return outcome
	}

	msgID, err := x.publisher.Publish(ctx, data)
	if err != nil {
		return failed(ctx, model.ReasonPublishFailed, goerr.Wrap(err, "failed to publish message").With("msg", msg), outcome)
	}

	logger.Info("Published file attributes",
		"message_id", msgID,
		"file_name", msg.FileName,
		"file_size", msg.FileSize,
		"file_format", msg.FileFormat,
		"bucket_name", msg.BucketName,
	)
	outcome.Status = model.OutcomePublished
	outcome.MessageID = msgID
	return outcome
}

func failed(ctx context.Context, reason string, err error, outcome model.Outcome) model.Outcome {
	errutil.Handle(ctx, "failed to forward event", err, "strategy", outcome.Strategy, "reason", reason)

	outcome.Status = model.OutcomeFailed
	outcome.Reason = reason
	outcome.Err = err
	return outcome
}

package interfaces

import (
	"context"

	"github.com/m-mizutani/gcsfwd/pkg/domain/model"
)

type UseCases interface {
	ForwardEvent(ctx context.Context, event model.InboundEvent, evCtx *model.EventContext) model.Outcome
}

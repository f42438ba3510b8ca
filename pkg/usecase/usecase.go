package usecase

import "github.com/m-mizutani/gcsfwd/pkg/domain/interfaces"

// UseCases is immutable after New and safe for concurrent use.
type UseCases struct {
	publisher interfaces.Publisher
}

func New(options ...Option) *UseCases {
	uc := &UseCases{}
	for _, option := range options {
		option(uc)
	}

	return uc
}

type Option func(*UseCases)

// WithPublisher binds the topic publisher. Without it, every event is
// skipped with model.ReasonPublisherDisabled.
func WithPublisher(publisher interfaces.Publisher) Option {
	return func(uc *UseCases) {
		uc.publisher = publisher
	}
}

package model

type OutcomeStatus string

const (
	OutcomePublished OutcomeStatus = "published"
	OutcomeSkipped   OutcomeStatus = "skipped"
	OutcomeFailed    OutcomeStatus = "failed"
)

// Reasons are fixed strings. Error details stay in logs and error reports.
const (
	ReasonMissingFields     = "missing_fields"
	ReasonMalformedEvent    = "malformed_event"
	ReasonPublisherDisabled = "publisher_disabled"
	ReasonPublishFailed     = "publish_failed"
	ReasonInternalError     = "internal_error"
)

// Outcome is the terminal state of one forwarding invocation.
type Outcome struct {
	Status    OutcomeStatus    `json:"status"`
	Reason    string           `json:"reason,omitempty"`
	MessageID string           `json:"message_id,omitempty"`
	Strategy  ExtractStrategy  `json:"strategy,omitempty"`
	Message   *OutboundMessage `json:"message,omitempty"`
	Err       error            `json:"-"`
}

func (x Outcome) Published() bool { return x.Status == OutcomePublished }

package models

// FaqIntent classifies the outcome of resolving a free-text question.
type FaqIntent string

const (
	IntentAnswer          FaqIntent = "ANSWER"
	IntentSwitchToBooking FaqIntent = "SWITCH_TO_BOOKING"
)

// FaqRequest is the payload for the free-question side channel.
type FaqRequest struct {
	Question string `json:"question" binding:"required"`
}

// FaqOutcome is the normalized result of resolving a question. The
// resolver guarantees a well-formed outcome for any input; external
// service failures are absorbed by the local fallback.
type FaqOutcome struct {
	Intent FaqIntent `json:"intent"`
	Answer string    `json:"answer"`
}

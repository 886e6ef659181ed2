package flow

import "errors"

var (
	// ErrFlowInvariant marks precondition violations that the offered
	// controls should make unreachable (advancing with a required order
	// field still empty). Treated as a programming error, never as a
	// user-facing condition.
	ErrFlowInvariant = errors.New("booking flow invariant violated")

	// ErrInvalidSelection marks a selection that does not belong to the
	// current step's offered options. Recovered by re-prompting.
	ErrInvalidSelection = errors.New("selection not valid for current step")

	// ErrResolutionInFlight is returned when a free-text question
	// arrives while a previous one is still being resolved.
	ErrResolutionInFlight = errors.New("a question is already being resolved for this session")
)

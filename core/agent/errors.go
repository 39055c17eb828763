package agent

import "fmt"

// OrchestrationError reports a failure that stopped an agent run. It carries
// the agent name and the round index so that callers of nested agents can
// tell which leg of the conversation failed.
//
// Tool handler failures never surface as OrchestrationError: they are fed
// back to the model as tool results. Only provider call failures and
// registry-level faults (such as a call to a tool the agent does not have)
// end the run.
type OrchestrationError struct {
	// Agent is the name of the agent whose run failed.
	Agent string

	// Round is the zero-based index of the model call that failed, where
	// each tool dispatch round advances the index by one.
	Round int

	// Err is the underlying cause.
	Err error
}

func (e *OrchestrationError) Error() string {
	return fmt.Sprintf("agent %q: round %d: %v", e.Agent, e.Round, e.Err)
}

func (e *OrchestrationError) Unwrap() error {
	return e.Err
}

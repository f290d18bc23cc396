package compile

import "time"

// State is the position of a compilation in the pipeline.
type State int

const (
	// StateAssembled means the document text exists but nothing ran yet.
	StateAssembled State = iota
	// StateDispatched means the strategy was invoked.
	StateDispatched
	// StateSucceeded means the artifact exists at Result.Path.
	StateSucceeded
	// StateFailed means the pipeline stopped at the first failure.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateAssembled:
		return "assembled"
	case StateDispatched:
		return "dispatched"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Result describes one compilation.
type Result struct {
	// State is the final state reached.
	State State
	// Strategy is the name of the strategy that ran.
	Strategy string
	// Workspace is the scratch directory used, empty if preparation failed.
	Workspace string
	// Path is the artifact location. Set only when State is StateSucceeded.
	Path string
	// Cached reports whether the artifact came from the artifact cache.
	Cached bool
	// Duration is the wall time from start to final state.
	Duration time.Duration
}

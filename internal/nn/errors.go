package nn

import "errors"

var (
	ErrInvalidTopology   = errors.New("invalid topology")
	ErrDimensionMismatch = errors.New("mismatched number of input values")
	ErrTooFewLayers      = errors.New("too few layers")
	ErrNoInputNeurons    = errors.New("no input neurons present")
	ErrNoOutputNeurons   = errors.New("no output neurons present")

	// ErrNoConnectionCandidates is returned by structural mutations that
	// cannot find two neurons to join. The network is left untouched.
	ErrNoConnectionCandidates = errors.New("no connection candidates")
)

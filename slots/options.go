package slots

import "github.com/wippyai/wrapper/refs"

// Options configures encoding.
type Options struct {
	// Refs holds OBJECT values while they are on the stack. Required for
	// OBJECT parameters and results.
	Refs *refs.Table
	// AllowNarrowing encodes with Cast instead of Convert.
	AllowNarrowing bool
}

// DefaultOptions returns strict conversion with a fresh reference table.
func DefaultOptions() Options {
	return Options{
		Refs: refs.NewTable(),
	}
}

package generate

// Event is one progress report from a generation run. Consumers range
// over the event channel; the run advances only as fast as it is read.
type Event struct {
	State    State   `json:"state"`
	Message  string  `json:"message,omitempty"`
	Fraction float64 `json:"fraction"`

	// Set on the terminal event of a successful run.
	DocumentID string `json:"documentId,omitempty"`

	// Set when the run aborted.
	Error          string `json:"error,omitempty"`
	CompilerOutput string `json:"compilerOutput,omitempty"`

	Warnings []string `json:"warnings,omitempty"`
	Done     bool     `json:"done"`
}

package domain

// ExecutionOutcome is what the remote sandbox reports for one run of
// submitted code against one stdin. Exactly one of Output/Error is
// meaningful: a failed call carries Error and an empty Output. It is
// never persisted.
type ExecutionOutcome struct {
	Output string `json:"output"`
	Error  string `json:"error,omitempty"`
}

// Failed reports whether the sandbox call itself failed
func (o *ExecutionOutcome) Failed() bool {
	return o.Error != ""
}

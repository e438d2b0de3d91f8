package harness

// Step outcomes recorded in the trace.
const (
	OutcomeOK         = "ok"
	OutcomeNotFishing = "not_fishing"
	OutcomeError      = "error"
)

// TraceEvent records one executed step.
type TraceEvent struct {
	Seq      int     `json:"seq"`
	Action   string  `json:"action"`
	Angler   string  `json:"angler"`
	Location string  `json:"location,omitempty"`
	Species  string  `json:"species,omitempty"`
	Weight   float64 `json:"weight,omitempty"`
	Store    string  `json:"store,omitempty"`
	Outcome  string  `json:"outcome"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when every step expectation and assertion held.
	Pass bool `json:"pass"`

	// Trace contains the executed steps in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains failure messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends ev with the next sequence number.
func (r *Result) AddTrace(ev TraceEvent) {
	ev.Seq = len(r.Trace) + 1
	r.Trace = append(r.Trace, ev)
}

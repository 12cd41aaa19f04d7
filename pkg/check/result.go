package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
	StatusSkip Status = "SKIP" // informational or skipped, never fails a run
)

// Mark is the glyph class that prefixes a report line.
type Mark string

const (
	MarkPass  Mark = "pass"
	MarkFail  Mark = "fail"
	MarkInfo  Mark = "info"
	MarkItem  Mark = "item"
	MarkPlain Mark = "plain"
)

// Line is a single rendered line of a section.
type Line struct {
	Mark Mark
	Text string
}

// Result holds the outcome of a single report section.
type Result struct {
	Name     string // e.g., "Checking mysql driver..."
	Status   Status // OK, FAIL or SKIP
	Required bool   // only required results can fail a run
	Lines    []Line // human-readable lines
	Err      error  // underlying error for failures
}

// OK returns true if the check did not fail.
func (r Result) OK() bool {
	return r.Status != StatusFail
}

// Failed returns true if a required check failed.
func (r Result) Failed() bool {
	return r.Required && r.Status == StatusFail
}

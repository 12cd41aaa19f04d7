package check

// Checker is implemented by every report section.
// Each section inspects one aspect of the linked database support
// and returns a Result indicating success or failure.
type Checker interface {
	Run() Result
}

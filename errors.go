package flexfolio

import "fmt"

// ParseError reports a malformed or structurally incomplete Flex statement.
// It is fatal: no partial Statement is ever returned alongside it.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string { return "flex statement: " + e.Reason }

func parseErrorf(format string, args ...any) *ParseError {
	return &ParseError{Reason: fmt.Sprintf(format, args...)}
}

// NoDataError reports that a derivation had no rows to operate on, e.g.
// transactions requested for a selection where no model ever traded. It is
// surfaced rather than silently returning an empty result, so that a
// misconfigured model selector does not masquerade as an empty portfolio.
type NoDataError struct {
	Op       string
	Selector ModelSelector
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no data for %s (model selector %s)", e.Op, e.Selector)
}

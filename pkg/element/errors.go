package element

import "fmt"

// ValidationError reports a node whose required-field invariant was unmet
// when Build ran. The render aborts as a whole; no partial HTML is returned.
type ValidationError struct {
	Tag    string // tag name of the offending node
	Reason string // the specific violated rule
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid <%s> element: %s", e.Tag, e.Reason)
}

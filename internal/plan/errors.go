package plan

import (
	"errors"
	"fmt"
)

// ErrPlanMissing is returned when no usable document plan is reachable.
// Retrying without new planner output cannot succeed.
var ErrPlanMissing = errors.New("doc_structure not found: run the structure planner first")

// ParseError reports a textual plan candidate that could not be decoded as
// JSON. Snippet carries the head of the offending text for diagnosis.
type ParseError struct {
	Snippet string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse doc_structure as JSON: %s", e.Snippet)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ShapeError reports decoded plan data that fails schema validation. Field
// names the offending location.
type ShapeError struct {
	Field  string
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("invalid doc_structure: %s: %s", e.Field, e.Reason)
}

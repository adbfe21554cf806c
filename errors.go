package ics

import (
	"errors"
	"fmt"
)

// errNoColon is the fast-path rejection for lines with no ":" at all.
var errNoColon = errors.New(`no ":" in line`)

// A ParseError reports a logical line that does not match the
// content-line grammar. Line holds the offending line as received.
type ParseError struct {
	Line   string
	Reason error
}

func (e *ParseError) Error() string {
	if e.Reason != nil {
		return fmt.Sprintf("unable to parse %q: %v", e.Line, e.Reason)
	}
	return fmt.Sprintf("unable to parse %q", e.Line)
}

func (e *ParseError) Unwrap() error { return e.Reason }

// A StructureError reports a BEGIN/END nesting violation: an END whose
// value does not match the open container, or input ending while a
// container is still open. In the latter case Actual is empty.
type StructureError struct {
	Expected string
	Actual   string
}

func (e *StructureError) Error() string {
	if e.Actual == "" {
		return fmt.Sprintf("missing END for %s", e.Expected)
	}
	return fmt.Sprintf("expected END:%s, got END:%s", e.Expected, e.Actual)
}

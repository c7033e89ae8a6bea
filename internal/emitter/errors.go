package emitter

import "fmt"

// UnsupportedNodeError is returned when the dispatch table has no
// formatter for a node's Type. No output is considered valid once this
// occurs.
type UnsupportedNodeError struct {
	Kind string
}

func (e *UnsupportedNodeError) Error() string {
	return fmt.Sprintf("emitter: no formatter for kind %q", e.Kind)
}

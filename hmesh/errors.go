package hmesh

import (
	"errors"
	"fmt"
)

// ErrorKind distinguishes the broad category of failure a GraphError
// carries.
type ErrorKind int

const (
	// TopologyNotFound: a key passed in does not resolve to a live entity.
	TopologyNotFound ErrorKind = iota
	// TopologyMalformed: the snapshot found storage violating an invariant
	// (a programmer bug, or inconsistent-mode misuse).
	TopologyMalformed
	// TopologyConflict: the requested change would duplicate a face,
	// reassign a half-edge's face, or otherwise collide with existing
	// topology.
	TopologyConflict
	// ArityConflict: an operation's arity precondition is not met.
	ArityConflict
	// GeometryInvalid: the geometry delegate reported failure (e.g. a
	// degenerate normal).
	GeometryInvalid
)

func (k ErrorKind) String() string {
	switch k {
	case TopologyNotFound:
		return "TopologyNotFound"
	case TopologyMalformed:
		return "TopologyMalformed"
	case TopologyConflict:
		return "TopologyConflict"
	case ArityConflict:
		return "ArityConflict"
	case GeometryInvalid:
		return "GeometryInvalid"
	default:
		return "UnknownErrorKind"
	}
}

// GraphError is the single error type the core surfaces to callers: a Kind
// drawn from a closed enum plus a human-readable Detail string.
type GraphError struct {
	Kind ErrorKind

	// Detail is a short, human-readable description of what failed.
	Detail string

	// Wrapped is an optional underlying error, e.g. one returned by a
	// user-supplied Geometry implementation.
	Wrapped error
}

func (e *GraphError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("hmesh: %s: %s: %v", e.Kind, e.Detail, e.Wrapped)
	}
	return fmt.Sprintf("hmesh: %s: %s", e.Kind, e.Detail)
}

func (e *GraphError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a GraphError of the same Kind, so that
// errors.Is(err, &GraphError{Kind: TopologyNotFound}) works without callers
// needing to compare Detail strings.
func (e *GraphError) Is(target error) bool {
	var other *GraphError
	if errors.As(target, &other) {
		return other.Kind == e.Kind
	}
	return false
}

func newError(kind ErrorKind, detail string) *GraphError {
	return &GraphError{Kind: kind, Detail: detail}
}

func wrapError(kind ErrorKind, detail string, err error) *GraphError {
	return &GraphError{Kind: kind, Detail: detail, Wrapped: err}
}

func newErrorf(kind ErrorKind, format string, args ...any) *GraphError {
	return &GraphError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// Sentinel kind markers usable with errors.Is, e.g.:
//
//	if errors.Is(err, ErrNotFound) { ... }
var (
	ErrNotFound        = &GraphError{Kind: TopologyNotFound, Detail: "sentinel"}
	ErrMalformed       = &GraphError{Kind: TopologyMalformed, Detail: "sentinel"}
	ErrConflict        = &GraphError{Kind: TopologyConflict, Detail: "sentinel"}
	ErrArity           = &GraphError{Kind: ArityConflict, Detail: "sentinel"}
	ErrGeometryInvalid = &GraphError{Kind: GeometryInvalid, Detail: "sentinel"}
)

package hmesh

import (
	"errors"
	"testing"
)

func TestGraphErrorIsMatchesByKindOnly(t *testing.T) {
	err := newErrorf(TopologyNotFound, "vertex %s missing", VertexKey(7))

	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected errors.Is to match on Kind regardless of Detail")
	}
	if errors.Is(err, ErrConflict) {
		t.Errorf("expected errors.Is to reject a different Kind")
	}
}

func TestGraphErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := wrapError(GeometryInvalid, "computing normal", inner)

	if !errors.Is(err, inner) {
		t.Errorf("expected errors.Is to reach the wrapped error")
	}
	if errors.Unwrap(err) != inner {
		t.Errorf("expected Unwrap to return the wrapped error")
	}
}

func TestErrorKindString(t *testing.T) {
	cases := map[ErrorKind]string{
		TopologyNotFound:  "TopologyNotFound",
		TopologyMalformed: "TopologyMalformed",
		TopologyConflict:  "TopologyConflict",
		ArityConflict:     "ArityConflict",
		GeometryInvalid:   "GeometryInvalid",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}

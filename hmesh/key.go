package hmesh

import "fmt"

// VertexKey, EdgeKey, and FaceKey are opaque, totally ordered identifiers for
// entities owned by a Mesh's Storage. Keys are stable for the lifetime of the
// entity they name and are never reused, even after removal.
//
// The zero value of each key type is reserved to mean "absent" and is never
// assigned to a live entity. This lets optional cross-references (a vertex's
// outgoing edge, an edge's opposite or incident face) be stored as plain
// values instead of a pointer or an Option wrapper.
type (
	VertexKey uint64
	EdgeKey   uint64
	FaceKey   uint64
)

// IsValid reports whether the key names a (potentially removed) entity
// rather than standing in for "absent".
func (k VertexKey) IsValid() bool { return k != 0 }
func (k EdgeKey) IsValid() bool   { return k != 0 }
func (k FaceKey) IsValid() bool   { return k != 0 }

func (k VertexKey) String() string { return fmt.Sprintf("v%d", uint64(k)) }
func (k EdgeKey) String() string   { return fmt.Sprintf("e%d", uint64(k)) }
func (k FaceKey) String() string   { return fmt.Sprintf("f%d", uint64(k)) }

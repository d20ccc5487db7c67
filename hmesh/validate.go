package hmesh

import "fmt"

// validate.go composes the consistency checks a caller can run over a mesh
// to catch a malformed topology early. This is an opt-in debugging aid
// rather than something the mutation transactions run on every commit, since
// full revalidation after every mutation is too expensive to do implicitly.

// Consistent reports whether the mesh's topology satisfies the half-edge
// invariants every mutation in this package is written to preserve:
// opposite-of-opposite symmetry, a Next cycle of edges sharing one face, and
// every edge's Origin and Face resolving to live entities.
func (m *Mesh[V, E, F]) Consistent() error {
	for _, ek := range m.edges.Keys() {
		rec, _ := m.edges.Get(ek)

		if !m.vertices.Contains(rec.Origin) {
			return newErrorf(TopologyMalformed, "edge %s has dangling origin %s", ek, rec.Origin)
		}
		if rec.Face.IsValid() && !m.faces.Contains(rec.Face) {
			return newErrorf(TopologyMalformed, "edge %s has dangling face %s", ek, rec.Face)
		}
		if !m.edges.Contains(rec.Next) {
			return newErrorf(TopologyMalformed, "edge %s has dangling next %s", ek, rec.Next)
		}

		if rec.Opposite.IsValid() {
			if !m.edges.Contains(rec.Opposite) {
				return newErrorf(TopologyMalformed, "edge %s has dangling opposite %s", ek, rec.Opposite)
			}
			oppRec, _ := m.edges.Get(rec.Opposite)
			if oppRec.Opposite != ek {
				return newErrorf(TopologyMalformed, "edge %s and %s disagree about being opposite", ek, rec.Opposite)
			}
		}

		if err := m.checkFaceLoopCloses(ek); err != nil {
			return err
		}
	}

	for _, vk := range m.vertices.Keys() {
		rec, _ := m.vertices.Get(vk)
		if rec.Edge.IsValid() && !m.edges.Contains(rec.Edge) {
			return newErrorf(TopologyMalformed, "vertex %s has dangling edge %s", vk, rec.Edge)
		}
	}

	for _, fk := range m.faces.Keys() {
		rec, _ := m.faces.Get(fk)
		if !m.edges.Contains(rec.Edge) {
			return newErrorf(TopologyMalformed, "face %s has dangling edge %s", fk, rec.Edge)
		}
		edgeRec, _ := m.edges.Get(rec.Edge)
		if edgeRec.Face != fk {
			return newErrorf(TopologyMalformed, "face %s's edge %s does not point back to it", fk, rec.Edge)
		}
	}

	return nil
}

// checkFaceLoopCloses walks Next starting from start and fails if an edge
// on the way bounds a different face than start, or if the walk does not
// return to start within a number of steps bounded by the total edge count
// (a Next cycle that never closes would otherwise spin forever).
func (m *Mesh[V, E, F]) checkFaceLoopCloses(start EdgeKey) error {
	limit := m.edges.Len() + 1
	startRec, _ := m.edges.Get(start)
	current := start
	for i := 0; i < limit; i++ {
		rec, _ := m.edges.Get(current)
		if rec.Face != startRec.Face {
			return newErrorf(TopologyMalformed, "edge %s's face loop mixes faces %s and %s", start, startRec.Face, rec.Face)
		}
		current = rec.Next
		if current == start {
			return nil
		}
	}
	return newErrorf(TopologyMalformed, "edge %s's face loop does not close within %d steps", start, limit)
}

// String renders a one-line summary of the mesh's size, used in error
// messages and debugging output.
func (s Stats) String() string {
	return fmt.Sprintf("%d vertices, %d edges, %d faces", s.Vertices, s.Edges, s.Faces)
}

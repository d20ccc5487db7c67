package hmesh

// VertexView is a read-oriented handle onto one vertex of a Mesh. It holds no
// data of its own beyond the key: every accessor resolves through the owning
// Mesh's Storage.
type VertexView[V, E, F any] struct {
	mesh *Mesh[V, E, F]
	key  VertexKey
}

// Key returns the key this view resolves through.
func (v VertexView[V, E, F]) Key() VertexKey { return v.key }

// Payload returns the vertex's geometry payload.
func (v VertexView[V, E, F]) Payload() V {
	rec, _ := v.mesh.vertices.Get(v.key)
	return rec.Payload
}

// Position returns the vertex's position via the mesh's Geometry delegate.
func (v VertexView[V, E, F]) Position() Vector3 {
	return v.mesh.geometry.AsPosition(v.Payload())
}

// SetPayload replaces the vertex's geometry payload in place.
func (v VertexView[V, E, F]) SetPayload(payload V) {
	rec, _ := v.mesh.vertices.Get(v.key)
	rec.Payload = payload
}

// LeadingEdge returns the half-edge stored as this vertex's outgoing edge, or
// ok=false if the vertex is isolated (should not occur for a vertex reachable
// from any face).
func (v VertexView[V, E, F]) LeadingEdge() (EdgeView[V, E, F], bool) {
	rec, _ := v.mesh.vertices.Get(v.key)
	if !rec.Edge.IsValid() {
		return EdgeView[V, E, F]{}, false
	}
	return EdgeView[V, E, F]{mesh: v.mesh, key: rec.Edge}, true
}

// IncomingEdges returns a circulator over every half-edge pointing at this
// vertex, ordered by repeatedly applying the recurrence
// incoming(i+1) = opposite(next(incoming(i))) starting from the opposite of
// the vertex's leading edge.
//
// At a boundary vertex (one incident to a half-edge with no opposite) the
// recurrence cannot proceed past that half-edge and the circulator simply
// stops short of a full loop, yielding fewer edges than the vertex's true
// incidence count rather than raising an error (see DESIGN.md, Open
// Question 2).
func (v VertexView[V, E, F]) IncomingEdges() *IncomingEdgeCirculator[V, E, F] {
	leading, ok := v.LeadingEdge()
	if !ok {
		return &IncomingEdgeCirculator[V, E, F]{mesh: v.mesh, done: true}
	}
	rec, _ := v.mesh.edges.Get(leading.key)
	if !rec.Opposite.IsValid() {
		return &IncomingEdgeCirculator[V, E, F]{mesh: v.mesh, done: true}
	}
	return &IncomingEdgeCirculator[V, E, F]{
		mesh:       v.mesh,
		breadcrumb: rec.Opposite,
		next:       rec.Opposite,
	}
}

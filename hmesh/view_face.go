package hmesh

// FaceView is a read-oriented handle onto one face of a Mesh, the same view
// shape as VertexView and EdgeView.
type FaceView[V, E, F any] struct {
	mesh *Mesh[V, E, F]
	key  FaceKey
}

// Key returns the key this view resolves through.
func (f FaceView[V, E, F]) Key() FaceKey { return f.key }

// Payload returns the face's geometry payload.
func (f FaceView[V, E, F]) Payload() F {
	rec, _ := f.mesh.faces.Get(f.key)
	return rec.Payload
}

// SetPayload replaces the face's geometry payload in place.
func (f FaceView[V, E, F]) SetPayload(payload F) {
	rec, _ := f.mesh.faces.Get(f.key)
	rec.Payload = payload
}

// LeadingEdge returns one half-edge bounding this face.
func (f FaceView[V, E, F]) LeadingEdge() EdgeView[V, E, F] {
	rec, _ := f.mesh.faces.Get(f.key)
	return EdgeView[V, E, F]{mesh: f.mesh, key: rec.Edge}
}

// Edges returns a circulator over every half-edge bounding this face, in
// loop order starting from LeadingEdge.
func (f FaceView[V, E, F]) Edges() *EdgeCirculator[V, E, F] {
	leading := f.LeadingEdge().key
	return &EdgeCirculator[V, E, F]{mesh: f.mesh, breadcrumb: leading, next: leading}
}

// Vertices returns a circulator over every vertex bounding this face, in
// loop order, by projecting each bounding half-edge to its Origin.
func (f FaceView[V, E, F]) Vertices() *FaceVertexCirculator[V, E, F] {
	return &FaceVertexCirculator[V, E, F]{edges: f.Edges()}
}

// NeighboringFaces returns a circulator over every face sharing a bounding
// edge with this face. A bounding half-edge with no opposite (a boundary
// edge) or whose opposite has no incident face is skipped rather than
// terminating the circulation early.
func (f FaceView[V, E, F]) NeighboringFaces() *FaceCirculator[V, E, F] {
	leading := f.LeadingEdge().key
	return &FaceCirculator[V, E, F]{mesh: f.mesh, breadcrumb: leading, next: leading}
}

// Arity returns the number of edges (equivalently, vertices) bounding this
// face.
func (f FaceView[V, E, F]) Arity() int {
	n := 0
	circ := f.Edges()
	for {
		if _, ok := circ.Next(); !ok {
			break
		}
		n++
	}
	return n
}

// Positions returns the positions of this face's vertices in loop order, for
// feeding to the mesh's Geometry delegate.
func (f FaceView[V, E, F]) Positions() []Vector3 {
	var out []Vector3
	circ := f.Vertices()
	for {
		vv, ok := circ.Next()
		if !ok {
			break
		}
		out = append(out, vv.Position())
	}
	return out
}

// Centroid returns this face's centroid via the mesh's Geometry delegate.
func (f FaceView[V, E, F]) Centroid() (Vector3, error) {
	return f.mesh.geometry.FaceCentroid(f.Positions())
}

// Normal returns this face's normal via the mesh's Geometry delegate.
func (f FaceView[V, E, F]) Normal() (Vector3, error) {
	return f.mesh.geometry.FaceNormal(f.Positions())
}

// Region returns a RegionView over this face's leading edge and this face.
func (f FaceView[V, E, F]) Region() RegionView[V, E, F] {
	return RegionView[V, E, F]{mesh: f.mesh, edge: f.LeadingEdge().key, face: f.key}
}

// FaceTopology is a cheap, storage-independent snapshot of a face's bounding
// half-edge loop, useful for comparing two faces' shapes or recording a loop
// without holding a live view into the mesh.
type FaceTopology struct {
	Face  FaceKey
	Edges []EdgeKey
}

// Arity returns the number of edges captured in this snapshot.
func (t FaceTopology) Arity() int { return len(t.Edges) }

// Topology captures this face's current bounding edge loop as a detached
// FaceTopology value.
func (f FaceView[V, E, F]) Topology() FaceTopology {
	var edges []EdgeKey
	circ := f.Edges()
	for {
		ev, ok := circ.Next()
		if !ok {
			break
		}
		edges = append(edges, ev.Key())
	}
	return FaceTopology{Face: f.key, Edges: edges}
}

package hmesh

// Mesh is a 2-manifold half-edge surface representation parameterized over
// three user payload types: V for vertices, E for edges, and F for faces.
// It owns three independent Storage arenas and a Geometry delegate used by
// the mutation plans (insert_face, join_faces, triangulate_face,
// extrude_face) whenever a position, centroid, or normal is needed.
//
// Mesh is single-threaded and exclusive-ownership: callers must not share a
// Mesh across goroutines without external synchronization, and no lock is
// held across an operation boundary (see DESIGN.md, Open Question 4).
type Mesh[V, E, F any] struct {
	vertices *Storage[VertexKey, Vertex[V]]
	edges    *Storage[EdgeKey, Edge[E]]
	faces    *Storage[FaceKey, Face[F]]

	geometry Geometry[V]
}

// NewMesh creates an empty Mesh using the given Geometry delegate.
func NewMesh[V, E, F any](geometry Geometry[V]) *Mesh[V, E, F] {
	return &Mesh[V, E, F]{
		vertices: NewStorage[VertexKey, Vertex[V]](),
		edges:    NewStorage[EdgeKey, Edge[E]](),
		faces:    NewStorage[FaceKey, Face[F]](),
		geometry: geometry,
	}
}

// VertexCount returns the number of live vertices.
func (m *Mesh[V, E, F]) VertexCount() int { return m.vertices.Len() }

// EdgeCount returns the number of live half-edges (each geometric edge
// contributes two, unless it lies on a boundary with no opposite inserted).
func (m *Mesh[V, E, F]) EdgeCount() int { return m.edges.Len() }

// FaceCount returns the number of live faces.
func (m *Mesh[V, E, F]) FaceCount() int { return m.faces.Len() }

// Stats is a point-in-time snapshot of a Mesh's size.
type Stats struct {
	Vertices int
	Edges    int
	Faces    int
}

// Stats returns the current size of the mesh.
func (m *Mesh[V, E, F]) Stats() Stats {
	return Stats{
		Vertices: m.VertexCount(),
		Edges:    m.EdgeCount(),
		Faces:    m.FaceCount(),
	}
}

// EulerCharacteristic returns V - E/2 + F, the Euler characteristic computed
// over geometric (not half-)edges.
func (m *Mesh[V, E, F]) EulerCharacteristic() int {
	return m.VertexCount() - m.EdgeCount()/2 + m.FaceCount()
}

// Clone returns a deep, key-preserving copy of the mesh: every vertex, edge,
// and face keeps its key, but no storage is shared with the receiver. The
// mutation transactions take the same kind of key-preserving copy of each
// Storage as their rollback snapshot (see mutation.go).
func (m *Mesh[V, E, F]) Clone() *Mesh[V, E, F] {
	return &Mesh[V, E, F]{
		vertices: m.vertices.Clone(),
		edges:    m.edges.Clone(),
		faces:    m.faces.Clone(),
		geometry: m.geometry,
	}
}

// VertexKeys returns every live vertex key, in ascending (insertion) order.
func (m *Mesh[V, E, F]) VertexKeys() []VertexKey { return m.vertices.Keys() }

// EdgeKeys returns every live half-edge key, in ascending (insertion) order.
func (m *Mesh[V, E, F]) EdgeKeys() []EdgeKey { return m.edges.Keys() }

// FaceKeys returns every live face key, in ascending (insertion) order.
func (m *Mesh[V, E, F]) FaceKeys() []FaceKey { return m.faces.Keys() }

// Vertex returns a read-only view of the vertex named by key.
func (m *Mesh[V, E, F]) Vertex(key VertexKey) (VertexView[V, E, F], error) {
	if _, ok := m.vertices.Get(key); !ok {
		return VertexView[V, E, F]{}, newErrorf(TopologyNotFound, "no such vertex: %s", key)
	}
	return VertexView[V, E, F]{mesh: m, key: key}, nil
}

// Edge returns a read-only view of the half-edge named by key.
func (m *Mesh[V, E, F]) Edge(key EdgeKey) (EdgeView[V, E, F], error) {
	if _, ok := m.edges.Get(key); !ok {
		return EdgeView[V, E, F]{}, newErrorf(TopologyNotFound, "no such edge: %s", key)
	}
	return EdgeView[V, E, F]{mesh: m, key: key}, nil
}

// Face returns a read-only view of the face named by key.
func (m *Mesh[V, E, F]) Face(key FaceKey) (FaceView[V, E, F], error) {
	if _, ok := m.faces.Get(key); !ok {
		return FaceView[V, E, F]{}, newErrorf(TopologyNotFound, "no such face: %s", key)
	}
	return FaceView[V, E, F]{mesh: m, key: key}, nil
}

// FromFlatBuffers builds a Mesh from a flat vertex buffer and a flat index
// buffer: positions holds each distinct vertex payload once, and indices
// holds polygon loops concatenated back to back with polygonSizes giving
// each loop's arity in order. This is the inverse of FlatIndexVertices
// (index.go).
func FromFlatBuffers[V, E, F any](geometry Geometry[V], positions []V, indices []int, polygonSizes []int) (*Mesh[V, E, F], error) {
	m := NewMesh[V, E, F](geometry)

	vkeys := make([]VertexKey, len(positions))
	for i, p := range positions {
		vkeys[i] = m.vertices.Insert(Vertex[V]{Payload: p})
	}

	offset := 0
	for _, size := range polygonSizes {
		if offset+size > len(indices) {
			return nil, newErrorf(TopologyMalformed, "index buffer too short for polygon of size %d at offset %d", size, offset)
		}
		loop := make([]VertexKey, size)
		for i := 0; i < size; i++ {
			idx := indices[offset+i]
			if idx < 0 || idx >= len(vkeys) {
				return nil, newErrorf(TopologyMalformed, "index %d out of range [0,%d)", idx, len(vkeys))
			}
			loop[i] = vkeys[idx]
		}
		offset += size
		var ePayload E
		var fPayload F
		if _, err := m.InsertFace(loop, ePayload, fPayload); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// FromStructuredBuffers builds a Mesh from a structured polygon stream: each
// inner slice of polygons is one loop of vertex payloads. Payloads that
// compare equal are merged into a single vertex, so a raw polygon stream
// can be passed directly without a prior indexing pass.
func FromStructuredBuffers[V comparable, E, F any](geometry Geometry[V], polygons [][]V) (*Mesh[V, E, F], error) {
	m := NewMesh[V, E, F](geometry)
	seen := make(map[V]VertexKey)

	for _, polygon := range polygons {
		loop := make([]VertexKey, len(polygon))
		for i, payload := range polygon {
			key, ok := seen[payload]
			if !ok {
				key = m.vertices.Insert(Vertex[V]{Payload: payload})
				seen[payload] = key
			}
			loop[i] = key
		}
		var ePayload E
		var fPayload F
		if _, err := m.InsertFace(loop, ePayload, fPayload); err != nil {
			return nil, err
		}
	}

	return m, nil
}

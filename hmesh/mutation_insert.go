package hmesh

// mutation_insert.go implements InsertFace: inserting a new face from a
// loop of vertex keys, welding each new half-edge to an existing boundary
// half-edge running the opposite direction wherever one already exists.

// insertFacePlan is the cache computed by InsertFace's snapshot phase:
// everything the apply phase needs, precomputed while validation can still
// fail.
type insertFacePlan[E any] struct {
	loop     []VertexKey
	opposite []EdgeKey // opposite[i] is the existing boundary half-edge pairing with new edge i, or 0
	payload  E
}

// InsertFace inserts a new face bounded by loop, a closed cycle of existing
// vertex keys given in order, connected by freshly created half-edges. Any
// edge of the new face that shares its two endpoints (in reverse order) with
// an existing boundary half-edge is linked to it as Opposite, joining the
// new face onto the existing surface; edges with no such match become new
// boundary half-edges of the growing mesh.
//
// loop must name at least three distinct, live vertices, and no two
// consecutive vertices may already be joined by a half-edge running in the
// same direction: any such existing half-edge, whether or not it bounds a
// face, is rejected with TopologyConflict and is never reused.
func (m *Mesh[V, E, F]) InsertFace(loop []VertexKey, edgePayload E, facePayload F) (FaceView[V, E, F], error) {
	plan, err := m.snapshotInsertFace(loop, edgePayload)
	if err != nil {
		return FaceView[V, E, F]{}, err
	}

	key, err := commitWith(m, func(mu *mutation[V, E, F]) FaceKey {
		return applyInsertFace(mu, plan, facePayload)
	})
	if err != nil {
		return FaceView[V, E, F]{}, err
	}

	return FaceView[V, E, F]{mesh: m, key: key}, nil
}

func (m *Mesh[V, E, F]) snapshotInsertFace(loop []VertexKey, edgePayload E) (insertFacePlan[E], error) {
	if len(loop) < 3 {
		return insertFacePlan[E]{}, newErrorf(ArityConflict, "insert_face requires at least 3 vertices, got %d", len(loop))
	}

	seen := make(map[VertexKey]bool, len(loop))
	for _, v := range loop {
		if !m.vertices.Contains(v) {
			return insertFacePlan[E]{}, newErrorf(TopologyNotFound, "no such vertex: %s", v)
		}
		if seen[v] {
			return insertFacePlan[E]{}, newErrorf(ArityConflict, "insert_face loop repeats vertex %s", v)
		}
		seen[v] = true
	}

	n := len(loop)
	opposite := make([]EdgeKey, n)
	for i := 0; i < n; i++ {
		origin := loop[i]
		dest := loop[(i+1)%n]

		if existing, ok := m.edgeBetween(origin, dest); ok {
			rec, _ := m.edges.Get(existing)
			if rec.Face.IsValid() {
				return insertFacePlan[E]{}, newErrorf(TopologyConflict, "edge %s->%s already bounds a face", origin, dest)
			}
			return insertFacePlan[E]{}, newErrorf(TopologyConflict, "edge %s->%s already exists", origin, dest)
		}

		if rev, ok := m.edgeBetween(dest, origin); ok {
			revRec, _ := m.edges.Get(rev)
			if revRec.Opposite.IsValid() {
				return insertFacePlan[E]{}, newErrorf(TopologyConflict, "edge %s->%s already has an opposite", dest, origin)
			}
			opposite[i] = rev
		}
	}

	return insertFacePlan[E]{loop: loop, opposite: opposite, payload: edgePayload}, nil
}

// edgeBetween returns the half-edge from origin to dest, if one exists. This
// scans live edges linearly rather than maintaining a persistent by-pair
// index, since InsertFace runs far less often than per-edge lookups inside
// a tight loop.
func (m *Mesh[V, E, F]) edgeBetween(origin, dest VertexKey) (EdgeKey, bool) {
	for _, key := range m.edges.Keys() {
		rec, _ := m.edges.Get(key)
		if rec.Origin != origin {
			continue
		}
		nextRec, ok := m.edges.Get(rec.Next)
		if !ok {
			continue
		}
		if nextRec.Origin == dest {
			return key, true
		}
	}
	return 0, false
}

func applyInsertFace[V, E, F any](mu *mutation[V, E, F], plan insertFacePlan[E], facePayload F) FaceKey {
	n := len(plan.loop)
	edgeKeys := make([]EdgeKey, n)

	for i := 0; i < n; i++ {
		edgeKeys[i] = mu.edges.Insert(Edge[E]{Origin: plan.loop[i], Payload: plan.payload})
	}
	for i := 0; i < n; i++ {
		rec, _ := mu.edges.Get(edgeKeys[i])
		rec.Next = edgeKeys[(i+1)%n]

		if plan.opposite[i].IsValid() {
			rec.Opposite = plan.opposite[i]
			oppRec, _ := mu.edges.Get(plan.opposite[i])
			oppRec.Opposite = edgeKeys[i]
		}
	}

	faceKey := mu.faces.Insert(Face[F]{Edge: edgeKeys[0], Payload: facePayload})
	for i := 0; i < n; i++ {
		rec, _ := mu.edges.Get(edgeKeys[i])
		rec.Face = faceKey

		vrec, ok := mu.vertices.Get(plan.loop[i])
		if ok && !vrec.Edge.IsValid() {
			vrec.Edge = edgeKeys[i]
		}
	}

	return faceKey
}

package hmesh

// RegionView couples a half-edge key with an optional face key. The
// boundary case (an edge with no incident face) is a first-class, valid
// region, which GetOrInsertFace and GetOrInsertFaceWith can close with a new
// face.
type RegionView[V, E, F any] struct {
	mesh *Mesh[V, E, F]
	edge EdgeKey
	face FaceKey
}

// Edge returns the half-edge this region is anchored on.
func (r RegionView[V, E, F]) Edge() EdgeView[V, E, F] {
	return EdgeView[V, E, F]{mesh: r.mesh, key: r.edge}
}

// Face returns the region's face and ok=true, or ok=false if the region has
// no face yet.
func (r RegionView[V, E, F]) Face() (FaceView[V, E, F], bool) {
	if !r.face.IsValid() {
		return FaceView[V, E, F]{}, false
	}
	return FaceView[V, E, F]{mesh: r.mesh, key: r.face}, true
}

// IntoFace returns the region's face, or ok=false if absent. It behaves
// identically to Face; the separate name exists for call sites that read
// more naturally as "consuming" the region into its face.
func (r RegionView[V, E, F]) IntoFace() (FaceView[V, E, F], bool) {
	return r.Face()
}

// GetOrInsertFace returns the region's existing face if it has one, or
// inserts a new face bound by the region's edge loop with the given payload
// and returns that, useful for idempotently closing a boundary loop.
func (r RegionView[V, E, F]) GetOrInsertFace(payload F) (FaceView[V, E, F], error) {
	if fv, ok := r.Face(); ok {
		return fv, nil
	}
	return r.GetOrInsertFaceWith(func() F { return payload })
}

// GetOrInsertFaceWith is GetOrInsertFace with the payload computed lazily,
// only when a face must actually be inserted.
func (r RegionView[V, E, F]) GetOrInsertFaceWith(payload func() F) (FaceView[V, E, F], error) {
	if fv, ok := r.Face(); ok {
		return fv, nil
	}

	key := r.mesh.faces.Insert(Face[F]{Edge: r.edge, Payload: payload()})

	current := r.edge
	for {
		rec, ok := r.mesh.edges.Get(current)
		if !ok {
			return FaceView[V, E, F]{}, newErrorf(TopologyMalformed, "dangling edge %s while closing region", current)
		}
		rec.Face = key
		current = rec.Next
		if current == r.edge {
			break
		}
	}

	r.face = key
	return FaceView[V, E, F]{mesh: r.mesh, key: key}, nil
}

package hmesh

// mutation_triangulate.go implements TriangulateFace: replacing a single
// n-gon face with n triangles fanning out from a new centroid vertex. Every
// original boundary edge survives unchanged except for its Next pointer and
// its Face (now one of the new triangles), and two new spoke half-edges per
// vertex connect it to the centroid.

// triangulateFacePlan is the cache computed by TriangulateFace's snapshot
// phase.
type triangulateFacePlan[V any] struct {
	face          FaceKey
	boundary      []EdgeKey
	loop          []VertexKey
	centroid      Vector3
	templatePoint V
}

// TriangulateFace replaces the face named by key with a fan of triangles
// meeting at a new vertex placed at the face's centroid. The face must have
// arity at least 4; a face that is already a triangle is left untouched and
// reported as an ArityConflict, since triangulating it would be a no-op
// dressed up as a mutation.
func (m *Mesh[V, E, F]) TriangulateFace(key FaceKey, edgePayload E, facePayload F) ([]FaceView[V, E, F], error) {
	plan, err := m.snapshotTriangulateFace(key, edgePayload)
	if err != nil {
		return nil, err
	}

	keys, err := commitWith(m, func(mu *mutation[V, E, F]) []FaceKey {
		return applyTriangulateFace(mu, plan, edgePayload, facePayload)
	})
	if err != nil {
		return nil, err
	}

	views := make([]FaceView[V, E, F], len(keys))
	for i, k := range keys {
		views[i] = FaceView[V, E, F]{mesh: m, key: k}
	}
	return views, nil
}

func (m *Mesh[V, E, F]) snapshotTriangulateFace(key FaceKey, _ E) (triangulateFacePlan[V], error) {
	face, ok := m.faces.Get(key)
	if !ok {
		return triangulateFacePlan[V]{}, newErrorf(TopologyNotFound, "no such face: %s", key)
	}

	boundary := m.faceEdgeLoop(face.Edge)
	if len(boundary) < 4 {
		return triangulateFacePlan[V]{}, newErrorf(ArityConflict, "face %s has arity %d, already a triangle", key, len(boundary))
	}

	loop := make([]VertexKey, len(boundary))
	positions := make([]Vector3, len(boundary))
	for i, e := range boundary {
		rec, _ := m.edges.Get(e)
		loop[i] = rec.Origin
		vrec, _ := m.vertices.Get(rec.Origin)
		positions[i] = m.geometry.AsPosition(vrec.Payload)
	}

	centroid, err := m.geometry.FaceCentroid(positions)
	if err != nil {
		return triangulateFacePlan[V]{}, wrapError(GeometryInvalid, "computing centroid for triangulate_face", err)
	}

	firstVertex, _ := m.vertices.Get(loop[0])

	return triangulateFacePlan[V]{
		face:          key,
		boundary:      boundary,
		loop:          loop,
		centroid:      centroid,
		templatePoint: firstVertex.Payload,
	}, nil
}

func applyTriangulateFace[V, E, F any](mu *mutation[V, E, F], plan triangulateFacePlan[V], edgePayload E, facePayload F) []FaceKey {
	centroidPayload := mu.mesh.geometry.WithPosition(plan.templatePoint, plan.centroid)
	centroidKey := mu.vertices.Insert(Vertex[V]{Payload: centroidPayload})

	n := len(plan.boundary)
	spokeOut := make([]EdgeKey, n) // C_i: centroid -> loop[i]
	spokeIn := make([]EdgeKey, n)  // D_i: loop[i] -> centroid

	for i := 0; i < n; i++ {
		spokeOut[i] = mu.edges.Insert(Edge[E]{Origin: centroidKey, Payload: edgePayload})
		spokeIn[i] = mu.edges.Insert(Edge[E]{Origin: plan.loop[i], Payload: edgePayload})
		outRec, _ := mu.edges.Get(spokeOut[i])
		inRec, _ := mu.edges.Get(spokeIn[i])
		outRec.Opposite = spokeIn[i]
		inRec.Opposite = spokeOut[i]
	}

	faceKeys := make([]FaceKey, n)
	for i := 0; i < n; i++ {
		e := plan.boundary[i]
		d := spokeIn[(i+1)%n]
		c := spokeOut[i]

		fk := mu.faces.Insert(Face[F]{Edge: e, Payload: facePayload})
		faceKeys[i] = fk

		eRec, _ := mu.edges.Get(e)
		dRec, _ := mu.edges.Get(d)
		cRec, _ := mu.edges.Get(c)

		eRec.Next, eRec.Face = d, fk
		dRec.Next, dRec.Face = c, fk
		cRec.Next, cRec.Face = e, fk
	}

	centroidRec, _ := mu.vertices.Get(centroidKey)
	centroidRec.Edge = spokeOut[0]

	mu.faces.Remove(plan.face)

	return faceKeys
}

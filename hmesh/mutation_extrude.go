package hmesh

// mutation_extrude.go implements ExtrudeFace: translating a face along its
// own normal by a signed distance, duplicating its vertex ring and bridging
// the old and new rings with a skirt of quad faces.

// extrudeFacePlan is the cache computed by ExtrudeFace's snapshot phase.
type extrudeFacePlan[V any] struct {
	face     FaceKey
	boundary []EdgeKey    // e_i, to be relocated onto the new ring
	loop     []VertexKey  // v_i, the original ring
	opposite []EdgeKey    // o_i: e_i's pre-relocation opposite, or 0
	newVerts []V          // translated payload for v'_i
}

// ExtrudeFace moves the face named by key outward along its normal by
// distance, duplicating its boundary vertices and connecting the old and
// new rings with one quad face per original edge. The face itself survives
// with its original key, relocated onto the new ring; the returned slice
// holds the newly created side faces, one per edge of the original face, in
// loop order.
func (m *Mesh[V, E, F]) ExtrudeFace(key FaceKey, distance float64, edgePayload E, facePayload F) (FaceView[V, E, F], []FaceView[V, E, F], error) {
	plan, err := m.snapshotExtrudeFace(key, distance)
	if err != nil {
		return FaceView[V, E, F]{}, nil, err
	}

	sideKeys, err := commitWith(m, func(mu *mutation[V, E, F]) []FaceKey {
		return applyExtrudeFace(mu, plan, edgePayload, facePayload)
	})
	if err != nil {
		return FaceView[V, E, F]{}, nil, err
	}

	sides := make([]FaceView[V, E, F], len(sideKeys))
	for i, k := range sideKeys {
		sides[i] = FaceView[V, E, F]{mesh: m, key: k}
	}
	return FaceView[V, E, F]{mesh: m, key: key}, sides, nil
}

func (m *Mesh[V, E, F]) snapshotExtrudeFace(key FaceKey, distance float64) (extrudeFacePlan[V], error) {
	face, ok := m.faces.Get(key)
	if !ok {
		return extrudeFacePlan[V]{}, newErrorf(TopologyNotFound, "no such face: %s", key)
	}

	boundary := m.faceEdgeLoop(face.Edge)
	if len(boundary) < 3 {
		return extrudeFacePlan[V]{}, newErrorf(ArityConflict, "face %s has arity %d", key, len(boundary))
	}

	n := len(boundary)
	loop := make([]VertexKey, n)
	opposite := make([]EdgeKey, n)
	positions := make([]Vector3, n)
	payloads := make([]V, n)

	for i, e := range boundary {
		rec, _ := m.edges.Get(e)
		loop[i] = rec.Origin
		opposite[i] = rec.Opposite

		vrec, _ := m.vertices.Get(rec.Origin)
		positions[i] = m.geometry.AsPosition(vrec.Payload)
		payloads[i] = vrec.Payload
	}

	normal, err := m.geometry.FaceNormal(positions)
	if err != nil {
		return extrudeFacePlan[V]{}, wrapError(GeometryInvalid, "computing normal for extrude_face", err)
	}
	offset := normal.Scale(distance)

	newVerts := make([]V, n)
	for i, p := range payloads {
		newVerts[i] = m.geometry.WithPosition(p, positions[i].Add(offset))
	}

	return extrudeFacePlan[V]{
		face:     key,
		boundary: boundary,
		loop:     loop,
		opposite: opposite,
		newVerts: newVerts,
	}, nil
}

func applyExtrudeFace[V, E, F any](mu *mutation[V, E, F], plan extrudeFacePlan[V], edgePayload E, facePayload F) []FaceKey {
	n := len(plan.boundary)

	newVertKeys := make([]VertexKey, n)
	for i, payload := range plan.newVerts {
		newVertKeys[i] = mu.vertices.Insert(Vertex[V]{Payload: payload})
	}

	// Relocate the original boundary onto the new ring; Next chains between
	// the e_i are untouched, so the top face's loop still closes.
	for i, e := range plan.boundary {
		rec, _ := mu.edges.Get(e)
		rec.Origin = newVertKeys[i]
	}

	topOpp := make([]EdgeKey, n)
	bottom := make([]EdgeKey, n)
	vertical := make([]EdgeKey, n)
	verticalOpp := make([]EdgeKey, n)

	for i := 0; i < n; i++ {
		topOpp[i] = mu.edges.Insert(Edge[E]{Origin: newVertKeys[(i+1)%n], Payload: edgePayload})
		bottom[i] = mu.edges.Insert(Edge[E]{Origin: plan.loop[i], Payload: edgePayload})
		vertical[i] = mu.edges.Insert(Edge[E]{Origin: newVertKeys[i], Payload: edgePayload})
		verticalOpp[i] = mu.edges.Insert(Edge[E]{Origin: plan.loop[i], Payload: edgePayload})

		topRec, _ := mu.edges.Get(topOpp[i])
		eRec, _ := mu.edges.Get(plan.boundary[i])
		topRec.Opposite, eRec.Opposite = plan.boundary[i], topOpp[i]

		vRec, _ := mu.edges.Get(vertical[i])
		vOppRec, _ := mu.edges.Get(verticalOpp[i])
		vRec.Opposite, vOppRec.Opposite = verticalOpp[i], vertical[i]

		if plan.opposite[i].IsValid() {
			bRec, _ := mu.edges.Get(bottom[i])
			oRec, _ := mu.edges.Get(plan.opposite[i])
			bRec.Opposite, oRec.Opposite = plan.opposite[i], bottom[i]
		}
	}

	// The original ring vertices no longer have an outgoing edge (their old
	// one, e_i, was relocated onto the new ring); bottom[i] now originates at
	// loop[i] and survives as its replacement. The new cap vertices get their
	// first outgoing edge here too.
	for i := 0; i < n; i++ {
		loopRec, _ := mu.vertices.Get(plan.loop[i])
		loopRec.Edge = bottom[i]

		newRec, _ := mu.vertices.Get(newVertKeys[i])
		newRec.Edge = vertical[i]
	}

	faceKeys := make([]FaceKey, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		fk := mu.faces.Insert(Face[F]{Edge: bottom[i], Payload: facePayload})
		faceKeys[i] = fk

		bRec, _ := mu.edges.Get(bottom[i])
		vOppJRec, _ := mu.edges.Get(verticalOpp[j])
		topOppIRec, _ := mu.edges.Get(topOpp[i])
		vIRec, _ := mu.edges.Get(vertical[i])

		bRec.Next, bRec.Face = verticalOpp[j], fk
		vOppJRec.Next, vOppJRec.Face = topOpp[i], fk
		topOppIRec.Next, topOppIRec.Face = vertical[i], fk
		vIRec.Next, vIRec.Face = bottom[i], fk
	}

	return faceKeys
}

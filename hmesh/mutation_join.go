package hmesh

// mutation_join.go implements JoinFaces: merging two faces that share a
// contiguous run of boundary edges into one larger face, removing the
// shared edges.
//
// See DESIGN.md, Open Question 1: two faces are only joinable if the edges
// shared between them form a single contiguous run in both faces' loop
// order, not merely the same count of shared vertices. A face that touches
// another at two disjoint arcs (e.g. two faces that wrap around and meet
// twice) cannot be joined by a single splice without producing a
// self-intersecting loop, so that case is rejected with TopologyConflict.

// joinFacesPlan is the cache computed by JoinFaces' snapshot phase.
type joinFacesPlan struct {
	keep, drop FaceKey

	beforeRunA, afterRunA EdgeKey
	beforeRunB, afterRunB EdgeKey

	removedEdges []EdgeKey
}

// JoinFaces merges faces a and b, which must share one contiguous run of
// edges, into a single face, removing every shared half-edge pair along that
// run. The surviving face keeps a's key and payload; b is removed.
func (m *Mesh[V, E, F]) JoinFaces(a, b FaceKey) (FaceView[V, E, F], error) {
	plan, err := m.snapshotJoinFaces(a, b)
	if err != nil {
		return FaceView[V, E, F]{}, err
	}

	key, err := commitWith(m, func(mu *mutation[V, E, F]) FaceKey {
		return applyJoinFaces(mu, plan)
	})
	if err != nil {
		return FaceView[V, E, F]{}, err
	}

	return FaceView[V, E, F]{mesh: m, key: key}, nil
}

func (m *Mesh[V, E, F]) snapshotJoinFaces(a, b FaceKey) (joinFacesPlan, error) {
	if a == b {
		return joinFacesPlan{}, newErrorf(ArityConflict, "cannot join face %s to itself", a)
	}
	faceA, ok := m.faces.Get(a)
	if !ok {
		return joinFacesPlan{}, newErrorf(TopologyNotFound, "no such face: %s", a)
	}
	if _, ok := m.faces.Get(b); !ok {
		return joinFacesPlan{}, newErrorf(TopologyNotFound, "no such face: %s", b)
	}

	loopA := m.faceEdgeLoop(faceA.Edge)

	// shared[i] is true when loopA[i]'s opposite bounds face b.
	shared := make([]bool, len(loopA))
	anyShared := false
	for i, e := range loopA {
		rec, _ := m.edges.Get(e)
		if !rec.Opposite.IsValid() {
			continue
		}
		oppRec, _ := m.edges.Get(rec.Opposite)
		if oppRec.Face == b {
			shared[i] = true
			anyShared = true
		}
	}
	if !anyShared {
		return joinFacesPlan{}, newErrorf(TopologyConflict, "faces %s and %s do not share an edge", a, b)
	}

	run, ok := contiguousRun(shared)
	if !ok {
		return joinFacesPlan{}, newErrorf(TopologyConflict, "faces %s and %s share edges in more than one run", a, b)
	}
	if run.length == len(loopA) {
		return joinFacesPlan{}, newErrorf(ArityConflict, "joining %s and %s would consume face %s entirely", a, b, a)
	}

	runEdgesA := make([]EdgeKey, run.length)
	for i := 0; i < run.length; i++ {
		runEdgesA[i] = loopA[(run.start+i)%len(loopA)]
	}

	beforeRunA := loopA[(run.start-1+len(loopA))%len(loopA)]
	afterRunA := loopA[(run.start+run.length)%len(loopA)]

	// B's run visits the same vertices in reverse, so it starts at the
	// opposite of A's last shared edge and ends at the opposite of A's
	// first.
	runEdgesB := make([]EdgeKey, 0, run.length)
	cursor := mustOpposite(m, runEdgesA[run.length-1])
	for i := 0; i < run.length; i++ {
		runEdgesB = append(runEdgesB, cursor)
		next, _ := m.edges.Get(cursor)
		cursor = next.Next
	}
	afterRunB := cursor

	faceB, _ := m.faces.Get(b)
	loopB := m.faceEdgeLoop(faceB.Edge)
	idxB := indexOf(loopB, runEdgesB[0])
	beforeRunB := loopB[(idxB-1+len(loopB))%len(loopB)]

	removed := append(append([]EdgeKey{}, runEdgesA...), runEdgesB...)

	return joinFacesPlan{
		keep:         a,
		drop:         b,
		beforeRunA:   beforeRunA,
		afterRunA:    afterRunA,
		beforeRunB:   beforeRunB,
		afterRunB:    afterRunB,
		removedEdges: removed,
	}, nil
}

func mustOpposite[V, E, F any](m *Mesh[V, E, F], e EdgeKey) EdgeKey {
	rec, _ := m.edges.Get(e)
	return rec.Opposite
}

// faceEdgeLoop returns every half-edge bounding the face reachable from
// start, in loop order, read directly off live storage (used during
// snapshot, before replace detaches it).
func (m *Mesh[V, E, F]) faceEdgeLoop(start EdgeKey) []EdgeKey {
	var loop []EdgeKey
	current := start
	for {
		loop = append(loop, current)
		rec, _ := m.edges.Get(current)
		current = rec.Next
		if current == start {
			break
		}
	}
	return loop
}

func indexOf(loop []EdgeKey, target EdgeKey) int {
	for i, e := range loop {
		if e == target {
			return i
		}
	}
	return -1
}

type run struct {
	start, length int
}

// contiguousRun reports whether the true entries of shared form a single
// contiguous (cyclically wrapping) run, and if so, its start index and
// length.
func contiguousRun(shared []bool) (run, bool) {
	n := len(shared)
	total := 0
	for _, s := range shared {
		if s {
			total++
		}
	}
	if total == 0 {
		return run{}, false
	}

	// Find a false-to-true transition to anchor the run start; if every
	// entry is true the run trivially spans the whole loop.
	start := -1
	for i := 0; i < n; i++ {
		if shared[i] && !shared[(i-1+n)%n] {
			start = i
			break
		}
	}
	if start == -1 {
		start = 0
	}

	for i := 0; i < total; i++ {
		if !shared[(start+i)%n] {
			return run{}, false
		}
	}
	// Verify no true entries exist outside [start, start+total).
	for i := total; i < n; i++ {
		if shared[(start+i)%n] {
			return run{}, false
		}
	}

	return run{start: start, length: total}, true
}

func applyJoinFaces[V, E, F any](mu *mutation[V, E, F], plan joinFacesPlan) FaceKey {
	// Record each removed edge's origin before it disappears; those vertices
	// may need a new outgoing edge once the run is gone.
	origins := make([]VertexKey, 0, len(plan.removedEdges))
	for _, e := range plan.removedEdges {
		rec, _ := mu.edges.Get(e)
		origins = append(origins, rec.Origin)
	}

	for _, e := range plan.removedEdges {
		mu.edges.Remove(e)
	}

	beforeA, _ := mu.edges.Get(plan.beforeRunA)
	beforeA.Next = plan.afterRunB

	beforeB, _ := mu.edges.Get(plan.beforeRunB)
	beforeB.Next = plan.afterRunA

	keepFace, _ := mu.faces.Get(plan.keep)
	keepFace.Edge = plan.afterRunB

	// Reassign every edge that used to belong to the dropped face onto the
	// surviving face.
	current := plan.afterRunB
	for {
		rec, ok := mu.edges.Get(current)
		if !ok || rec.Face != plan.drop {
			break
		}
		rec.Face = plan.keep
		current = rec.Next
		if current == plan.afterRunB {
			break
		}
	}

	// A vertex whose outgoing edge was removed along with the run needs a
	// replacement; every such vertex survives the join, so it still has at
	// least one outgoing edge outside the run.
	for _, v := range origins {
		vrec, ok := mu.vertices.Get(v)
		if !ok || !vrec.Edge.IsValid() || mu.edges.Contains(vrec.Edge) {
			continue
		}
		if replacement, found := firstOutgoingEdge(mu, v); found {
			vrec.Edge = replacement
		} else {
			vrec.Edge = 0
		}
	}

	mu.faces.Remove(plan.drop)
	return plan.keep
}

// firstOutgoingEdge returns some live half-edge originating at v, with no
// preference among candidates; used to repair a vertex's Edge field once the
// half-edge it named has been removed.
func firstOutgoingEdge[V, E, F any](mu *mutation[V, E, F], v VertexKey) (EdgeKey, bool) {
	for _, key := range mu.edges.Keys() {
		rec, _ := mu.edges.Get(key)
		if rec.Origin == v {
			return key, true
		}
	}
	return 0, false
}

package hmesh

// The circulators in this file all share one termination technique: a
// "breadcrumb" records the key the circulation started from. Next advances
// to the following entity and, once the advance would return to the
// breadcrumb, marks the circulator done and yields one final time before
// reporting exhaustion on the call after that. This is what lets a
// circulator visit every edge of an n-gon exactly once, including the edge
// it started on, without needing a separate "have I looped yet" counter.

// EdgeCirculator walks the half-edges bounding a single face, in loop order,
// starting from and including the edge it was constructed from.
type EdgeCirculator[V, E, F any] struct {
	mesh       *Mesh[V, E, F]
	breadcrumb EdgeKey
	next       EdgeKey
	done       bool
}

// Next returns the next half-edge in the loop, or ok=false once the loop is
// exhausted.
func (c *EdgeCirculator[V, E, F]) Next() (EdgeView[V, E, F], bool) {
	if c.done || !c.next.IsValid() {
		return EdgeView[V, E, F]{}, false
	}
	current := c.next
	rec, _ := c.mesh.edges.Get(current)
	if rec.Next == c.breadcrumb {
		c.done = true
	} else {
		c.next = rec.Next
	}
	return EdgeView[V, E, F]{mesh: c.mesh, key: current}, true
}

// FaceVertexCirculator walks the vertices bounding a single face, in loop
// order, by projecting each bounding half-edge onto its Origin vertex.
type FaceVertexCirculator[V, E, F any] struct {
	edges *EdgeCirculator[V, E, F]
}

// Next returns the next vertex in the loop, or ok=false once exhausted.
func (c *FaceVertexCirculator[V, E, F]) Next() (VertexView[V, E, F], bool) {
	e, ok := c.edges.Next()
	if !ok {
		return VertexView[V, E, F]{}, false
	}
	return e.Origin(), true
}

// FaceCirculator walks the faces neighboring a single face: for each
// bounding half-edge, the face incident to that half-edge's opposite. A
// bounding edge with no opposite, or whose opposite bounds no face, is
// skipped (it contributes no neighboring face) rather than ending the
// circulation.
type FaceCirculator[V, E, F any] struct {
	mesh       *Mesh[V, E, F]
	breadcrumb EdgeKey
	next       EdgeKey
	done       bool
}

// Next returns the next neighboring face, or ok=false once every bounding
// edge has been considered.
func (c *FaceCirculator[V, E, F]) Next() (FaceView[V, E, F], bool) {
	for {
		if c.done || !c.next.IsValid() {
			return FaceView[V, E, F]{}, false
		}
		current := c.next
		rec, _ := c.mesh.edges.Get(current)
		if rec.Next == c.breadcrumb {
			c.done = true
		} else {
			c.next = rec.Next
		}

		if !rec.Opposite.IsValid() {
			continue
		}
		oppRec, _ := c.mesh.edges.Get(rec.Opposite)
		if !oppRec.Face.IsValid() {
			continue
		}
		return FaceView[V, E, F]{mesh: c.mesh, key: oppRec.Face}, true
	}
}

// IncomingEdgeCirculator walks the half-edges pointing at a single vertex,
// using the recurrence incoming(i+1) = opposite(next(incoming(i))).
//
// The recurrence cannot step past a half-edge with no opposite, so at a
// boundary vertex the circulator stops short of visiting every incident
// edge instead of raising an error (see DESIGN.md, Open Question 2).
type IncomingEdgeCirculator[V, E, F any] struct {
	mesh       *Mesh[V, E, F]
	breadcrumb EdgeKey
	next       EdgeKey
	done       bool
}

// Next returns the next incoming half-edge, or ok=false once the loop is
// exhausted or a boundary halts further advance.
func (c *IncomingEdgeCirculator[V, E, F]) Next() (EdgeView[V, E, F], bool) {
	if c.done || !c.next.IsValid() {
		return EdgeView[V, E, F]{}, false
	}
	current := c.next
	rec, _ := c.mesh.edges.Get(current)

	nextRec, _ := c.mesh.edges.Get(rec.Next)
	if !nextRec.Opposite.IsValid() {
		c.done = true
		return EdgeView[V, E, F]{mesh: c.mesh, key: current}, true
	}

	advance := nextRec.Opposite
	if advance == c.breadcrumb {
		c.done = true
	} else {
		c.next = advance
	}
	return EdgeView[V, E, F]{mesh: c.mesh, key: current}, true
}

package hmesh

// mutation.go implements the transaction pattern every topology-changing
// operation (InsertFace, JoinFaces, TriangulateFace, ExtrudeFace) is built
// on top of.
//
// The pattern has four phases:
//
//  1. snapshot: validate every precondition against the live mesh and
//     precompute anything the plan phase will need. This is the only phase
//     that can fail; the plan phase is infallible by construction because
//     every fallible check already happened here.
//  2. replace: detach the mesh's storage, handing it to the mutation and
//     installing empty storage in its place for the duration of the
//     mutation. A key-preserving Clone taken just before detaching is kept
//     as the rollback snapshot.
//  3. apply: mutate the detached storage according to the plan computed in
//     step 1.
//  4. commit: install the (now mutated) detached storage back into the
//     mesh. If anything panics between replace and commit, a deferred
//     recover installs the rollback snapshot instead and re-panics, so a
//     caller never observes a half-mutated mesh.
type mutation[V, E, F any] struct {
	mesh *Mesh[V, E, F]

	vertices *Storage[VertexKey, Vertex[V]]
	edges    *Storage[EdgeKey, Edge[E]]
	faces    *Storage[FaceKey, Face[F]]

	rollbackVertices *Storage[VertexKey, Vertex[V]]
	rollbackEdges    *Storage[EdgeKey, Edge[E]]
	rollbackFaces    *Storage[FaceKey, Face[F]]
}

// replace detaches mesh's storage into a new mutation, leaving the mesh with
// fresh empty storage for the duration of the mutation.
func replace[V, E, F any](mesh *Mesh[V, E, F]) *mutation[V, E, F] {
	m := &mutation[V, E, F]{
		mesh:     mesh,
		vertices: mesh.vertices,
		edges:    mesh.edges,
		faces:    mesh.faces,

		rollbackVertices: mesh.vertices.Clone(),
		rollbackEdges:    mesh.edges.Clone(),
		rollbackFaces:    mesh.faces.Clone(),
	}

	mesh.vertices = NewStorage[VertexKey, Vertex[V]]()
	mesh.edges = NewStorage[EdgeKey, Edge[E]]()
	mesh.faces = NewStorage[FaceKey, Face[F]]()

	return m
}

// commit installs the mutation's (now mutated) storage back into the mesh.
func (m *mutation[V, E, F]) commit() {
	m.mesh.vertices = m.vertices
	m.mesh.edges = m.edges
	m.mesh.faces = m.faces
}

// rollback discards the mutation's storage and restores the pre-mutation
// snapshot into the mesh.
func (m *mutation[V, E, F]) rollback() {
	m.mesh.vertices = m.rollbackVertices
	m.mesh.edges = m.rollbackEdges
	m.mesh.faces = m.rollbackFaces
}

// commitWith runs plan against a freshly replaced mutation and commits on
// success. If plan panics, the mesh is rolled back to its pre-mutation state
// before the panic is allowed to propagate, so a plan bug never leaves the
// mesh half-mutated. The plan phase is expected never to fail (every
// fallible check already happened during snapshot), but commitWith still
// guards against it doing so anyway.
func commitWith[V, E, F, R any](mesh *Mesh[V, E, F], plan func(*mutation[V, E, F]) R) (result R, err error) {
	m := replace(mesh)

	defer func() {
		if r := recover(); r != nil {
			m.rollback()
			panic(r)
		}
	}()

	result = plan(m)
	m.commit()
	return result, nil
}

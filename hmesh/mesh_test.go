package hmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStructuredBuffersCube(t *testing.T) {
	m := buildMesh(t, cubePolygons())

	assert.Equal(t, 8, m.VertexCount())
	assert.Equal(t, 24, m.EdgeCount())
	assert.Equal(t, 6, m.FaceCount())
	assert.Equal(t, 2, m.EulerCharacteristic())

	require.NoError(t, m.Consistent())
}

func TestFromStructuredBuffersTetrahedron(t *testing.T) {
	m := buildMesh(t, tetrahedronPolygons())

	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, 12, m.EdgeCount())
	assert.Equal(t, 4, m.FaceCount())
	assert.Equal(t, 2, m.EulerCharacteristic())

	require.NoError(t, m.Consistent())
}

func TestFromStructuredBuffersUvSphere(t *testing.T) {
	m := buildMesh(t, uvSpherePolygons(3, 2))

	assert.Equal(t, 8, m.VertexCount())
	assert.Equal(t, 30, m.EdgeCount())
	assert.Equal(t, 9, m.FaceCount())

	require.NoError(t, m.Consistent())
}

func TestFromFlatBuffersMatchesStructured(t *testing.T) {
	structured := buildMesh(t, cubePolygons())

	hashIdx := NewHashIndexer[Vector3]()
	payloads, flat, sizes := FlatIndexVertices[Vector3](hashIdx, cubePolygons())
	flatMesh, err := FromFlatBuffers[Vector3, struct{}, struct{}](Vector3Geometry{}, payloads, flat, sizes)
	require.NoError(t, err)

	assert.Equal(t, structured.VertexCount(), flatMesh.VertexCount())
	assert.Equal(t, structured.EdgeCount(), flatMesh.EdgeCount())
	assert.Equal(t, structured.FaceCount(), flatMesh.FaceCount())
}

func TestMeshCloneIsIndependent(t *testing.T) {
	m := buildMesh(t, cubePolygons())
	clone := m.Clone()

	_, err := m.TriangulateFace(m.FaceKeys()[0], struct{}{}, struct{}{})
	require.NoError(t, err)

	assert.NotEqual(t, m.Stats(), clone.Stats())
	assert.Equal(t, 8, clone.VertexCount())
	assert.Equal(t, 6, clone.FaceCount())
}

func TestVertexFaceEdgeLookupErrors(t *testing.T) {
	m := buildMesh(t, tetrahedronPolygons())

	_, err := m.Vertex(VertexKey(999))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.Edge(EdgeKey(999))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.Face(FaceKey(999))
	assert.ErrorIs(t, err, ErrNotFound)
}

package hmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdgeCirculatorVisitsEveryBoundaryEdgeOnce(t *testing.T) {
	m := buildMesh(t, cubePolygons())
	face, err := m.Face(m.FaceKeys()[0])
	require.NoError(t, err)

	circ := face.Edges()
	var visited []EdgeKey
	for {
		e, ok := circ.Next()
		if !ok {
			break
		}
		visited = append(visited, e.Key())
	}

	assert.Len(t, visited, 4, "a cube face has arity 4")
	assert.Equal(t, len(visited), len(distinctKeys(visited)), "every edge should be visited exactly once")
}

func TestFaceVertexCirculatorProjectsOrigins(t *testing.T) {
	m := buildMesh(t, cubePolygons())
	face, err := m.Face(m.FaceKeys()[0])
	require.NoError(t, err)

	circ := face.Vertices()
	count := 0
	for {
		if _, ok := circ.Next(); !ok {
			break
		}
		count++
	}
	assert.Equal(t, face.Arity(), count)
}

func TestFaceCirculatorSkipsBoundaryEdges(t *testing.T) {
	m := buildMesh(t, flatDiskPolygons(5))
	face, err := m.Face(m.FaceKeys()[0])
	require.NoError(t, err)

	circ := face.NeighboringFaces()
	_, ok := circ.Next()
	assert.False(t, ok, "a lone disk face has no neighbors to circulate")
}

func TestFaceCirculatorFindsAdjacentFacesOnCube(t *testing.T) {
	m := buildMesh(t, cubePolygons())
	face, err := m.Face(m.FaceKeys()[0])
	require.NoError(t, err)

	circ := face.NeighboringFaces()
	count := 0
	for {
		if _, ok := circ.Next(); !ok {
			break
		}
		count++
	}
	assert.Equal(t, 4, count, "every face of a cube borders exactly 4 others")
}

func TestIncomingEdgeCirculatorOnUvSphere(t *testing.T) {
	m := buildMesh(t, uvSpherePolygons(3, 2))

	// The apex vertex (index 0 in insertion order) is incident to exactly
	// `segments` triangles converging on it, so it has `segments` incoming
	// half-edges.
	apex, err := m.Vertex(m.VertexKeys()[0])
	require.NoError(t, err)

	circ := apex.IncomingEdges()
	count := 0
	for {
		if _, ok := circ.Next(); !ok {
			break
		}
		count++
	}
	assert.Equal(t, 3, count)
}

func TestIncomingEdgeCirculatorStopsAtBoundary(t *testing.T) {
	m := buildMesh(t, flatDiskPolygons(5))
	v, err := m.Vertex(m.VertexKeys()[0])
	require.NoError(t, err)

	circ := v.IncomingEdges()
	count := 0
	for {
		if _, ok := circ.Next(); !ok {
			break
		}
		count++
	}
	// A flat disk vertex's own outgoing edge is a boundary half-edge with
	// no opposite, and the circulator starts by stepping through that
	// opposite; with none to step through it yields nothing rather than
	// falling back to a same-face predecessor (see DESIGN.md, Open
	// Question 2).
	assert.Equal(t, 0, count)
}

func distinctKeys(keys []EdgeKey) []EdgeKey {
	seen := make(map[EdgeKey]bool)
	var out []EdgeKey
	for _, k := range keys {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}

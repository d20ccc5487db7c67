package hmesh

import "math"

// fixtures_test.go builds small test meshes shaped to exercise specific
// scenarios: a cube (for triangulation), a UV sphere of 3 segments by 2
// rings (for circulation and extrusion), and a flat disk (for boundary
// behavior).

func cubePolygons() [][]Vector3 {
	v := func(x, y, z float64) Vector3 { return Vector3{X: x, Y: y, Z: z} }
	p := [8]Vector3{
		v(-1, -1, -1), v(1, -1, -1), v(1, 1, -1), v(-1, 1, -1),
		v(-1, -1, 1), v(1, -1, 1), v(1, 1, 1), v(-1, 1, 1),
	}
	return [][]Vector3{
		{p[0], p[1], p[2], p[3]},
		{p[4], p[7], p[6], p[5]},
		{p[0], p[4], p[5], p[1]},
		{p[1], p[5], p[6], p[2]},
		{p[2], p[6], p[7], p[3]},
		{p[3], p[7], p[4], p[0]},
	}
}

func tetrahedronPolygons() [][]Vector3 {
	v := func(x, y, z float64) Vector3 { return Vector3{X: x, Y: y, Z: z} }
	p := [4]Vector3{
		v(1, 1, 1), v(1, -1, -1), v(-1, 1, -1), v(-1, -1, 1),
	}
	return [][]Vector3{
		{p[0], p[1], p[2]},
		{p[0], p[3], p[1]},
		{p[0], p[2], p[3]},
		{p[1], p[3], p[2]},
	}
}

// uvSpherePolygons builds a UV sphere of segments longitude divisions and
// rings latitude divisions, excluding the poles, which are triangulated
// fans rather than degenerate quads.
func uvSpherePolygons(segments, rings int) [][]Vector3 {
	point := func(lat, lon float64) Vector3 {
		return Vector3{
			X: math.Sin(lat) * math.Cos(lon),
			Y: math.Cos(lat),
			Z: math.Sin(lat) * math.Sin(lon),
		}
	}

	var polygons [][]Vector3

	top := Vector3{X: 0, Y: 1, Z: 0}
	bottom := Vector3{X: 0, Y: -1, Z: 0}

	latStep := math.Pi / float64(rings+1)
	lonStep := 2 * math.Pi / float64(segments)

	ring := func(latIndex int) []Vector3 {
		lat := latStep * float64(latIndex)
		pts := make([]Vector3, segments)
		for i := 0; i < segments; i++ {
			pts[i] = point(lat, lonStep*float64(i))
		}
		return pts
	}

	firstRing := ring(1)
	for i := 0; i < segments; i++ {
		polygons = append(polygons, []Vector3{top, firstRing[i], firstRing[(i+1)%segments]})
	}

	for r := 1; r < rings; r++ {
		upper := ring(r)
		lower := ring(r + 1)
		for i := 0; i < segments; i++ {
			j := (i + 1) % segments
			polygons = append(polygons, []Vector3{upper[i], lower[i], lower[j], upper[j]})
		}
	}

	lastRing := ring(rings)
	for i := 0; i < segments; i++ {
		polygons = append(polygons, []Vector3{lastRing[(i+1)%segments], lastRing[i], bottom})
	}

	return polygons
}

// flatDiskPolygons builds a single n-gon face with no neighbors at all,
// every one of its edges a boundary: the minimal fixture for exercising
// circulator and mutation behavior at a boundary.
func flatDiskPolygons(n int) [][]Vector3 {
	pts := make([]Vector3, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Vector3{X: math.Cos(angle), Y: 0, Z: math.Sin(angle)}
	}
	return [][]Vector3{pts}
}

func buildMesh(t interface{ Fatalf(string, ...any) }, polygons [][]Vector3) *Mesh[Vector3, struct{}, struct{}] {
	m, err := FromStructuredBuffers[Vector3, struct{}, struct{}](Vector3Geometry{}, polygons)
	if err != nil {
		t.Fatalf("building fixture mesh: %v", err)
	}
	return m
}

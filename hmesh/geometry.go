package hmesh

import (
	"fmt"
	"math"
)

// lengthTolerance is the minimum vector length treated as non-degenerate.
const lengthTolerance = 1e-12

// Vector3 is a 3D vector with X, Y, and Z components.
type Vector3 struct {
	X, Y, Z float64
}

// Add returns the vector sum of v and other.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns the vector difference of v and other.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v scaled by s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and other.
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of v and other.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit vector in the direction of v, or v unchanged if
// v has (near) zero length.
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	if l < lengthTolerance {
		return v
	}
	return v.Scale(1.0 / l)
}

// Geometry is the boundary between the core topology and user-defined
// positional math: the core never computes a centroid, a normal, or a
// position on its own, it delegates to whatever Geometry implementation the
// caller supplies when constructing a Mesh (see DESIGN.md, Open Question 3,
// for why this bundles position/centroid/normal into one interface rather
// than three). A Geometry whose vertex payload has no sensible normal can
// always return ErrGeometryInvalid from FaceNormal.
type Geometry[V any] interface {
	// AsPosition projects a vertex payload into its position.
	AsPosition(v V) Vector3

	// WithPosition returns a copy of v with its position replaced, used by
	// triangulate (centroid vertex) and extrude (apex ring).
	WithPosition(v V, p Vector3) V

	// FaceCentroid computes the centroid of a face given its vertex
	// positions in loop order.
	FaceCentroid(positions []Vector3) (Vector3, error)

	// FaceNormal computes the (not necessarily normalized) normal of a
	// face given its vertex positions in loop order.
	FaceNormal(positions []Vector3) (Vector3, error)
}

// Vector3Geometry is the default Geometry strategy for meshes whose vertex
// payload is exactly Vector3: position is the vertex itself.
type Vector3Geometry struct{}

func (Vector3Geometry) AsPosition(v Vector3) Vector3 { return v }

func (Vector3Geometry) WithPosition(_ Vector3, p Vector3) Vector3 { return p }

func (Vector3Geometry) FaceCentroid(positions []Vector3) (Vector3, error) {
	if len(positions) == 0 {
		return Vector3{}, wrapError(GeometryInvalid, "centroid of empty face", nil)
	}
	sum := Vector3{}
	for _, p := range positions {
		sum = sum.Add(p)
	}
	return sum.Scale(1.0 / float64(len(positions))), nil
}

// FaceNormal computes a face normal with Newell's method, which tolerates
// non-planar and non-triangular faces, falling back to a three-point cross
// product only when Newell's method degenerates.
func (Vector3Geometry) FaceNormal(positions []Vector3) (Vector3, error) {
	if len(positions) < 3 {
		return Vector3{}, newErrorf(GeometryInvalid, "insufficient vertices for normal: %d", len(positions))
	}

	normal := Vector3{}
	n := len(positions)
	for i := 0; i < n; i++ {
		a := positions[i]
		b := positions[(i+1)%n]
		normal.X += (a.Y - b.Y) * (a.Z + b.Z)
		normal.Y += (a.Z - b.Z) * (a.X + b.X)
		normal.Z += (a.X - b.X) * (a.Y + b.Y)
	}

	if normal.Length() < lengthTolerance {
		v1 := positions[1].Sub(positions[0])
		v2 := positions[2].Sub(positions[0])
		normal = v1.Cross(v2)
		if normal.Length() < lengthTolerance {
			return Vector3{}, newErrorf(GeometryInvalid, "degenerate face normal (length %e)", normal.Length())
		}
	}

	return normal.Normalize(), nil
}

var _ fmt.Stringer = Vector3{}

func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Package hmesh implements a half-edge mesh: an in-memory representation of
// a 2-manifold polygonal surface that supports constant-time traversal
// between adjacent vertices, edges, and faces without storing an explicit
// adjacency matrix.
//
// A Mesh is parameterized over three user-supplied payload types, one each
// for vertices, edges, and faces, so callers can attach arbitrary geometry
// or application data to the topology without hmesh knowing its shape. The
// one piece of geometry hmesh does need (turning a vertex payload into a
// position, and a loop of positions into a centroid or a normal) is
// supplied separately through the Geometry interface.
//
// # Basic Usage
//
// The simplest way to build a mesh is from a structured polygon stream:
//
//	cube := [][]hmesh.Vector3{ /* six faces, four vertices each */ }
//	mesh, err := hmesh.FromStructuredBuffers[hmesh.Vector3, struct{}, struct{}](
//		hmesh.Vector3Geometry{}, cube,
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(mesh.Stats())
//
// # Keys, Not Pointers
//
// Every cross-reference between a Vertex, Edge, and Face is an opaque key
// resolved through the owning Mesh's storage, never a Go pointer. This
// means a Mesh can be deep-copied, serialized, or partially torn down
// without the dangling-pointer hazards an intrusive structure would carry.
// VertexKey, EdgeKey, and FaceKey are documented in key.go.
//
// # Traversal
//
// FaceView, EdgeView, and VertexView wrap a key with read access to the
// surrounding topology. Circulators (circulate.go) walk the edges, vertices,
// or neighboring faces of a single face, or the edges incoming to a single
// vertex, each terminating exactly once around the loop.
//
// # Mutation
//
// InsertFace, JoinFaces, TriangulateFace, and ExtrudeFace are the four
// topology-changing operations this package provides. Each validates its
// preconditions against the live mesh before touching anything, so a
// rejected mutation leaves the mesh completely unchanged; see mutation.go.
//
// # Indexing
//
// HashIndexer and LruIndexer deduplicate a raw stream of vertex payloads
// into indexed buffers (FlatIndexVertices produces the buffers
// FromFlatBuffers expects), the bounded and unbounded ends of the same
// tradeoff: HashIndexer never
// forgets a payload it has seen, LruIndexer only remembers the most
// recently seen handful.
//
// # Concurrency
//
// A Mesh is not safe for concurrent use. Callers that need to mutate a
// shared mesh from multiple goroutines must synchronize externally; hmesh
// holds no internal lock across an operation.
package hmesh

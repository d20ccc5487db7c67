package hmesh

// index.go implements vertex deduplication: HashIndexer and LruIndexer both
// consume a stream of raw vertex payloads and emit (index, payload) pairs
// plus a flat index buffer, assigning the same index to payloads that
// compare equal while the indexer still remembers them. HashIndexer emits
// each distinct payload exactly once; LruIndexer emits a payload again
// after it has been evicted from its window.

// Indexer assigns a deduplicated index to a stream of vertex payloads.
type Indexer[V comparable] interface {
	// index returns the index for v, the isNew result reporting whether this
	// is the first time v has been indexed (so the caller should emit it).
	index(v V) (idx int, isNew bool)
}

// HashIndexer deduplicates by an exact hash-map lookup: every distinct
// payload is remembered for the indexer's entire lifetime.
type HashIndexer[V comparable] struct {
	seen map[V]int
	next int
}

// NewHashIndexer creates an empty HashIndexer.
func NewHashIndexer[V comparable]() *HashIndexer[V] {
	return &HashIndexer[V]{seen: make(map[V]int)}
}

func (h *HashIndexer[V]) index(v V) (int, bool) {
	if idx, ok := h.seen[v]; ok {
		return idx, false
	}
	idx := h.next
	h.seen[v] = idx
	h.next++
	return idx, true
}

// LruIndexer deduplicates against only the most recently seen capacity
// payloads: a linear-scanned ring of (payload, index) pairs, with a cache
// hit moving its entry to the back (most-recently-used) and an eviction on
// a miss at capacity discarding the least-recently-used entry at the front.
// A payload that falls out of the window and then reappears gets a fresh,
// larger index (it is treated as new), which is the behavior that makes
// LruIndexer a bounded-memory approximation of HashIndexer rather than an
// equivalent one.
type LruIndexer[V comparable] struct {
	capacity int
	entries  []lruEntry[V]
	next     int
}

type lruEntry[V comparable] struct {
	payload V
	index   int
}

// NewLruIndexer creates an LruIndexer with the given capacity, floored at 1
// exactly as index.rs's LruIndexer::new does via cmp::max(1, capacity).
func NewLruIndexer[V comparable](capacity int) *LruIndexer[V] {
	if capacity < 1 {
		capacity = 1
	}
	return &LruIndexer[V]{capacity: capacity}
}

func (l *LruIndexer[V]) index(v V) (int, bool) {
	for i, e := range l.entries {
		if e.payload == v {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			l.entries = append(l.entries, e)
			return e.index, false
		}
	}

	if len(l.entries) >= l.capacity {
		l.entries = l.entries[1:]
	}

	idx := l.next
	l.next++
	l.entries = append(l.entries, lruEntry[V]{payload: v, index: idx})
	return idx, true
}

// IndexVertices consumes a structured polygon stream (one slice of vertex
// payloads per polygon) and returns the deduplicated payloads in first-seen
// order alongside an index buffer mirroring the input's polygon boundaries.
func IndexVertices[V comparable](indexer Indexer[V], polygons [][]V) (payloads []V, indices [][]int) {
	indices = make([][]int, len(polygons))
	for pi, polygon := range polygons {
		row := make([]int, len(polygon))
		for vi, payload := range polygon {
			idx, isNew := indexer.index(payload)
			if isNew {
				payloads = append(payloads, payload)
			}
			row[vi] = idx
		}
		indices[pi] = row
	}
	return payloads, indices
}

// FlatIndexVertices is IndexVertices with the per-polygon index rows
// concatenated into one flat buffer and polygon arities returned alongside,
// the shape FromFlatBuffers (mesh.go) consumes directly.
func FlatIndexVertices[V comparable](indexer Indexer[V], polygons [][]V) (payloads []V, flatIndices []int, polygonSizes []int) {
	polygonSizes = make([]int, len(polygons))
	for pi, polygon := range polygons {
		polygonSizes[pi] = len(polygon)
		for _, payload := range polygon {
			idx, isNew := indexer.index(payload)
			if isNew {
				payloads = append(payloads, payload)
			}
			flatIndices = append(flatIndices, idx)
		}
	}
	return payloads, flatIndices, polygonSizes
}

package hmesh

import "testing"

func TestHashIndexerDeduplicatesAcrossPolygons(t *testing.T) {
	polygons := [][]Vector3{
		{{X: 0}, {X: 1}, {X: 2}},
		{{X: 2}, {X: 1}, {X: 3}},
	}

	idx := NewHashIndexer[Vector3]()
	payloads, indices := IndexVertices[Vector3](idx, polygons)

	if len(payloads) != 4 {
		t.Fatalf("expected 4 distinct vertices, got %d", len(payloads))
	}
	if indices[0][2] != indices[1][0] {
		t.Errorf("expected the shared vertex {X:2} to get the same index in both polygons")
	}
}

func TestFlatIndexVerticesMatchesPolygonSizes(t *testing.T) {
	polygons := [][]Vector3{
		{{X: 0}, {X: 1}, {X: 2}},
		{{X: 3}, {X: 4}, {X: 5}, {X: 6}},
	}

	idx := NewHashIndexer[Vector3]()
	payloads, flat, sizes := FlatIndexVertices[Vector3](idx, polygons)

	if len(payloads) != 7 {
		t.Fatalf("expected 7 distinct vertices, got %d", len(payloads))
	}
	if len(sizes) != 2 || sizes[0] != 3 || sizes[1] != 4 {
		t.Fatalf("expected polygon sizes [3 4], got %v", sizes)
	}
	if len(flat) != 7 {
		t.Fatalf("expected a flat index buffer of length 7, got %d", len(flat))
	}
}

func TestLruIndexerCapacityFlooredAtOne(t *testing.T) {
	idx := NewLruIndexer[Vector3](0)
	if idx.capacity != 1 {
		t.Fatalf("expected capacity floored to 1, got %d", idx.capacity)
	}
}

func TestLruIndexerEvictsLeastRecentlyUsed(t *testing.T) {
	idx := NewLruIndexer[Vector3](2)

	a := Vector3{X: 0}
	b := Vector3{X: 1}
	c := Vector3{X: 2}

	idxA, isNewA := idx.index(a)
	idxB, isNewB := idx.index(b)
	if !isNewA || !isNewB {
		t.Fatalf("expected first sightings of a and b to be new")
	}

	// c evicts a, the least recently used entry.
	idxC, isNewC := idx.index(c)
	if !isNewC {
		t.Fatalf("expected c to be new")
	}

	idxAAgain, isNewAAgain := idx.index(a)
	if !isNewAAgain {
		t.Errorf("expected a to have been evicted and re-indexed as new")
	}
	if idxAAgain == idxA {
		t.Errorf("expected a re-seen after eviction to get a fresh index, not its original %d", idxA)
	}

	// Re-indexing a evicted b, by then the least recently used entry.
	idxBAgain, isNewBAgain := idx.index(b)
	if !isNewBAgain {
		t.Errorf("expected b to have been evicted when a was re-indexed")
	}
	if idxBAgain == idxB {
		t.Errorf("expected b re-seen after eviction to get a fresh index, not its original %d", idxB)
	}

	_ = idxC
}

func TestLruIndexerHitMovesEntryToBack(t *testing.T) {
	idx := NewLruIndexer[Vector3](2)

	a := Vector3{X: 0}
	b := Vector3{X: 1}
	c := Vector3{X: 2}

	idx.index(a)
	idx.index(b)
	idx.index(a) // touch a, moving it to the back; b is now least recently used.

	idxC, isNewC := idx.index(c)
	if !isNewC {
		t.Fatalf("expected c to be new")
	}
	_ = idxC

	_, isNewB := idx.index(b)
	if !isNewB {
		t.Errorf("expected b to have been evicted since a was touched more recently")
	}
}

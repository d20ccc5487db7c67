package hmesh

import "testing"

func TestStorageInsertAndGet(t *testing.T) {
	s := NewStorage[VertexKey, Vertex[int]]()

	k1 := s.Insert(Vertex[int]{Payload: 1})
	k2 := s.Insert(Vertex[int]{Payload: 2})

	if k1 == k2 {
		t.Fatalf("expected distinct keys, got %s and %s", k1, k2)
	}
	if s.Len() != 2 {
		t.Fatalf("expected Len() == 2, got %d", s.Len())
	}

	rec, ok := s.Get(k1)
	if !ok {
		t.Fatalf("expected key %s to be present", k1)
	}
	if rec.Payload != 1 {
		t.Errorf("expected payload 1, got %d", rec.Payload)
	}
}

func TestStorageRemove(t *testing.T) {
	s := NewStorage[VertexKey, Vertex[int]]()
	k := s.Insert(Vertex[int]{Payload: 42})

	rec, ok := s.Remove(k)
	if !ok {
		t.Fatalf("expected removal of %s to succeed", k)
	}
	if rec.Payload != 42 {
		t.Errorf("expected removed payload 42, got %d", rec.Payload)
	}
	if s.Contains(k) {
		t.Errorf("expected %s to be gone after removal", k)
	}
	if _, ok := s.Remove(k); ok {
		t.Errorf("expected second removal of %s to report false", k)
	}
}

func TestStorageKeysSorted(t *testing.T) {
	s := NewStorage[VertexKey, Vertex[int]]()
	var keys []VertexKey
	for i := 0; i < 20; i++ {
		keys = append(keys, s.Insert(Vertex[int]{Payload: i}))
	}

	got := s.Keys()
	if len(got) != len(keys) {
		t.Fatalf("expected %d keys, got %d", len(keys), len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Fatalf("Keys() not strictly ascending at index %d: %s >= %s", i, got[i-1], got[i])
		}
	}
}

func TestStorageCloneIsIndependent(t *testing.T) {
	s := NewStorage[VertexKey, Vertex[int]]()
	k := s.Insert(Vertex[int]{Payload: 1})

	clone := s.Clone()

	rec, _ := s.Get(k)
	rec.Payload = 99

	cloneRec, ok := clone.Get(k)
	if !ok {
		t.Fatalf("expected clone to contain key %s", k)
	}
	if cloneRec.Payload != 1 {
		t.Errorf("expected clone's payload to be unaffected by mutation of original, got %d", cloneRec.Payload)
	}

	k2 := clone.Insert(Vertex[int]{Payload: 2})
	if s.Contains(k2) {
		t.Errorf("expected insertion into clone to not appear in original")
	}
}

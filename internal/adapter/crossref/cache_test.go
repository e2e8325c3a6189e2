package crossref

import (
	"path/filepath"
	"testing"
)

func TestCachePutGet(t *testing.T) {
	cache, err := NewCache(filepath.Join(t.TempDir(), "crossref.db"))
	if err != nil {
		t.Fatalf("NewCache failed: %v", err)
	}
	defer cache.Close()

	if _, ok := cache.Get("10.0000/missing"); ok {
		t.Error("expected miss for unknown DOI")
	}

	cited := 7
	want := &Work{Abstract: "An abstract.", CitedBy: &cited}
	if err := cache.Put("10.0000/x", want); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, ok := cache.Get("10.0000/x")
	if !ok {
		t.Fatal("expected hit after Put")
	}
	if got.Abstract != want.Abstract {
		t.Errorf("abstract mismatch: got %q", got.Abstract)
	}
	if got.CitedBy == nil || *got.CitedBy != 7 {
		t.Errorf("cited_by mismatch: got %v", got.CitedBy)
	}
}

package search

import (
	"context"
	"errors"
	"testing"

	"github.com/Jacob-Barhak/gutensearch/embed"
	"github.com/Jacob-Barhak/gutensearch/engine"
	"github.com/Jacob-Barhak/gutensearch/vector"
)

// axisEmbedder maps known words onto axis-aligned vectors so ranking is
// fully deterministic.
func axisEmbedder() embed.Embedder {
	vecs := map[string][]float32{
		"cat": {1, 0, 0},
		"dog": {0, 1, 0},
		"sun": {0, 0, 1},
	}
	return embed.Func(func(_ context.Context, text string) ([]float32, error) {
		if v, ok := vecs[text]; ok {
			return v, nil
		}
		return []float32{1, 1, 1}, nil
	})
}

func newTestEngine(t *testing.T) (*Engine, vector.Store) {
	t.Helper()
	db, err := engine.Open(":memory:")
	if err != nil {
		t.Fatalf("engine.Open(:memory:) failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store, err := vector.NewSQLiteStore(db)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	eng, err := New(store, axisEmbedder())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return eng, store
}

func seed(t *testing.T, store vector.Store) {
	t.Helper()
	records := []vector.Record{
		{Filename: "a.txt", LineNumber: 1, Author: "A", Title: "T", Content: "cat", Embedding: []float32{1, 0, 0}},
		{Filename: "a.txt", LineNumber: 2, Author: "A", Title: "T", Content: "dog", Embedding: []float32{0, 1, 0}},
		{Filename: "b.txt", LineNumber: 1, Author: "B", Title: "U", Content: "sun", Embedding: []float32{0, 0, 1}},
	}
	if _, _, err := store.InsertBatch(context.Background(), records); err != nil {
		t.Fatalf("InsertBatch failed: %v", err)
	}
}

func TestEngine_Query(t *testing.T) {
	eng, store := newTestEngine(t)
	seed(t, store)

	out, err := eng.Query(context.Background(), "cat", 2)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("Query returned %d matches, want 2", len(out))
	}
	top := out[0]
	if top.Filename != "a.txt" || top.LineNumber != 1 || top.Content != "cat" {
		t.Fatalf("top match = %+v, want a.txt:1 cat", top.Record)
	}
	if top.Author != "A" || top.Title != "T" {
		t.Fatalf("top match provenance = %q/%q, want A/T", top.Author, top.Title)
	}
	if top.Similarity < out[1].Similarity {
		t.Fatalf("matches out of order: %v then %v", top.Similarity, out[1].Similarity)
	}
}

func TestEngine_QueryEmptyString(t *testing.T) {
	eng, store := newTestEngine(t)
	seed(t, store)

	for _, q := range []string{"", "   ", "\t\n"} {
		out, err := eng.Query(context.Background(), q, 3)
		if err != nil {
			t.Fatalf("Query(%q) failed: %v", q, err)
		}
		if out != nil {
			t.Fatalf("Query(%q) = %d matches, want none", q, len(out))
		}
	}
}

func TestEngine_QueryDefaultsK(t *testing.T) {
	eng, store := newTestEngine(t)
	seed(t, store)

	out, err := eng.Query(context.Background(), "dog", 0)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(out) != DefaultK {
		t.Fatalf("Query with k=0 returned %d matches, want %d", len(out), DefaultK)
	}
	if out[0].Content != "dog" {
		t.Fatalf("top match content = %q, want dog", out[0].Content)
	}
}

func TestEngine_QueryEmptyStore(t *testing.T) {
	eng, _ := newTestEngine(t)

	out, err := eng.Query(context.Background(), "cat", 5)
	if err != nil {
		t.Fatalf("Query on empty store failed: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("Query on empty store returned %d matches, want 0", len(out))
	}
}

func TestEngine_QueryEmbedderError(t *testing.T) {
	db, err := engine.Open(":memory:")
	if err != nil {
		t.Fatalf("engine.Open(:memory:) failed: %v", err)
	}
	defer db.Close()
	store, err := vector.NewSQLiteStore(db)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}

	broken := embed.Func(func(_ context.Context, _ string) ([]float32, error) {
		return nil, errors.New("model unavailable")
	})
	eng, err := New(store, broken)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := eng.Query(context.Background(), "cat", 1); err == nil {
		t.Fatal("expected error from failing embedder")
	}
}

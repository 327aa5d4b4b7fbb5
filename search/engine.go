// Package search converts raw query strings into ranked result sets: it
// embeds the query and delegates scoring to the vector store.
package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/Jacob-Barhak/gutensearch/embed"
	"github.com/Jacob-Barhak/gutensearch/vector"
)

// DefaultK is the result count used when the caller does not ask for one.
const DefaultK = 1

// Engine answers free-text queries against a vector store. It keeps no state
// between queries; the store may grow between calls and every query scans
// current stored state.
type Engine struct {
	store    vector.Store
	embedder embed.Embedder
}

// New creates a query engine over the given store and embedder. The embedder
// must produce vectors in the same space and dimension used at ingestion.
func New(store vector.Store, embedder embed.Embedder) (*Engine, error) {
	if store == nil {
		return nil, fmt.Errorf("search: store is nil")
	}
	if embedder == nil {
		return nil, fmt.Errorf("search: embedder is nil")
	}
	return &Engine{store: store, embedder: embedder}, nil
}

// Query embeds the query text and returns up to k matches in descending
// similarity order, each carrying similarity and full provenance. An empty
// or whitespace-only query is a no-op returning no matches and no error, so
// interactive callers can simply prompt again. k below 1 falls back to
// DefaultK.
func (e *Engine) Query(ctx context.Context, query string, k int) ([]vector.Match, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	if k < 1 {
		k = DefaultK
	}

	vec, err := e.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search: embedding query: %w", err)
	}
	matches, err := e.store.Search(ctx, vec, k)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return matches, nil
}

// Package embed defines the narrow embedding capability the rest of the
// module depends on, plus an Ollama-backed implementation. The storage and
// search core stays embedding-agnostic and only ever sees float32 vectors.
package embed

import "context"

// Embedder converts free-form text into fixed-dimension embedding vectors.
// Ingestion and query must use the same implementation (same model, same
// dimension) or similarity scores are meaningless.
type Embedder interface {
	// Embed returns the embedding vector for a single text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch returns one embedding per input text, preserving order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// Func adapts a plain function to the Embedder interface. Batches are
// embedded one text at a time; tests use this with deterministic vectors.
type Func func(ctx context.Context, text string) ([]float32, error)

// Embed calls the function itself.
func (f Func) Embed(ctx context.Context, text string) ([]float32, error) {
	return f(ctx, text)
}

// EmbedBatch embeds each text sequentially.
func (f Func) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, 0, len(texts))
	for _, text := range texts {
		vec, err := f(ctx, text)
		if err != nil {
			return nil, err
		}
		out = append(out, vec)
	}
	return out, nil
}

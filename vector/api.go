package vector

import (
	"context"
	"errors"
)

// ErrDimensionMismatch is returned when a vector's length disagrees with the
// dimension already established by the store or by its counterpart in a
// distance computation. Mismatched vectors are rejected outright, never
// truncated or padded.
var ErrDimensionMismatch = errors.New("vector: embedding dimension mismatch")

// Record represents one line of text from one source document, together with
// its embedding and provenance metadata. Author and title are constant per
// source document and denormalized across all its records.
type Record struct {
	// Filename identifies the source document.
	Filename string

	// LineNumber is the 1-based position of the line within the source
	// document. (Filename, LineNumber) uniquely identifies a record.
	LineNumber int

	// Author and Title come from the document's metadata declarations.
	Author string
	Title  string

	// Content holds the non-empty trimmed text of the line.
	Content string

	// Embedding is the vector representation of the line content. Every
	// record in one store shares a single fixed dimension.
	Embedding []float32
}

// Match is a single similarity search hit: a stored record together with its
// cosine similarity to the query vector.
type Match struct {
	Record
	Similarity float64
}

// Store defines the application-level vector store API. Records are created
// only during ingestion and never updated or deleted; inserting a record
// whose (filename, line_number) key already exists is a silent skip, so
// re-running ingestion over overlapping file sets is safe.
type Store interface {
	// InsertBatch inserts records, skipping any whose key already exists,
	// and returns exact inserted and skipped counts. Existing rows are never
	// overwritten and the batch never aborts due to individual duplicates.
	InsertBatch(ctx context.Context, records []Record) (inserted, skipped int, err error)

	// Search scores the query vector against every stored embedding and
	// returns up to k matches ordered by descending cosine similarity, ties
	// broken by insertion order. An empty store yields an empty result.
	Search(ctx context.Context, query []float32, k int) ([]Match, error)

	// Count reports the total number of stored records.
	Count(ctx context.Context) (int, error)
}

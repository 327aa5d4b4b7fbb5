// Package ingest turns parsed source documents into persisted vector
// records: it embeds content lines in batch, builds records with shared
// provenance, and writes them through the store's deduplicating insert.
package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-logr/logr"

	"github.com/Jacob-Barhak/gutensearch/embed"
	"github.com/Jacob-Barhak/gutensearch/gutenberg"
	"github.com/Jacob-Barhak/gutensearch/vector"
)

// Stats reports the outcome of ingesting one document.
type Stats struct {
	Processed int // content lines handed to the embedder
	Inserted  int // new records written
	Skipped   int // duplicates left untouched
}

// RunStats aggregates a directory run across files.
type RunStats struct {
	Files  int // files successfully ingested
	Failed int // files skipped due to parse or embed errors
	Stats
}

// Pipeline ingests documents into a vector store using an injected embedder.
type Pipeline struct {
	store    vector.Store
	embedder embed.Embedder
	log      logr.Logger
}

// New creates an ingestion pipeline. The logger may be logr.Discard().
func New(store vector.Store, embedder embed.Embedder, log logr.Logger) (*Pipeline, error) {
	if store == nil {
		return nil, fmt.Errorf("ingest: store is nil")
	}
	if embedder == nil {
		return nil, fmt.Errorf("ingest: embedder is nil")
	}
	return &Pipeline{store: store, embedder: embedder, log: log}, nil
}

// File ingests one parsed document: one embedding per content line, line
// order and numbering preserved, all records sharing the document's
// filename, author, and title. A document with no content lines is a no-op.
// If the embedder fails, the document is not partially written.
func (p *Pipeline) File(ctx context.Context, doc gutenberg.Document) (Stats, error) {
	if len(doc.Lines) == 0 {
		return Stats{}, nil
	}

	texts := make([]string, len(doc.Lines))
	for i, line := range doc.Lines {
		texts[i] = line.Text
	}

	embeddings, err := p.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return Stats{}, fmt.Errorf("ingest: embedding %s: %w", doc.Filename, err)
	}
	if len(embeddings) != len(doc.Lines) {
		return Stats{}, fmt.Errorf("ingest: embedding %s: got %d vectors for %d lines", doc.Filename, len(embeddings), len(doc.Lines))
	}

	records := make([]vector.Record, len(doc.Lines))
	for i, line := range doc.Lines {
		records[i] = vector.Record{
			Filename:   doc.Filename,
			LineNumber: line.Number,
			Author:     doc.Author,
			Title:      doc.Title,
			Content:    line.Text,
			Embedding:  embeddings[i],
		}
	}

	inserted, skipped, err := p.store.InsertBatch(ctx, records)
	if err != nil {
		return Stats{}, fmt.Errorf("ingest: storing %s: %w", doc.Filename, err)
	}
	p.log.Info("ingested file", "file", doc.Filename, "title", doc.Title,
		"lines", len(records), "inserted", inserted, "skipped", skipped)
	return Stats{Processed: len(records), Inserted: inserted, Skipped: skipped}, nil
}

// Run ingests every .txt file in dir. A file that fails to parse or embed is
// logged and skipped; it never aborts the rest of the run.
func (p *Pipeline) Run(ctx context.Context, dir string) (RunStats, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return RunStats{}, fmt.Errorf("ingest: reading %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".txt") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	if len(names) == 0 {
		return RunStats{}, fmt.Errorf("ingest: no .txt files in %s", dir)
	}

	var run RunStats
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return run, err
		}

		doc, err := gutenberg.ParseFile(filepath.Join(dir, name))
		if err != nil {
			p.log.Error(err, "skipping file", "file", name)
			run.Failed++
			continue
		}
		stats, err := p.File(ctx, doc)
		if err != nil {
			p.log.Error(err, "skipping file", "file", name)
			run.Failed++
			continue
		}
		run.Files++
		run.Processed += stats.Processed
		run.Inserted += stats.Inserted
		run.Skipped += stats.Skipped
	}
	return run, nil
}

package vector

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
)

// SQLiteStore is a Store backed by a SQLite database. One row per record in
// the texts table; duplicates are skipped via INSERT OR IGNORE against the
// (filename, line_number) primary key. Search is a brute-force full-table
// scan, which is the reference behavior at the intended scale.
//
// The store assumes a single writer; concurrent multi-process writers are
// unsupported beyond whatever protection SQLite itself provides.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a SQLite-backed Store over the provided database
// and ensures the texts schema exists.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("vector: db is nil")
	}
	if err := EnsureSchema(db); err != nil {
		return nil, fmt.Errorf("vector: ensuring schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// NewReadOnlySQLiteStore creates a Store over a database opened read-only.
// Instead of running DDL it verifies the texts table exists, so a query
// session against a database that was never ingested fails immediately with
// actionable guidance.
func NewReadOnlySQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("vector: db is nil")
	}
	ok, err := SchemaExists(db)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("vector: store has no texts table; run ingestion first")
	}
	return &SQLiteStore{db: db}, nil
}

// InsertBatch inserts records inside a single transaction using
// INSERT OR IGNORE. Each statement's RowsAffected decides whether the record
// was inserted or skipped as a duplicate, so the returned counts are exact
// and duplicates never abort the batch. An empty batch is a no-op.
func (s *SQLiteStore) InsertBatch(ctx context.Context, records []Record) (inserted, skipped int, err error) {
	if len(records) == 0 {
		return 0, 0, nil
	}
	if err := s.checkBatchDimension(ctx, records); err != nil {
		return 0, 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("vector: begin insert tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO texts(line_number, filename, author, title, content, embedding) VALUES(?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, 0, fmt.Errorf("vector: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if r.LineNumber < 1 {
			return 0, 0, fmt.Errorf("vector: record %q has non-positive line number %d", r.Filename, r.LineNumber)
		}
		blob, err := EncodeEmbedding(r.Embedding)
		if err != nil {
			return 0, 0, err
		}
		res, err := stmt.ExecContext(ctx, r.LineNumber, r.Filename, r.Author, r.Title, r.Content, blob)
		if err != nil {
			return 0, 0, fmt.Errorf("vector: inserting %s:%d: %w", r.Filename, r.LineNumber, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, 0, fmt.Errorf("vector: inserting %s:%d: %w", r.Filename, r.LineNumber, err)
		}
		if n > 0 {
			inserted++
		} else {
			skipped++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("vector: commit insert tx: %w", err)
	}
	return inserted, skipped, nil
}

// Search scans every stored embedding, scores it against the query vector
// with cosine similarity, and returns the k highest-scoring records in
// descending similarity order. Rows are read in rowid order and sorted with
// a stable sort, so equal similarities keep insertion order and repeated
// identical queries return identical orderings. An empty store yields an
// empty result for any query and any k; if fewer than k records exist, all
// of them are returned.
func (s *SQLiteStore) Search(ctx context.Context, query []float32, k int) ([]Match, error) {
	if k < 1 {
		return nil, fmt.Errorf("vector: k must be at least 1, got %d", k)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT line_number, filename, author, title, content, embedding FROM texts ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("vector: scanning texts: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var (
			r    Record
			blob []byte
		)
		if err := rows.Scan(&r.LineNumber, &r.Filename, &r.Author, &r.Title, &r.Content, &blob); err != nil {
			return nil, fmt.Errorf("vector: scanning row: %w", err)
		}
		if r.Embedding, err = DecodeEmbedding(blob); err != nil {
			return nil, fmt.Errorf("vector: row %s:%d: %w", r.Filename, r.LineNumber, err)
		}
		sim, err := CosineSimilarity(query, r.Embedding)
		if err != nil {
			return nil, fmt.Errorf("vector: row %s:%d: %w", r.Filename, r.LineNumber, err)
		}
		matches = append(matches, Match{Record: r, Similarity: sim})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("vector: scanning texts: %w", err)
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Similarity > matches[j].Similarity })
	if k < len(matches) {
		matches = matches[:k]
	}
	return matches, nil
}

// Count reports the total number of stored records.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM texts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("vector: counting texts: %w", err)
	}
	return n, nil
}

// Dimension reports the embedding dimension established by the first stored
// record, or 0 when the store is empty.
func (s *SQLiteStore) Dimension(ctx context.Context) (int, error) {
	var blobLen sql.NullInt64
	err := s.db.QueryRowContext(ctx, `SELECT length(embedding) FROM texts ORDER BY rowid LIMIT 1`).Scan(&blobLen)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("vector: reading dimension: %w", err)
	}
	if !blobLen.Valid {
		return 0, nil
	}
	return int(blobLen.Int64) / 4, nil
}

// checkBatchDimension rejects a batch whose embeddings are empty, disagree
// with each other, or disagree with the store's established dimension,
// before any write happens. An empty embedding can never match the store's
// dimension and would make every later scan fail on its row.
func (s *SQLiteStore) checkBatchDimension(ctx context.Context, records []Record) error {
	dim := len(records[0].Embedding)
	for _, r := range records {
		if len(r.Embedding) == 0 {
			return fmt.Errorf("vector: record %s:%d has an empty embedding", r.Filename, r.LineNumber)
		}
		if len(r.Embedding) != dim {
			return fmt.Errorf("%w: batch mixes %d and %d", ErrDimensionMismatch, dim, len(r.Embedding))
		}
	}
	stored, err := s.Dimension(ctx)
	if err != nil {
		return err
	}
	if stored != 0 && stored != dim {
		return fmt.Errorf("%w: store has %d, batch has %d", ErrDimensionMismatch, stored, dim)
	}
	return nil
}

// Ensure SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)

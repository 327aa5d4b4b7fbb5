// Package vector is the storage core of gutensearch. It includes:
//   - Record model and Store interface
//   - SQLiteStore: durable, deduplicated persistence keyed by
//     (filename, line_number) with brute-force top-K cosine search
//   - Schema helpers to create the texts table
//   - Embedding encoding (BLOB) and distance functions
package vector

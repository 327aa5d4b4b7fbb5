package vector

import (
	"testing"

	"github.com/Jacob-Barhak/gutensearch/engine"
)

// TestEnsureSchema verifies that EnsureSchema creates the texts table and is
// idempotent on a fresh in-memory database.
func TestEnsureSchema(t *testing.T) {
	db, err := engine.Open(":memory:")
	if err != nil {
		t.Fatalf("engine.Open(:memory:) failed: %v", err)
	}
	defer db.Close()

	if err := EnsureSchema(db); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}
	if err := EnsureSchema(db); err != nil {
		t.Fatalf("second EnsureSchema failed: %v", err)
	}

	// Sanity check: we can insert a row into texts.
	if _, err := db.Exec(`INSERT INTO texts(line_number, filename, author, title, content, embedding) VALUES(1, 'a.txt', 'A', 'T', 'hello', X'')`); err != nil {
		t.Fatalf("insert into texts failed: %v", err)
	}
}

func TestSchemaExists(t *testing.T) {
	db, err := engine.Open(":memory:")
	if err != nil {
		t.Fatalf("engine.Open(:memory:) failed: %v", err)
	}
	defer db.Close()

	ok, err := SchemaExists(db)
	if err != nil {
		t.Fatalf("SchemaExists failed: %v", err)
	}
	if ok {
		t.Fatal("SchemaExists = true on a fresh database")
	}

	if err := EnsureSchema(db); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}
	ok, err = SchemaExists(db)
	if err != nil {
		t.Fatalf("SchemaExists failed: %v", err)
	}
	if !ok {
		t.Fatal("SchemaExists = false after EnsureSchema")
	}
}

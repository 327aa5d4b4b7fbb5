package gutenberg

import (
	"strings"
	"testing"
)

const sampleBook = `The Project Gutenberg eBook of Sample

Title: A Sample Book
Author: Jane Doe

*** START OF THE PROJECT GUTENBERG EBOOK A SAMPLE BOOK ***

The cat sat on the mat.

A dog ran by.
*** END OF THE PROJECT GUTENBERG EBOOK A SAMPLE BOOK ***

Trailing license text that must be ignored.
`

func TestParse(t *testing.T) {
	doc, err := Parse("sample.txt", strings.NewReader(sampleBook))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if doc.Title != "A Sample Book" {
		t.Errorf("Title = %q, want %q", doc.Title, "A Sample Book")
	}
	if doc.Author != "Jane Doe" {
		t.Errorf("Author = %q, want %q", doc.Author, "Jane Doe")
	}
	if doc.Filename != "sample.txt" {
		t.Errorf("Filename = %q, want %q", doc.Filename, "sample.txt")
	}

	// Only the two non-empty lines between the markers, with original
	// 1-based line numbers.
	if len(doc.Lines) != 2 {
		t.Fatalf("got %d content lines, want 2: %+v", len(doc.Lines), doc.Lines)
	}
	if doc.Lines[0].Number != 8 || doc.Lines[0].Text != "The cat sat on the mat." {
		t.Errorf("line 0 = %+v", doc.Lines[0])
	}
	if doc.Lines[1].Number != 10 || doc.Lines[1].Text != "A dog ran by." {
		t.Errorf("line 1 = %+v", doc.Lines[1])
	}
}

func TestParse_NoMarkers(t *testing.T) {
	doc, err := Parse("plain.txt", strings.NewReader("just some text\nwith no markers\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(doc.Lines) != 0 {
		t.Fatalf("expected no content lines without a start marker, got %d", len(doc.Lines))
	}
	if doc.Title != "Unknown" || doc.Author != "Unknown" {
		t.Fatalf("metadata defaults = %q / %q, want Unknown / Unknown", doc.Title, doc.Author)
	}
}

func TestParse_CaseInsensitiveMarkers(t *testing.T) {
	text := "*** start of the project gutenberg ebook x ***\ncontent line\n*** end of the project gutenberg ebook x ***\n"
	doc, err := Parse("x.txt", strings.NewReader(text))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(doc.Lines) != 1 || doc.Lines[0].Text != "content line" {
		t.Fatalf("unexpected content lines: %+v", doc.Lines)
	}
}

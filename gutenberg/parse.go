// Package gutenberg parses Project Gutenberg plain-text books into the
// metadata and content lines the ingestion pipeline consumes.
package gutenberg

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	startMarker = "START OF THE PROJECT GUTENBERG EBOOK"
	endMarker   = "END OF THE PROJECT GUTENBERG EBOOK"

	titlePrefix  = "Title: "
	authorPrefix = "Author: "
)

// Line is one non-empty content line with its 1-based position in the
// original file.
type Line struct {
	Number int
	Text   string
}

// Document is a parsed source document: its provenance metadata plus the
// ordered content lines found between the start and end markers.
type Document struct {
	Filename string
	Author   string
	Title    string
	Lines    []Line
}

// Parse reads a Gutenberg-format document. Title and author are taken from
// "Title: " / "Author: " declarations wherever they appear (defaulting to
// "Unknown"); content collection starts after a line containing the start
// marker and stops at the end marker, both matched case-insensitively.
// Marker lines themselves are not content. Only non-empty trimmed lines are
// kept, with their original line numbers.
func Parse(filename string, r io.Reader) (Document, error) {
	doc := Document{
		Filename: filename,
		Author:   "Unknown",
		Title:    "Unknown",
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	inContent := false
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		trimmed := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(trimmed, titlePrefix) {
			doc.Title = strings.TrimSpace(strings.TrimPrefix(trimmed, titlePrefix))
		} else if strings.HasPrefix(trimmed, authorPrefix) {
			doc.Author = strings.TrimSpace(strings.TrimPrefix(trimmed, authorPrefix))
		}

		upper := strings.ToUpper(trimmed)
		if strings.Contains(upper, startMarker) {
			inContent = true
			continue
		}
		if strings.Contains(upper, endMarker) {
			break
		}

		if inContent && trimmed != "" {
			doc.Lines = append(doc.Lines, Line{Number: lineNum, Text: trimmed})
		}
	}
	if err := scanner.Err(); err != nil {
		return Document{}, fmt.Errorf("gutenberg: reading %s: %w", filename, err)
	}
	return doc, nil
}

// ParseFile parses the file at path; the document's Filename is the base
// name, matching how records are keyed in the store.
func ParseFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("gutenberg: %w", err)
	}
	defer f.Close()
	return Parse(filepath.Base(path), f)
}

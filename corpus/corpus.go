// Package corpus loads a text corpus from local files into tokenized lines.
package corpus

import (
	"context"
	"errors"
	"fmt"
)

// Line is the ordered token sequence of one corpus record. Empty records
// produce empty (nil) lines.
type Line []string

// ErrInvalidUTF8 is returned when a corpus file contains bytes that are not
// valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("corpus: invalid UTF-8")

// Reader loads a corpus file of a specific format into tokenized lines,
// preserving the original record order.
type Reader interface {
	Read(ctx context.Context, path string) ([]Line, error)
	SupportedFormats() []string
}

// SQLiteConfig selects the table and column holding corpus records in a
// SQLite input file.
type SQLiteConfig struct {
	Table  string
	Column string
}

// Registry maps file extensions to corpus readers.
type Registry struct {
	readers map[string]Reader
}

// NewRegistry returns a registry with all built-in readers registered.
func NewRegistry(sqlite SQLiteConfig) *Registry {
	r := &Registry{readers: make(map[string]Reader)}

	text := &TextReader{}
	pdf := &PDFReader{}
	xlsx := &XLSXReader{}
	db := NewSQLiteReader(sqlite)

	for _, reader := range []Reader{text, pdf, xlsx, db} {
		for _, f := range reader.SupportedFormats() {
			r.readers[f] = reader
		}
	}
	return r
}

// Get returns the reader for a format (file extension without the dot).
func (r *Registry) Get(format string) (Reader, error) {
	reader, ok := r.readers[format]
	if !ok {
		return nil, fmt.Errorf("no reader for format: %s", format)
	}
	return reader, nil
}

// Register adds or replaces the reader for a format.
func (r *Registry) Register(format string, reader Reader) {
	r.readers[format] = reader
}

package corpus

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"
)

// TextReader handles plain UTF-8 text files, one corpus record per line.
type TextReader struct{}

func (r *TextReader) SupportedFormats() []string { return []string{"txt", "text"} }

func (r *TextReader) Read(ctx context.Context, path string) ([]Line, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading text file: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidUTF8, path)
	}
	return TokenizeAll(splitRecords(string(data))), nil
}

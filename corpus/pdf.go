package corpus

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFReader extracts text from a PDF, page by page. Each text line of a page
// becomes one corpus record.
type PDFReader struct{}

func (r *PDFReader) SupportedFormats() []string { return []string{"pdf"} }

func (r *PDFReader) Read(ctx context.Context, path string) ([]Line, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	var lines []Line
	totalPages := reader.NumPage()
	for i := 1; i <= totalPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip pages that fail to extract.
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		for _, rec := range splitRecords(text) {
			lines = append(lines, Tokenize(rec))
		}
	}
	return lines, nil
}

package corpus

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// XLSXReader loads spreadsheet corpora. Each row becomes one corpus record,
// cells joined by single spaces, sheets in workbook order.
type XLSXReader struct{}

func (r *XLSXReader) SupportedFormats() []string { return []string{"xlsx", "xls"} }

func (r *XLSXReader) Read(ctx context.Context, path string) ([]Line, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening XLSX: %w", err)
	}
	defer f.Close()

	var lines []Line
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		for _, row := range rows {
			lines = append(lines, Tokenize(strings.Join(row, " ")))
		}
	}

	if len(lines) == 0 {
		return nil, fmt.Errorf("no data found in XLSX")
	}
	return lines, nil
}

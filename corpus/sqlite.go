package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"regexp"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteReader loads corpus records from a column of a SQLite database file.
// Rows are read in rowid order so record order is stable across runs.
type SQLiteReader struct {
	cfg SQLiteConfig
}

// NewSQLiteReader returns a reader for the given table/column selection.
// Zero-value fields get the conventional defaults (table "lines", column
// "text").
func NewSQLiteReader(cfg SQLiteConfig) *SQLiteReader {
	if cfg.Table == "" {
		cfg.Table = "lines"
	}
	if cfg.Column == "" {
		cfg.Column = "text"
	}
	return &SQLiteReader{cfg: cfg}
}

func (r *SQLiteReader) SupportedFormats() []string { return []string{"db", "sqlite", "sqlite3"} }

// identRe limits table/column names to plain identifiers, since they are
// interpolated into the query text.
var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func (r *SQLiteReader) Read(ctx context.Context, path string) ([]Line, error) {
	if !identRe.MatchString(r.cfg.Table) || !identRe.MatchString(r.cfg.Column) {
		return nil, fmt.Errorf("invalid sqlite table/column: %q.%q", r.cfg.Table, r.cfg.Column)
	}

	// sql.Open is lazy and the driver's open error does not wrap
	// fs.ErrNotExist, so check the file up front.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening sqlite corpus: %w", err)
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening sqlite corpus: %w", err)
	}
	defer db.Close()

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY rowid", r.cfg.Column, r.cfg.Table)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying sqlite corpus: %w", err)
	}
	defer rows.Close()

	var lines []Line
	for rows.Next() {
		var rec sql.NullString
		if err := rows.Scan(&rec); err != nil {
			return nil, fmt.Errorf("scanning sqlite row: %w", err)
		}
		lines = append(lines, Tokenize(rec.String))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sqlite rows: %w", err)
	}
	return lines, nil
}

package corpus

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

// ---------------------------------------------------------------------------
// Tokenizer tests
// ---------------------------------------------------------------------------

func TestTokenize(t *testing.T) {
	tests := []struct {
		name   string
		record string
		want   Line
	}{
		{"empty", "", nil},
		{"whitespace_only", "  \t ", nil},
		{"lowercases", "The Cat SAT", Line{"the", "cat", "sat"}},
		{"collapses_runs", "a  b\tc", Line{"a", "b", "c"}},
		{"keeps_punctuation", "Hello, world!", Line{"hello,", "world!"}},
		{"keeps_numbers", "route 66", Line{"route", "66"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.record)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.record, got, tt.want)
			}
		})
	}
}

func TestTokenizeAllPreservesOrder(t *testing.T) {
	records := []string{"b a", "", "c"}
	lines := TokenizeAll(records)
	if len(lines) != 3 {
		t.Fatalf("TokenizeAll returned %d lines, want 3", len(lines))
	}
	if !reflect.DeepEqual(lines[0], Line{"b", "a"}) {
		t.Errorf("lines[0] = %v", lines[0])
	}
	if lines[1] != nil {
		t.Errorf("empty record should yield nil line, got %v", lines[1])
	}
	if !reflect.DeepEqual(lines[2], Line{"c"}) {
		t.Errorf("lines[2] = %v", lines[2])
	}
}

func TestSplitRecords(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty", "", nil},
		{"single", "one line", []string{"one line"}},
		{"trailing_newline", "a\nb\n", []string{"a", "b"}},
		{"windows_endings", "a\r\nb", []string{"a", "b"}},
		{"blank_line_kept", "a\n\nb", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitRecords(tt.content)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitRecords(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Text reader tests
// ---------------------------------------------------------------------------

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTextReaderRead(t *testing.T) {
	path := writeTemp(t, "corpus.txt", "The cat sat\nthe cat ran\n")

	r := &TextReader{}
	lines, err := r.Read(context.Background(), path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	want := []Line{{"the", "cat", "sat"}, {"the", "cat", "ran"}}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("lines = %v, want %v", lines, want)
	}
}

func TestTextReaderEmptyLines(t *testing.T) {
	path := writeTemp(t, "corpus.txt", "a b\n\nc d")

	r := &TextReader{}
	lines, err := r.Read(context.Background(), path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[1] != nil {
		t.Errorf("blank record should be an empty line, got %v", lines[1])
	}
}

func TestTextReaderMissingFile(t *testing.T) {
	r := &TextReader{}
	_, err := r.Read(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestTextReaderInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x41}, 0o644); err != nil {
		t.Fatal(err)
	}

	r := &TextReader{}
	_, err := r.Read(context.Background(), path)
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("expected ErrInvalidUTF8, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Registry tests
// ---------------------------------------------------------------------------

func TestRegistryFormats(t *testing.T) {
	reg := NewRegistry(SQLiteConfig{})

	for _, format := range []string{"txt", "pdf", "xlsx", "db", "sqlite"} {
		if _, err := reg.Get(format); err != nil {
			t.Errorf("Get(%q) failed: %v", format, err)
		}
	}

	if _, err := reg.Get("docx"); err == nil {
		t.Error("expected error for unregistered format")
	}
}

func TestRegistryRegisterOverride(t *testing.T) {
	reg := NewRegistry(SQLiteConfig{})
	custom := &TextReader{}
	reg.Register("log", custom)

	got, err := reg.Get("log")
	if err != nil {
		t.Fatalf("Get(log): %v", err)
	}
	if got != custom {
		t.Error("Get should return the registered reader")
	}
}

// ---------------------------------------------------------------------------
// XLSX reader tests (fixture generated in TempDir)
// ---------------------------------------------------------------------------

func TestXLSXReaderRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &[]any{"The", "cat", "sat"}); err != nil {
		t.Fatal(err)
	}
	if err := f.SetSheetRow(sheet, "A2", &[]any{"the", "cat", "ran"}); err != nil {
		t.Fatal(err)
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	f.Close()

	r := &XLSXReader{}
	lines, err := r.Read(context.Background(), path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	want := []Line{{"the", "cat", "sat"}, {"the", "cat", "ran"}}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("lines = %v, want %v", lines, want)
	}
}

// ---------------------------------------------------------------------------
// SQLite reader tests (fixture generated in TempDir)
// ---------------------------------------------------------------------------

func TestSQLiteReaderRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.db")

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`CREATE TABLE lines (text TEXT)`); err != nil {
		t.Fatal(err)
	}
	for _, rec := range []string{"The cat sat", "the cat ran"} {
		if _, err := db.Exec(`INSERT INTO lines (text) VALUES (?)`, rec); err != nil {
			t.Fatal(err)
		}
	}
	db.Close()

	r := NewSQLiteReader(SQLiteConfig{})
	lines, err := r.Read(context.Background(), path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	want := []Line{{"the", "cat", "sat"}, {"the", "cat", "ran"}}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("lines = %v, want %v", lines, want)
	}
}

func TestSQLiteReaderMissingFile(t *testing.T) {
	r := NewSQLiteReader(SQLiteConfig{})
	_, err := r.Read(context.Background(), filepath.Join(t.TempDir(), "absent.db"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestSQLiteReaderBadIdentifier(t *testing.T) {
	r := NewSQLiteReader(SQLiteConfig{Table: "lines; DROP TABLE lines", Column: "text"})
	_, err := r.Read(context.Background(), filepath.Join(t.TempDir(), "corpus.db"))
	if err == nil {
		t.Error("expected error for invalid table identifier")
	}
}

// ---------------------------------------------------------------------------
// PDF reader tests
// ---------------------------------------------------------------------------

func TestPDFReaderFormats(t *testing.T) {
	r := &PDFReader{}
	formats := r.SupportedFormats()
	if len(formats) != 1 || formats[0] != "pdf" {
		t.Errorf("SupportedFormats() = %v, want [pdf]", formats)
	}
}

// PDF extraction needs a binary fixture; skip when not present.
func TestPDFReaderRead(t *testing.T) {
	const fixture = "testdata/corpus.pdf"
	if _, err := os.Stat(fixture); err != nil {
		t.Skipf("fixture %s not present", fixture)
	}

	r := &PDFReader{}
	lines, err := r.Read(context.Background(), fixture)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(lines) == 0 {
		t.Error("expected at least one line from fixture PDF")
	}
}

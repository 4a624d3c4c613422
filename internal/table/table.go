// Package table provides a small in-memory table of named string columns.
// It is the working representation for crawl CSV extracts: column sets vary
// per file, cells may be missing, and the combine pipeline needs ordered
// columns, concatenation, keyed dedup and column pruning over the whole batch.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/samber/lo"
)

// Row maps column name to cell value. A missing key is a null cell; stored
// values are never the empty string (empty cells are normalized to null at
// read time).
type Row map[string]string

// Table is an ordered set of columns over sparse rows.
type Table struct {
	Columns []string
	Rows    []Row
}

// New returns an empty table with the given column order.
func New(columns []string) *Table {
	return &Table{Columns: columns}
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	return lo.Contains(t.Columns, name)
}

// ReadHeader reads only the header row of a CSV file.
func ReadHeader(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	r := newReader(f)
	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: empty file", filepath.Base(path))
	}
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", filepath.Base(path), err)
	}
	return header, nil
}

// ReadCSV loads a CSV file. Crawl output is not guaranteed well-formed, so
// malformed rows are dropped rather than failing the file: a row with more
// cells than the header is skipped, a short row is null-padded, and rows the
// CSV parser rejects are skipped. The second return value is the number of
// skipped rows.
func ReadCSV(path string) (*Table, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = f.Close() }()

	r := newReader(f)

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, 0, fmt.Errorf("%s: empty file", filepath.Base(path))
	}
	if err != nil {
		return nil, 0, fmt.Errorf("read header of %s: %w", filepath.Base(path), err)
	}

	t := New(header)
	skipped := 0
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			skipped++
			continue
		}
		if err != nil {
			return nil, skipped, fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}
		if len(rec) > len(header) {
			skipped++
			continue
		}
		row := make(Row, len(rec))
		for i, col := range header {
			if i < len(rec) && rec[i] != "" {
				row[col] = rec[i]
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, skipped, nil
}

// newReader configures a CSV reader for crawl output: variable field counts
// and stray quotes are handled by the skip policy in ReadCSV, not by the
// parser aborting.
func newReader(f io.Reader) *csv.Reader {
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r
}

// Concat appends the given tables into one. The combined column set is the
// union in first-seen order; rows keep their per-table order, tables in the
// order given.
func Concat(tables ...*Table) *Table {
	cols := lo.Union(lo.Map(tables, func(t *Table, _ int) []string { return t.Columns })...)
	out := New(cols)
	for _, t := range tables {
		out.Rows = append(out.Rows, t.Rows...)
	}
	return out
}

// DedupFirst removes rows whose key cell duplicates an earlier row's, keeping
// the first occurrence in current row order. Rows with a null key are always
// retained and never compared against each other. Returns the number of rows
// removed.
func (t *Table) DedupFirst(key string) int {
	seen := make(map[string]struct{}, len(t.Rows))
	kept := t.Rows[:0]
	for _, row := range t.Rows {
		v, ok := row[key]
		if ok {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
		}
		kept = append(kept, row)
	}
	removed := len(t.Rows) - len(kept)
	t.Rows = kept
	return removed
}

// DedupPartition splits rows into those with and without the key, removes
// duplicates (first occurrence wins) within the keyed partition, and
// re-appends the keyless rows after it. Returns the number of rows removed.
func (t *Table) DedupPartition(key string) int {
	seen := make(map[string]struct{}, len(t.Rows))
	var keyed, keyless []Row
	for _, row := range t.Rows {
		v, ok := row[key]
		if !ok {
			keyless = append(keyless, row)
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		keyed = append(keyed, row)
	}
	removed := len(t.Rows) - len(keyed) - len(keyless)
	t.Rows = append(keyed, keyless...)
	return removed
}

// NonNullCounts returns the number of non-null cells per column.
func (t *Table) NonNullCounts() map[string]int {
	counts := make(map[string]int, len(t.Columns))
	for _, col := range t.Columns {
		counts[col] = 0
	}
	for _, row := range t.Rows {
		for col := range row {
			if _, ok := counts[col]; ok {
				counts[col]++
			}
		}
	}
	return counts
}

// PruneEmptyColumns drops every column with zero non-null cells and returns
// the dropped names in column order.
func (t *Table) PruneEmptyColumns() []string {
	counts := t.NonNullCounts()
	empty := lo.Filter(t.Columns, func(col string, _ int) bool { return counts[col] == 0 })
	if len(empty) > 0 {
		t.Columns = lo.Filter(t.Columns, func(col string, _ int) bool { return counts[col] > 0 })
	}
	return empty
}

// WriteCSV writes the table to path, creating parent directories as needed.
// The write is a full overwrite of any prior file. Null cells are written as
// empty fields.
func (t *Table) WriteCSV(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		_ = f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, col := range t.Columns {
			record[i] = row[col]
		}
		if err := w.Write(record); err != nil {
			_ = f.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}

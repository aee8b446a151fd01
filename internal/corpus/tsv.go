package corpus

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Row is one data line of a TSV source file, keyed by the lower-cased
// header. Line is the 1-based physical line number for diagnostics.
type Row struct {
	File  string
	Line  int
	cells map[string]string
}

// Get returns the trimmed cell under the given header, or "" when the
// column is absent.
func (r Row) Get(column string) string {
	return strings.TrimSpace(r.cells[column])
}

// Has reports whether the file carries the column at all, regardless of
// the cell's content.
func (r Row) Has(column string) bool {
	_, ok := r.cells[column]
	return ok
}

// Labels collects the suffixes of truthy prefixed columns. The character
// file folds a label set into tag_* columns marked with "x".
func (r Row) Labels(prefix string) []string {
	var labels []string
	for column, value := range r.cells {
		if strings.HasPrefix(column, prefix) && BoolField(value) {
			labels = append(labels, strings.TrimPrefix(column, prefix))
		}
	}
	sort.Strings(labels)
	return labels
}

// String renders a short form of the row for diagnostics.
func (r Row) String() string {
	parts := make([]string, 0, len(r.cells))
	for column, value := range r.cells {
		if value == "" {
			continue
		}
		parts = append(parts, column+"="+value)
	}
	sort.Strings(parts)
	if len(parts) > 6 {
		parts = append(parts[:6], "...")
	}
	return strings.Join(parts, " ")
}

// ReadTSV parses a tab-separated file with a mandatory header row into
// keyed rows. Read failures are fatal: a malformed source file means the
// input directory is not in a runnable state.
func ReadTSV(path string) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = '\t'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parse %s: %w: empty file, header row required", path, ErrMissingInput)
	}

	header := make([]string, len(records[0]))
	for i, column := range records[0] {
		header[i] = strings.ToLower(strings.TrimSpace(column))
	}

	rows := make([]Row, 0, len(records)-1)
	for i, record := range records[1:] {
		cells := make(map[string]string, len(header))
		for j, column := range header {
			if j < len(record) {
				cells[column] = record[j]
			} else {
				cells[column] = ""
			}
		}

		// Skip lines that are entirely blank.
		empty := true
		for _, value := range cells {
			if strings.TrimSpace(value) != "" {
				empty = false
				break
			}
		}
		if empty {
			continue
		}

		rows = append(rows, Row{File: path, Line: i + 2, cells: cells})
	}

	return rows, nil
}

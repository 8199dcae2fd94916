package export

import (
	"strings"
	"time"

	"ricemill/internal/core/apperror"
)

// Table is the intermediate form of an export: an ordered header and rows
// of pre-formatted display strings, one row per record.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Encode renders the table as comma-delimited text. A value containing
// the delimiter is quoted to preserve column alignment; everything else
// is emitted verbatim. Rows are newline-joined.
func (t Table) Encode() string {
	lines := make([]string, 0, len(t.Rows)+1)
	lines = append(lines, encodeRow(t.Headers))
	for _, row := range t.Rows {
		lines = append(lines, encodeRow(row))
	}
	return strings.Join(lines, "\n")
}

func encodeRow(values []string) string {
	cells := make([]string, len(values))
	for i, v := range values {
		if strings.Contains(v, ",") {
			cells[i] = `"` + v + `"`
		} else {
			cells[i] = v
		}
	}
	return strings.Join(cells, ",")
}

// File is a ready-to-download export.
type File struct {
	Name    string
	Content string
}

// ContentType is the MIME type of every export file.
const ContentType = "text/csv"

// fileName builds "<kind>_<isodate>.csv".
func fileName(kind string, now time.Time) string {
	return kind + "_" + now.UTC().Format("2006-01-02") + ".csv"
}

// build guards against empty collections and assembles the file. An empty
// dataset has no defined header, so it is rejected before formatting.
func build(kind string, now time.Time, headers []string, rows [][]string) (*File, error) {
	if len(rows) == 0 {
		return nil, apperror.NewEmptyExport(kind)
	}
	t := Table{Headers: headers, Rows: rows}
	return &File{Name: fileName(kind, now), Content: t.Encode()}, nil
}

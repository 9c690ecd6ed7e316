// Package importer turns uploaded CSV or XLSX sheets into catalog rows.
// The first non-blank row names the fields; columns may appear in any order.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	ErrEmptyFile         = errors.New("file has no header row")
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// DetectFormat picks the reader from the file extension.
func DetectFormat(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
}

// Table is a decoded sheet. Rows hold only data rows; blank rows are dropped.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Record maps header to cell for data row i. Missing trailing cells read as "".
func (t *Table) Record(i int) map[string]string {
	rec := make(map[string]string, len(t.Headers))
	row := t.Rows[i]
	for col, h := range t.Headers {
		if h == "" {
			continue
		}
		if col < len(row) {
			rec[h] = strings.TrimSpace(row[col])
		} else {
			rec[h] = ""
		}
	}
	return rec
}

// Read decodes r according to the extension of filename.
func Read(filename string, r io.Reader) (*Table, error) {
	format, err := DetectFormat(filename)
	if err != nil {
		return nil, err
	}
	if format == FormatXLSX {
		return ReadXLSX(r)
	}
	return ReadCSV(r)
}

func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return newTable(records)
}

// ReadXLSX reads the first sheet of a workbook.
func ReadXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrEmptyFile
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return newTable(rows)
}

func newTable(records [][]string) (*Table, error) {
	var t *Table
	for _, rec := range records {
		if isBlank(rec) {
			continue
		}
		if t == nil {
			headers := make([]string, len(rec))
			for i, h := range rec {
				headers[i] = strings.TrimSpace(h)
			}
			headers[0] = strings.TrimPrefix(headers[0], "\ufeff")
			t = &Table{Headers: headers, Rows: [][]string{}}
			continue
		}
		t.Rows = append(t.Rows, rec)
	}
	if t == nil {
		return nil, ErrEmptyFile
	}
	return t, nil
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

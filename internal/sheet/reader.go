// Package sheet reads uploaded spreadsheet files into raw rows. It knows
// nothing about carriers beyond the expected header width used to locate
// the header row.
package sheet

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"commis/internal/domain"
	"commis/internal/schema"
)

// maxHeaderScanRows bounds the search for the header row below any
// prepended title rows.
const maxHeaderScanRows = 10

// UTF-8 BOM bytes, present on CSV exports from Excel on Windows.
var byteOrderMark = []byte{0xEF, 0xBB, 0xBF}

// RawRow is one spreadsheet data row. Cells is keyed by the normalized
// header label; Number is the 1-based row position in the source file,
// including any header offset, for user-facing error reporting.
type RawRow struct {
	Number int
	Cells  map[string]string
}

// Rows is a finite, single-pass sequence of raw rows.
type Rows struct {
	rows      []RawRow
	headerRow int
	pos       int
}

// Next advances to the next row. It returns false once the sequence is
// exhausted; the sequence is not restartable.
func (r *Rows) Next() bool {
	if r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

// Row returns the current row. Valid only after a true Next.
func (r *Rows) Row() RawRow {
	return r.rows[r.pos-1]
}

// HeaderRow returns the 1-based position of the detected header row.
func (r *Rows) HeaderRow() int {
	return r.headerRow + 1
}

// Len returns the number of data rows remaining plus consumed.
func (r *Rows) Len() int {
	return len(r.rows)
}

// Open parses an uploaded spreadsheet and returns its data rows. The schema
// supplies the expected header width for offset detection. Returns
// domain.ErrUnsupportedFileType for unknown extensions,
// domain.ErrUnreadableFile when the container cannot be parsed, and
// domain.ErrEmptySheet when a header row exists but no data rows follow.
func Open(fileName string, payload []byte, sc *schema.CarrierSchema) (*Rows, error) {
	var (
		records [][]string
		err     error
	)
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), ".")) {
	case "xlsx":
		records, err = readExcel(payload)
	case "csv":
		records, err = readCSV(payload)
	default:
		return nil, domain.ErrUnsupportedFileType
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnreadableFile, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: file has no rows", domain.ErrUnreadableFile)
	}

	headerIdx := detectHeaderRow(records, sc.ExpectedColumns)
	headers := labelHeaders(records[headerIdx])

	rows := make([]RawRow, 0, len(records)-headerIdx-1)
	for i := headerIdx + 1; i < len(records); i++ {
		if isBlankRow(records[i]) {
			continue
		}
		cells := make(map[string]string, len(headers))
		for col, label := range headers {
			if label == "" {
				continue
			}
			var value string
			if col < len(records[i]) {
				value = strings.TrimSpace(records[i][col])
			}
			if _, taken := cells[label]; taken {
				continue
			}
			cells[label] = value
		}
		rows = append(rows, RawRow{Number: i + 1, Cells: cells})
	}

	if len(rows) == 0 {
		return nil, domain.ErrEmptySheet
	}
	return &Rows{rows: rows, headerRow: headerIdx}, nil
}

func readExcel(payload []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("opening xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading xlsx rows: %w", err)
	}
	return rows, nil
}

func readCSV(payload []byte) ([][]string, error) {
	reader := bufio.NewReader(bytes.NewReader(payload))
	if prefix, err := reader.Peek(len(byteOrderMark)); err == nil && bytes.Equal(prefix, byteOrderMark) {
		_, _ = reader.Discard(len(byteOrderMark))
	}

	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	return records, nil
}

// detectHeaderRow returns the 0-based index of the first row within the
// scan window whose non-blank cell count matches the schema's expected
// column width. Carrier exports sometimes prepend title rows (often with
// merged cells, which surface as mostly-blank rows) before the real header.
// Falls back to row 0 when no row matches.
func detectHeaderRow(records [][]string, expectedColumns int) int {
	limit := maxHeaderScanRows
	if limit > len(records) {
		limit = len(records)
	}
	for i := 0; i < limit; i++ {
		if nonBlankCount(records[i]) == expectedColumns {
			return i
		}
	}
	return 0
}

// labelHeaders normalizes header labels for matching. Blank header cells
// get a positional "Column N" label so unlabeled columns stay addressable.
func labelHeaders(header []string) []string {
	labels := make([]string, len(header))
	for i, cell := range header {
		label := schema.NormalizeHeader(cell)
		if label == "" {
			label = schema.NormalizeHeader(fmt.Sprintf("Column %d", i+1))
		}
		labels[i] = label
	}
	return labels
}

func nonBlankCount(row []string) int {
	n := 0
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			n++
		}
	}
	return n
}

func isBlankRow(row []string) bool {
	return nonBlankCount(row) == 0
}

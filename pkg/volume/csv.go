package volume

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Column names of the dataset CSV format, in canonical order.
const (
	ColumnTerm   = "Search Term"
	ColumnPeriod = "Month"
	ColumnValue  = "Search Volume"
)

var requiredColumns = []string{ColumnTerm, ColumnPeriod, ColumnValue}

// SchemaError reports an upload whose header lacks a required column. The
// active dataset is left untouched when one is returned.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required column: %s", e.Column)
}

// EncodeCSV renders the dataset in the canonical column order. Values that
// are whole numbers are written without a fractional part so a decoded table
// re-encodes to identical bytes.
func EncodeCSV(d Dataset) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(requiredColumns); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range d {
		row := []string{r.Term, r.Period, strconv.FormatFloat(r.Value, 'f', -1, 64)}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeCSV parses a dataset table. The header must contain the three
// required columns; extra columns are ignored and column order is free.
// Spreadsheet exports with a UTF-8/UTF-16 BOM are decoded transparently.
// Row values are not validated beyond numeric parsing - a non-numeric value
// decodes to zero rather than rejecting the upload.
func DecodeCSV(r io.Reader) (Dataset, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	cr := csv.NewReader(decoded)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, &SchemaError{Column: col}
		}
	}

	termIdx := index[ColumnTerm]
	periodIdx := index[ColumnPeriod]
	valueIdx := index[ColumnValue]
	width := max3(termIdx, periodIdx, valueIdx)

	var dataset Dataset
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		if len(row) <= width {
			continue
		}
		value, _ := strconv.ParseFloat(row[valueIdx], 64)
		dataset = append(dataset, VolumeRecord{
			Term:   row[termIdx],
			Period: row[periodIdx],
			Value:  value,
		})
	}
	return dataset, nil
}

func max3(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

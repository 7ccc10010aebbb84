// Package export writes tabular CRM data as CSV or XLSX.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrNoData is returned when there are no rows to export.
var ErrNoData = errors.New("nenhum dado para exportar")

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

const sheet = "Sheet1"

// Rows is a list of records keyed by column name.
type Rows []map[string]any

// Headers returns headers when given, otherwise the sorted keys of the first row.
func (r Rows) Headers(headers []string) []string {
	if len(headers) > 0 || len(r) == 0 {
		return headers
	}
	keys := make([]string, 0, len(r[0]))
	for k := range r[0] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FileName appends the format extension to name.
func FileName(name, format string) string {
	ext := "." + format
	if strings.HasSuffix(name, ext) {
		return name
	}
	return name + ext
}

func cell(value any) string {
	switch actual := value.(type) {
	case nil:
		return ""
	case string:
		return actual
	default:
		return fmt.Sprint(actual)
	}
}

// CSV writes a header line followed by one line per row. Missing values are
// written as empty fields.
func CSV(w io.Writer, rows Rows, headers []string) error {
	if len(rows) == 0 {
		return ErrNoData
	}
	headers = rows.Headers(headers)
	writer := csv.NewWriter(w)
	if err := writer.Write(headers); err != nil {
		return err
	}
	record := make([]string, len(headers))
	for _, row := range rows {
		for i, key := range headers {
			record[i] = cell(row[key])
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// XLSX writes a single sheet workbook with a header row.
func XLSX(w io.Writer, rows Rows, headers []string) error {
	if len(rows) == 0 {
		return ErrNoData
	}
	headers = rows.Headers(headers)
	f := excelize.NewFile()
	defer f.Close()
	for i, header := range headers {
		name, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err = f.SetCellValue(sheet, name, header); err != nil {
			return err
		}
	}
	for r, row := range rows {
		for c, key := range headers {
			value, ok := row[key]
			if !ok || value == nil {
				continue
			}
			name, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err = f.SetCellValue(sheet, name, value); err != nil {
				return fmt.Errorf("failed to set %v: %w", name, err)
			}
		}
	}
	return f.Write(w)
}

// Write dispatches on format.
func Write(w io.Writer, format string, rows Rows, headers []string) error {
	switch format {
	case FormatCSV, "":
		return CSV(w, rows, headers)
	case FormatXLSX:
		return XLSX(w, rows, headers)
	}
	return fmt.Errorf("unsupported export format: %v", format)
}

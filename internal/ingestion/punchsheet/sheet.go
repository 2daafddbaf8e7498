package punchsheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Column headers expected in an uploaded punch list.
const (
	ColSubsystem  = "SUBSISTEMA"
	ColDiscipline = "Disciplina"
	ColCategory   = "Categoria"
	ColStatus     = "Estado"
	ColDueDate    = "FechaCompromiso"
)

// TemplateHeader is the header row of the downloadable import template.
var TemplateHeader = []string{ColSubsystem, ColDiscipline, ColCategory, ColStatus, ColDueDate}

var ErrMissingColumn = errors.New("missing column")

// Row maps trimmed header names to raw cell values.
type Row map[string]string

// Get returns the cell under col. A header that was never present is an error;
// a present header with an empty cell is "".
func (r Row) Get(col string) (string, error) {
	v, ok := r[col]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrMissingColumn, col)
	}
	return v, nil
}

type Sheet struct {
	Name    string
	Headers []string
	Rows    []Row
}

// Parse reads the first worksheet of an xlsx workbook. Cells are read raw so
// date cells come back as Excel serial numbers; see ParseDate.
func Parse(r io.Reader) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	name := f.GetSheetName(0)
	if name == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}

	out := &Sheet{Name: name, Headers: []string{}, Rows: []Row{}}
	if len(rows) == 0 {
		return out, nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}
	out.Headers = headers

	for _, cells := range rows[1:] {
		if blank(cells) {
			continue
		}
		row := make(Row, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if _, dup := row[h]; dup {
				continue
			}
			if i < len(cells) {
				row[h] = cells[i]
			} else {
				row[h] = ""
			}
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// Build writes a single-sheet workbook with header followed by rows.
func Build(sheetName string, header []string, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if sheetName == "" {
		sheetName = "PunchList"
	}
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	write := func(rowIdx int, values []any) error {
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx)
			if err != nil {
				return fmt.Errorf("cell name: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
		return nil
	}

	headerVals := make([]any, len(header))
	for i, h := range header {
		headerVals[i] = h
	}
	if err := write(1, headerVals); err != nil {
		return nil, err
	}
	for i, r := range rows {
		if err := write(i+2, r); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// Template returns an empty import workbook with the expected header row.
func Template() ([]byte, error) {
	return Build("PunchList", TemplateHeader, nil)
}

package catalog

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Column headers the spreadsheet must provide, matched exactly.
const (
	colName = "Name"
	colBio  = "Bio"
	colLink = "Link"
)

var (
	// ErrDesignerNotInSheet is returned when no spreadsheet row matches
	// the designer name.
	ErrDesignerNotInSheet = errors.New("designer not found in spreadsheet")

	// ErrAmbiguousDesigner is returned when more than one row matches.
	ErrAmbiguousDesigner = errors.New("designer matches multiple spreadsheet rows")
)

// DesignerRow is one designer's entry in the shared spreadsheet. Link is
// the raw whitespace-separated URL list, see ParseURLs.
type DesignerRow struct {
	Name string
	Bio  string
	Link string
}

// LookupDesigner finds the single row on the workbook's first sheet whose
// Name cell equals name exactly. Zero or multiple matches are errors; the
// caller is expected to fix the spreadsheet rather than have us guess.
func LookupDesigner(path, name string) (*DesignerRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%q: %w", name, ErrDesignerNotInSheet)
	}

	cols := make(map[string]int)
	for i, header := range rows[0] {
		cols[header] = i
	}
	for _, required := range []string{colName, colBio, colLink} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("spreadsheet is missing a %q column", required)
		}
	}

	var match *DesignerRow
	for _, row := range rows[1:] {
		if cell(row, cols[colName]) != name {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("%q: %w", name, ErrAmbiguousDesigner)
		}
		match = &DesignerRow{
			Name: name,
			Bio:  cell(row, cols[colBio]),
			Link: cell(row, cols[colLink]),
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%q: %w", name, ErrDesignerNotInSheet)
	}
	return match, nil
}

// GetRows trims trailing empty cells, so a row can be shorter than the
// header it was written under.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

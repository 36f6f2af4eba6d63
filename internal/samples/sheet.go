package samples

import (
	"encoding/csv"
	"fmt"
	"os"
)

// SheetEntry is one row of the sample sheet: a sample name and the
// condition it belongs to when samples are merged.
type SheetEntry struct {
	Name      string
	Condition string
}

// ParseSheet reads a tab-separated sample sheet. The header must contain
// the columns "name" and "condition"; extra columns are ignored. Rows
// shorter than the header are rejected by the CSV reader.
func ParseSheet(path string) ([]SheetEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sample sheet: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse sample sheet %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("sample sheet %s is empty", path)
	}

	nameCol, condCol := -1, -1
	for i, col := range records[0] {
		switch col {
		case "name":
			nameCol = i
		case "condition":
			condCol = i
		}
	}
	if nameCol < 0 || condCol < 0 {
		return nil, fmt.Errorf("sample sheet %s must have 'name' and 'condition' columns", path)
	}

	entries := make([]SheetEntry, 0, len(records)-1)
	for _, rec := range records[1:] {
		entries = append(entries, SheetEntry{Name: rec[nameCol], Condition: rec[condCol]})
	}
	return entries, nil
}

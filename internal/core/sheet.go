package core

import "strings"

// sheetName is the worksheet both the importer and the generators use.
const sheetName = "Users"

// sheetColumns is the header shared by the import pipeline and the template
// generator. Order matters: a downloaded template must round-trip through
// import unchanged.
var sheetColumns = []string{"First Name", "Last Name", "Email", "Phone Number", "PAN Number"}

// headerIndex maps lowercased, trimmed column names to their position.
type headerIndex map[string]int

func makeHeaderIndex(header []string) headerIndex {
	idx := make(headerIndex, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, exists := idx[key]; !exists {
			idx[key] = i
		}
	}
	return idx
}

// cell returns the named column's value for a row, or "" when the column or
// cell is missing. Spreadsheet rows can be ragged; short rows are not errors.
func (idx headerIndex) cell(row []string, column string) string {
	pos, ok := idx[strings.ToLower(column)]
	if !ok || pos >= len(row) {
		return ""
	}
	return row[pos]
}

package parser

import (
	"slices"
	"strings"

	"github.com/ukaji3/surveydoc-go/pkg/surveydoc/models"
	"github.com/xuri/excelize/v2"
)

// FindIdentifierColumn returns the index of the first column whose name
// contains any keyword, compared case-insensitively. Returns -1 when no
// column matches.
func FindIdentifierColumn(columns []string, keywords []string) int {
	for i, col := range columns {
		lower := strings.ToLower(col)
		for _, kw := range keywords {
			if kw == "" {
				continue
			}
			if strings.Contains(lower, strings.ToLower(kw)) {
				return i
			}
		}
	}
	return -1
}

// IsExcluded reports whether column contains any keyword as a substring.
// The comparison is case-sensitive.
func IsExcluded(column string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(column, kw) {
			return true
		}
	}
	return false
}

// FilterFields returns the key/value pairs of row that belong in a row
// document: excluded columns, the columns listed in skip, and empty or
// whitespace-only values are dropped. Column order is preserved.
func FilterFields(t *models.Table, row models.Row, excluded []string, skip ...int) []models.Field {
	var fields []models.Field
	for colIdx, col := range t.Columns {
		if slices.Contains(skip, colIdx) || IsExcluded(col, excluded) {
			continue
		}
		value := t.Value(row, colIdx)
		if strings.TrimSpace(value) == "" {
			continue
		}
		fields = append(fields, models.Field{Key: col, Value: value})
	}
	return fields
}

// ResolveColumn finds a column by name with a positional fallback.
// name is matched exactly against the column names first; if that fails and
// name looks like a column reference ("R", "$AB"), the referenced column is
// used. Otherwise fallback is used when it is a valid index. Returns -1 when
// nothing resolves.
func ResolveColumn(columns []string, name string, fallback int) int {
	if name != "" {
		if idx := slices.Index(columns, name); idx >= 0 {
			return idx
		}
		if idx := parseColumnRef(name); idx >= 0 && idx < len(columns) {
			return idx
		}
	}
	if fallback >= 0 && fallback < len(columns) {
		return fallback
	}
	return -1
}

// ResolvePrefixedColumn finds a column named name, or failing that the first
// column whose name starts with name followed by a space. The second form
// covers composite headers where the sub-label row carried a value.
func ResolvePrefixedColumn(columns []string, name string) int {
	if name == "" {
		return -1
	}
	if idx := slices.Index(columns, name); idx >= 0 {
		return idx
	}
	for i, c := range columns {
		if strings.HasPrefix(c, name+" ") {
			return i
		}
	}
	return -1
}

// parseColumnRef parses a column reference like R or $AB to a 0-based index.
// Returns -1 when ref is not a column reference.
func parseColumnRef(ref string) int {
	// Remove $ sign
	ref = strings.TrimPrefix(ref, "$")
	if ref == "" || len(ref) > 3 {
		return -1
	}
	for _, r := range ref {
		if r < 'A' || r > 'Z' {
			return -1
		}
	}

	n, err := excelize.ColumnNameToNumber(ref)
	if err != nil {
		return -1
	}
	return n - 1
}

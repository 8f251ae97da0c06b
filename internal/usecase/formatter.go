package usecase

import (
	"fmt"
	"sort"
	"strings"
)

const summaryRowLimit = 3

// summarizeRows renders a short human-readable description of a result set.
// Small results are spelled out column by column, larger ones only counted.
func summarizeRows(rows []map[string]any) string {
	switch {
	case len(rows) == 0:
		return "No matching records were found."
	case len(rows) == 1:
		return fmt.Sprintf("Found 1 record: %s.", describeRow(rows[0]))
	case len(rows) <= summaryRowLimit:
		parts := make([]string, 0, len(rows))
		for _, row := range rows {
			parts = append(parts, describeRow(row))
		}
		return fmt.Sprintf("Found %d records: %s.", len(rows), strings.Join(parts, "; "))
	default:
		return fmt.Sprintf("Found %d records.", len(rows))
	}
}

func describeRow(row map[string]any) string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, formatValue(row[k])))
	}
	return strings.Join(parts, ", ")
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case []byte:
		return string(t)
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

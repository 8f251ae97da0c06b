package gemini

import (
	"regexp"
	"strings"
)

var sqlFenceRegex = regexp.MustCompile("(?s)```sql\\s*(.*?)```")
var anyFenceRegex = regexp.MustCompile("(?s)```\\s*(.*?)```")

// ExtractSQL pulls a SQL statement out of model output. Fenced blocks win
// over bare text; a leading "sql" language tag on a generic fence is
// stripped. Returns "" when nothing statement-like is present.
func ExtractSQL(text string) string {
	if match := sqlFenceRegex.FindStringSubmatch(text); match != nil {
		return strings.TrimSpace(match[1])
	}

	if match := anyFenceRegex.FindStringSubmatch(text); match != nil {
		inner := strings.TrimSpace(match[1])
		inner = strings.TrimPrefix(inner, "sql\n")
		inner = strings.TrimPrefix(inner, "sql ")
		return strings.TrimSpace(inner)
	}

	trimmed := strings.TrimSpace(text)
	upper := strings.ToUpper(trimmed)
	if strings.HasPrefix(upper, "SELECT") || strings.HasPrefix(upper, "WITH") {
		return trimmed
	}

	return ""
}

package schema

import (
	"os"
	"regexp"
	"strings"
	"testing"
)

var createTableRegex = regexp.MustCompile(`(?s)CREATE TABLE (\w+) \((.*?)\n\);`)

// migrationColumns parses the up migration into table -> column -> SQL type.
func migrationColumns(t *testing.T) map[string]map[string]string {
	t.Helper()

	raw, err := os.ReadFile("../../migrations/000001_init_schema.up.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}

	out := make(map[string]map[string]string)
	for _, match := range createTableRegex.FindAllStringSubmatch(string(raw), -1) {
		table := match[1]
		cols := make(map[string]string)
		for _, line := range strings.Split(match[2], "\n") {
			line = strings.TrimSuffix(strings.TrimSpace(line), ",")
			if line == "" || strings.HasPrefix(line, "CONSTRAINT") {
				continue
			}
			fields := strings.Fields(line)
			if len(fields) < 2 {
				continue
			}
			sqlType := strings.ToUpper(fields[1])
			if sqlType == "DOUBLE" && len(fields) > 2 && strings.EqualFold(fields[2], "PRECISION") {
				sqlType = "DOUBLE PRECISION"
			}
			cols[strings.ToLower(fields[0])] = sqlType
		}
		out[table] = cols
	}

	return out
}

func registryTypeForSQL(sqlType string) string {
	switch sqlType {
	case "TEXT":
		return "text"
	case "INTEGER":
		return "integer"
	case "BIGSERIAL", "BIGINT":
		return "bigint"
	case "DATE":
		return "date"
	case "DOUBLE PRECISION":
		return "double precision"
	default:
		return ""
	}
}

// The registry is the prompt's description of the live schema; a column
// declared with one type here and another in the migration would steer the
// model toward SQL that fails at execution.
func TestRegistry_MatchesMigrationSchema(t *testing.T) {
	migrated := migrationColumns(t)
	r := NewRegistry()

	if len(migrated) != len(r.Tables()) {
		t.Fatalf("migration defines %d tables, registry %d", len(migrated), len(r.Tables()))
	}

	for _, table := range r.Tables() {
		cols, ok := migrated[table.Name]
		if !ok {
			t.Fatalf("registry table %s missing from migration", table.Name)
		}
		if len(cols) != len(table.Columns) {
			t.Fatalf("%s: migration has %d columns, registry %d", table.Name, len(cols), len(table.Columns))
		}
		for _, col := range table.Columns {
			sqlType, ok := cols[col.Name]
			if !ok {
				t.Fatalf("registry column %s.%s missing from migration", table.Name, col.Name)
			}
			want := registryTypeForSQL(sqlType)
			if want == "" {
				t.Fatalf("unmapped SQL type %q for %s.%s", sqlType, table.Name, col.Name)
			}
			if col.Type != want {
				t.Fatalf("registry says %s.%s is %q but migration declares %s", table.Name, col.Name, col.Type, sqlType)
			}
		}
	}
}

package sqlguard

import (
	"strings"
	"testing"

	"github.com/gridironstats/ncaafb-api/internal/schema"
)

func newGuard(t *testing.T, maxRows int) *Guard {
	t.Helper()
	return New(schema.NewRegistry(), maxRows)
}

func TestValidate_AcceptsReadOnlyStatements(t *testing.T) {
	g := newGuard(t, 100)

	cases := []struct {
		name string
		sql  string
	}{
		{"plain select", "SELECT name, market FROM teams"},
		{"star", "SELECT * FROM players"},
		{"trailing semicolon", "SELECT name FROM teams;"},
		{"aliased join", "SELECT t.name, c.name FROM teams t JOIN conferences c ON t.conference_id = c.conference_id"},
		{"as alias", "SELECT t.name FROM teams AS t WHERE t.founded > 1900"},
		{"qualified star", "SELECT t.* FROM teams t"},
		{"schema qualified", "SELECT name FROM public.teams"},
		{"aggregate", "SELECT team_id, SUM(rushing_yards) FROM player_statistics GROUP BY team_id HAVING SUM(rushing_yards) > 1000"},
		{"cte", "WITH top AS (SELECT team_id, wins FROM rankings) SELECT team_id FROM top WHERE wins > 10"},
		{"cte column list", "WITH top (tid, w) AS (SELECT team_id, wins FROM rankings) SELECT tid FROM top ORDER BY w DESC"},
		{"derived table", "SELECT x.total FROM (SELECT SUM(points) AS total FROM rankings) x"},
		{"from list", "SELECT t.name, s.year FROM teams t, seasons s"},
		{"order by output alias", "SELECT wins + losses AS games FROM rankings ORDER BY games DESC"},
		{"case expression", "SELECT CASE WHEN wins > losses THEN 'winning' ELSE 'losing' END FROM rankings"},
		{"extract", "SELECT EXTRACT(YEAR FROM start_date) FROM seasons"},
		{"cast", "SELECT points::float FROM rankings"},
		{"keyword in literal", "SELECT name FROM teams WHERE name = 'DROP squad'"},
		{"window", "SELECT name, ROW_NUMBER() OVER (PARTITION BY conference_id ORDER BY founded DESC) FROM teams"},
		{"union", "SELECT name FROM teams UNION ALL SELECT full_name FROM coaches"},
		{"comment stripped", "SELECT name FROM teams -- trailing note"},
		{"string functions", "SELECT LOWER(name), COALESCE(alias, name) FROM teams"},
		{"date function", "SELECT DATE_TRUNC('year', start_date) FROM seasons"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			approved, err := g.Validate(tc.sql)
			if err != nil {
				t.Fatalf("Validate(%q) error: %v", tc.sql, err)
			}
			if approved == "" {
				t.Fatal("empty approved statement")
			}
		})
	}
}

func TestValidate_RejectsUnsafeStatements(t *testing.T) {
	g := newGuard(t, 100)

	cases := []struct {
		name    string
		sql     string
		wantErr string
	}{
		{"empty", "   ", "empty statement"},
		{"not a select", "UPDATE teams SET wins = 0", "only SELECT"},
		{"delete", "DELETE FROM teams", "only SELECT"},
		{"explain", "EXPLAIN SELECT 1", "only SELECT"},
		{"multiple statements", "SELECT 1; DROP TABLE teams", "multiple statements"},
		{"semicolon smuggle", "SELECT name FROM teams; SELECT 1", "multiple statements"},
		{"nested drop", "SELECT name FROM teams WHERE id IN (SELECT id FROM teams) UNION SELECT 'x' FROM teams; DROP TABLE teams", "multiple statements"},
		{"forbidden keyword", "WITH x AS (SELECT 1) INSERT INTO teams SELECT 1", "forbidden keyword"},
		{"truncate", "SELECT 1 FROM teams WHERE TRUNCATE = 1", "forbidden keyword"},
		{"unknown table", "SELECT * FROM users", `unknown table "users"`},
		{"unknown joined table", "SELECT t.name FROM teams t JOIN secrets s ON s.id = t.id", `unknown table "secrets"`},
		{"unknown column", "SELECT password FROM teams", `unknown column "password"`},
		{"unknown qualified column", "SELECT t.salary FROM teams t", `unknown column "salary"`},
		{"unknown alias", "SELECT z.name FROM teams t", `unknown table or alias "z"`},
		{"foreign schema", "SELECT * FROM pg_catalog.pg_tables", `unknown schema "pg_catalog"`},
		{"dollar quoting", "SELECT $$x$$ FROM teams", "dollar quoting"},
		{"unterminated string", "SELECT 'oops FROM teams", "unterminated string"},
		{"forbidden in comment is still comment", "SELECT name FROM nowhere /* DROP */", `unknown table "nowhere"`},
		{"sleep function", "SELECT pg_sleep(300)", `function "pg_sleep" is not allowed`},
		{"file read function", "SELECT pg_read_file('/etc/passwd')", `function "pg_read_file" is not allowed`},
		{"sleep buried in expression", "SELECT name FROM teams WHERE founded > LENGTH(pg_sleep(10)::text)", `function "pg_sleep" is not allowed`},
		{"system info function", "SELECT current_setting('data_directory')", `function "current_setting" is not allowed`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.Validate(tc.sql)
			if err == nil {
				t.Fatalf("Validate(%q) accepted, want error containing %q", tc.sql, tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("Validate(%q) error = %q, want substring %q", tc.sql, err, tc.wantErr)
			}
		})
	}
}

func TestValidate_RowCap(t *testing.T) {
	g := newGuard(t, 100)

	cases := []struct {
		name string
		sql  string
		want string
	}{
		{"injected", "SELECT name FROM teams", "SELECT name FROM teams LIMIT 100"},
		{"injected after semicolon strip", "SELECT name FROM teams;", "SELECT name FROM teams LIMIT 100"},
		{"kept when under cap", "SELECT name FROM teams LIMIT 10", "SELECT name FROM teams LIMIT 10"},
		{"kept at cap", "SELECT name FROM teams LIMIT 100", "SELECT name FROM teams LIMIT 100"},
		{"clamped", "SELECT name FROM teams LIMIT 5000", "SELECT name FROM teams LIMIT 100"},
		{"limit all clamped", "SELECT name FROM teams LIMIT ALL", "SELECT name FROM teams LIMIT 100"},
		{"clamp preserves offset", "SELECT name FROM teams LIMIT 5000 OFFSET 20", "SELECT name FROM teams LIMIT 100 OFFSET 20"},
		{"subquery limit ignored", "SELECT t.name FROM (SELECT name FROM teams LIMIT 5) t", "SELECT t.name FROM (SELECT name FROM teams LIMIT 5) t LIMIT 100"},
		{"fetch clamped", "SELECT name FROM teams FETCH FIRST 500 ROWS ONLY", "SELECT name FROM teams FETCH FIRST 100 ROWS ONLY"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := g.Validate(tc.sql)
			if err != nil {
				t.Fatalf("Validate(%q) error: %v", tc.sql, err)
			}
			if got != tc.want {
				t.Fatalf("Validate(%q) = %q, want %q", tc.sql, got, tc.want)
			}
		})
	}
}

func TestValidate_CaseInsensitive(t *testing.T) {
	g := newGuard(t, 50)

	if _, err := g.Validate("select Name from TEAMS where FOUNDED > 1900"); err != nil {
		t.Fatalf("mixed-case select rejected: %v", err)
	}
	if _, err := g.Validate("dRoP TABLE teams"); err == nil {
		t.Fatal("mixed-case drop accepted")
	}
}

func TestValidateWithLimit(t *testing.T) {
	g := newGuard(t, 100)

	got, err := g.ValidateWithLimit("SELECT name FROM teams", 10)
	if err != nil {
		t.Fatalf("ValidateWithLimit error: %v", err)
	}
	if got != "SELECT name FROM teams LIMIT 10" {
		t.Fatalf("unexpected sql: %q", got)
	}

	// A request cap above the configured maximum falls back to the maximum.
	got, err = g.ValidateWithLimit("SELECT name FROM teams LIMIT 5000", 1000)
	if err != nil {
		t.Fatalf("ValidateWithLimit error: %v", err)
	}
	if got != "SELECT name FROM teams LIMIT 100" {
		t.Fatalf("unexpected sql: %q", got)
	}

	got, err = g.ValidateWithLimit("SELECT name FROM teams LIMIT 5", 50)
	if err != nil {
		t.Fatalf("ValidateWithLimit error: %v", err)
	}
	if got != "SELECT name FROM teams LIMIT 5" {
		t.Fatalf("unexpected sql: %q", got)
	}
}

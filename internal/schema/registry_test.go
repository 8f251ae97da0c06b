package schema

import (
	"strings"
	"testing"
)

func TestRegistry_TableLookup(t *testing.T) {
	r := NewRegistry()

	if got := len(r.Tables()); got != 9 {
		t.Fatalf("expected 9 tables, got %d", got)
	}

	table, ok := r.Table("teams")
	if !ok {
		t.Fatalf("expected teams table to exist")
	}
	if table.Name != "teams" {
		t.Fatalf("unexpected table name %q", table.Name)
	}
	if len(table.ForeignKeys) != 3 {
		t.Fatalf("expected 3 foreign keys on teams, got %d", len(table.ForeignKeys))
	}

	if !r.HasTable("RANKINGS") {
		t.Fatalf("table lookup should be case-insensitive")
	}
	if r.HasTable("games") {
		t.Fatalf("unknown table should not resolve")
	}
}

func TestRegistry_ColumnLookup(t *testing.T) {
	r := NewRegistry()

	cases := []struct {
		table  string
		column string
		want   bool
	}{
		{"teams", "team_id", true},
		{"teams", "mascot", true},
		{"teams", "MASCOT", true},
		{"teams", "salary", false},
		{"player_statistics", "rushing_yards", true},
		{"rankings", "rank", true},
		{"nope", "name", false},
	}
	for _, tc := range cases {
		if got := r.HasColumn(tc.table, tc.column); got != tc.want {
			t.Fatalf("HasColumn(%q, %q) = %v, want %v", tc.table, tc.column, got, tc.want)
		}
	}

	if !r.HasColumnAnywhere("fight_song") {
		t.Fatalf("fight_song should resolve somewhere")
	}
	if r.HasColumnAnywhere("touchdown_dances") {
		t.Fatalf("unknown column should not resolve anywhere")
	}
}

func TestRegistry_PromptContext(t *testing.T) {
	r := NewRegistry()
	ctx := r.PromptContext()

	for _, want := range []string{
		"## TEAMS",
		"## PLAYER_STATISTICS",
		"conference_id -> conferences.conference_id",
		"Return only SELECT queries",
	} {
		if !strings.Contains(ctx, want) {
			t.Fatalf("prompt context missing %q", want)
		}
	}
}

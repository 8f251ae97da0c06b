package schema

import (
	"fmt"
	"strings"
)

// Column describes one column of a registry table.
type Column struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Nullable bool   `json:"nullable"`
}

// ForeignKey describes a single-column reference to another registry table.
type ForeignKey struct {
	Column           string `json:"column"`
	ReferencesTable  string `json:"references_table"`
	ReferencesColumn string `json:"references_column"`
}

// Table is one table of the fixed relational schema.
type Table struct {
	Name        string       `json:"name"`
	Columns     []Column     `json:"columns"`
	ForeignKeys []ForeignKey `json:"foreign_keys,omitempty"`
}

// Registry is the static description of the nine-table NCAAFB schema.
// It is built once at startup and never mutated; lookups are safe for
// concurrent use.
type Registry struct {
	tables  []Table
	byName  map[string]int
	columns map[string]map[string]Column
}

func NewRegistry() *Registry {
	tables := tableDefinitions()

	byName := make(map[string]int, len(tables))
	columns := make(map[string]map[string]Column, len(tables))
	for i, table := range tables {
		key := strings.ToLower(table.Name)
		byName[key] = i
		cols := make(map[string]Column, len(table.Columns))
		for _, col := range table.Columns {
			cols[strings.ToLower(col.Name)] = col
		}
		columns[key] = cols
	}

	return &Registry{
		tables:  tables,
		byName:  byName,
		columns: columns,
	}
}

// Tables returns the registry tables in their canonical order.
func (r *Registry) Tables() []Table {
	out := make([]Table, len(r.tables))
	copy(out, r.tables)
	return out
}

func (r *Registry) Table(name string) (Table, bool) {
	idx, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Table{}, false
	}
	return r.tables[idx], true
}

func (r *Registry) HasTable(name string) bool {
	_, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

func (r *Registry) HasColumn(table, column string) bool {
	cols, ok := r.columns[strings.ToLower(strings.TrimSpace(table))]
	if !ok {
		return false
	}
	_, ok = cols[strings.ToLower(strings.TrimSpace(column))]
	return ok
}

// HasColumnAnywhere reports whether any registry table defines the column.
// Used for unqualified column references where the owning table is ambiguous.
func (r *Registry) HasColumnAnywhere(column string) bool {
	key := strings.ToLower(strings.TrimSpace(column))
	for _, cols := range r.columns {
		if _, ok := cols[key]; ok {
			return true
		}
	}
	return false
}

// PromptContext renders the schema as the grounding context embedded in the
// SQL-generation prompt: per-table column lists, foreign keys, example query
// patterns and usage notes.
func (r *Registry) PromptContext() string {
	var b strings.Builder
	b.WriteString("# NCAAFB Database Schema\n\n")
	b.WriteString("This database contains NCAA Football data with the following tables:\n\n")

	for _, table := range r.tables {
		fmt.Fprintf(&b, "## %s\n", strings.ToUpper(table.Name))
		b.WriteString("Columns:\n")
		for _, col := range table.Columns {
			nullable := "NOT NULL"
			if col.Nullable {
				nullable = "NULL"
			}
			fmt.Fprintf(&b, "  - %s (%s) %s\n", col.Name, col.Type, nullable)
		}
		if len(table.ForeignKeys) > 0 {
			b.WriteString("Foreign Keys:\n")
			for _, fk := range table.ForeignKeys {
				fmt.Fprintf(&b, "  - %s -> %s.%s\n", fk.Column, fk.ReferencesTable, fk.ReferencesColumn)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(`## Example Query Patterns

- Team information: "What teams are in the SEC conference?"
- Player statistics: "Show me the top 10 players by rushing yards"
- Rankings: "What are the current top 5 ranked teams?"
- Conference data: "List all conferences and their divisions"
- Player details: "Find players from Alabama"

## Important Notes

- Entity IDs are text slugs like 'team-alabama' (not integers), compare them as strings
- Use JOINs to connect related tables
- Use proper SQL syntax for PostgreSQL
- Return only SELECT queries (no INSERT, UPDATE, DELETE, DROP, etc.)
`)

	return b.String()
}

func tableDefinitions() []Table {
	return []Table{
		{
			Name: "conferences",
			Columns: []Column{
				{Name: "conference_id", Type: "text"},
				{Name: "name", Type: "text"},
				{Name: "alias", Type: "text", Nullable: true},
			},
		},
		{
			Name: "divisions",
			Columns: []Column{
				{Name: "division_id", Type: "text"},
				{Name: "name", Type: "text"},
				{Name: "alias", Type: "text", Nullable: true},
				{Name: "conference_id", Type: "text", Nullable: true},
			},
			ForeignKeys: []ForeignKey{
				{Column: "conference_id", ReferencesTable: "conferences", ReferencesColumn: "conference_id"},
			},
		},
		{
			Name: "venues",
			Columns: []Column{
				{Name: "venue_id", Type: "text"},
				{Name: "name", Type: "text"},
				{Name: "city", Type: "text", Nullable: true},
				{Name: "state", Type: "text", Nullable: true},
				{Name: "country", Type: "text", Nullable: true},
				{Name: "zip", Type: "text", Nullable: true},
				{Name: "address", Type: "text", Nullable: true},
				{Name: "capacity", Type: "integer", Nullable: true},
				{Name: "surface", Type: "text", Nullable: true},
				{Name: "roof_type", Type: "text", Nullable: true},
				{Name: "latitude", Type: "double precision", Nullable: true},
				{Name: "longitude", Type: "double precision", Nullable: true},
			},
		},
		{
			Name: "seasons",
			Columns: []Column{
				{Name: "season_id", Type: "text"},
				{Name: "year", Type: "integer"},
				{Name: "start_date", Type: "date", Nullable: true},
				{Name: "end_date", Type: "date", Nullable: true},
				{Name: "status", Type: "text", Nullable: true},
				{Name: "type_code", Type: "text"},
			},
		},
		{
			Name: "teams",
			Columns: []Column{
				{Name: "team_id", Type: "text"},
				{Name: "market", Type: "text", Nullable: true},
				{Name: "name", Type: "text"},
				{Name: "alias", Type: "text", Nullable: true},
				{Name: "founded", Type: "integer", Nullable: true},
				{Name: "mascot", Type: "text", Nullable: true},
				{Name: "fight_song", Type: "text", Nullable: true},
				{Name: "championships_won", Type: "integer", Nullable: true},
				{Name: "conference_id", Type: "text", Nullable: true},
				{Name: "division_id", Type: "text", Nullable: true},
				{Name: "venue_id", Type: "text", Nullable: true},
			},
			ForeignKeys: []ForeignKey{
				{Column: "conference_id", ReferencesTable: "conferences", ReferencesColumn: "conference_id"},
				{Column: "division_id", ReferencesTable: "divisions", ReferencesColumn: "division_id"},
				{Column: "venue_id", ReferencesTable: "venues", ReferencesColumn: "venue_id"},
			},
		},
		{
			Name: "players",
			Columns: []Column{
				{Name: "player_id", Type: "text"},
				{Name: "first_name", Type: "text"},
				{Name: "last_name", Type: "text"},
				{Name: "abbr_name", Type: "text", Nullable: true},
				{Name: "birth_place", Type: "text", Nullable: true},
				{Name: "position", Type: "text", Nullable: true},
				{Name: "height", Type: "integer", Nullable: true},
				{Name: "weight", Type: "integer", Nullable: true},
				{Name: "status", Type: "text", Nullable: true},
				{Name: "eligibility", Type: "text", Nullable: true},
				{Name: "team_id", Type: "text", Nullable: true},
			},
			ForeignKeys: []ForeignKey{
				{Column: "team_id", ReferencesTable: "teams", ReferencesColumn: "team_id"},
			},
		},
		{
			Name: "coaches",
			Columns: []Column{
				{Name: "coach_id", Type: "text"},
				{Name: "full_name", Type: "text"},
				{Name: "position", Type: "text", Nullable: true},
				{Name: "team_id", Type: "text", Nullable: true},
			},
			ForeignKeys: []ForeignKey{
				{Column: "team_id", ReferencesTable: "teams", ReferencesColumn: "team_id"},
			},
		},
		{
			Name: "player_statistics",
			Columns: []Column{
				{Name: "stat_id", Type: "bigint"},
				{Name: "player_id", Type: "text"},
				{Name: "team_id", Type: "text"},
				{Name: "season_id", Type: "text"},
				{Name: "games_played", Type: "integer", Nullable: true},
				{Name: "games_started", Type: "integer", Nullable: true},
				{Name: "rushing_yards", Type: "integer", Nullable: true},
				{Name: "rushing_touchdowns", Type: "integer", Nullable: true},
				{Name: "receiving_yards", Type: "integer", Nullable: true},
				{Name: "receiving_touchdowns", Type: "integer", Nullable: true},
				{Name: "kick_return_yards", Type: "integer", Nullable: true},
				{Name: "fumbles", Type: "integer", Nullable: true},
			},
			ForeignKeys: []ForeignKey{
				{Column: "player_id", ReferencesTable: "players", ReferencesColumn: "player_id"},
				{Column: "team_id", ReferencesTable: "teams", ReferencesColumn: "team_id"},
				{Column: "season_id", ReferencesTable: "seasons", ReferencesColumn: "season_id"},
			},
		},
		{
			Name: "rankings",
			Columns: []Column{
				{Name: "ranking_id", Type: "bigint"},
				{Name: "poll_id", Type: "text", Nullable: true},
				{Name: "poll_name", Type: "text", Nullable: true},
				{Name: "season_id", Type: "text"},
				{Name: "week", Type: "integer", Nullable: true},
				{Name: "effective_time", Type: "date", Nullable: true},
				{Name: "team_id", Type: "text"},
				{Name: "rank", Type: "integer"},
				{Name: "prev_rank", Type: "integer", Nullable: true},
				{Name: "points", Type: "integer", Nullable: true},
				{Name: "fp_votes", Type: "integer", Nullable: true},
				{Name: "wins", Type: "integer", Nullable: true},
				{Name: "losses", Type: "integer", Nullable: true},
				{Name: "ties", Type: "integer", Nullable: true},
			},
			ForeignKeys: []ForeignKey{
				{Column: "season_id", ReferencesTable: "seasons", ReferencesColumn: "season_id"},
				{Column: "team_id", ReferencesTable: "teams", ReferencesColumn: "team_id"},
			},
		},
	}
}

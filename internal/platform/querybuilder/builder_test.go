package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("team_id", "name").
		From("teams").
		Where(Eq("conference_id", "c1"), IsNull("division_id")).
		OrderBy("name").
		Limit(10).
		Offset(20).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT team_id, name FROM teams WHERE conference_id = $1 AND division_id IS NULL ORDER BY name LIMIT 10 OFFSET 20"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "c1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_Joins(t *testing.T) {
	query, args, err := Select("p.first_name", "t.name").
		From("players p").
		Join("teams t", "t.team_id = p.team_id").
		LeftJoin("conferences c", "c.conference_id = t.conference_id").
		Where(Eq("p.position", "QB")).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT p.first_name, t.name FROM players p" +
		" JOIN teams t ON t.team_id = p.team_id" +
		" LEFT JOIN conferences c ON c.conference_id = t.conference_id" +
		" WHERE p.position = $1"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "QB" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_Conditions(t *testing.T) {
	query, args, err := Select("name").
		From("teams").
		Where(
			In("conference_id", []any{"c1", "c2"}),
			ILike("name", "state"),
			Expr("founded >= ?", 1900),
		).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT name FROM teams WHERE conference_id IN ($1, $2) AND name ILIKE $3 AND founded >= $4"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 {
		t.Fatalf("unexpected args: %+v", args)
	}
	if args[2] != "%state%" {
		t.Fatalf("ILIKE arg = %v, want %%state%%", args[2])
	}
}

func TestSelectBuilder_EmptyIn(t *testing.T) {
	query, args, err := Select("name").
		From("teams").
		Where(In("conference_id", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT name FROM teams WHERE 1=0"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSQL(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{
			name: "sql fence",
			text: "Here you go:\n```sql\nSELECT name FROM teams\n```\nLet me know.",
			want: "SELECT name FROM teams",
		},
		{
			name: "generic fence with sql tag",
			text: "```\nsql\nSELECT 1\n```",
			want: "SELECT 1",
		},
		{
			name: "bare select",
			text: "  SELECT COUNT(*) FROM players  ",
			want: "SELECT COUNT(*) FROM players",
		},
		{
			name: "bare cte",
			text: "WITH ranked AS (SELECT 1) SELECT * FROM ranked",
			want: "WITH ranked AS (SELECT 1) SELECT * FROM ranked",
		},
		{
			name: "sql fence wins over generic fence",
			text: "```\nnot this\n```\n```sql\nSELECT 2\n```",
			want: "SELECT 2",
		},
		{
			name: "prose only",
			text: "I cannot answer that question.",
			want: "",
		},
		{
			name: "empty",
			text: "",
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractSQL(tc.text))
		})
	}
}

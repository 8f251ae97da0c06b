package usecase

import "testing"

func TestSummarizeRows(t *testing.T) {
	tests := []struct {
		name string
		rows []map[string]any
		want string
	}{
		{
			name: "empty",
			rows: nil,
			want: "No matching records were found.",
		},
		{
			name: "single row sorted keys",
			rows: []map[string]any{{"name": "Tigers", "market": "Clemson"}},
			want: "Found 1 record: market=Clemson, name=Tigers.",
		},
		{
			name: "integral float rendered without decimals",
			rows: []map[string]any{{"rushing_yards": float64(1548)}},
			want: "Found 1 record: rushing_yards=1548.",
		},
		{
			name: "null and bytes",
			rows: []map[string]any{{"alias": nil, "city": []byte("Tuscaloosa")}},
			want: "Found 1 record: alias=null, city=Tuscaloosa.",
		},
		{
			name: "few rows joined",
			rows: []map[string]any{{"rank": float64(1)}, {"rank": float64(2)}},
			want: "Found 2 records: rank=1; rank=2.",
		},
		{
			name: "many rows counted only",
			rows: []map[string]any{{"a": 1}, {"a": 2}, {"a": 3}, {"a": 4}},
			want: "Found 4 records.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := summarizeRows(tt.rows); got != tt.want {
				t.Fatalf("summarizeRows() = %q, want %q", got, tt.want)
			}
		})
	}
}

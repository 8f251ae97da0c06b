package sqlguard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gridironstats/ncaafb-api/internal/schema"
)

// Guard structurally validates model-generated SQL against the database
// schema before anything reaches Postgres. Validation is token based, so a
// forbidden keyword inside a string literal does not trip it and a real one
// hidden behind comments or casing does not slip past it.
type Guard struct {
	registry *schema.Registry
	maxRows  int
}

func New(registry *schema.Registry, maxRows int) *Guard {
	if maxRows <= 0 {
		maxRows = 100
	}
	return &Guard{registry: registry, maxRows: maxRows}
}

// MaxRows reports the row cap enforced on approved statements.
func (g *Guard) MaxRows() int { return g.maxRows }

// forbidden words anywhere in the statement, regardless of position.
var forbiddenWords = map[string]bool{
	"INSERT": true, "UPDATE": true, "DELETE": true, "DROP": true,
	"ALTER": true, "TRUNCATE": true, "CREATE": true, "GRANT": true,
	"REVOKE": true, "EXEC": true, "EXECUTE": true, "COPY": true,
	"MERGE": true, "CALL": true, "DO": true, "SET": true, "RESET": true,
	"LOCK": true, "VACUUM": true, "REINDEX": true, "CLUSTER": true,
	"COMMENT": true, "PREPARE": true, "DEALLOCATE": true, "LISTEN": true,
	"NOTIFY": true, "UNLISTEN": true, "DECLARE": true, "REFRESH": true,
	"IMPORT": true, "EXPLAIN": true, "ANALYZE": true, "SECURITY": true,
}

// words that are part of SQL syntax rather than schema references. The safe
// direction here is inclusion: a word in this set merely skips the
// unknown-column check, and every real column still has to resolve through
// the registry when qualified.
var keywords = map[string]bool{
	"SELECT": true, "FROM": true, "WHERE": true, "JOIN": true, "INNER": true,
	"LEFT": true, "RIGHT": true, "FULL": true, "OUTER": true, "CROSS": true,
	"ON": true, "USING": true, "AS": true, "AND": true, "OR": true,
	"NOT": true, "IN": true, "IS": true, "NULL": true, "LIKE": true,
	"ILIKE": true, "BETWEEN": true, "EXISTS": true, "CASE": true,
	"WHEN": true, "THEN": true, "ELSE": true, "END": true, "GROUP": true,
	"BY": true, "ORDER": true, "HAVING": true, "LIMIT": true,
	"OFFSET": true, "UNION": true, "ALL": true, "DISTINCT": true,
	"INTERSECT": true, "EXCEPT": true, "WITH": true, "RECURSIVE": true,
	"ASC": true, "DESC": true, "NULLS": true, "FIRST": true, "LAST": true,
	"TRUE": true, "FALSE": true, "CAST": true, "EXTRACT": true,
	"INTERVAL": true, "FILTER": true, "OVER": true, "PARTITION": true,
	"ROWS": true, "RANGE": true, "UNBOUNDED": true, "PRECEDING": true,
	"FOLLOWING": true, "CURRENT": true, "ROW": true, "FETCH": true,
	"NEXT": true, "ONLY": true, "TIES": true, "LATERAL": true,
	"VALUES": true, "ANY": true, "SOME": true, "SIMILAR": true,
	"TO": true, "ESCAPE": true, "COLLATE": true, "FOR": true,
	// date parts and common cast targets
	"YEAR": true, "MONTH": true, "DAY": true, "HOUR": true, "MINUTE": true,
	"SECOND": true, "DOW": true, "DOY": true, "WEEK": true, "QUARTER": true,
	"EPOCH": true, "CENTURY": true, "DECADE": true, "ISODOW": true,
	"ISOYEAR": true, "INT": true, "INTEGER": true, "BIGINT": true,
	"SMALLINT": true, "FLOAT": true, "NUMERIC": true, "DECIMAL": true,
	"TEXT": true, "VARCHAR": true, "CHAR": true, "BOOLEAN": true,
	"DATE": true, "TIMESTAMP": true, "TIMESTAMPTZ": true, "TIME": true,
	"REAL": true, "UUID": true, "DOUBLE": true, "PRECISION": true,
}

// functions whose argument lists embed FROM/IN/FOR as syntax, not as a
// table-source clause.
var embeddedClauseFuncs = map[string]bool{
	"EXTRACT": true, "SUBSTRING": true, "TRIM": true, "OVERLAY": true,
	"POSITION": true,
}

// functions a statement may call. Anything outside this set is rejected,
// which keeps server-side escape hatches like pg_sleep or pg_read_file out
// of approved statements.
var allowedFunctions = map[string]bool{
	// aggregates
	"COUNT": true, "SUM": true, "AVG": true, "MIN": true, "MAX": true,
	"STDDEV": true, "STDDEV_POP": true, "STDDEV_SAMP": true,
	"VARIANCE": true, "VAR_POP": true, "VAR_SAMP": true,
	"ARRAY_AGG": true, "STRING_AGG": true, "BOOL_AND": true, "BOOL_OR": true,
	// window
	"ROW_NUMBER": true, "RANK": true, "DENSE_RANK": true,
	"PERCENT_RANK": true, "CUME_DIST": true, "NTILE": true,
	"LAG": true, "LEAD": true, "FIRST_VALUE": true, "LAST_VALUE": true,
	"NTH_VALUE": true,
	// conditionals
	"COALESCE": true, "NULLIF": true, "GREATEST": true, "LEAST": true,
	// strings
	"UPPER": true, "LOWER": true, "INITCAP": true, "LENGTH": true,
	"CHAR_LENGTH": true, "SUBSTR": true, "REPLACE": true, "CONCAT": true,
	"CONCAT_WS": true, "LEFT": true, "RIGHT": true, "LPAD": true,
	"RPAD": true, "LTRIM": true, "RTRIM": true, "BTRIM": true,
	"SPLIT_PART": true, "STRPOS": true, "REVERSE": true, "REPEAT": true,
	"TRANSLATE": true, "FORMAT": true, "SUBSTRING": true, "TRIM": true,
	"OVERLAY": true, "POSITION": true,
	// numerics
	"ABS": true, "ROUND": true, "CEIL": true, "CEILING": true,
	"FLOOR": true, "TRUNC": true, "MOD": true, "POWER": true,
	"SQRT": true, "EXP": true, "LN": true, "LOG": true, "SIGN": true,
	// dates
	"NOW": true, "AGE": true, "DATE_TRUNC": true, "DATE_PART": true,
	"TO_CHAR": true, "TO_DATE": true, "TO_NUMBER": true,
	"TO_TIMESTAMP": true, "MAKE_DATE": true, "JUSTIFY_DAYS": true,
	"JUSTIFY_HOURS": true, "JUSTIFY_INTERVAL": true,
}

// Validate checks a candidate statement and returns the approved SQL with
// the row cap applied. The approved text is the candidate with at most a
// trailing semicolon stripped and a LIMIT injected or clamped.
func (g *Guard) Validate(candidate string) (string, error) {
	return g.ValidateWithLimit(candidate, g.maxRows)
}

// ValidateWithLimit validates with a caller-supplied row cap. The cap never
// exceeds the configured maximum.
func (g *Guard) ValidateWithLimit(candidate string, maxRows int) (string, error) {
	if maxRows <= 0 || maxRows > g.maxRows {
		maxRows = g.maxRows
	}
	if strings.TrimSpace(candidate) == "" {
		return "", fmt.Errorf("empty statement")
	}

	tokens, err := lex(candidate)
	if err != nil {
		return "", err
	}
	if len(tokens) == 0 {
		return "", fmt.Errorf("empty statement")
	}

	// A semicolon is only allowed as the very last token.
	cut := len(candidate)
	for i, tok := range tokens {
		if tok.kind == tokenSymbol && tok.text == ";" {
			if i != len(tokens)-1 {
				return "", fmt.Errorf("multiple statements are not allowed")
			}
			cut = tok.start
			tokens = tokens[:i]
		}
	}
	if len(tokens) == 0 {
		return "", fmt.Errorf("empty statement")
	}

	first := tokens[0]
	if !first.isWord("SELECT") && !first.isWord("WITH") {
		return "", fmt.Errorf("only SELECT statements are allowed, got %q", first.text)
	}

	for _, tok := range tokens {
		if tok.kind == tokenWord && forbiddenWords[tok.upper()] {
			return "", fmt.Errorf("forbidden keyword %q", tok.upper())
		}
	}

	an := g.collectNames(tokens)
	if err := g.checkTables(tokens, an); err != nil {
		return "", err
	}
	if err := g.checkColumns(tokens, an); err != nil {
		return "", err
	}

	return applyRowCap(candidate, tokens, cut, maxRows)
}

type analysis struct {
	ctes    map[string]bool
	aliases map[string]string // lowercase alias -> lowercase table, "" for subquery/CTE sources
	output  map[string]bool   // SELECT-list aliases usable in ORDER BY / HAVING
}

// collectNames gathers CTE names and AS-defined aliases before any
// reference checking, since a CTE may be referenced by a FROM clause that
// lexically precedes knowledge of it only in single-pass order.
func (g *Guard) collectNames(tokens []token) *analysis {
	an := &analysis{
		ctes:    make(map[string]bool),
		aliases: make(map[string]string),
		output:  make(map[string]bool),
	}
	for i, tok := range tokens {
		if tok.kind != tokenWord && tok.kind != tokenQuotedIdent {
			continue
		}
		if tok.kind == tokenWord && keywords[tok.upper()] {
			continue
		}
		// name AS ( ... )  — CTE or column-listed CTE header
		if j := i + 1; j < len(tokens) {
			if tokens[j].isWord("AS") && j+1 < len(tokens) && tokens[j+1].text == "(" {
				an.ctes[strings.ToLower(tok.text)] = true
				continue
			}
			// name (col, col) AS ( ... )
			if tokens[j].text == "(" && matchCTEColumnList(tokens, j, an) {
				an.ctes[strings.ToLower(tok.text)] = true
				continue
			}
		}
		// expr AS alias, output alias definition
		if i >= 1 && tokens[i-1].isWord("AS") {
			an.output[strings.ToLower(tok.text)] = true
		}
	}
	return an
}

// matchCTEColumnList checks whether tokens[open:] is "(ident, ...) AS ("
// and records the listed column names as known output names.
func matchCTEColumnList(tokens []token, open int, an *analysis) bool {
	cols := []string{}
	i := open + 1
	for {
		if i >= len(tokens) {
			return false
		}
		if tokens[i].kind != tokenWord && tokens[i].kind != tokenQuotedIdent {
			return false
		}
		cols = append(cols, strings.ToLower(tokens[i].text))
		i++
		if i >= len(tokens) {
			return false
		}
		if tokens[i].text == "," {
			i++
			continue
		}
		if tokens[i].text == ")" {
			i++
			break
		}
		return false
	}
	if i+1 < len(tokens) && tokens[i].isWord("AS") && tokens[i+1].text == "(" {
		for _, c := range cols {
			an.output[c] = true
		}
		return true
	}
	return false
}

// checkTables walks FROM and JOIN clauses, resolving every table source
// against the registry or the statement's own CTEs, and records aliases.
func (g *Guard) checkTables(tokens []token, an *analysis) error {
	depth := 0
	// paren depths at which an EXTRACT-style call opened; FROM tokens inside
	// those argument lists are function syntax, not table sources.
	funcDepths := []int{}

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch {
		case tok.text == "(":
			if i > 0 && tokens[i-1].kind == tokenWord && embeddedClauseFuncs[tokens[i-1].upper()] {
				funcDepths = append(funcDepths, depth)
			}
			depth++
		case tok.text == ")":
			depth--
			if len(funcDepths) > 0 && funcDepths[len(funcDepths)-1] == depth {
				funcDepths = funcDepths[:len(funcDepths)-1]
			}
		case tok.isWord("FROM") || tok.isWord("JOIN"):
			if len(funcDepths) > 0 {
				continue
			}
			next, err := g.parseTableSources(tokens, i+1, tok.isWord("FROM"), an)
			if err != nil {
				return err
			}
			i = next - 1
		}
	}
	return nil
}

// parseTableSources consumes one table source after FROM/JOIN, plus any
// comma-separated continuations when the clause is a FROM list. Subqueries
// are skipped here; their inner FROM clauses are visited by the main walk.
func (g *Guard) parseTableSources(tokens []token, i int, fromList bool, an *analysis) (int, error) {
	for {
		if i >= len(tokens) {
			return i, nil
		}
		if tokens[i].isWord("LATERAL") {
			i++
		}
		if i < len(tokens) && tokens[i].text == "(" {
			// derived table; validate its interior recursively, then take
			// the alias that names it
			open := i
			depth := 0
			for ; i < len(tokens); i++ {
				if tokens[i].text == "(" {
					depth++
				} else if tokens[i].text == ")" {
					depth--
					if depth == 0 {
						break
					}
				}
			}
			if i >= len(tokens) {
				return i, fmt.Errorf("unbalanced parentheses in FROM clause")
			}
			if err := g.checkTables(tokens[open+1:i], an); err != nil {
				return i, err
			}
			i = g.consumeAlias(tokens, i+1, "", an)
		} else {
			if i >= len(tokens) || tokens[i].kind != tokenWord && tokens[i].kind != tokenQuotedIdent {
				return i, fmt.Errorf("expected table name in FROM clause")
			}
			name := tokens[i].text
			i++
			if i+1 < len(tokens) && tokens[i].text == "." {
				if !strings.EqualFold(name, "public") {
					return i, fmt.Errorf("unknown schema %q", name)
				}
				name = tokens[i+1].text
				i += 2
			}
			lower := strings.ToLower(name)
			if !an.ctes[lower] && !g.registry.HasTable(lower) {
				return i, fmt.Errorf("unknown table %q", name)
			}
			i = g.consumeAlias(tokens, i, lower, an)
		}

		if fromList && i < len(tokens) && tokens[i].text == "," {
			i++
			continue
		}
		return i, nil
	}
}

func (g *Guard) consumeAlias(tokens []token, i int, table string, an *analysis) int {
	if i < len(tokens) && tokens[i].isWord("AS") {
		i++
	}
	if i < len(tokens) && (tokens[i].kind == tokenWord || tokens[i].kind == tokenQuotedIdent) {
		if tokens[i].kind == tokenQuotedIdent || !keywords[tokens[i].upper()] {
			target := ""
			if g.registry.HasTable(table) {
				target = table
			}
			an.aliases[strings.ToLower(tokens[i].text)] = target
			i++
		}
	}
	return i
}

// checkColumns verifies every identifier that could name a column. Qualified
// references must resolve through their alias or table; bare identifiers must
// exist somewhere in the schema or be an alias defined by the statement.
func (g *Guard) checkColumns(tokens []token, an *analysis) error {
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok.kind != tokenWord && tok.kind != tokenQuotedIdent {
			continue
		}
		if tok.kind == tokenWord && keywords[tok.upper()] {
			continue
		}
		// type name after a cast
		if i > 0 && tokens[i-1].text == "::" {
			continue
		}
		// schema-qualified table reference, already resolved by checkTables
		if strings.EqualFold(tok.text, "public") && i+2 < len(tokens) && tokens[i+1].text == "." &&
			g.registry.HasTable(strings.ToLower(tokens[i+2].text)) {
			i += 2
			continue
		}
		// qualified reference: qualifier.column or qualifier.*
		if i+1 < len(tokens) && tokens[i+1].text == "." {
			if i+2 >= len(tokens) {
				return fmt.Errorf("dangling qualifier %q", tok.text)
			}
			col := tokens[i+2]
			if err := g.checkQualified(tok.text, col, an); err != nil {
				return err
			}
			i += 2
			continue
		}
		// part of a qualified reference already checked
		if i > 0 && tokens[i-1].text == "." {
			continue
		}
		// function call, or a CTE header of the form name (cols) AS (...)
		if i+1 < len(tokens) && tokens[i+1].text == "(" {
			if an.ctes[strings.ToLower(tok.text)] {
				continue
			}
			if !allowedFunctions[tok.upper()] {
				return fmt.Errorf("function %q is not allowed", tok.text)
			}
			continue
		}
		lower := strings.ToLower(tok.text)
		if an.ctes[lower] || an.output[lower] {
			continue
		}
		if _, ok := an.aliases[lower]; ok {
			continue
		}
		if g.registry.HasTable(lower) || g.registry.HasColumnAnywhere(lower) {
			continue
		}
		return fmt.Errorf("unknown column %q", tok.text)
	}
	return nil
}

func (g *Guard) checkQualified(qualifier string, col token, an *analysis) error {
	lower := strings.ToLower(qualifier)

	table, isAlias := an.aliases[lower]
	switch {
	case isAlias && table == "":
		return nil // subquery or CTE source, output columns are not knowable here
	case isAlias:
		// fall through to the column check against table
	case an.ctes[lower]:
		return nil
	case g.registry.HasTable(lower):
		table = lower
	default:
		return fmt.Errorf("unknown table or alias %q", qualifier)
	}

	if col.text == "*" {
		return nil
	}
	if col.kind != tokenWord && col.kind != tokenQuotedIdent {
		return fmt.Errorf("expected column after %q.", qualifier)
	}
	if !g.registry.HasColumn(table, strings.ToLower(col.text)) {
		return fmt.Errorf("unknown column %q on table %q", col.text, table)
	}
	return nil
}

// applyRowCap injects a LIMIT when the statement has none at the top level,
// and clamps an existing one that exceeds the cap. FETCH FIRST counts as a
// limit and is clamped the same way.
func applyRowCap(candidate string, tokens []token, cut, maxRows int) (string, error) {
	base := tokens[0].start
	text := candidate[base:cut]
	text = strings.TrimRight(text, " \t\r\n")

	depth := 0
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok.text {
		case "(":
			depth++
			continue
		case ")":
			depth--
			continue
		}
		if depth != 0 {
			continue
		}

		if tok.isWord("LIMIT") && i+1 < len(tokens) {
			next := tokens[i+1]
			if next.isWord("ALL") {
				return spliceNumber(text, base, next, maxRows), nil
			}
			return clampNumber(text, base, next, maxRows)
		}
		if tok.isWord("FETCH") {
			for j := i + 1; j < len(tokens) && j <= i+3; j++ {
				if tokens[j].kind == tokenNumber {
					return clampNumber(text, base, tokens[j], maxRows)
				}
			}
			return text, nil // FETCH FIRST ROW ONLY
		}
	}

	return text + " LIMIT " + strconv.Itoa(maxRows), nil
}

func clampNumber(text string, base int, tok token, maxRows int) (string, error) {
	if tok.kind != tokenNumber {
		return "", fmt.Errorf("expected row count after LIMIT, got %q", tok.text)
	}
	n, err := strconv.Atoi(tok.text)
	if err != nil {
		return "", fmt.Errorf("invalid LIMIT value %q", tok.text)
	}
	if n <= maxRows {
		return text, nil
	}
	return spliceNumber(text, base, tok, maxRows), nil
}

func spliceNumber(text string, base int, tok token, maxRows int) string {
	return text[:tok.start-base] + strconv.Itoa(maxRows) + text[tok.end-base:]
}

package repository

import (
	"strings"

	"github.com/iliyamo/lightbnb/internal/dialect"
	"github.com/iliyamo/lightbnb/internal/model"
)

// statement collects the positional arguments of a query under
// construction. bind is the only way to add an argument and it returns
// the placeholder for exactly that argument, so the placeholders in the
// text and the argument slice always line up.
type statement struct {
	d    dialect.Dialect
	args []any
}

func newStatement(d dialect.Dialect) *statement { return &statement{d: d} }

func (s *statement) bind(v any) string {
	s.args = append(s.args, v)
	return s.d.Placeholder(len(s.args))
}

// likeEscaper neutralizes LIKE wildcards. Backslash is the default
// escape character of both PostgreSQL and MySQL.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// contains returns the LIKE pattern matching s literally anywhere.
func contains(s string) string { return "%" + likeEscaper.Replace(s) + "%" }

// where renders a WHERE clause from independent predicates, or nothing
// when there are none.
func where(preds []string) string {
	if len(preds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(preds, " AND ")
}

// having is the post-aggregation counterpart of where.
func having(preds []string) string {
	if len(preds) == 0 {
		return ""
	}
	return "HAVING " + strings.Join(preds, " AND ")
}

// lines joins the non-empty clauses of a statement, one per line.
func lines(clauses ...string) string {
	kept := make([]string, 0, len(clauses))
	for _, c := range clauses {
		if c = strings.TrimSpace(c); c != "" {
			kept = append(kept, c)
		}
	}
	return strings.Join(kept, "\n")
}

// insert renders an INSERT of cols into table. Column names and
// placeholders are built from the same ordered list.
func (s *statement) insert(table string, cols []model.Column) string {
	names := make([]string, len(cols))
	marks := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
		marks[i] = s.bind(c.Value)
	}
	return "INSERT INTO " + table + " (" + strings.Join(names, ", ") + ")\nVALUES (" + strings.Join(marks, ", ") + ")"
}

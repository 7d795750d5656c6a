package dialect

import "strconv"

type postgresDialect struct{}

// Postgres is the dialect used with the pgx driver.
var Postgres Dialect = postgresDialect{}

func (postgresDialect) Name() string { return "postgres" }

func (postgresDialect) Placeholder(n int) string { return "$" + strconv.Itoa(n) }

func (postgresDialect) SupportsReturning() bool { return true }

func (postgresDialect) CurrentDate() string { return "now()::date" }

func (postgresDialect) ILike(column, placeholder string) string {
	return column + " ILIKE " + placeholder
}

func (postgresDialect) ReviewJoin() string { return "FULL OUTER JOIN" }

func init() {
	Register("postgres", Postgres)
	Register("postgresql", Postgres)
	Register("pgx", Postgres)
}

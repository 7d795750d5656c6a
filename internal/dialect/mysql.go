package dialect

type mysqlDialect struct{}

// MySQL is the dialect used with go-sql-driver/mysql.
var MySQL Dialect = mysqlDialect{}

func (mysqlDialect) Name() string { return "mysql" }

func (mysqlDialect) Placeholder(int) string { return "?" }

// MySQL has no INSERT ... RETURNING; callers fall back to LastInsertId.
func (mysqlDialect) SupportsReturning() bool { return false }

func (mysqlDialect) CurrentDate() string { return "CURDATE()" }

func (mysqlDialect) ILike(column, placeholder string) string {
	return "LOWER(" + column + ") LIKE LOWER(" + placeholder + ")"
}

// No FULL OUTER JOIN in MySQL. Every review references an existing
// property, so a LEFT JOIN yields the same property rows.
func (mysqlDialect) ReviewJoin() string { return "LEFT JOIN" }

func init() {
	Register("mysql", MySQL)
}

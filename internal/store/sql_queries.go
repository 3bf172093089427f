package store

import (
	sq "github.com/Masterminds/squirrel"
)

const countersTable = "counters"

// psql is the statement builder shared by all counter queries. SQLite uses
// "?" placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildCreateCounterQuery inserts name with value 0 and silently skips an
// existing row, so zero affected rows means the name was taken.
func buildCreateCounterQuery(name string) (string, []any, error) {
	return psql.
		Insert(countersTable).
		Columns("name", "value").
		Values(name, 0).
		Suffix("ON CONFLICT(name) DO NOTHING").
		ToSql()
}

func buildGetCounterQuery(name string) (string, []any, error) {
	return psql.
		Select("value").
		From(countersTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

// buildIncrementCounterQuery increments in a single statement and returns
// the new value. No row comes back when name is missing.
func buildIncrementCounterQuery(name string) (string, []any, error) {
	return psql.
		Update(countersTable).
		Set("value", sq.Expr("value + 1")).
		Where(sq.Eq{"name": name}).
		Suffix("RETURNING value").
		ToSql()
}

func buildDeleteCounterQuery(name string) (string, []any, error) {
	return psql.
		Delete(countersTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

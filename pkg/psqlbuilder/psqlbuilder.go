package psqlbuilder

import "github.com/Masterminds/squirrel"

// builder is the shared squirrel builder configured for Postgres dollar
// placeholders. All repository queries go through these entry points so the
// placeholder format is set in exactly one place.
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}

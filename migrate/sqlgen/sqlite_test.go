package sqlgen_test

import (
	"database/sql"
	"fmt"
	"math"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/sqlkit/migrate/sqlgen"
	"github.com/satishbabariya/sqlkit/query/filter"
	dialects "github.com/satishbabariya/sqlkit/query/sqlgen"
	"github.com/satishbabariya/sqlkit/schema"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

// Generated DDL and WHERE fragments must be accepted by SQLite, and the
// foreign key must be registered with the declared actions.
func TestSQLite_Acceptance(t *testing.T) {
	authors, books := library(t)
	d := dialects.SQLite{}
	db := openSQLite(t)

	stmts, err := sqlgen.CreateTables([]*schema.Table{books, authors}, d)
	require.NoError(t, err)
	for _, stmt := range stmts {
		_, err := db.Exec(stmt)
		require.NoError(t, err, stmt)
	}

	var refTable, from, to, onUpdate, onDelete string
	err = db.QueryRow(`SELECT "table", "from", "to", on_update, on_delete FROM pragma_foreign_key_list('books')`).
		Scan(&refTable, &from, &to, &onUpdate, &onDelete)
	require.NoError(t, err)
	assert.Equal(t, "authors", refTable)
	assert.Equal(t, "author_id", from)
	assert.Equal(t, "id", to)
	assert.Equal(t, "NO ACTION", onUpdate)
	assert.Equal(t, "CASCADE", onDelete)

	for _, stmt := range []string{
		`INSERT INTO "authors" ("id", "name") VALUES (1, 'Ann'), (2, 'Bob')`,
		`INSERT INTO "books" ("id", "author_id", "title", "price") VALUES (1, 1, 'Go', 10.5), (2, 1, 'SQL', 20.0), (3, 2, 'Rust', 30.0)`,
	} {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	col := func(name string) filter.Value {
		c, ok := books.Column(name)
		require.True(t, ok)
		return filter.Col(c)
	}

	tests := []struct {
		name string
		f    filter.Filter
		want int
	}{
		{"between", filter.New(col("price"), filter.OpBetween, filter.IntArray{10, 25, 99}), 2},
		{"not between", filter.New(col("price"), filter.OpNotBetween, filter.DoubleArray{10, 25}), 1},
		{"in and equal", filter.And(
			filter.New(col("title"), filter.OpIn, filter.StringArray{"Go", "Rust"}),
			filter.New(col("author_id"), filter.OpEqual, filter.IntValue(1)),
		), 1},
		{"or", filter.Or(
			filter.New(col("title"), filter.OpLike, filter.StringValue("S%")),
			filter.New(col("price"), filter.OpGreater, filter.FloatValue(25)),
		), 2},
		{"function", filter.New(filter.Upper(col("title")), filter.OpEqual, filter.StringValue("SQL")), 1},
		{"not in", filter.New(col("id"), filter.OpNotIn, filter.IntArray{1}), 2},
		{"bool literal", filter.New(filter.BoolValue(true), filter.OpIs, filter.BoolValue(true)), 3},
		{"below infinity", filter.New(col("price"), filter.OpLess, filter.DoubleValue(math.Inf(1))), 3},
		{"above negative infinity", filter.New(col("price"), filter.OpGreater, filter.FloatValue(float32(math.Inf(-1)))), 3},
		{"infinite range", filter.New(col("price"), filter.OpBetween, filter.DoubleArray{20, math.Inf(1)}), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, err := dialects.Where(tt.f, d)
			require.NoError(t, err)

			var n int
			query := fmt.Sprintf(`SELECT COUNT(*) FROM "books" %s`, where)
			require.NoError(t, db.QueryRow(query).Scan(&n), query)
			assert.Equal(t, tt.want, n, query)
		})
	}

	_, err = db.Exec(`DELETE FROM "authors" WHERE "id" = 1`)
	require.NoError(t, err)
	var remaining int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM "books"`).Scan(&remaining))
	assert.Equal(t, 1, remaining)
}

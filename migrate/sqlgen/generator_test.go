package sqlgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/sqlkit/migrate/sqlgen"
	dialects "github.com/satishbabariya/sqlkit/query/sqlgen"
	"github.com/satishbabariya/sqlkit/schema"
)

func library(t *testing.T) (authors, books *schema.Table) {
	t.Helper()

	authors = schema.NewTable("authors")
	authorID := authors.AddColumn("id", schema.TypeInt).PrimaryKey()
	authors.AddColumn("name", schema.TypeText).NotNull()

	books = schema.NewTable("books")
	books.AddColumn("id", schema.TypeInt).PrimaryKey()
	ref := books.AddColumn("author_id", schema.TypeInt).NotNull()
	books.AddColumn("title", schema.TypeText)
	books.AddColumn("price", schema.TypeDouble)

	_, err := books.AddForeignKey([]*schema.Column{ref}, []*schema.Column{authorID},
		schema.OnUpdate(schema.NoAction), schema.OnDelete(schema.Cascade))
	require.NoError(t, err)
	return authors, books
}

func TestCreateTable_ANSI(t *testing.T) {
	_, books := library(t)

	sql, err := sqlgen.CreateTable(books, dialects.ANSI{})
	require.NoError(t, err)
	assert.Equal(t,
		"CREATE TABLE books (id INTEGER NOT NULL, author_id INTEGER NOT NULL, title VARCHAR(255), price DOUBLE PRECISION, "+
			"PRIMARY KEY (id), FOREIGN KEY (author_id) REFERENCES authors(id) ON UPDATE NO ACTION ON DELETE CASCADE)",
		sql)
}

func TestCreateTable_Postgres(t *testing.T) {
	authors, _ := library(t)

	sql, err := sqlgen.CreateTable(authors, dialects.Postgres{})
	require.NoError(t, err)
	assert.Equal(t, `CREATE TABLE "authors" ("id" integer NOT NULL, "name" text NOT NULL, PRIMARY KEY ("id"))`, sql)
}

func TestCreateTable_NoColumns(t *testing.T) {
	_, err := sqlgen.CreateTable(schema.NewTable("empty"), dialects.ANSI{})
	assert.ErrorIs(t, err, sqlgen.ErrNoColumns)
}

func TestCreateTables_OrdersByReference(t *testing.T) {
	authors, books := library(t)

	stmts, err := sqlgen.CreateTables([]*schema.Table{books, authors}, dialects.ANSI{})
	require.NoError(t, err)
	require.Len(t, stmts, 2)
	assert.Contains(t, stmts[0], "CREATE TABLE authors")
	assert.Contains(t, stmts[1], "CREATE TABLE books")
}

func TestOrderTables(t *testing.T) {
	a := schema.NewTable("a")
	aID := a.AddColumn("id", schema.TypeInt)
	aParent := a.AddColumn("parent_id", schema.TypeInt)
	b := schema.NewTable("b")
	bID := b.AddColumn("id", schema.TypeInt)
	bA := b.AddColumn("a_id", schema.TypeInt)
	c := schema.NewTable("c")
	cB := c.AddColumn("b_id", schema.TypeInt)
	cExt := c.AddColumn("ext_id", schema.TypeInt)
	ext := schema.NewTable("external")
	extID := ext.AddColumn("id", schema.TypeInt)

	_, err := a.AddForeignKey([]*schema.Column{aParent}, []*schema.Column{aID})
	require.NoError(t, err)
	_, err = b.AddForeignKey([]*schema.Column{bA}, []*schema.Column{aID})
	require.NoError(t, err)
	_, err = c.AddForeignKey([]*schema.Column{cB}, []*schema.Column{bID})
	require.NoError(t, err)
	_, err = c.AddForeignKey([]*schema.Column{cExt}, []*schema.Column{extID})
	require.NoError(t, err)

	ordered, err := sqlgen.OrderTables([]*schema.Table{c, b, a})
	require.NoError(t, err)
	assert.Equal(t, []*schema.Table{a, b, c}, ordered)
}

func TestOrderTables_Cycle(t *testing.T) {
	a := schema.NewTable("a")
	aID := a.AddColumn("id", schema.TypeInt)
	aB := a.AddColumn("b_id", schema.TypeInt)
	b := schema.NewTable("b")
	bID := b.AddColumn("id", schema.TypeInt)
	bA := b.AddColumn("a_id", schema.TypeInt)

	_, err := a.AddForeignKey([]*schema.Column{aB}, []*schema.Column{bID})
	require.NoError(t, err)
	_, err = b.AddForeignKey([]*schema.Column{bA}, []*schema.Column{aID})
	require.NoError(t, err)

	_, err = sqlgen.OrderTables([]*schema.Table{a, b})
	assert.ErrorIs(t, err, sqlgen.ErrDependencyCycle)
}

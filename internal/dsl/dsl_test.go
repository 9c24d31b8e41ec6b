package dsl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/sqlkit/internal/dsl"
	"github.com/satishbabariya/sqlkit/query/filter"
	"github.com/satishbabariya/sqlkit/query/sqlgen"
	"github.com/satishbabariya/sqlkit/schema"
)

func catalog() dsl.Tables {
	users := schema.NewTable("users")
	users.AddColumn("id", schema.TypeInt)
	users.AddColumn("name", schema.TypeText)
	users.AddColumn("age", schema.TypeInt)
	users.AddColumn("score", schema.TypeDouble)
	users.AddColumn("active", schema.TypeBool)
	return dsl.NewTables(users)
}

func render(t *testing.T, input string) string {
	t.Helper()

	f, err := dsl.Parse(input, catalog())
	require.NoError(t, err)
	sql, err := f.Build(sqlgen.ANSI{})
	require.NoError(t, err)
	return sql
}

func TestParse_Comparisons(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"users.age >= 18", "age >= 18"},
		{"users.age != 18", "age <> 18"},
		{"users.age <> 18", "age <> 18"},
		{"users.name = 'O''Brien'", "name = 'O''Brien'"},
		{"users.score < 2.5", "score < 2.5"},
		{"users.score > 1e3", "score > 1000"},
		{"users.active is true", "active IS true"},
		{"users.active IS NOT false", "active IS NOT false"},
		{"users.name like 'a%'", "name LIKE 'a%'"},
		{"users.name not like 'a%'", "name NOT LIKE 'a%'"},
		{"users.id in [1, 2, 3]", "id IN (1, 2, 3)"},
		{"users.id not in [1]", "id NOT IN (1)"},
		{"users.name in ['a', 'b']", "name IN ('a', 'b')"},
		{"users.score between [1, 2.5]", "score BETWEEN 1 AND 2.5"},
		{"users.age not between [1, 9]", "age NOT BETWEEN 1 AND 9"},
		{"users.active in [true, false]", "active IN (true, false)"},
		{"users.age = -1", "age = -1"},
		{"users.id = users.age", "id = age"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, tt.input))
		})
	}
}

func TestParse_Precedence(t *testing.T) {
	assert.Equal(t,
		"(age > 1) OR ((age < 5) AND (id = 3))",
		render(t, "users.age > 1 or users.age < 5 and users.id = 3"))
	assert.Equal(t,
		"((age > 1) OR (age < 5)) AND (id = 3)",
		render(t, "(users.age > 1 or users.age < 5) and users.id = 3"))
	assert.Equal(t,
		"((id = 1) AND (id = 2)) AND (id = 3)",
		render(t, "users.id = 1 AND users.id = 2 AND users.id = 3"))
}

func TestParse_Functions(t *testing.T) {
	assert.Equal(t, "UPPER(name) = 'A'", render(t, "upper(users.name) = 'A'"))
	assert.Equal(t, "ROUND(score, 1) > 2", render(t, "ROUND(users.score, 1) > 2"))
	assert.Equal(t, "SUBSTR(name, 1, 2) = 'ab'", render(t, "substr(users.name, 1, 2) = 'ab'"))
	assert.Equal(t, "NOW() > 0", render(t, "now() > 0"))
}

func TestParse_Regexp(t *testing.T) {
	f, err := dsl.Parse("users.name not regexp '^a'", catalog())
	require.NoError(t, err)
	assert.Equal(t, filter.OpNotRegexp, f.Operator())

	sql, err := f.Build(sqlgen.MySQL{})
	require.NoError(t, err)
	assert.Equal(t, "`name` NOT REGEXP '^a'", sql)

	_, err = f.Build(sqlgen.ANSI{})
	assert.ErrorIs(t, err, filter.ErrSyntax)
}

func TestParse_Structure(t *testing.T) {
	f, err := dsl.Parse("users.id in [1, 2]", catalog())
	require.NoError(t, err)

	assert.Equal(t, filter.OpIn, f.Operator())
	assert.Equal(t, filter.IntArray{1, 2}, f.Right())
	col, ok := f.Left().(filter.ColumnRef)
	require.True(t, ok)
	assert.Equal(t, "id", col.Column().Name())
}

func TestParse_ArrayWidening(t *testing.T) {
	f, err := dsl.Parse("users.score in [1, 2.5]", catalog())
	require.NoError(t, err)
	assert.Equal(t, filter.DoubleArray{1, 2.5}, f.Right())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		input string
		err   error
	}{
		{"orders.id = 1", dsl.ErrUnknownTable},
		{"users.email = 'x'", dsl.ErrUnknownColumn},
		{"users.id in [1, 'a']", dsl.ErrMixedArray},
		{"users.id in []", dsl.ErrEmptyArray},
		{"trim(users.name) = 'a'", dsl.ErrUnknownFunction},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := dsl.Parse(tt.input, catalog())
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, input := range []string{
		"",
		"users.id",
		"users.id = ",
		"users.id == 1",
		"(users.id = 1",
		"upper(users.name, 'x') = 'A'",
	} {
		_, err := dsl.Parse(input, catalog())
		assert.Error(t, err, input)
	}
}

func TestParse_RangeArityIsCheckedAtBuild(t *testing.T) {
	f, err := dsl.Parse("users.age between [1]", catalog())
	require.NoError(t, err)

	_, err = f.Build(sqlgen.ANSI{})
	assert.ErrorIs(t, err, filter.ErrSyntax)
}

package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/sqlkit/cli/internal/config"
	"github.com/satishbabariya/sqlkit/cli/internal/document"
	"github.com/satishbabariya/sqlkit/cli/internal/ui"
)

func setup(t *testing.T) afero.Fs {
	t.Helper()

	prev := config.AppFs
	config.AppFs = afero.NewMemMapFs()
	t.Cleanup(func() { config.AppFs = prev })

	for _, key := range []string{"DATABASE_URL", "SQLKIT_DIALECT", "SQLKIT_FORMAT", "SQLKIT_DEBUG", "SQLKIT_DOCUMENT"} {
		t.Setenv(key, "")
	}
	t.Setenv("HOME", "/home/tester")
	ui.DisableColor()
	return config.AppFs
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCompile_Golden(t *testing.T) {
	fs := setup(t)
	require.NoError(t, afero.WriteFile(fs, "sqlkit.yaml", []byte(document.Example), 0644))

	out, err := execute(t, "compile", "--dialect", "sqlite")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "compile_sqlite", []byte(out))
}

func TestCompile_ConfiguredDocumentAndDialect(t *testing.T) {
	fs := setup(t)
	require.NoError(t, afero.WriteFile(fs, "db.yaml", []byte(document.Example), 0644))
	require.NoError(t, afero.WriteFile(fs, config.FileName, []byte("dialect: mysql\ndocument: db.yaml\n"), 0644))

	out, err := execute(t, "compile")
	require.NoError(t, err)
	assert.Contains(t, out, "-- dialect: mysql")
	assert.Contains(t, out, "CREATE TABLE `authors`")
}

func TestCompile_Errors(t *testing.T) {
	fs := setup(t)
	require.NoError(t, afero.WriteFile(fs, "sqlkit.yaml", []byte(document.Example), 0644))
	require.NoError(t, afero.WriteFile(fs, "future.yaml", []byte("requires: \">= 99.0\"\ntables: []\n"), 0644))

	_, err := execute(t, "compile", "--dialect", "oracle")
	assert.ErrorContains(t, err, "unsupported provider: oracle")

	_, err = execute(t, "compile", "--format", "html")
	assert.ErrorContains(t, err, "unknown format")

	_, err = execute(t, "compile", "missing.yaml")
	assert.Error(t, err)

	_, err = execute(t, "compile", "future.yaml")
	assert.ErrorIs(t, err, document.ErrIncompatible)
}

func TestValidate(t *testing.T) {
	fs := setup(t)
	require.NoError(t, afero.WriteFile(fs, "sqlkit.yaml", []byte(document.Example), 0644))

	out, err := execute(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "sqlkit validate")
	assert.Contains(t, out, "ansi")
	assert.Contains(t, out, "sqlkit.yaml is valid")
	assert.Contains(t, out, "2 table(s), 1 foreign key(s), 2 filter(s)")
}

func TestValidate_RangeArity(t *testing.T) {
	fs := setup(t)
	src := "tables:\n  - name: a\n    columns: [{name: id, type: int}]\nfilters:\n  - {name: short, where: \"a.id between [1]\"}\n"
	require.NoError(t, afero.WriteFile(fs, "sqlkit.yaml", []byte(src), 0644))

	_, err := execute(t, "validate")
	assert.ErrorContains(t, err, "filter short")
}

func TestFormat(t *testing.T) {
	fs := setup(t)
	require.NoError(t, afero.WriteFile(fs, "sqlkit.yaml", []byte(document.Example), 0644))

	_, err := execute(t, "format", "--check")
	assert.ErrorIs(t, err, errNotFormatted)

	out, err := execute(t, "fmt")
	require.NoError(t, err)
	assert.Contains(t, out, "Formatted sqlkit.yaml")

	out, err = execute(t, "format", "--check")
	require.NoError(t, err)
	assert.Contains(t, out, "already formatted")

	// The rewritten document still compiles to the same SQL.
	formatted, err := execute(t, "compile", "--dialect", "sqlite")
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, "orig.yaml", []byte(document.Example), 0644))
	original, err := execute(t, "compile", "--dialect", "sqlite", "orig.yaml")
	require.NoError(t, err)
	assert.Equal(t, original, formatted)
}

func TestDialects(t *testing.T) {
	setup(t)

	out, err := execute(t, "dialects")
	require.NoError(t, err)
	for _, name := range []string{"ansi", "mysql", "postgresql", "sqlite", "sqlserver"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "[order]")
	assert.Contains(t, out, "~")
	assert.Contains(t, out, "REGEXP")
}

func TestInit(t *testing.T) {
	fs := setup(t)

	out, err := execute(t, "init", "--dialect", "postgres")
	require.NoError(t, err)
	assert.Contains(t, out, "Created .sqlkit.yaml")

	cfg, err := config.Load(config.FileName, nil)
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Dialect)

	doc, err := afero.ReadFile(fs, "sqlkit.yaml")
	require.NoError(t, err)
	assert.Equal(t, document.Example, string(doc))

	_, err = execute(t, "init")
	assert.ErrorContains(t, err, "already exists")

	out, err = execute(t, "init", "--force", "--dialect", "mysql")
	require.NoError(t, err)
	assert.Contains(t, out, "Document already exists")
}

func TestVersion(t *testing.T) {
	setup(t)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sqlkit version")
}

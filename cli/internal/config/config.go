// Package config loads CLI settings from .sqlkit.yaml, SQLKIT_* environment
// variables, .env files and command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/lib/pq"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// AppFs is the filesystem config, .env and document files are read from.
var AppFs = afero.NewOsFs()

// FileName is the base name of the config file.
const FileName = ".sqlkit.yaml"

// ErrUnknownDSN is returned when no dialect can be derived from a DSN.
var ErrUnknownDSN = errors.New("cannot detect dialect from database url")

// Config holds the application configuration
type Config struct {
	Dialect     string
	Document    string
	Format      string
	DatabaseURL string
	Debug       bool

	// File is the config file that was read, empty when none was found.
	File string
}

// Load reads configuration. An explicit path must exist; otherwise
// .sqlkit.yaml is searched in the working directory, $HOME and
// $HOME/.config/sqlkit. Flags in fs named dialect, format and debug
// override file and environment values when set.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	loadDotEnv(".env", false)
	loadDotEnv(".env.local", true)

	v := viper.New()
	v.SetFs(AppFs)
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else if ok, _ := afero.Exists(AppFs, FileName); ok {
		v.SetConfigFile(FileName)
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, ".yaml"))
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
			v.AddConfigPath(filepath.Join(home, ".config", "sqlkit"))
		}
	}

	v.SetEnvPrefix("SQLKIT")
	v.AutomaticEnv()
	if err := v.BindEnv("database_url", "SQLKIT_DATABASE_URL", "DATABASE_URL"); err != nil {
		return nil, err
	}

	v.SetDefault("document", "sqlkit.yaml")
	v.SetDefault("format", "text")

	if fs != nil {
		for _, name := range []string{"dialect", "format", "debug"} {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(name, f); err != nil {
					return nil, err
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Dialect:     v.GetString("dialect"),
		Document:    v.GetString("document"),
		Format:      v.GetString("format"),
		DatabaseURL: v.GetString("database_url"),
		Debug:       v.GetBool("debug"),
		File:        v.ConfigFileUsed(),
	}

	if cfg.Dialect == "" {
		cfg.Dialect = "ansi"
		if cfg.DatabaseURL != "" {
			if d, err := DetectDialect(cfg.DatabaseURL); err == nil {
				cfg.Dialect = d
			}
		}
	}

	return cfg, nil
}

// loadDotEnv sets variables from an env file on AppFs. Non-empty existing
// variables win unless override is set. A missing or unreadable file is
// skipped.
func loadDotEnv(name string, override bool) {
	f, err := AppFs.Open(name)
	if err != nil {
		return
	}
	defer f.Close()

	vars, err := godotenv.Parse(f)
	if err != nil {
		return
	}
	for k, val := range vars {
		if os.Getenv(k) != "" && !override {
			continue
		}
		os.Setenv(k, val)
	}
}

// DetectDialect derives a dialect name from a database connection string.
func DetectDialect(dsn string) (string, error) {
	lower := strings.ToLower(dsn)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		if _, err := pq.ParseURL(dsn); err != nil {
			return "", fmt.Errorf("%w: %v", ErrUnknownDSN, err)
		}
		return "postgres", nil
	case strings.HasPrefix(lower, "sqlserver://"):
		return "mssql", nil
	case strings.HasPrefix(lower, "file:"),
		strings.HasSuffix(lower, ".db"),
		strings.HasSuffix(lower, ".sqlite"),
		strings.HasSuffix(lower, ".sqlite3"):
		return "sqlite", nil
	}

	if cfg, err := mysql.ParseDSN(dsn); err == nil && cfg.Addr != "" {
		return "mysql", nil
	}
	return "", ErrUnknownDSN
}

// Save writes cfg to path.
func Save(cfg *Config, path string) error {
	v := viper.New()
	v.SetFs(AppFs)
	v.Set("dialect", cfg.Dialect)
	v.Set("document", cfg.Document)
	v.Set("format", cfg.Format)

	if dir := filepath.Dir(path); dir != "." {
		if err := AppFs.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return v.WriteConfigAs(path)
}

package commands

import (
	"github.com/satishbabariya/sqlkit/cli/internal/config"
	"github.com/satishbabariya/sqlkit/cli/internal/document"
	"github.com/satishbabariya/sqlkit/cli/internal/version"
)

// documentPath picks the positional argument over the configured document.
func documentPath(cfg *config.Config, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.Document
}

// loadSchema reads, version-checks and resolves a document.
func loadSchema(path string) (*document.Document, *document.Schema, error) {
	doc, err := document.Load(config.AppFs, path)
	if err != nil {
		return nil, nil, err
	}
	if err := doc.Check(version.Current()); err != nil {
		return nil, nil, err
	}
	s, err := doc.Schema()
	if err != nil {
		return nil, nil, err
	}
	return doc, s, nil
}

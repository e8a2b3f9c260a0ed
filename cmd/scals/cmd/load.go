package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-scals/scals/cmd/scals/internal/config"
	"github.com/go-scals/scals/pkg/document"
	"github.com/go-scals/scals/pkg/state"
)

// loadDocument decodes a document file, choosing the decoder by extension.
func loadDocument(path string) (*document.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return document.DecodeYAML(data)
	default:
		return document.DecodeJSON(data)
	}
}

// loadState reads a JSON or YAML state seed file into a store. The seed is
// applied without merging; the document's declared defaults merge on top
// when the resolver is created.
func loadState(store *state.Store, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read state seed: %w", err)
	}
	var seed state.Value
	if err := seed.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("parse state seed: %w", err)
	}
	if seed.Kind() != state.KindObject {
		return fmt.Errorf("state seed must be an object, got %s", seed.Kind())
	}
	store.Initialize(seed, false)
	return nil
}

// documentPath picks the document argument, falling back to scals.yaml's
// configured default.
func documentPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 && !strings.HasPrefix(args[0], "--") {
		return args[0], nil
	}
	if cfg.Document.Path != "" {
		return cfg.Document.Path, nil
	}
	return "", fmt.Errorf("no document given (pass a path or set document.path in scals.yaml)")
}

// flagValue extracts "--name value" or "--name=value" from args.
func flagValue(args []string, name string) string {
	prefix := "--" + name
	for i, arg := range args {
		if arg == prefix && i+1 < len(args) {
			return args[i+1]
		}
		if strings.HasPrefix(arg, prefix+"=") {
			return strings.TrimPrefix(arg, prefix+"=")
		}
	}
	return ""
}

// hasFlag reports whether the boolean flag is present.
func hasFlag(args []string, name string) bool {
	for _, arg := range args {
		if arg == "--"+name {
			return true
		}
	}
	return false
}

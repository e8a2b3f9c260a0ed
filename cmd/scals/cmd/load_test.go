package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-scals/scals/cmd/scals/internal/config"
	"github.com/go-scals/scals/pkg/state"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDocument_ByExtension(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeFile(t, dir, "app.json", `{"root": {"kind": "spacer"}}`)
	yamlPath := writeFile(t, dir, "app.yaml", "root:\n  kind: spacer\n")

	for _, path := range []string{jsonPath, yamlPath} {
		doc, err := loadDocument(path)
		if err != nil {
			t.Fatalf("loadDocument(%s): %v", path, err)
		}
		if doc.Root.Kind != "spacer" {
			t.Errorf("%s root kind = %q", path, doc.Root.Kind)
		}
	}
}

func TestLoadState(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "session.json", `{"count": 5}`)

	store := state.NewStore()
	if err := loadState(store, path); err != nil {
		t.Fatalf("loadState: %v", err)
	}
	count, _ := store.Get("count")
	if !count.Equal(state.Int(5)) {
		t.Errorf("count = %v", count)
	}

	bad := writeFile(t, dir, "bad.json", `[1, 2]`)
	if err := loadState(store, bad); err == nil {
		t.Error("non-object seed should error")
	}
}

func TestFlagHelpers(t *testing.T) {
	args := []string{"app.json", "--state", "s.json", "--pretty", "--dirty=a,b"}
	if got := flagValue(args, "state"); got != "s.json" {
		t.Errorf("state = %q", got)
	}
	if got := flagValue(args, "dirty"); got != "a,b" {
		t.Errorf("dirty = %q", got)
	}
	if !hasFlag(args, "pretty") || hasFlag(args, "track") {
		t.Error("hasFlag mismatch")
	}
}

func TestDocumentPath_FallsBackToConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Document.Path = "default.json"
	got, err := documentPath([]string{"--track"}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got != "default.json" {
		t.Errorf("path = %q", got)
	}
	if _, err := documentPath(nil, &config.Config{}); err == nil {
		t.Error("expected error with no document anywhere")
	}
}

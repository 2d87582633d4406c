package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRepoRootFindsModule(t *testing.T) {
	root := RepoRoot(t)
	if _, err := os.Stat(filepath.Join(root, "go.mod")); err != nil {
		t.Fatalf("expected go.mod under %s: %v", root, err)
	}
}

func TestWriteFile(t *testing.T) {
	path := WriteFile(t, "pairs.json", `{"a":"1"}`)
	if filepath.Base(path) != "pairs.json" {
		t.Fatalf("unexpected name %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != `{"a":"1"}` {
		t.Fatalf("unexpected content %q", data)
	}
}

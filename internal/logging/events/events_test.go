package events

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/kvedit/internal/logging"
)

type entry struct {
	Event   string                 `json:"event"`
	Payload map[string]interface{} `json:"payload"`
}

func traceInto(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.log")
	logging.Configure(path)
	logging.SetTraceEnabled(true)
	t.Cleanup(func() {
		logging.SetTraceEnabled(false)
		logging.Configure("")
	})
	return path
}

func readEntries(t *testing.T, path string) []entry {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open trace: %v", err)
	}
	defer f.Close()
	var out []entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			t.Fatalf("decode %q: %v", scanner.Text(), err)
		}
		out = append(out, e)
	}
	return out
}

func TestEditorEventsWritten(t *testing.T) {
	path := traceInto(t)
	Editor.Begin("key")
	Editor.Cancel("value", EditReasonEscape)
	Editor.Commit("name", 3)
	Load.Error("missing.json", nil)
	Load.Error("missing.json", errors.New("boom"))

	entries := readEntries(t, path)
	want := []string{"editor.edit.begin", "editor.edit.cancel", "editor.commit", "editor.load.error"}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %+v", len(want), entries)
	}
	for i, name := range want {
		if entries[i].Event != name {
			t.Fatalf("entry %d: expected %s, got %s", i, name, entries[i].Event)
		}
	}
	if entries[1].Payload["reason"] != "escape" {
		t.Fatalf("expected escape reason, got %v", entries[1].Payload)
	}
	if entries[2].Payload["pairs"] != float64(3) {
		t.Fatalf("expected pair count, got %v", entries[2].Payload)
	}
	if entries[3].Payload["error"] != "boom" {
		t.Fatalf("expected error text, got %v", entries[3].Payload)
	}
}

func TestEventsSilentWhenTraceDisabled(t *testing.T) {
	path := traceInto(t)
	logging.SetTraceEnabled(false)
	UI.Screen("main", "editing")
	Exit.Confirm(true)
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no trace file, stat err %v", err)
	}
}

package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/kvedit/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func plainView(h *Harness) string {
	return ansi.Strip(h.View())
}

func TestViewListsPairsWithSelection(t *testing.T) {
	h := newTestHarness(t, map[string]string{"b": "2", "alpha": "1"}, Options{})
	view := plainView(h)
	if !strings.Contains(view, "> alpha : 1") {
		t.Fatalf("expected selected alpha row, view =\n%s", view)
	}
	if !strings.Contains(view, "  b     : 2") {
		t.Fatalf("expected aligned b row, view =\n%s", view)
	}
	if !strings.Contains(view, "MAIN") || !strings.Contains(view, "2 pairs") {
		t.Fatalf("expected status line, view =\n%s", view)
	}
}

func TestViewEmptyState(t *testing.T) {
	h := newTestHarness(t, nil, Options{})
	if view := plainView(h); !strings.Contains(view, "(no pairs)") {
		t.Fatalf("expected empty marker, view =\n%s", view)
	}
}

func TestViewShowsEditPanel(t *testing.T) {
	h := newTestHarness(t, nil, Options{})
	h.Type("e")
	h.Type("user")
	view := plainView(h)
	for _, want := range []string{"Enter a new key-value pair", "Key:   user", "Value: ", "EDITING", "editing key"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view =\n%s", want, view)
		}
	}
}

func TestViewShowsExitQuestion(t *testing.T) {
	h := newTestHarness(t, nil, Options{})
	h.Type("q")
	if view := plainView(h); !strings.Contains(view, exitQuestion) {
		t.Fatalf("expected exit question, view =\n%s", view)
	}
}

func TestViewShowsLoadPromptAndError(t *testing.T) {
	h := newTestHarness(t, nil, Options{})
	h.Type("l")
	view := plainView(h)
	if !strings.Contains(view, "Load JSON file") {
		t.Fatalf("expected load prompt, view =\n%s", view)
	}
	h.Type("/does/not/exist.json")
	h.Press(tea.KeyEnter)
	view = plainView(h)
	if !strings.Contains(view, "Error: read /does/not/exist.json") {
		t.Fatalf("expected read error in status, view =\n%s", view)
	}
}

func TestViewFilterPromptAndNoMatches(t *testing.T) {
	h := newTestHarness(t, map[string]string{"a": "1"}, Options{})
	h.Type("/")
	if view := plainView(h); !strings.Contains(view, "/ "+filterPlaceholder) {
		t.Fatalf("expected filter placeholder, view =\n%s", view)
	}
	h.Type("zzz")
	view := plainView(h)
	if !strings.Contains(view, `No matches for "zzz"`) {
		t.Fatalf("expected no-match message, view =\n%s", view)
	}
	if !strings.Contains(view, "0 of 1 pairs") {
		t.Fatalf("expected filtered count, view =\n%s", view)
	}
}

func TestViewFooterHints(t *testing.T) {
	h := newTestHarness(t, nil, Options{ShowFooter: true})
	if view := plainView(h); !strings.Contains(view, "e new pair") {
		t.Fatalf("expected main footer, view =\n%s", view)
	}
	h.Type("e")
	if view := plainView(h); !strings.Contains(view, "tab switch field") {
		t.Fatalf("expected editing footer, view =\n%s", view)
	}
}

func TestViewTruncatesToWidth(t *testing.T) {
	long := strings.Repeat("x", 80)
	h := newTestHarness(t, map[string]string{"k": long}, Options{Width: 24})
	for _, line := range strings.Split(plainView(h), "\n") {
		if w := ansi.StringWidth(line); w > 24 {
			t.Fatalf("line %q exceeds width: %d", line, w)
		}
	}
}

func TestViewKeepsCursorRowVisible(t *testing.T) {
	pairs := make(map[string]string)
	for _, k := range []string{"k01", "k02", "k03", "k04", "k05", "k06", "k07", "k08", "k09", "k10"} {
		pairs[k] = "v"
	}
	h := newTestHarness(t, pairs, Options{Height: 6})
	h.Type("G")
	view := plainView(h)
	if !strings.Contains(view, "> k10") {
		t.Fatalf("expected last row visible, view =\n%s", view)
	}
	if strings.Contains(view, "k01") {
		t.Fatalf("expected first row scrolled out, view =\n%s", view)
	}
	if lines := strings.Split(view, "\n"); len(lines) > 6 {
		t.Fatalf("expected at most 6 lines, got %d:\n%s", len(lines), view)
	}
}

func TestViewShowsEmptyKeyQuoted(t *testing.T) {
	h := newTestHarness(t, map[string]string{"": "blank"}, Options{})
	if view := plainView(h); !strings.Contains(view, `> "" : blank`) {
		t.Fatalf("expected quoted empty key, view =\n%s", view)
	}
}

func TestViewGoldenMainScreen(t *testing.T) {
	h := newTestHarness(t, map[string]string{"a": "1", "bb": "22"}, Options{})
	testutil.AssertGolden(t, "main_view.golden", plainView(h))
}

func TestViewEscapesControlCharacters(t *testing.T) {
	value := strings.Repeat("line\n", 9) + "last"
	h := newTestHarness(t, map[string]string{"multi": value, "tab\tkey": "\x1b[31mred"}, Options{Width: 40, Height: 6})
	raw := h.View()
	if lines := strings.Split(raw, "\n"); len(lines) > 6 {
		t.Fatalf("expected at most 6 lines, got %d:\n%s", len(lines), raw)
	}
	if strings.Contains(raw, "\x1b[31mred") {
		t.Fatalf("expected escape sequence from value to be neutralised")
	}
	view := ansi.Strip(raw)
	if !strings.Contains(view, `multi    : line\nline\n`) {
		t.Fatalf("expected newlines spelled out, view =\n%s", view)
	}
	if !strings.Contains(view, `tab\tkey : \x1b[31mred`) {
		t.Fatalf("expected control runes spelled out, view =\n%s", view)
	}
}

func TestDisplayTextLeavesPrintableTextAlone(t *testing.T) {
	for in, want := range map[string]string{
		"plain":      "plain",
		"with space": "with space",
		"a\nb":       `a\nb`,
		"bell\a":     `bell\a`,
		"nul\x00":    `nul\x00`,
	} {
		if got := displayText(in); got != want {
			t.Fatalf("displayText(%q) = %q, want %q", in, got, want)
		}
	}
}

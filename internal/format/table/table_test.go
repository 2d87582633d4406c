package table

import (
	"reflect"
	"testing"
)

func TestFormatPadsColumns(t *testing.T) {
	rows := [][]string{
		{"a", "1"},
		{"longer", "22"},
	}
	got := Format(rows, nil, " : ")
	want := []string{
		"a      : 1",
		"longer : 22",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatRightAlignment(t *testing.T) {
	rows := [][]string{
		{"1", "x"},
		{"100", "y"},
	}
	got := Format(rows, []Alignment{AlignRight}, " ")
	want := []string{"  1 x", "100 y"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatUsesDisplayWidth(t *testing.T) {
	rows := [][]string{
		{"日本", "v"},
		{"abcd", "w"},
	}
	got := Format(rows, nil, "|")
	want := []string{"日本|v", "abcd|w"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil, " "); got != nil {
		t.Fatalf("expected nil, got %q", got)
	}
}

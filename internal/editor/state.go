// Package editor holds the in-memory model behind the key/value editor: the
// committed pairs, the key and value input buffers, and the screen, edit-field
// and load-phase modes. It has no knowledge of rendering or key dispatch;
// callers drive it through the methods on State.
package editor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// State is the editor model. The zero value is not ready for use; call New.
type State struct {
	Pairs       map[string]string
	KeyBuffer   string
	ValueBuffer string
	Screen      Screen
	EditField   EditField
	LoadPhase   LoadPhase
	LastOutput  string
}

// New returns an empty editor on the main screen with nothing being edited.
func New() *State {
	return &State{
		Pairs:     make(map[string]string),
		Screen:    ScreenMain,
		EditField: EditNone,
		LoadPhase: LoadNone,
	}
}

// LoadFromFile reads a flat JSON object of strings from path and merges it
// into Pairs. Loaded keys overwrite existing ones; other keys are kept. On any
// error Pairs is left untouched.
func (s *State) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &LoadError{Kind: LoadErrorIO, Path: path, Err: err}
	}
	loaded, err := ParsePairs(data)
	if err != nil {
		return &LoadError{Kind: LoadErrorParse, Path: path, Err: err}
	}
	if s.Pairs == nil {
		s.Pairs = make(map[string]string, len(loaded))
	}
	for k, v := range loaded {
		s.Pairs[k] = v
	}
	return nil
}

// ParsePairs decodes a JSON object whose values are all strings. The input
// must be valid UTF-8 and may not escape unpaired surrogates.
func ParsePairs(data []byte) (map[string]string, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("input is not valid UTF-8")
	}
	var raw map[string]*string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if err := checkSurrogates(data); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("expected a JSON object, got null")
	}
	pairs := make(map[string]string, len(raw))
	for k, v := range raw {
		if v == nil {
			return nil, fmt.Errorf("value for key %q is null, expected a string", k)
		}
		pairs[k] = *v
	}
	return pairs, nil
}

// checkSurrogates scans the \u escapes of already decoded JSON. The decoder
// replaces a lone surrogate with U+FFFD instead of failing.
func checkSurrogates(data []byte) error {
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' || i+1 >= len(data) {
			continue
		}
		if data[i+1] != 'u' {
			i++
			continue
		}
		r, ok := hexRune(data, i+2)
		if !ok {
			return fmt.Errorf("invalid escape at offset %d", i)
		}
		switch {
		case utf16.IsSurrogate(r) && r < 0xdc00:
			lo, ok := hexRune(data, i+8)
			if !ok || i+7 >= len(data) || data[i+6] != '\\' || data[i+7] != 'u' || lo < 0xdc00 || lo > 0xdfff {
				return fmt.Errorf("unpaired surrogate \\u%04x at offset %d", r, i)
			}
			i += 11
		case utf16.IsSurrogate(r):
			return fmt.Errorf("unpaired surrogate \\u%04x at offset %d", r, i)
		default:
			i += 5
		}
	}
	return nil
}

func hexRune(data []byte, at int) (rune, bool) {
	if at < 0 || at+4 > len(data) {
		return 0, false
	}
	v, err := strconv.ParseUint(string(data[at:at+4]), 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}

// BeginOrAdvanceEdit starts composing a pair at the key field, or moves focus
// between the key and value fields when a pair is already being composed.
func (s *State) BeginOrAdvanceEdit() {
	switch s.EditField {
	case EditKey:
		s.EditField = EditValue
	case EditValue:
		s.EditField = EditKey
	default:
		s.EditField = EditKey
	}
}

// CancelEdit stops composing without committing. Buffer contents are kept.
func (s *State) CancelEdit() {
	s.EditField = EditNone
}

// CommitPair stores the buffered key and value, then clears both buffers and
// ends the edit. Empty keys are stored as-is.
func (s *State) CommitPair() {
	if s.Pairs == nil {
		s.Pairs = make(map[string]string)
	}
	s.Pairs[s.KeyBuffer] = s.ValueBuffer
	s.KeyBuffer = ""
	s.ValueBuffer = ""
	s.EditField = EditNone
}

// AdvanceLoadPhase marks a load as done. Once a phase is set it does not
// change.
func (s *State) AdvanceLoadPhase() {
	if s.LoadPhase == LoadNone {
		s.LoadPhase = LoadDone
	}
}

// Serialize encodes Pairs as a compact JSON object and records the result in
// LastOutput.
func (s *State) Serialize() (string, error) {
	pairs := s.Pairs
	if pairs == nil {
		pairs = map[string]string{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(pairs); err != nil {
		return "", &SerializeError{Err: err}
	}
	out := strings.TrimSuffix(buf.String(), "\n")
	s.LastOutput = out
	return out, nil
}

// WriteJSON serializes the pairs and writes them, newline terminated, to w.
func (s *State) WriteJSON(w io.Writer) error {
	out, err := s.Serialize()
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, out+"\n"); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// ActiveInput returns the buffer selected by EditField.
func (s *State) ActiveInput() string {
	switch s.EditField {
	case EditKey:
		return s.KeyBuffer
	case EditValue:
		return s.ValueBuffer
	default:
		return ""
	}
}

// AppendInput appends text to the active buffer. It reports false when no
// field is being edited.
func (s *State) AppendInput(text string) bool {
	if text == "" {
		return false
	}
	switch s.EditField {
	case EditKey:
		s.KeyBuffer += text
	case EditValue:
		s.ValueBuffer += text
	default:
		return false
	}
	return true
}

// DeleteInputRune removes the last rune of the active buffer.
func (s *State) DeleteInputRune() bool {
	var buf *string
	switch s.EditField {
	case EditKey:
		buf = &s.KeyBuffer
	case EditValue:
		buf = &s.ValueBuffer
	default:
		return false
	}
	runes := []rune(*buf)
	if len(runes) == 0 {
		return false
	}
	*buf = string(runes[:len(runes)-1])
	return true
}

// ClearInput empties the active buffer.
func (s *State) ClearInput() bool {
	switch s.EditField {
	case EditKey:
		if s.KeyBuffer == "" {
			return false
		}
		s.KeyBuffer = ""
	case EditValue:
		if s.ValueBuffer == "" {
			return false
		}
		s.ValueBuffer = ""
	default:
		return false
	}
	return true
}

// Keys returns the committed keys in sorted order.
func (s *State) Keys() []string {
	keys := make([]string, 0, len(s.Pairs))
	for k := range s.Pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len reports the number of committed pairs.
func (s *State) Len() int {
	return len(s.Pairs)
}

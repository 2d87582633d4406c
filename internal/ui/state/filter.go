package state

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// StartFilter enters filtering mode.
func (l *List) StartFilter() bool {
	if l.Filtering {
		return false
	}
	l.Filtering = true
	return true
}

// StopFilter leaves filtering mode and clears the query.
func (l *List) StopFilter() {
	l.Filtering = false
	l.SetFilter("", 0)
}

// SetFilter updates the filter query and cursor position.
func (l *List) SetFilter(query string, cursor int) {
	selected, hadSelection := l.Selected()
	l.Filter = query
	l.FilterCursor = clamp(cursor, 0, len([]rune(query)))
	l.applyFilter()
	trimmed := strings.TrimSpace(query)
	switch {
	case trimmed != "":
		l.Cursor = BestMatchIndex(l.Items, trimmed)
		if l.Cursor < 0 {
			l.Cursor = 0
		}
	case hadSelection:
		l.SelectKey(selected.Key)
	}
}

func (l *List) applyFilter() {
	l.Items = FilterPairs(l.Full, l.Filter)
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, len(l.Items)-1)
	if l.ViewportOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
	}
}

// FilterCursorPos returns the rune offset of the filter cursor.
func (l *List) FilterCursorPos() int {
	return clamp(l.FilterCursor, 0, len([]rune(l.Filter)))
}

// InsertFilterText inserts text into the filter at the cursor position.
func (l *List) InsertFilterText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(l.Filter)
	pos := l.FilterCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	l.SetFilter(string(updated), pos+len(insert))
	return true
}

// DeleteFilterRuneBackward deletes a rune before the filter cursor.
func (l *List) DeleteFilterRuneBackward() bool {
	runes := []rune(l.Filter)
	pos := l.FilterCursorPos()
	if pos == 0 {
		return false
	}
	updated := append(runes[:pos-1:pos-1], runes[pos:]...)
	l.SetFilter(string(updated), pos-1)
	return true
}

// DeleteFilterWordBackward deletes the word preceding the cursor.
func (l *List) DeleteFilterWordBackward() bool {
	runes := []rune(l.Filter)
	pos := l.FilterCursorPos()
	if pos == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	updated := append(runes[:i:i], runes[pos:]...)
	l.SetFilter(string(updated), i)
	return true
}

// MoveFilterCursorRuneBackward moves the filter cursor one rune backward.
func (l *List) MoveFilterCursorRuneBackward() bool {
	pos := l.FilterCursorPos()
	if pos == 0 {
		return false
	}
	l.FilterCursor = pos - 1
	return true
}

// MoveFilterCursorRuneForward moves the filter cursor one rune forward.
func (l *List) MoveFilterCursorRuneForward() bool {
	pos := l.FilterCursorPos()
	if pos >= len([]rune(l.Filter)) {
		return false
	}
	l.FilterCursor = pos + 1
	return true
}

func pairLabel(p Pair) string {
	return p.Key + " " + p.Value
}

// FilterPairs returns the pairs whose key or value match query. Fuzzy matches
// are tried first, then plain substring matches.
func FilterPairs(pairs []Pair, query string) []Pair {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return append([]Pair(nil), pairs...)
	}
	labels := make([]string, len(pairs))
	for i, p := range pairs {
		labels[i] = pairLabel(p)
	}
	if ranks := fuzzy.RankFindNormalizedFold(trimmed, labels); len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]Pair, 0, len(matches))
		for idx, p := range pairs {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, p)
			}
		}
		return filtered
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]Pair, 0, len(pairs))
	for _, p := range pairs {
		if strings.Contains(strings.ToLower(p.Key), lower) || strings.Contains(strings.ToLower(p.Value), lower) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// BestMatchIndex returns the index of the pair that best matches query:
// an exact key, then a key prefix, then the closest fuzzy match.
func BestMatchIndex(pairs []Pair, query string) int {
	if len(pairs) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, p := range pairs {
		if strings.EqualFold(p.Key, trimmed) {
			return i
		}
	}
	for i, p := range pairs {
		if strings.HasPrefix(strings.ToLower(p.Key), lower) {
			return i
		}
	}
	labels := make([]string, len(pairs))
	for i, p := range pairs {
		labels[i] = pairLabel(p)
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(pairs) {
		return 0
	}
	return best.OriginalIndex
}

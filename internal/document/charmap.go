package document

import (
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Entry records one character whose display width differs from its
// character width: Disp is its display column, Char its character
// index within the line.
type Entry struct {
	Disp int
	Char int
}

// CharMap notes the locations of double width and tab characters per
// line, so index translation never has to rescan whole lines. Entries
// within a line are kept in ascending order.
type CharMap struct {
	Map map[int][]Entry
}

// NewCharMap returns an empty character map.
func NewCharMap() CharMap {
	return CharMap{Map: make(map[int][]Entry)}
}

// Insert registers a line's entries, skipping empty slices.
func (m *CharMap) Insert(y int, slice []Entry) {
	if len(slice) != 0 {
		m.Map[y] = slice
	}
}

// Delete forgets a line.
func (m *CharMap) Delete(y int) {
	delete(m.Map, y)
}

// Get returns a line's entries, nil when the line has none.
func (m *CharMap) Get(y int) []Entry {
	return m.Map[y]
}

// Contains reports whether the line has any entries.
func (m *CharMap) Contains(y int) bool {
	_, ok := m.Map[y]
	return ok
}

// Splice inserts entries into a line at a position in its entry list.
func (m *CharMap) Splice(loc Loc, start int, slice []Entry) {
	if line, ok := m.Map[loc.Y]; ok {
		out := make([]Entry, 0, len(line)+len(slice))
		out = append(out, line[:start]...)
		out = append(out, slice...)
		out = append(out, line[start:]...)
		m.Map[loc.Y] = out
	} else if len(slice) != 0 {
		m.Map[loc.Y] = slice
	}
}

// ShiftInsertion moves entries after an insertion point up by the
// inserted text's widths, returning the entry index of the insertion
// point for a following Splice.
func (m *CharMap) ShiftInsertion(loc Loc, st string, tabWidth int) int {
	if !m.Contains(loc.Y) {
		return 0
	}
	charShift := utf8.RuneCountInString(st)
	dispShift := Width(st, tabWidth)
	start, _ := m.Count(loc, false)
	line := m.Map[loc.Y]
	for i := start; i < len(line); i++ {
		line[i].Disp += dispShift
		line[i].Char += charShift
	}
	return start
}

// ShiftDeletion drops entries within a deleted range and moves the
// ones after it down by the removed text's widths. start and end are
// character positions within the whole file; lineStart is where line
// y begins.
func (m *CharMap) ShiftDeletion(y, lineStart, start, end int, st string, tabWidth int) {
	if !m.Contains(y) {
		return
	}
	charShift := utf8.RuneCountInString(st)
	dispShift := Width(st, tabWidth)
	startMap, _ := m.Count(At(start-lineStart, y), false)
	mapCount, _ := m.Count(At(end-lineStart, y), false)
	line := m.Map[y]
	for i := mapCount; i < len(line); i++ {
		line[i].Disp -= dispShift
		line[i].Char -= charShift
	}
	line = append(line[:startMap], line[mapCount:]...)
	if len(line) == 0 {
		delete(m.Map, y)
	} else {
		m.Map[y] = line
	}
}

// ShiftUp renumbers lines at or below y up by one.
func (m *CharMap) ShiftUp(y int) {
	keys := m.sortedKeys()
	for _, k := range keys {
		if k >= y {
			v := m.Map[k]
			delete(m.Map, k)
			m.Map[k-1] = v
		}
	}
}

// ShiftDown renumbers lines at or below y down by one.
func (m *CharMap) ShiftDown(y int) {
	keys := m.sortedKeys()
	for i := len(keys) - 1; i >= 0; i-- {
		if keys[i] >= y {
			v := m.Map[keys[i]]
			delete(m.Map, keys[i])
			m.Map[keys[i]+1] = v
		}
	}
}

func (m *CharMap) sortedKeys() []int {
	keys := make([]int, 0, len(m.Map))
	for k := range m.Map {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j] < keys[j-1]; j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
	return keys
}

// Count reports how many entries on loc.Y sit strictly before loc.X,
// comparing display columns when display is true and character
// indices otherwise. The second result is false when the line has no
// entries at all.
func (m *CharMap) Count(loc Loc, display bool) (int, bool) {
	line, ok := m.Map[loc.Y]
	if !ok {
		return 0, false
	}
	ctr := 0
	for _, e := range line {
		i := e.Char
		if display {
			i = e.Disp
		}
		if i >= loc.X {
			break
		}
		ctr++
	}
	return ctr, true
}

// Inside reports how far display column x sits into a tab on line y,
// or false when x is not strictly within any tab's span.
func (m *CharMap) Inside(tabWidth, x, y int) (int, bool) {
	for _, e := range m.Map[y] {
		if e.Disp < x && x < e.Disp+tabWidth {
			return x - e.Disp, true
		}
	}
	return 0, false
}

// FormMap scans a line and builds its double width and tab entry
// lists from scratch. Control characters count as one column; width
// zero combining marks land in the double width map.
func FormMap(st string, tabWidth int) (dbl, tab []Entry) {
	idx := 0
	charIdx := 0
	for _, ch := range st {
		w := runewidth.RuneWidth(ch)
		switch {
		case ch == '\t':
			tab = append(tab, Entry{Disp: idx, Char: charIdx})
			idx += tabWidth
		case w == 1 || (w == 0 && unicode.IsControl(ch)):
			idx++
		default:
			dbl = append(dbl, Entry{Disp: idx, Char: charIdx})
			idx += 2
		}
		charIdx++
	}
	return dbl, tab
}

package document

import (
	"unicode/utf8"

	"github.com/scribe-editor/scribe/internal/rope"
	"github.com/scribe-editor/scribe/internal/search"
)

// Match is a pattern hit within the document. Loc.X is a character
// index on line Loc.Y.
type Match struct {
	Loc  Loc
	Text string
}

// Document manages one open file: its rope, the cache of loaded
// lines, the width maps, the cursor and viewport, and the undo
// history. All editing must go through Exe so that undo and redo see
// every change.
type Document struct {
	// FileName is the absolute path of the file, empty for unsaved
	// buffers.
	FileName string
	// File is the rope holding the authoritative text.
	File rope.Rope
	// Lines caches the loaded lines, without trailing newlines.
	Lines []string
	// Info holds the state of the underlying file.
	Info DocumentInfo
	// DblMap locates double width characters on loaded lines.
	DblMap CharMap
	// TabMap locates tab characters on loaded lines.
	TabMap CharMap
	// Size is the viewport dimensions.
	Size Size
	// Cursor is the primary cursor and its selection anchor.
	Cursor Cursor
	// Offset is the scroll position of the viewport.
	Offset Loc
	// CharPtr is the character index matching the cursor's display
	// column.
	CharPtr int
	// UndoMgmt owns the snapshot history.
	UndoMgmt UndoMgmt
	// OldCursor remembers the display column to snap back to when
	// moving vertically through shorter lines.
	OldCursor int
	// TabWidth is how many spaces a tab renders as.
	TabWidth int

	// inRedo suppresses tab-aware delete expansion while events are
	// being replayed.
	inRedo bool
}

// SetTabWidth sets the tab display width, default 4.
func (d *Document) SetTabWidth(tabWidth int) {
	d.TabWidth = tabWidth
}

// Exe executes an editing event, recording it for undo and redo.
func (d *Document) Exe(ev Event) error {
	if !d.Info.ReadOnly {
		d.UndoMgmt.LastEvent = ev
		if err := d.forth(ev); err != nil {
			return err
		}
		d.Info.Modified = true
	}
	d.CancelSelection()
	return nil
}

// forth applies an event without registering it.
func (d *Document) forth(ev Event) error {
	switch e := ev.(type) {
	case Insert:
		return d.insert(e.Loc, e.Text)
	case Delete:
		return d.deleteWithTab(e.Loc, e.Text)
	case InsertLine:
		return d.insertLine(e.Y, e.Text)
	case DeleteLine:
		return d.deleteLine(e.Y)
	case SplitDown:
		return d.splitDown(e.Loc)
	case SpliceUp:
		return d.spliceUp(e.Loc.Y)
	}
	return nil
}

// Commit finalizes the edits since the last commit into one undo
// step. Callers decide the granularity: after a word, on leaving
// insert mode, on a pause.
func (d *Document) Commit() {
	d.UndoMgmt.Commit(d.takeSnapshot())
}

// Undo steps the document back to the previous commit point.
func (d *Document) Undo() {
	if s, ok := d.UndoMgmt.Undo(d.takeSnapshot()); ok {
		d.applySnapshot(s)
	}
}

// Redo steps the document forward to the next commit point.
func (d *Document) Redo() {
	d.inRedo = true
	defer func() { d.inRedo = false }()
	if s, ok := d.UndoMgmt.Redo(d.takeSnapshot()); ok {
		d.applySnapshot(s)
	}
}

// takeSnapshot captures the document state for the undo history.
func (d *Document) takeSnapshot() Snapshot {
	return Snapshot{
		Content: d.File.String(),
		Cursor:  d.CharLoc(),
	}
}

// applySnapshot swaps the live state for a history entry.
func (d *Document) applySnapshot(s Snapshot) {
	d.File = rope.FromString(s.Content)
	d.ReloadLines()
	d.MoveTo(s.Cursor)
	d.Info.Modified = !d.UndoMgmt.AtDisk(s)
}

// ReloadLines rebuilds the line cache and width maps from the rope.
func (d *Document) ReloadLines() {
	to := d.Info.LoadedTo
	d.Info.LoadedTo = 0
	d.Lines = d.Lines[:0]
	d.DblMap = NewCharMap()
	d.TabMap = NewCharMap()
	d.LoadTo(to)
}

// LocToFilePos converts a character location into a rope index.
func (d *Document) LocToFilePos(loc Loc) int {
	return d.File.LineToChar(loc.Y) + loc.X
}

// NextMatch finds the next occurrence of a pattern at or after the
// cursor, skipping inc characters first. Lines are loaded on demand
// as the scan walks down the file.
func (d *Document) NextMatch(pattern string, inc int) (Match, bool) {
	srch := search.New(pattern)
	line, ok := d.Line(d.Loc().Y)
	if !ok {
		return Match{}, false
	}
	current := skipChars(line, d.CharPtr+inc)
	if m, ok := srch.LFind(current); ok {
		return Match{
			Loc:  At(m.X+d.CharPtr+inc, d.Loc().Y),
			Text: m.Text,
		}, true
	}
	lineNo := d.Loc().Y + 1
	d.LoadTo(lineNo + 1)
	for {
		line, ok := d.Line(lineNo)
		if !ok {
			return Match{}, false
		}
		if m, ok := srch.LFind(line); ok {
			return Match{Loc: At(m.X, lineNo), Text: m.Text}, true
		}
		lineNo++
		d.LoadTo(lineNo + 1)
	}
}

// PrevMatch finds the previous occurrence of a pattern before the
// cursor.
func (d *Document) PrevMatch(pattern string) (Match, bool) {
	srch := search.New(pattern)
	line, ok := d.Line(d.Loc().Y)
	if !ok {
		return Match{}, false
	}
	current := takeChars(line, d.CharPtr)
	if m, ok := srch.RFind(current); ok {
		return Match{Loc: At(m.X, d.Loc().Y), Text: m.Text}, true
	}
	d.LoadTo(d.Loc().Y + 1)
	lineNo := d.Loc().Y - 1
	for lineNo >= 0 {
		line, ok := d.Line(lineNo)
		if !ok {
			return Match{}, false
		}
		if m, ok := srch.RFind(line); ok {
			return Match{Loc: At(m.X, lineNo), Text: m.Text}, true
		}
		lineNo--
	}
	return Match{}, false
}

// Replace swaps target for another string at a location.
func (d *Document) Replace(loc Loc, target, into string) error {
	if err := d.Exe(Delete{Loc: loc, Text: target}); err != nil {
		return err
	}
	return d.Exe(Insert{Loc: loc, Text: into})
}

// ReplaceAll replaces every match of a pattern, scanning from the top
// of the document.
func (d *Document) ReplaceAll(pattern, into string) {
	d.MoveTo(At(0, 0))
	for {
		// The scan starts one character past the cursor, so a match at
		// the very start of the document is left alone
		m, ok := d.NextMatch(pattern, 1)
		if !ok {
			return
		}
		_ = d.Replace(m.Loc, m.Text, into)
	}
}

// BringCursorInViewport scrolls the viewport the minimum amount
// needed to contain the cursor, loading any newly visible lines.
func (d *Document) BringCursorInViewport() {
	if d.Offset.Y > d.Cursor.Loc.Y {
		d.Offset.Y = d.Cursor.Loc.Y
	}
	if d.Offset.Y+d.Size.H <= d.Cursor.Loc.Y {
		d.Offset.Y = sat(d.Cursor.Loc.Y-d.Size.H) + 1
	}
	if d.Offset.X > d.Cursor.Loc.X {
		d.Offset.X = d.Cursor.Loc.X
	}
	if d.Offset.X+d.Size.W <= d.Cursor.Loc.X {
		d.Offset.X = sat(d.Cursor.Loc.X-d.Size.W) + 1
	}
	d.LoadTo(d.Offset.Y + d.Size.H)
}

// outOfRange checks that character location (x, y) is within the
// loaded document.
func (d *Document) outOfRange(x, y int) error {
	if y >= d.LenLines() || y >= len(d.Lines) {
		return ErrOutOfRange
	}
	if x > utf8.RuneCountInString(d.Lines[y]) {
		return ErrOutOfRange
	}
	return nil
}

// validRange checks that [start, end] is an ordered in-range span on
// line y.
func (d *Document) validRange(start, end, y int) error {
	if err := d.outOfRange(start, y); err != nil {
		return err
	}
	if err := d.outOfRange(end, y); err != nil {
		return err
	}
	if start > end {
		return ErrOutOfRange
	}
	return nil
}

// CharacterIdx converts a display column into a character index on a
// line, accounting for double width characters and for columns that
// land inside a tab's span.
func (d *Document) CharacterIdx(loc Loc) int {
	idx := loc.X
	dblCount, _ := d.DblMap.Count(loc, true)
	idx = sat(idx - dblCount)
	tabsBehind, _ := d.TabMap.Count(loc, true)
	if innerIdx, ok := d.TabMap.Inside(d.TabWidth, loc.X, loc.Y); ok {
		existingTabs := sat(tabsBehind-1) * sat(d.TabWidth-1)
		idx = sat(idx - (existingTabs + innerIdx))
	} else {
		idx = sat(idx - tabsBehind*sat(d.TabWidth-1))
	}
	return idx
}

// displayIdx converts a character index into a display column on a
// line.
func (d *Document) displayIdx(loc Loc) int {
	idx := loc.X
	dblCount, _ := d.DblMap.Count(loc, false)
	idx += dblCount
	tabCount, _ := d.TabMap.Count(loc, false)
	idx += tabCount * sat(d.TabWidth-1)
	return idx
}

// updateCharPtr recomputes the character pointer from the cursor's
// display column, for after vertical motion.
func (d *Document) updateCharPtr() {
	idx := d.Loc().X
	dblCount, _ := d.DblMap.Count(d.Loc(), true)
	idx = sat(idx - dblCount)
	tabCount, _ := d.TabMap.Count(d.Loc(), true)
	idx = sat(idx - tabCount*sat(d.TabWidth-1))
	d.CharPtr = idx
}

// fixDanglingCursor snaps the cursor back into the line it landed on.
func (d *Document) fixDanglingCursor() {
	if line, ok := d.Line(d.Loc().Y); ok {
		if d.Loc().X > Width(line, d.TabWidth) {
			d.SelectToX(utf8.RuneCountInString(line))
		}
	} else {
		d.SelectHome()
	}
}

// fixSplit moves the cursor off the middle of a double width
// character or a tab span.
func (d *Document) fixSplit() {
	magnitude := 0
	loc := d.Loc()
	if m := d.DblMap.Get(loc.Y); len(m) > 0 {
		count, _ := d.DblMap.Count(loc, true)
		start := m[sat(count-1)].Disp
		if loc.X == start+1 {
			magnitude++
		}
	}
	if m := d.TabMap.Get(loc.Y); len(m) > 0 {
		count, _ := d.TabMap.Count(loc, true)
		start := m[sat(count-1)].Disp
		if start <= loc.X && loc.X < start+d.TabWidth {
			magnitude += sat(loc.X - start)
		}
	}
	d.Cursor.Loc.X = sat(d.Cursor.Loc.X - magnitude)
}

// IsDblWidth reports whether character index x on line y is a double
// width character.
func (d *Document) IsDblWidth(y, x int) bool {
	for _, e := range d.DblMap.Get(y) {
		if e.Char == x {
			return true
		}
	}
	return false
}

// IsTab reports whether character index x on line y is a tab.
func (d *Document) IsTab(y, x int) bool {
	for _, e := range d.TabMap.Get(y) {
		if e.Char == x {
			return true
		}
	}
	return false
}

// WidthOf reports the display width of the character at index x on
// line y.
func (d *Document) WidthOf(y, x int) int {
	if d.IsDblWidth(y, x) {
		return 2
	}
	if d.IsTab(y, x) {
		return d.TabWidth
	}
	return 1
}

// skipChars drops the first n characters of a string.
func skipChars(st string, n int) string {
	i := 0
	for b := range st {
		if i == n {
			return st[b:]
		}
		i++
	}
	return ""
}

// takeChars keeps the first n characters of a string.
func takeChars(st string, n int) string {
	i := 0
	for b := range st {
		if i == n {
			return st[:b]
		}
		i++
	}
	return st
}

// sat clamps a subtraction result at zero.
func sat(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

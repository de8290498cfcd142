package document

import "unicode/utf8"

// Cursor is the primary cursor's position and the other end of any
// selection it is covering. Both locations are in display columns.
// When Loc equals SelectionEnd there is no active selection.
type Cursor struct {
	Loc          Loc
	SelectionEnd Loc
}

// MoveUp moves the cursor up one line.
func (d *Document) MoveUp() Status {
	r := d.SelectUp()
	d.CancelSelection()
	return r
}

// SelectUp extends the selection up one line.
func (d *Document) SelectUp() Status {
	if d.Loc().Y == 0 {
		return StatusStartOfFile
	}
	d.Cursor.Loc.Y--
	d.Cursor.Loc.X = d.OldCursor
	// Snap to end of line
	d.fixDanglingCursor()
	// Move back if in the middle of a longer character
	d.fixSplit()
	d.updateCharPtr()
	d.BringCursorInViewport()
	return StatusNone
}

// MoveDown moves the cursor down one line.
func (d *Document) MoveDown() Status {
	r := d.SelectDown()
	d.CancelSelection()
	return r
}

// SelectDown extends the selection down one line.
func (d *Document) SelectDown() Status {
	if d.LenLines() < d.Loc().Y+1 {
		return StatusEndOfFile
	}
	d.Cursor.Loc.Y++
	d.Cursor.Loc.X = d.OldCursor
	// Snap to end of line
	d.fixDanglingCursor()
	// Move back if in the middle of a longer character
	d.fixSplit()
	d.updateCharPtr()
	d.BringCursorInViewport()
	return StatusNone
}

// MoveLeft moves the cursor left by one character.
func (d *Document) MoveLeft() Status {
	r := d.SelectLeft()
	d.CancelSelection()
	return r
}

// SelectLeft extends the selection left by one character. Runs of
// spaces at tab stops are traversed like tabs.
func (d *Document) SelectLeft() Status {
	if d.Loc().X == 0 {
		return StatusStartOfLine
	}
	line, _ := d.Line(d.Loc().Y)
	var w int
	if containsInt(tabBoundariesBackward(line, d.TabWidth), d.CharPtr) {
		d.CharPtr = sat(d.CharPtr - sat(d.TabWidth-1))
		w = d.TabWidth
	} else {
		w = d.WidthOf(d.Loc().Y, sat(d.CharPtr-1))
	}
	d.Cursor.Loc.X = sat(d.Cursor.Loc.X - w)
	d.CharPtr = sat(d.CharPtr - 1)
	d.BringCursorInViewport()
	d.OldCursor = d.Loc().X
	return StatusNone
}

// MoveRight moves the cursor right by one character.
func (d *Document) MoveRight() Status {
	r := d.SelectRight()
	d.CancelSelection()
	return r
}

// SelectRight extends the selection right by one character.
func (d *Document) SelectRight() Status {
	line, _ := d.Line(d.Loc().Y)
	if Width(line, d.TabWidth) == d.Loc().X {
		return StatusEndOfLine
	}
	var w int
	if containsInt(tabBoundariesForward(line, d.TabWidth), d.CharPtr) {
		d.CharPtr += sat(d.TabWidth - 1)
		w = d.TabWidth
	} else {
		w = d.WidthOf(d.Loc().Y, d.CharPtr)
	}
	d.Cursor.Loc.X += w
	d.CharPtr++
	d.BringCursorInViewport()
	d.OldCursor = d.Loc().X
	return StatusNone
}

// MoveHome moves to the start of the line.
func (d *Document) MoveHome() {
	d.SelectHome()
	d.CancelSelection()
}

// SelectHome selects to the start of the line.
func (d *Document) SelectHome() {
	d.Cursor.Loc.X = 0
	d.CharPtr = 0
	d.OldCursor = 0
	d.BringCursorInViewport()
}

// MoveEnd moves to the end of the line.
func (d *Document) MoveEnd() {
	d.SelectEnd()
	d.CancelSelection()
}

// SelectEnd selects to the end of the line.
func (d *Document) SelectEnd() {
	line, _ := d.Line(d.Loc().Y)
	d.SelectToX(utf8.RuneCountInString(line))
	d.OldCursor = d.Loc().X
}

// MoveTop moves to the top of the document.
func (d *Document) MoveTop() {
	d.MoveTo(At(0, 0))
}

// MoveBottom moves to the bottom of the document.
func (d *Document) MoveBottom() {
	d.MoveTo(At(0, d.LenLines()))
}

// SelectTop selects to the top of the document.
func (d *Document) SelectTop() {
	d.SelectTo(At(0, 0))
	d.OldCursor = d.Loc().X
}

// SelectBottom selects to the bottom of the document.
func (d *Document) SelectBottom() {
	d.SelectTo(At(0, d.LenLines()))
	d.OldCursor = d.Loc().X
}

// MovePageUp moves up by one viewport height.
func (d *Document) MovePageUp() {
	d.Cursor.Loc.X = 0
	d.CharPtr = 0
	d.OldCursor = 0
	d.Cursor.Loc.Y = sat(d.Cursor.Loc.Y - d.Size.H)
	d.Offset.Y = sat(d.Offset.Y - d.Size.H)
	d.CancelSelection()
}

// MovePageDown moves down by one viewport height.
func (d *Document) MovePageDown() {
	d.Cursor.Loc.X = 0
	d.CharPtr = 0
	d.OldCursor = 0
	newCursorY := d.Cursor.Loc.Y + d.Size.H
	if newCursorY <= d.LenLines() {
		// Cursor is in range, shift down offset proportionally
		d.Cursor.Loc.Y = newCursorY
		d.Offset.Y += d.Size.H
	} else if d.LenLines() < d.Offset.Y+d.Size.H {
		// End line is already in view, no need to move offset
		d.Cursor.Loc.Y = sat(d.LenLines() - 1)
	} else {
		// Cursor would be out of range, adjust to bottom of document
		d.Cursor.Loc.Y = sat(d.LenLines() - 1)
		d.Offset.Y = sat(d.LenLines() - d.Size.H)
	}
	d.LoadTo(d.Offset.Y + d.Size.H)
	d.CancelSelection()
}

// MoveTo moves to a specific position. loc.X is a character index.
func (d *Document) MoveTo(loc Loc) {
	d.SelectTo(loc)
	d.CancelSelection()
}

// SelectTo selects to a specific position. loc.X is a character
// index.
func (d *Document) SelectTo(loc Loc) {
	d.SelectToY(loc.Y)
	d.SelectToX(loc.X)
}

// MoveToX moves to a character index on the current line.
func (d *Document) MoveToX(x int) {
	d.SelectToX(x)
	d.CancelSelection()
}

// SelectToX selects to a character index on the current line,
// clamping to the line end.
func (d *Document) SelectToX(x int) {
	line, _ := d.Line(d.Loc().Y)
	if length := utf8.RuneCountInString(line); length < x {
		x = length
	}
	d.CharPtr = x
	d.Cursor.Loc.X = d.displayIdx(At(x, d.Loc().Y))
	d.BringCursorInViewport()
}

// MoveToY moves to a specific line.
func (d *Document) MoveToY(y int) {
	d.SelectToY(y)
	d.CancelSelection()
}

// SelectToY selects to a specific line, clamping to the document
// end.
func (d *Document) SelectToY(y int) {
	if d.Loc().Y != y && y <= d.LenLines() {
		d.Cursor.Loc.Y = y
	} else if y > d.LenLines() {
		d.Cursor.Loc.Y = d.LenLines()
	}
	// Snap to end of line
	d.fixDanglingCursor()
	// Ensure cursor isn't in the middle of a longer character
	d.fixSplit()
	d.updateCharPtr()
	d.BringCursorInViewport()
	d.LoadTo(d.Offset.Y + d.Size.H)
}

// ScrollDown moves the view down one line without moving the cursor.
func (d *Document) ScrollDown() {
	d.Offset.Y++
	d.LoadTo(d.Offset.Y + d.Size.H)
}

// ScrollUp moves the view up one line without moving the cursor.
func (d *Document) ScrollUp() {
	d.Offset.Y = sat(d.Offset.Y - 1)
	d.LoadTo(d.Offset.Y + d.Size.H)
}

// Loc returns the cursor position, X in display columns.
func (d *Document) Loc() Loc {
	return d.Cursor.Loc
}

// CharLoc returns the cursor position, X as a character index.
func (d *Document) CharLoc() Loc {
	return Loc{X: d.CharPtr, Y: d.Cursor.Loc.Y}
}

// CursorLocInScreen returns where the cursor sits relative to the
// viewport, or false when it is scrolled out of view.
func (d *Document) CursorLocInScreen() (Loc, bool) {
	if d.Cursor.Loc.X < d.Offset.X || d.Cursor.Loc.Y < d.Offset.Y {
		return Loc{}, false
	}
	result := Loc{
		X: d.Cursor.Loc.X - d.Offset.X,
		Y: d.Cursor.Loc.Y - d.Offset.Y,
	}
	if result.X > d.Size.W || result.Y >= d.Size.H {
		return Loc{}, false
	}
	return result, true
}

// IsSelectionEmpty reports whether no selection is active.
func (d *Document) IsSelectionEmpty() bool {
	return d.Cursor.Loc == d.Cursor.SelectionEnd
}

// SelectionLocBoundDisp returns the selection's ordered bounds in
// display columns.
func (d *Document) SelectionLocBoundDisp() (Loc, Loc) {
	left := d.Cursor.Loc
	right := d.Cursor.SelectionEnd
	if right.Before(left) {
		left, right = right, left
	}
	return left, right
}

// SelectionLocBound returns the selection's ordered bounds with X as
// character indices.
func (d *Document) SelectionLocBound() (Loc, Loc) {
	left, right := d.SelectionLocBoundDisp()
	left.X = d.CharacterIdx(left)
	right.X = d.CharacterIdx(right)
	return left, right
}

// IsLocSelected reports whether a character location is within the
// active selection.
func (d *Document) IsLocSelected(loc Loc) bool {
	left, right := d.SelectionLocBound()
	return !loc.Before(left) && loc.Before(right)
}

// SelectionRange returns the selection as a character range over the
// whole file.
func (d *Document) SelectionRange() (int, int) {
	cursor := d.Cursor.Loc
	selectionEnd := d.Cursor.SelectionEnd
	cursor.X = d.CharacterIdx(cursor)
	selectionEnd.X = d.CharacterIdx(selectionEnd)
	left := d.LocToFilePos(cursor)
	right := d.LocToFilePos(selectionEnd)
	if left > right {
		left, right = right, left
	}
	return left, right
}

// SelectionText returns the text within the active selection.
func (d *Document) SelectionText() string {
	start, end := d.SelectionRange()
	return d.File.Slice(start, end)
}

// RemoveSelection deletes the selected text, leaving the cursor at
// the selection's start.
func (d *Document) RemoveSelection() {
	start, end := d.SelectionRange()
	d.File = d.File.Remove(start, end)
	d.ReloadLines()
	loc, _ := d.SelectionLocBound()
	loc.X = d.displayIdx(loc)
	d.Cursor.Loc = loc
	d.CharPtr = d.CharacterIdx(d.Cursor.Loc)
	d.CancelSelection()
	d.BringCursorInViewport()
	d.Info.Modified = true
}

// CancelSelection collapses the selection onto the cursor.
func (d *Document) CancelSelection() {
	d.Cursor.SelectionEnd = d.Cursor.Loc
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

package document

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/scribe-editor/scribe/internal/rope"
)

// insert places a string into the document at a character location.
// The rope, the line cache and both width maps are patched in step,
// and the cursor lands after the inserted text.
func (d *Document) insert(loc Loc, st string) error {
	if err := d.outOfRange(loc.X, loc.Y); err != nil {
		return err
	}
	d.MoveTo(loc)
	// Update rope
	idx := d.LocToFilePos(loc)
	d.File = d.File.Insert(idx, st)
	// Update cache
	d.Lines[loc.Y] = strings.TrimRight(d.File.Line(loc.Y), "\n\r")
	// Shift the existing width map entries along
	dblStart := d.DblMap.ShiftInsertion(loc, st, d.TabWidth)
	tabStart := d.TabMap.ShiftInsertion(loc, st, d.TabWidth)
	// Register new double widths and tabs
	dbls, tabs := FormMap(st, d.TabWidth)
	// Shift them up to match the insertion position in the document
	tabShift := sat(d.TabWidth-1) * tabStart
	for i := range dbls {
		dbls[i].Disp += loc.X + dblStart + tabShift
		dbls[i].Char += loc.X
	}
	for i := range tabs {
		tabs[i].Disp += loc.X + tabShift + dblStart
		tabs[i].Char += loc.X
	}
	d.DblMap.Splice(loc, dblStart, dbls)
	d.TabMap.Splice(loc, tabStart, tabs)
	// Go to end x position
	d.MoveToX(loc.X + utf8.RuneCountInString(st))
	d.OldCursor = d.Loc().X
	return nil
}

// deleteWithTab deletes text at a location, expanding the delete to a
// whole visual tab when the target is a run of spaces at a tab stop.
// The extra deletes go through Exe so undo records them, except while
// a redo is replaying events.
func (d *Document) deleteWithTab(loc Loc, st string) error {
	line, _ := d.Line(loc.Y)
	boundaries := tabBoundariesBackward(line, d.TabWidth)
	if containsInt(boundaries, loc.X+1) && !d.inRedo {
		locCopy := loc
		if err := d.deleteRange(loc.X, loc.X+utf8.RuneCountInString(st), loc.Y); err != nil {
			return err
		}
		for i := 1; i < d.TabWidth; i++ {
			locCopy.X = sat(locCopy.X - 1)
			if err := d.Exe(Delete{Loc: locCopy, Text: " "}); err != nil {
				return err
			}
		}
		return nil
	}
	return d.deleteRange(loc.X, loc.X+utf8.RuneCountInString(st), loc.Y)
}

// deleteRange removes characters [start, end) on line y.
func (d *Document) deleteRange(start, end, y int) error {
	lineStart, err := d.File.TryLineToChar(y)
	if err != nil {
		if errors.Is(err, rope.ErrLineOutOfRange) {
			return ErrOutOfRange
		}
		return err
	}
	if err := d.validRange(start, end, y); err != nil {
		return err
	}
	d.MoveTo(At(start, y))
	start += lineStart
	end += lineStart
	removed := d.File.Slice(start, end)
	// Update width maps
	d.DblMap.ShiftDeletion(y, lineStart, start, end, removed, d.TabWidth)
	d.TabMap.ShiftDeletion(y, lineStart, start, end, removed, d.TabWidth)
	// Update rope
	d.File = d.File.Remove(start, end)
	// Update cache
	d.Lines[y] = strings.TrimRight(d.File.Line(y), "\n\r")
	d.OldCursor = d.Loc().X
	return nil
}

// deleteToEnd removes characters from start to the end of line y.
func (d *Document) deleteToEnd(start, y int) error {
	line, ok := d.Line(y)
	if !ok {
		return ErrOutOfRange
	}
	return d.deleteRange(start, utf8.RuneCountInString(line), y)
}

// insertLine places a whole line into the document at a line index.
func (d *Document) insertLine(y int, contents string) error {
	if !(len(d.Lines) == 0 || d.LenLines() == 0 && y == 0) {
		if err := d.outOfRange(0, sat(y-1)); err != nil {
			return err
		}
	}
	// Renumber the width maps below the insertion
	d.DblMap.ShiftDown(y)
	d.TabMap.ShiftDown(y)
	// Work out the width maps of the new line
	dblMap, tabMap := FormMap(contents, d.TabWidth)
	d.DblMap.Insert(y, dblMap)
	d.TabMap.Insert(y, tabMap)
	// Update cache
	d.Lines = append(d.Lines, "")
	copy(d.Lines[y+1:], d.Lines[y:])
	d.Lines[y] = contents
	// Update rope
	charIdx := d.File.LineToChar(y)
	d.File = d.File.Insert(charIdx, contents+"\n")
	d.Info.LoadedTo++
	// Goto line
	d.MoveToY(y)
	d.OldCursor = d.Loc().X
	return nil
}

// deleteLine removes a whole line from the document.
func (d *Document) deleteLine(y int) error {
	if err := d.outOfRange(0, y); err != nil {
		return err
	}
	// Drop this line from the width maps and renumber the rest
	d.DblMap.Delete(y)
	d.TabMap.Delete(y)
	d.DblMap.ShiftUp(y)
	d.TabMap.ShiftUp(y)
	// Update cache
	d.Lines = append(d.Lines[:y], d.Lines[y+1:]...)
	// Update rope
	idxStart := d.File.LineToChar(y)
	idxEnd := d.File.LineToChar(y + 1)
	d.File = d.File.Remove(idxStart, idxEnd)
	d.Info.LoadedTo = sat(d.Info.LoadedTo - 1)
	// Goto line
	d.MoveToY(y)
	d.OldCursor = d.Loc().X
	return nil
}

// splitDown splits a line in half, putting the right hand side below
// on a new line. For when the return key is pressed.
func (d *Document) splitDown(loc Loc) error {
	if err := d.outOfRange(loc.X, loc.Y); err != nil {
		return err
	}
	line, ok := d.Line(loc.Y)
	if !ok {
		return ErrOutOfRange
	}
	rhs := skipChars(line, loc.X)
	if err := d.deleteToEnd(loc.X, loc.Y); err != nil {
		return err
	}
	if err := d.insertLine(loc.Y+1, rhs); err != nil {
		return err
	}
	d.MoveTo(At(0, loc.Y+1))
	d.OldCursor = d.Loc().X
	return nil
}

// spliceUp removes the line below y and appends it to y. For when
// backspace is pressed at the start of a line.
func (d *Document) spliceUp(y int) error {
	if err := d.outOfRange(0, y+1); err != nil {
		return err
	}
	line, ok := d.Line(y)
	if !ok {
		return ErrOutOfRange
	}
	length := utf8.RuneCountInString(line)
	below, ok := d.Line(y + 1)
	if !ok {
		return ErrOutOfRange
	}
	if err := d.deleteLine(y + 1); err != nil {
		return err
	}
	if err := d.insert(At(length, y), below); err != nil {
		return err
	}
	d.MoveTo(At(length, y))
	d.OldCursor = d.Loc().X
	return nil
}

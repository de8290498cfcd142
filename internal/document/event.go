// Package document implements the text-buffer engine: rope-backed
// storage, lazy line loading, display-width index translation, a
// cursor/viewport model and snapshot-based undo/redo. A Document is
// owned and mutated by one editor session at a time; all editing goes
// through Exe so undo and redo stay coherent.
package document

import "errors"

// Errors reported by document operations.
var (
	ErrOutOfRange   = errors.New("location out of range")
	ErrNoFileName   = errors.New("document has no file name")
	ErrReadOnlyFile = errors.New("document is read only")
)

// Loc is a position within the document. For cursor locations X is a
// display column; for event locations X is a character index.
type Loc struct {
	X int
	Y int
}

// At is shorthand to produce a location.
func At(x, y int) Loc {
	return Loc{X: x, Y: y}
}

// Before orders locations by line, then column.
func (l Loc) Before(other Loc) bool {
	if l.Y != other.Y {
		return l.Y < other.Y
	}
	return l.X < other.X
}

// Size is the dimensions of the viewport in terminal cells.
type Size struct {
	W int
	H int
}

// Status signals the outcome of a cursor motion, e.g. hitting the
// edges of a line or the document. Not errors: callers may use these
// to wrap the cursor or flash the screen.
type Status int

const (
	StatusNone Status = iota
	StatusStartOfFile
	StatusEndOfFile
	StatusStartOfLine
	StatusEndOfLine
)

// Event is a single editing action. All edits are combinations of the
// six variants below, and each knows its own inverse.
type Event interface {
	// Reverse returns the event that undoes this one.
	Reverse() Event
	// At returns the location the event applies at.
	At() Loc
}

// Insert places text at a location within a line.
type Insert struct {
	Loc  Loc
	Text string
}

// Delete removes text at a location within a line.
type Delete struct {
	Loc  Loc
	Text string
}

// InsertLine places a whole new line at a line index.
type InsertLine struct {
	Y    int
	Text string
}

// DeleteLine removes a whole line at a line index.
type DeleteLine struct {
	Y    int
	Text string
}

// SplitDown splits a line in two at a location, for the enter key.
type SplitDown struct {
	Loc Loc
}

// SpliceUp joins the line below onto the one at a location, for
// backspace at the start of a line.
type SpliceUp struct {
	Loc Loc
}

func (e Insert) Reverse() Event     { return Delete{Loc: e.Loc, Text: e.Text} }
func (e Delete) Reverse() Event     { return Insert{Loc: e.Loc, Text: e.Text} }
func (e InsertLine) Reverse() Event { return DeleteLine{Y: e.Y, Text: e.Text} }
func (e DeleteLine) Reverse() Event { return InsertLine{Y: e.Y, Text: e.Text} }
func (e SplitDown) Reverse() Event  { return SpliceUp{Loc: e.Loc} }
func (e SpliceUp) Reverse() Event   { return SplitDown{Loc: e.Loc} }

func (e Insert) At() Loc     { return e.Loc }
func (e Delete) At() Loc     { return e.Loc }
func (e InsertLine) At() Loc { return Loc{Y: e.Y} }
func (e DeleteLine) At() Loc { return Loc{Y: e.Y} }
func (e SplitDown) At() Loc  { return e.Loc }
func (e SpliceUp) At() Loc   { return e.Loc }

package document

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Line returns the cached line at an index, without its trailing
// newline. The second result is false when the line is out of range
// or not yet loaded.
func (d *Document) Line(y int) (string, bool) {
	if y < 0 || y >= len(d.Lines) {
		return "", false
	}
	return d.Lines[y], true
}

// LineTrim returns the slice of a line visible from display column
// start for length columns, padded around split double width
// characters.
func (d *Document) LineTrim(y, start, length int) (string, bool) {
	line, ok := d.Line(y)
	if !ok {
		return "", false
	}
	return Trim(line, start, length, d.TabWidth), true
}

// LenLines returns the number of lines in the document. A trailing
// newline does not open a final empty line; a file without one keeps
// its last fragment as a line.
func (d *Document) LenLines() int {
	n := sat(d.File.LenLines() - 1)
	if d.Info.EOL {
		n++
	}
	return n
}

// LineNumber renders the gutter text for a line, right aligned to
// the widest line number, with "~" past the end of the document.
func (d *Document) LineNumber(request int) string {
	total := len(strconv.Itoa(d.LenLines()))
	num := "~"
	if request+1 <= d.LenLines() {
		num = strconv.Itoa(request + 1)
	}
	return strings.Repeat(" ", sat(total-len(num))) + num
}

// SwapLineUp moves the current line above the one before it.
func (d *Document) SwapLineUp() error {
	cursor := d.CharLoc()
	line, ok := d.Line(cursor.Y)
	if !ok {
		return ErrOutOfRange
	}
	if err := d.insertLine(sat(cursor.Y-1), line); err != nil {
		return err
	}
	if err := d.deleteLine(cursor.Y + 1); err != nil {
		return err
	}
	d.MoveTo(At(cursor.X, sat(cursor.Y-1)))
	return nil
}

// SwapLineDown moves the current line below the one after it.
func (d *Document) SwapLineDown() error {
	cursor := d.CharLoc()
	line, ok := d.Line(cursor.Y)
	if !ok {
		return ErrOutOfRange
	}
	if err := d.insertLine(cursor.Y+2, line); err != nil {
		return err
	}
	if err := d.deleteLine(cursor.Y); err != nil {
		return err
	}
	d.MoveTo(At(cursor.X, cursor.Y+1))
	return nil
}

// SelectLineAt selects the whole of line y.
func (d *Document) SelectLineAt(y int) {
	line, _ := d.Line(y)
	length := utf8.RuneCountInString(line)
	d.MoveTo(At(0, y))
	d.SelectTo(At(length, y))
}

package document

import (
	"fmt"
	"unicode/utf8"

	"github.com/scribe-editor/scribe/internal/search"
)

// wordState describes where the cursor sits in relation to the words
// on its line.
type wordState int

const (
	wordOut wordState = iota
	wordAtStart
	wordAtEnd
	wordInCenter
)

// wordPattern matches runs treated as words for word-wise motion:
// identifiers, wide space runs and full stops.
const wordPattern = `(\s{2,}|[A-Za-z0-9_]+|\.)`

// wordBoundaries finds the byte index spans of the words on a line.
func (d *Document) wordBoundaries(line string) [][2]int {
	srch := search.New(wordPattern)
	var words [][2]int
	for _, m := range srch.LFindsRaw(line) {
		words = append(words, [2]int{m.X, m.X + len(m.Text)})
	}
	return words
}

// cursorWordState locates character index x among the words of a
// line, returning which word it touches and how.
func (d *Document) cursorWordState(line string, words [][2]int, x int) (wordState, int) {
	byteX := search.CharToByte(x, line)
	for idx, w := range words {
		if w[0] <= byteX && byteX <= w[1] {
			switch byteX {
			case w[1]:
				return wordAtEnd, idx
			case w[0]:
				return wordAtStart, idx
			}
			return wordInCenter, idx
		}
	}
	return wordOut, 0
}

// PrevWordIndex finds the character index word-wise motion should
// jump to when moving left from a location.
func (d *Document) PrevWordIndex(from Loc) int {
	line, _ := d.Line(from.Y)
	words := d.wordBoundaries(line)
	state, idx := d.cursorWordState(line, words, from.X)
	switch {
	case state != wordOut && idx == 0:
		// At the first word, go to the start of the line
		return 0
	case state == wordAtEnd || state == wordInCenter:
		return search.ByteToChar(words[idx-1][1], line)
	case state == wordAtStart:
		return search.ByteToChar(words[idx-1][0], line)
	}
	// Not touching any word, walk back to the previous word's end
	shiftBack := from.X
	for {
		state, _ = d.cursorWordState(line, words, shiftBack)
		if state != wordOut || shiftBack == 0 {
			break
		}
		shiftBack--
	}
	state, idx = d.cursorWordState(line, words, shiftBack)
	if state == wordAtEnd {
		return search.ByteToChar(words[idx][1], line)
	}
	return 0
}

// MovePrevWord moves the cursor to the previous word on the line.
func (d *Document) MovePrevWord() Status {
	loc := d.CharLoc()
	if loc.X == 0 && loc.Y != 0 {
		return StatusStartOfLine
	}
	d.MoveToX(d.PrevWordIndex(loc))
	d.OldCursor = d.Loc().X
	return StatusNone
}

// NextWordIndex finds the character index word-wise motion should
// jump to when moving right from a location.
func (d *Document) NextWordIndex(from Loc) int {
	line, _ := d.Line(from.Y)
	words := d.wordBoundaries(line)
	state, idx := d.cursorWordState(line, words, from.X)
	switch state {
	case wordAtEnd, wordInCenter:
		if idx+1 < len(words) {
			return search.ByteToChar(words[idx+1][1], line)
		}
		return utf8.RuneCountInString(line)
	case wordAtStart:
		if idx+1 < len(words) {
			return search.ByteToChar(words[idx+1][0], line)
		}
		return utf8.RuneCountInString(line)
	}
	// Not touching any word, walk forward to the next word's start
	shiftForward := from.X
	for {
		state, _ = d.cursorWordState(line, words, shiftForward)
		if state != wordOut || shiftForward >= utf8.RuneCountInString(line) {
			break
		}
		shiftForward++
	}
	state, idx = d.cursorWordState(line, words, shiftForward)
	if state == wordAtStart {
		return search.ByteToChar(words[idx][0], line)
	}
	return utf8.RuneCountInString(line)
}

// MoveNextWord moves the cursor to the next word on the line.
func (d *Document) MoveNextWord() Status {
	loc := d.CharLoc()
	line, _ := d.Line(loc.Y)
	if loc.X == utf8.RuneCountInString(line) && loc.Y != d.LenLines() {
		return StatusEndOfLine
	}
	d.MoveToX(d.NextWordIndex(loc))
	d.OldCursor = d.Loc().X
	return StatusNone
}

// DeleteWord deletes from the cursor back to the start of the word
// it touches, or to the end of the previous word when between words.
func (d *Document) DeleteWord() error {
	loc := d.CharLoc()
	line, _ := d.Line(loc.Y)
	words := d.wordBoundaries(line)
	state, idx := d.cursorWordState(line, words, loc.X)
	var deleteUpto int
	switch {
	case state == wordInCenter || state == wordAtEnd:
		// Delete back to the start of this word
		deleteUpto = search.ByteToChar(words[idx][0], line)
	case state == wordAtStart && idx == 0:
		deleteUpto = 0
	case state == wordAtStart:
		// Delete back to the start of the previous word
		deleteUpto = search.ByteToChar(words[idx-1][0], line)
	default:
		// Between words: delete to the end of the previous word, or
		// through it when a space separates the two
		shiftBack := loc.X
		for {
			state, _ = d.cursorWordState(line, words, shiftBack)
			if state != wordOut || shiftBack == 0 {
				break
			}
			shiftBack--
		}
		ch, chOk := charAt(line, shiftBack)
		state, idx = d.cursorWordState(line, words, shiftBack)
		if state == wordAtEnd {
			if chOk && ch == ' ' {
				deleteUpto = search.ByteToChar(words[idx][0], line)
			} else {
				deleteUpto = search.ByteToChar(words[idx][1], line)
			}
		} else {
			deleteUpto = 0
		}
	}
	return d.deleteRange(deleteUpto, loc.X, loc.Y)
}

// SelectWordAt selects the word touching a display location.
func (d *Document) SelectWordAt(loc Loc) {
	y := loc.Y
	x := d.CharacterIdx(loc)
	re := fmt.Sprintf("(\t| {%d}|^|\\W| )", d.TabWidth)
	start := 0
	if m, ok := d.PrevMatch(re); ok {
		length := utf8.RuneCountInString(m.Text)
		same := m.Loc.X+length == x
		if !same {
			m.Loc.X += length
		}
		d.MoveTo(m.Loc)
		if same && d.Loc().X != 0 {
			d.MovePrevWord()
		}
		start = m.Loc.X
	}
	re = fmt.Sprintf("(\t| {%d}|\\W|$|^ +| )", d.TabWidth)
	var end int
	if m, ok := d.NextMatch(re, 0); ok {
		end = m.Loc.X
	} else {
		line, _ := d.Line(y)
		end = utf8.RuneCountInString(line)
	}
	d.MoveTo(At(start, y))
	d.SelectTo(At(end, y))
	d.OldCursor = d.Loc().X
}

// charAt returns the character at index x within a string.
func charAt(st string, x int) (rune, bool) {
	i := 0
	for _, ch := range st {
		if i == x {
			return ch, true
		}
		i++
	}
	return 0, false
}

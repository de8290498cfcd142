package document

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Width measures the display width of a string, counting tabs at the
// given width. StringWidth gives control characters no width, so each
// tab contributes its full span here.
func Width(st string, tabWidth int) int {
	tabs := strings.Count(st, "\t")
	return runewidth.StringWidth(st) + tabs*tabWidth
}

// WidthChar measures the display width of a single character.
func WidthChar(ch rune, tabWidth int) int {
	if ch == '\t' {
		return tabWidth
	}
	return runewidth.RuneWidth(ch)
}

// Trim cuts a string from a display column for a display length,
// padding half-visible double width characters with spaces so the
// result always lines up with the viewport.
func Trim(st string, start, length, tabWidth int) string {
	st = strings.ReplaceAll(st, "\t", strings.Repeat(" ", tabWidth))
	if start >= runewidth.StringWidth(st) {
		return ""
	}
	desired := runewidth.StringWidth(st) - start
	chars := st
	for runewidth.StringWidth(chars) > desired {
		_, size := utf8.DecodeRuneInString(chars)
		chars = chars[size:]
	}
	if runewidth.StringWidth(chars) < desired {
		chars = " " + chars
	}
	for runewidth.StringWidth(chars) > length {
		_, size := utf8.DecodeLastRuneInString(chars)
		chars = chars[:len(chars)-size]
	}
	if runewidth.StringWidth(chars) < length && desired > length {
		chars += " "
	}
	return chars
}

// tabBoundariesForward finds the character indices where runs of
// leading spaces should be traversed like tabs when moving right.
func tabBoundariesForward(line string, tabWidth int) []int {
	var boundaries []int
	at := 0
	for at < Width(line, tabWidth) {
		if !spacesAt(line, at, tabWidth) {
			break
		}
		boundaries = append(boundaries, at)
		at += tabWidth
	}
	return boundaries
}

// tabBoundariesBackward is the moving-left counterpart; each boundary
// is the index just after a space run of one tab width.
func tabBoundariesBackward(line string, tabWidth int) []int {
	var boundaries []int
	at := 0
	for at < Width(line, tabWidth) {
		if !spacesAt(line, at, tabWidth) {
			break
		}
		boundaries = append(boundaries, at+tabWidth)
		at += tabWidth
	}
	return boundaries
}

// spacesAt reports whether the tabWidth characters from character
// index at are all spaces.
func spacesAt(line string, at, tabWidth int) bool {
	seen := 0
	i := 0
	for _, ch := range line {
		if i >= at {
			if ch != ' ' {
				return false
			}
			seen++
			if seen == tabWidth {
				return true
			}
		}
		i++
	}
	return false
}

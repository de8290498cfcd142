// Package search wraps the standard regexp engine behind the narrow
// matching interface the document engine consumes. Matches are reported
// in character indices so callers never have to reason about byte
// offsets of multi-byte text.
package search

import (
	"regexp"
	"unicode/utf8"
)

// Match is a single pattern hit within one line of text.
type Match struct {
	// X is the character index of the match within the searched string.
	X int
	// Text is the matched text.
	Text string
}

// Searcher runs a compiled pattern over single lines or substrings.
type Searcher struct {
	re *regexp.Regexp
}

// matchNothing never matches anything; it is substituted for patterns
// that fail to compile, so a bad user pattern degrades to "no matches"
// instead of an error path.
var matchNothing = regexp.MustCompile(`a^`)

// New compiles a pattern. Invalid patterns yield a searcher that never
// matches.
func New(pattern string) *Searcher {
	re, err := regexp.Compile(pattern)
	if err != nil {
		re = matchNothing
	}
	return &Searcher{re: re}
}

// target picks the capture to report: the final capture group when the
// pattern has groups, otherwise the whole match. A non-participating
// final group is skipped.
func (s *Searcher) target(idx []int) (start, end int, ok bool) {
	g := s.re.NumSubexp()
	if idx[2*g] < 0 {
		return 0, 0, false
	}
	return idx[2*g], idx[2*g+1], true
}

// LFind returns the first match scanning from the left.
func (s *Searcher) LFind(st string) (Match, bool) {
	for _, idx := range s.re.FindAllStringSubmatchIndex(st, -1) {
		if start, end, ok := s.target(idx); ok {
			return Match{X: ByteToChar(start, st), Text: st[start:end]}, true
		}
	}
	return Match{}, false
}

// RFind returns the last match, scanning from the right.
func (s *Searcher) RFind(st string) (Match, bool) {
	all := s.re.FindAllStringSubmatchIndex(st, -1)
	for i := len(all) - 1; i >= 0; i-- {
		if start, end, ok := s.target(all[i]); ok {
			return Match{X: ByteToChar(start, st), Text: st[start:end]}, true
		}
	}
	return Match{}, false
}

// LFindsRaw returns every match with X left as a byte index. Word
// motion works over byte indices and converts at its own boundaries.
func (s *Searcher) LFindsRaw(st string) []Match {
	var out []Match
	for _, idx := range s.re.FindAllStringSubmatchIndex(st, -1) {
		if start, end, ok := s.target(idx); ok {
			out = append(out, Match{X: start, Text: st[start:end]})
		}
	}
	return out
}

// ByteToChar converts a byte offset within st to a character index.
func ByteToChar(x int, st string) int {
	c := 0
	for b := range st {
		if b >= x {
			return c
		}
		c++
	}
	return utf8.RuneCountInString(st)
}

// CharToByte converts a character index within st to a byte offset.
func CharToByte(x int, st string) int {
	c := 0
	for b := range st {
		if c == x {
			return b
		}
		c++
	}
	return len(st)
}

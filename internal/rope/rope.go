// Package rope implements a balanced, immutable rope over UTF-8 text.
// All indices are rune (character) offsets, and every node caches its
// character and newline counts so that character-indexed edits and
// line lookups stay logarithmic in the document size. Operations return
// new Rope values; the original is never modified, which makes whole-
// document snapshots cheap through structural sharing.
package rope

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	// targetLeaf is the preferred leaf payload size in bytes.
	targetLeaf = 512
	// maxLeaf is the size at which neighbouring leaves stop being merged.
	maxLeaf = 1024
)

type node struct {
	// Leaf nodes carry text and have no children; internal nodes have
	// both children set and empty text.
	text     string
	left     *node
	right    *node
	chars    int
	newlines int
	height   int
}

func newLeaf(s string) *node {
	return &node{
		text:     s,
		chars:    utf8.RuneCountInString(s),
		newlines: strings.Count(s, "\n"),
		height:   1,
	}
}

func (n *node) isLeaf() bool {
	return n.left == nil
}

// Rope is a handle to an immutable tree of text chunks. The zero value
// is an empty rope.
type Rope struct {
	root *node
}

// New returns an empty rope.
func New() Rope {
	return Rope{}
}

// FromString builds a rope over the given text.
func FromString(s string) Rope {
	if s == "" {
		return Rope{}
	}
	var leaves []*node
	for len(s) > 0 {
		n := targetLeaf
		if n > len(s) {
			n = len(s)
		}
		// Never split a chunk in the middle of a UTF-8 sequence.
		for n < len(s) && !utf8.RuneStart(s[n]) {
			n++
		}
		leaves = append(leaves, newLeaf(s[:n]))
		s = s[n:]
	}
	return Rope{root: buildBalanced(leaves)}
}

// FromReader streams a reader into a rope. Invalid UTF-8 sequences are
// replaced so the rope always holds valid text.
func FromReader(r io.Reader) (Rope, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return Rope{}, err
	}
	data := buf.Bytes()
	if !utf8.Valid(data) {
		data = bytes.ToValidUTF8(data, []byte("�"))
	}
	return FromString(string(data)), nil
}

func buildBalanced(leaves []*node) *node {
	switch len(leaves) {
	case 0:
		return nil
	case 1:
		return leaves[0]
	}
	mid := len(leaves) / 2
	return join(buildBalanced(leaves[:mid]), buildBalanced(leaves[mid:]))
}

// join makes an internal node over two subtrees, merging small adjacent
// leaves to keep the tree compact.
func join(l, r *node) *node {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	if l.isLeaf() && r.isLeaf() && len(l.text)+len(r.text) <= maxLeaf {
		return newLeaf(l.text + r.text)
	}
	h := l.height
	if r.height > h {
		h = r.height
	}
	return &node{
		left:     l,
		right:    r,
		chars:    l.chars + r.chars,
		newlines: l.newlines + r.newlines,
		height:   h + 1,
	}
}

// split divides a subtree at a character offset.
func split(n *node, at int) (*node, *node) {
	if n == nil {
		return nil, nil
	}
	if at <= 0 {
		return nil, n
	}
	if at >= n.chars {
		return n, nil
	}
	if n.isLeaf() {
		b := byteOfChar(n.text, at)
		return newLeaf(n.text[:b]), newLeaf(n.text[b:])
	}
	if at < n.left.chars {
		ll, lr := split(n.left, at)
		return ll, join(lr, n.right)
	}
	rl, rr := split(n.right, at-n.left.chars)
	return join(n.left, rl), rr
}

func byteOfChar(s string, at int) int {
	i := 0
	for b := range s {
		if i == at {
			return b
		}
		i++
	}
	return len(s)
}

// rebalanced rebuilds the tree when edits have skewed it too far.
func rebalanced(n *node) *node {
	if n == nil || n.height <= heightLimit(n.chars) {
		return n
	}
	var leaves []*node
	collectLeaves(n, &leaves)
	return buildBalanced(leaves)
}

func heightLimit(chars int) int {
	limit := 4
	for leaves := chars/targetLeaf + 1; leaves > 0; leaves >>= 1 {
		limit += 2
	}
	return limit
}

func collectLeaves(n *node, out *[]*node) {
	if n == nil {
		return
	}
	if n.isLeaf() {
		*out = append(*out, n)
		return
	}
	collectLeaves(n.left, out)
	collectLeaves(n.right, out)
}

// LenChars reports the total character count.
func (r Rope) LenChars() int {
	if r.root == nil {
		return 0
	}
	return r.root.chars
}

// LenLines reports the number of lines, counting the (possibly empty)
// fragment after the last newline as a line. An empty rope has one line.
func (r Rope) LenLines() int {
	if r.root == nil {
		return 1
	}
	return r.root.newlines + 1
}

// Insert returns a rope with text inserted at the given character index.
// Out-of-range indices are clamped to the rope bounds.
func (r Rope) Insert(at int, s string) Rope {
	if s == "" {
		return r
	}
	l, right := split(r.root, at)
	mid := FromString(s).root
	return Rope{root: rebalanced(join(join(l, mid), right))}
}

// Remove returns a rope with the characters in [start, end) removed.
func (r Rope) Remove(start, end int) Rope {
	if start >= end {
		return r
	}
	l, rest := split(r.root, start)
	_, right := split(rest, end-start)
	return Rope{root: rebalanced(join(l, right))}
}

// Slice returns the text of the characters in [start, end).
func (r Rope) Slice(start, end int) string {
	if start >= end || r.root == nil {
		return ""
	}
	var sb strings.Builder
	slice(r.root, start, end, &sb)
	return sb.String()
}

func slice(n *node, start, end int, sb *strings.Builder) {
	if n == nil || start >= n.chars || end <= 0 {
		return
	}
	if start < 0 {
		start = 0
	}
	if end > n.chars {
		end = n.chars
	}
	if n.isLeaf() {
		sb.WriteString(n.text[byteOfChar(n.text, start):byteOfChar(n.text, end)])
		return
	}
	slice(n.left, start, end, sb)
	slice(n.right, start-n.left.chars, end-n.left.chars, sb)
}

// String returns the whole text.
func (r Rope) String() string {
	var sb strings.Builder
	if r.root != nil {
		sb.Grow(len(r.root.text))
		writeNode(r.root, &sb)
	}
	return sb.String()
}

func writeNode(n *node, sb *strings.Builder) {
	if n == nil {
		return
	}
	if n.isLeaf() {
		sb.WriteString(n.text)
		return
	}
	writeNode(n.left, sb)
	writeNode(n.right, sb)
}

// WriteTo streams the whole text to a writer.
func (r Rope) WriteTo(w io.Writer) (int64, error) {
	return writeTo(r.root, w)
}

func writeTo(n *node, w io.Writer) (int64, error) {
	if n == nil {
		return 0, nil
	}
	if n.isLeaf() {
		written, err := io.WriteString(w, n.text)
		return int64(written), err
	}
	ln, err := writeTo(n.left, w)
	if err != nil {
		return ln, err
	}
	rn, err := writeTo(n.right, w)
	return ln + rn, err
}

// LineToChar returns the character index at which line y starts.
// y may be LenLines(), in which case the total character count is
// returned. Out-of-range y is clamped.
func (r Rope) LineToChar(y int) int {
	at, err := r.TryLineToChar(y)
	if err != nil {
		if y < 0 {
			return 0
		}
		return r.LenChars()
	}
	return at
}

// ErrLineOutOfRange is reported by TryLineToChar for invalid line indices.
var ErrLineOutOfRange = errLineOutOfRange{}

type errLineOutOfRange struct{}

func (errLineOutOfRange) Error() string { return "rope: line index out of range" }

// TryLineToChar is LineToChar with explicit bounds reporting.
func (r Rope) TryLineToChar(y int) (int, error) {
	if y < 0 || y > r.LenLines() {
		return 0, ErrLineOutOfRange
	}
	if y == 0 {
		return 0, nil
	}
	if r.root == nil || y > r.root.newlines {
		return r.LenChars(), nil
	}
	return charOfLine(r.root, y), nil
}

// charOfLine returns the character index just after the y-th newline.
// Requires 1 <= y <= n.newlines.
func charOfLine(n *node, y int) int {
	if n.isLeaf() {
		seen := 0
		i := 0
		for _, ch := range n.text {
			i++
			if ch == '\n' {
				seen++
				if seen == y {
					return i
				}
			}
		}
		return n.chars
	}
	if y <= n.left.newlines {
		return charOfLine(n.left, y)
	}
	return n.left.chars + charOfLine(n.right, y-n.left.newlines)
}

// Line returns the text of line y including its trailing newline, if
// any. The last line of a newline-terminated rope is the empty string.
func (r Rope) Line(y int) string {
	if y < 0 || y >= r.LenLines() {
		return ""
	}
	start := r.LineToChar(y)
	end := r.LenChars()
	if r.root != nil && y < r.root.newlines {
		end = charOfLine(r.root, y+1)
	}
	return r.Slice(start, end)
}

package rope

import (
	"strings"
	"testing"
)

func TestFromStringRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"hello",
		"hello\nworld\n",
		"日本語\ttext\n",
		strings.Repeat("line of text\n", 500),
	}
	for _, want := range cases {
		if got := FromString(want).String(); got != want {
			t.Fatalf("round trip = %q, want %q", got, want)
		}
	}
}

func TestLenLines(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"", 1},
		{"a", 1},
		{"a\n", 2},
		{"a\nb", 2},
		{"a\nb\n", 3},
	}
	for _, c := range cases {
		if got := FromString(c.text).LenLines(); got != c.want {
			t.Fatalf("LenLines(%q) = %d, want %d", c.text, got, c.want)
		}
	}
}

func TestLineAndLineToChar(t *testing.T) {
	r := FromString("one\ntwo\n日本\nlast")
	lines := []string{"one\n", "two\n", "日本\n", "last"}
	starts := []int{0, 4, 8, 11}
	for y, want := range lines {
		if got := r.Line(y); got != want {
			t.Fatalf("Line(%d) = %q, want %q", y, got, want)
		}
		if got := r.LineToChar(y); got != starts[y] {
			t.Fatalf("LineToChar(%d) = %d, want %d", y, got, starts[y])
		}
	}
	if got := r.LineToChar(r.LenLines()); got != r.LenChars() {
		t.Fatalf("LineToChar(len) = %d, want %d", got, r.LenChars())
	}
	if _, err := r.TryLineToChar(99); err == nil {
		t.Fatal("TryLineToChar(99) expected error")
	}
}

func TestInsertRemove(t *testing.T) {
	r := FromString("hello world")
	r = r.Insert(5, ",")
	if got := r.String(); got != "hello, world" {
		t.Fatalf("insert = %q", got)
	}
	r = r.Remove(5, 6)
	if got := r.String(); got != "hello world" {
		t.Fatalf("remove = %q", got)
	}
	r = r.Insert(0, "日")
	if got := r.String(); got != "日hello world" {
		t.Fatalf("wide insert = %q", got)
	}
	if got := r.LenChars(); got != 12 {
		t.Fatalf("LenChars = %d, want 12", got)
	}
}

func TestSlice(t *testing.T) {
	r := FromString("abc\ndef\nghi")
	if got := r.Slice(4, 7); got != "def" {
		t.Fatalf("slice = %q, want %q", got, "def")
	}
	if got := r.Slice(2, 5); got != "c\nd" {
		t.Fatalf("slice = %q, want %q", got, "c\nd")
	}
	if got := r.Slice(7, 7); got != "" {
		t.Fatalf("empty slice = %q", got)
	}
}

func TestImmutability(t *testing.T) {
	base := FromString("abc")
	_ = base.Insert(1, "XYZ")
	_ = base.Remove(0, 2)
	if got := base.String(); got != "abc" {
		t.Fatalf("base mutated: %q", got)
	}
}

func TestManyEditsStayConsistent(t *testing.T) {
	var want strings.Builder
	r := New()
	for i := 0; i < 2000; i++ {
		r = r.Insert(r.LenChars(), "chunk\n")
		want.WriteString("chunk\n")
	}
	if got := r.String(); got != want.String() {
		t.Fatal("append-heavy edits diverged from expected text")
	}
	if got := r.LenLines(); got != 2001 {
		t.Fatalf("LenLines = %d, want 2001", got)
	}
	if r.root.height > heightLimit(r.root.chars) {
		t.Fatalf("tree unbalanced: height %d over limit %d", r.root.height, heightLimit(r.root.chars))
	}
	r = r.Remove(6, r.LenChars()-6)
	if got := r.String(); got != "chunk\nchunk\n" {
		t.Fatalf("bulk remove = %q", got)
	}
}

package document

import "testing"

func TestNextWordIndex(t *testing.T) {
	d := newTestDoc(t, "foo  bar_baz.qux\n")
	// Words: "foo", the double space, "bar_baz", ".", "qux"
	if got := d.NextWordIndex(At(0, 0)); got != 3 {
		t.Fatalf("next from 0 = %d, want 3", got)
	}
	if got := d.NextWordIndex(At(3, 0)); got != 5 {
		t.Fatalf("next from 3 = %d, want 5", got)
	}
	if got := d.NextWordIndex(At(13, 0)); got != 16 {
		t.Fatalf("next from last word = %d, want 16", got)
	}
}

func TestPrevWordIndex(t *testing.T) {
	d := newTestDoc(t, "foo  bar_baz.qux\n")
	if got := d.PrevWordIndex(At(16, 0)); got != 13 {
		t.Fatalf("prev from end = %d, want 13", got)
	}
	if got := d.PrevWordIndex(At(13, 0)); got != 12 {
		t.Fatalf("prev from 13 = %d, want 12", got)
	}
	if got := d.PrevWordIndex(At(1, 0)); got != 0 {
		t.Fatalf("prev inside first word = %d, want 0", got)
	}
}

func TestMoveWordStatuses(t *testing.T) {
	d := newTestDoc(t, "x\ny\n")
	d.MoveTo(At(0, 1))
	if got := d.MovePrevWord(); got != StatusStartOfLine {
		t.Fatalf("prev word at line start = %v", got)
	}
	d.MoveTo(At(1, 0))
	if got := d.MoveNextWord(); got != StatusEndOfLine {
		t.Fatalf("next word at line end = %v", got)
	}
}

func TestMoveNextWordCursor(t *testing.T) {
	d := newTestDoc(t, "one two\n")
	if got := d.MoveNextWord(); got != StatusNone {
		t.Fatalf("move next word = %v", got)
	}
	if d.CharPtr != 4 {
		t.Fatalf("char ptr = %d, want 4", d.CharPtr)
	}
}

func TestDeleteWord(t *testing.T) {
	d := newTestDoc(t, "foo bar\n")
	d.MoveToX(7)
	if err := d.DeleteWord(); err != nil {
		t.Fatalf("delete word: %v", err)
	}
	if got, _ := d.Line(0); got != "foo " {
		t.Fatalf("line = %q, want %q", got, "foo ")
	}
}

func TestDeleteWordAtWordStart(t *testing.T) {
	d := newTestDoc(t, "foo bar\n")
	d.MoveToX(4)
	if err := d.DeleteWord(); err != nil {
		t.Fatalf("delete word: %v", err)
	}
	if got, _ := d.Line(0); got != "bar" {
		t.Fatalf("line = %q, want %q", got, "bar")
	}
}

func TestDeleteWordAfterSpace(t *testing.T) {
	d := newTestDoc(t, "ab \n")
	d.MoveToX(3)
	if err := d.DeleteWord(); err != nil {
		t.Fatalf("delete word: %v", err)
	}
	if got, _ := d.Line(0); got != "" {
		t.Fatalf("line = %q, want empty", got)
	}
}

func TestDeleteWordAfterPunctuation(t *testing.T) {
	d := newTestDoc(t, "a--b\n")
	d.MoveToX(2)
	if err := d.DeleteWord(); err != nil {
		t.Fatalf("delete word: %v", err)
	}
	if got, _ := d.Line(0); got != "a-b" {
		t.Fatalf("line = %q, want %q", got, "a-b")
	}
}

func TestSelectWordAt(t *testing.T) {
	d := newTestDoc(t, "alpha beta gamma\n")
	d.MoveTo(At(8, 0))
	d.SelectWordAt(d.Loc())
	if got := d.SelectionText(); got != "beta" {
		t.Fatalf("selected word = %q, want %q", got, "beta")
	}
}

package document

import "testing"

func entriesEqual(a, b []Entry) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFormMap(t *testing.T) {
	dbl, tab := FormMap("a\tb日", 4)
	if !entriesEqual(dbl, []Entry{{Disp: 6, Char: 3}}) {
		t.Fatalf("dbl = %v", dbl)
	}
	if !entriesEqual(tab, []Entry{{Disp: 1, Char: 1}}) {
		t.Fatalf("tab = %v", tab)
	}
	// Trailing newlines advance one column and produce no entries
	dbl, tab = FormMap("日\n", 4)
	if !entriesEqual(dbl, []Entry{{Disp: 0, Char: 0}}) || len(tab) != 0 {
		t.Fatalf("dbl = %v tab = %v", dbl, tab)
	}
	dbl, tab = FormMap("plain", 4)
	if len(dbl) != 0 || len(tab) != 0 {
		t.Fatalf("plain text produced entries: %v %v", dbl, tab)
	}
	// Control characters take one column and produce no entries
	dbl, tab = FormMap("a\x07b", 4)
	if len(dbl) != 0 || len(tab) != 0 {
		t.Fatalf("control char produced entries: %v %v", dbl, tab)
	}
	// Width zero combining marks are tracked like double width glyphs
	dbl, _ = FormMap("éx", 4)
	if !entriesEqual(dbl, []Entry{{Disp: 1, Char: 1}}) {
		t.Fatalf("combining mark dbl = %v", dbl)
	}
}

func TestCount(t *testing.T) {
	m := NewCharMap()
	m.Insert(0, []Entry{{Disp: 1, Char: 1}, {Disp: 6, Char: 3}})
	if n, ok := m.Count(At(6, 0), true); !ok || n != 1 {
		t.Fatalf("display count = %d %v, want 1", n, ok)
	}
	if n, ok := m.Count(At(7, 0), true); !ok || n != 2 {
		t.Fatalf("display count = %d %v, want 2", n, ok)
	}
	if n, ok := m.Count(At(3, 0), false); !ok || n != 1 {
		t.Fatalf("char count = %d %v, want 1", n, ok)
	}
	if _, ok := m.Count(At(0, 9), true); ok {
		t.Fatal("count on absent line should report false")
	}
}

func TestInside(t *testing.T) {
	m := NewCharMap()
	m.Insert(0, []Entry{{Disp: 1, Char: 1}})
	if inner, ok := m.Inside(4, 2, 0); !ok || inner != 1 {
		t.Fatalf("inside(2) = %d %v", inner, ok)
	}
	if inner, ok := m.Inside(4, 4, 0); !ok || inner != 3 {
		t.Fatalf("inside(4) = %d %v", inner, ok)
	}
	// The boundaries of the span are not inside it
	if _, ok := m.Inside(4, 1, 0); ok {
		t.Fatal("tab start should not be inside")
	}
	if _, ok := m.Inside(4, 5, 0); ok {
		t.Fatal("column after tab should not be inside")
	}
}

func TestInsertSkipsEmpty(t *testing.T) {
	m := NewCharMap()
	m.Insert(3, nil)
	if m.Contains(3) {
		t.Fatal("empty slice should not create a line")
	}
}

func TestShiftUpDown(t *testing.T) {
	m := NewCharMap()
	m.Insert(0, []Entry{{Disp: 0, Char: 0}})
	m.Insert(2, []Entry{{Disp: 1, Char: 1}})
	m.ShiftDown(1)
	if m.Contains(2) || !m.Contains(3) || !m.Contains(0) {
		t.Fatalf("after shift down: %v", m.Map)
	}
	m.ShiftUp(3)
	if m.Contains(3) || !m.Contains(2) {
		t.Fatalf("after shift up: %v", m.Map)
	}
}

// checkMapsRebuild compares the incrementally maintained maps for a
// line against a full rescan of it.
func checkMapsRebuild(t *testing.T, d *Document, y int) {
	t.Helper()
	line, ok := d.Line(y)
	if !ok {
		t.Fatalf("line %d missing", y)
	}
	dbl, tab := FormMap(line, d.TabWidth)
	if !entriesEqual(d.DblMap.Get(y), dbl) {
		t.Fatalf("dbl map %v, rebuild %v for %q", d.DblMap.Get(y), dbl, line)
	}
	if !entriesEqual(d.TabMap.Get(y), tab) {
		t.Fatalf("tab map %v, rebuild %v for %q", d.TabMap.Get(y), tab, line)
	}
}

func TestIncrementalMapsMatchRebuild(t *testing.T) {
	d := newTestDoc(t, "aa\tbb日cc\n")
	steps := []Event{
		Insert{Loc: At(1, 0), Text: "日x"},
		Insert{Loc: At(0, 0), Text: "\t"},
		Delete{Loc: At(3, 0), Text: "xa"},
		Insert{Loc: At(6, 0), Text: "\t日"},
		Delete{Loc: At(0, 0), Text: "\t"},
	}
	for _, ev := range steps {
		if err := d.Exe(ev); err != nil {
			t.Fatalf("%#v: %v", ev, err)
		}
		checkMapsRebuild(t, d, 0)
	}
}

func TestLineEventsRenumberMaps(t *testing.T) {
	d := newTestDoc(t, "日\n日\n")
	if err := d.Exe(InsertLine{Y: 1, Text: "x"}); err != nil {
		t.Fatalf("insert line: %v", err)
	}
	if d.DblMap.Contains(1) {
		t.Fatal("plain line should have no entries")
	}
	if !entriesEqual(d.DblMap.Get(2), []Entry{{Disp: 0, Char: 0}}) {
		t.Fatalf("shifted entries = %v", d.DblMap.Get(2))
	}
	if err := d.Exe(DeleteLine{Y: 1, Text: "x"}); err != nil {
		t.Fatalf("delete line: %v", err)
	}
	for _, y := range []int{0, 1} {
		checkMapsRebuild(t, d, y)
	}
}

func TestSplitKeepsMapsConsistent(t *testing.T) {
	d := newTestDoc(t, "日a\t日b\n")
	if err := d.Exe(SplitDown{Loc: At(3, 0)}); err != nil {
		t.Fatalf("split: %v", err)
	}
	checkMapsRebuild(t, d, 0)
	checkMapsRebuild(t, d, 1)
	if err := d.Exe(SpliceUp{Loc: At(3, 0)}); err != nil {
		t.Fatalf("splice: %v", err)
	}
	checkMapsRebuild(t, d, 0)
}

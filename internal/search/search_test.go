package search

import "testing"

func TestLFind(t *testing.T) {
	s := New("o")
	m, ok := s.LFind("foo foo")
	if !ok || m.X != 1 || m.Text != "o" {
		t.Fatalf("LFind = %+v %v", m, ok)
	}
	if _, ok := New("z").LFind("foo"); ok {
		t.Fatal("match for absent pattern")
	}
}

func TestRFind(t *testing.T) {
	m, ok := New("o").RFind("foo foo")
	if !ok || m.X != 6 {
		t.Fatalf("RFind = %+v %v", m, ok)
	}
}

func TestMatchesReportCharIndices(t *testing.T) {
	m, ok := New("a").LFind("日本a")
	if !ok || m.X != 2 {
		t.Fatalf("LFind over wide text = %+v %v", m, ok)
	}
	m, ok = New("a").RFind("a日a")
	if !ok || m.X != 2 {
		t.Fatalf("RFind over wide text = %+v %v", m, ok)
	}
}

func TestCaptureGroupTarget(t *testing.T) {
	// The final capture group is the reported target
	m, ok := New("a(b)(c)").LFind("xabc")
	if !ok || m.X != 3 || m.Text != "c" {
		t.Fatalf("capture target = %+v %v", m, ok)
	}
	// A non-participating final group means no reportable match
	if _, ok := New("a(b)?").LFind("a"); ok {
		t.Fatal("non-participating group should not match")
	}
	m, ok = New("a(b)?").LFind("a ab")
	if !ok || m.X != 3 || m.Text != "b" {
		t.Fatalf("participating group = %+v %v", m, ok)
	}
}

func TestInvalidPattern(t *testing.T) {
	if _, ok := New("(").LFind("anything("); ok {
		t.Fatal("invalid pattern should never match")
	}
}

func TestLFindsRaw(t *testing.T) {
	ms := New("a").LFindsRaw("日a 日a")
	if len(ms) != 2 || ms[0].X != 3 || ms[1].X != 10 {
		t.Fatalf("raw matches = %+v", ms)
	}
}

func TestIndexConversion(t *testing.T) {
	if got := ByteToChar(3, "日a"); got != 1 {
		t.Fatalf("ByteToChar(3) = %d, want 1", got)
	}
	if got := ByteToChar(99, "日a"); got != 2 {
		t.Fatalf("ByteToChar past end = %d, want 2", got)
	}
	if got := CharToByte(1, "日a"); got != 3 {
		t.Fatalf("CharToByte(1) = %d, want 3", got)
	}
	if got := CharToByte(5, "日a"); got != 4 {
		t.Fatalf("CharToByte past end = %d, want 4", got)
	}
}

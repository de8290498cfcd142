package document

import "testing"

func TestWidth(t *testing.T) {
	cases := []struct {
		st       string
		tabWidth int
		want     int
	}{
		{"", 4, 0},
		{"abc", 4, 3},
		{"a\tb", 4, 6},
		{"\t", 4, 4},
		{"\t\t", 2, 4},
		{"日本", 4, 4},
		{"a日\tb", 3, 7},
	}
	for _, c := range cases {
		if got := Width(c.st, c.tabWidth); got != c.want {
			t.Fatalf("Width(%q, %d) = %d, want %d", c.st, c.tabWidth, got, c.want)
		}
	}
}

func TestWidthChar(t *testing.T) {
	if got := WidthChar('\t', 4); got != 4 {
		t.Fatalf("WidthChar(tab) = %d, want 4", got)
	}
	if got := WidthChar('a', 4); got != 1 {
		t.Fatalf("WidthChar(a) = %d, want 1", got)
	}
	if got := WidthChar('日', 4); got != 2 {
		t.Fatalf("WidthChar(日) = %d, want 2", got)
	}
}

func TestTrim(t *testing.T) {
	cases := []struct {
		st            string
		start, length int
		want          string
	}{
		{"hello", 0, 5, "hello"},
		{"hello", 1, 3, "ell"},
		{"hello", 9, 3, ""},
		{"abc\tdef", 2, 5, "c    "},
		// Cutting through a double width glyph pads with a space
		{"日本", 1, 3, " 本"},
		{"日本", 0, 3, "日 "},
	}
	for _, c := range cases {
		if got := Trim(c.st, c.start, c.length, 4); got != c.want {
			t.Fatalf("Trim(%q, %d, %d) = %q, want %q", c.st, c.start, c.length, got, c.want)
		}
	}
}

func TestTabBoundaries(t *testing.T) {
	fwd := tabBoundariesForward("        x", 4)
	if len(fwd) != 2 || fwd[0] != 0 || fwd[1] != 4 {
		t.Fatalf("forward = %v", fwd)
	}
	back := tabBoundariesBackward("        x", 4)
	if len(back) != 2 || back[0] != 4 || back[1] != 8 {
		t.Fatalf("backward = %v", back)
	}
	if got := tabBoundariesForward("      x", 4); len(got) != 1 || got[0] != 0 {
		t.Fatalf("partial run forward = %v", got)
	}
	if got := tabBoundariesForward("x       ", 4); len(got) != 0 {
		t.Fatalf("non space start = %v", got)
	}
}

package session

import (
	"testing"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	m, err := NewManager()
	if err != nil {
		t.Fatalf("NewManager error: %v", err)
	}
	t.Cleanup(m.Stop)
	return m
}

func TestFileStateRoundTrip(t *testing.T) {
	m := newTestManager(t)
	want := FileState{CursorRow: 3, CursorCol: 7, ScrollY: 1}
	m.SetFileState("/tmp/a.txt", want)
	if err := m.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	// A fresh manager over the same state dir sees the saved session
	m2, err := NewManager()
	if err != nil {
		t.Fatalf("NewManager error: %v", err)
	}
	defer m2.Stop()
	got, ok := m2.GetFileState("/tmp/a.txt")
	if !ok {
		t.Fatal("file state missing after reload")
	}
	if got != want {
		t.Fatalf("state = %+v, want %+v", got, want)
	}
	if m2.GetActiveFile() != "/tmp/a.txt" {
		t.Fatalf("active file = %q, want %q", m2.GetActiveFile(), "/tmp/a.txt")
	}
}

func TestGetMissingFileState(t *testing.T) {
	m := newTestManager(t)
	if _, ok := m.GetFileState("/nope"); ok {
		t.Fatal("unexpected state for unknown file")
	}
}
